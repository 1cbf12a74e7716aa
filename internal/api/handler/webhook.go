package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Tabo-ecom/Grandline-antigravity-sub003/internal/usecases/commanding"
	"github.com/Tabo-ecom/Grandline-antigravity-sub003/pkg/apiErrors"
	"github.com/Tabo-ecom/Grandline-antigravity-sub003/pkg/metrics"
	"github.com/Tabo-ecom/Grandline-antigravity-sub003/pkg/signature"
)

const maxWebhookBodyBytes = 1 << 20

// chatEnvelope é o envelope de eventos da plataforma de chat.
type chatEnvelope struct {
	Type      string    `json:"type"`
	Challenge string    `json:"challenge,omitempty"`
	Event     chatEvent `json:"event"`
}

type chatEvent struct {
	Type    string `json:"type"`
	Channel string `json:"channel"`
	User    string `json:"user"`
	Text    string `json:"text"`
	BotID   string `json:"bot_id,omitempty"`
	Subtype string `json:"subtype,omitempty"`
}

// ChatWebhook recebe os eventos de mensagem do chat. O contrato com a
// plataforma é responder rápido e sempre com 2xx para eventos aceitos;
// rejeições de verificação são os únicos não-2xx.
func ChatWebhook(service *commanding.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBodyBytes))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição ilegível", nil)
			return
		}

		var envelope chatEnvelope
		if err := json.Unmarshal(body, &envelope); err != nil {
			metrics.WebhookRejections.WithLabelValues("malformed_body").Inc()
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Envelope de evento inválido", nil)
			return
		}

		// O handshake de verificação de URL chega antes de haver tenant ou
		// assinatura conferível: o contrato é só ecoar o challenge.
		if envelope.Type == "url_verification" {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]string{"challenge": envelope.Challenge})
			return
		}

		if envelope.Type != "event_callback" || envelope.Event.Type != "message" {
			w.WriteHeader(http.StatusOK)
			return
		}

		// Mensagens de bot (inclusive as nossas) e subtipos de edição são
		// confirmados e descartados, senão o serviço conversa consigo mesmo.
		if envelope.Event.BotID != "" || envelope.Event.Subtype != "" {
			w.WriteHeader(http.StatusOK)
			return
		}

		bundle, err := service.ResolveTenant(r.Context(), envelope.Event.Channel)
		if err != nil {
			logrus.WithError(err).Error("webhook: falha ao resolver tenant pelo canal")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao resolver canal", nil)
			return
		}

		if bundle == nil {
			metrics.WebhookRejections.WithLabelValues("unknown_channel").Inc()
			logrus.WithField("channel", envelope.Event.Channel).Warn("webhook: canal sem tenant associado")
			w.WriteHeader(http.StatusOK)
			return
		}

		sig := r.Header.Get("X-Signature")
		ts := r.Header.Get("X-Request-Timestamp")
		if err := service.VerifySignature(bundle, body, sig, ts); err != nil {
			metrics.WebhookRejections.WithLabelValues(rejectionReason(err)).Inc()
			logrus.WithError(err).WithField("channel", envelope.Event.Channel).Warn("webhook: assinatura rejeitada")
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Assinatura inválida", nil)
			return
		}

		reply := service.HandleMessage(r.Context(), bundle, envelope.Event.Text)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"text": reply})
	}
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, signature.ErrMissingSignature), errors.Is(err, signature.ErrMissingTimestamp):
		return "missing_signature"
	case errors.Is(err, signature.ErrStaleTimestamp):
		return "stale_timestamp"
	default:
		return "signature_mismatch"
	}
}
