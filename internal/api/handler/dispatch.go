package handler

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Tabo-ecom/Grandline-antigravity-sub003/internal/config"
	"github.com/Tabo-ecom/Grandline-antigravity-sub003/internal/scheduler/tick"
	"github.com/Tabo-ecom/Grandline-antigravity-sub003/pkg/apiErrors"
)

// RunDispatch executa um tick de despacho sob demanda e devolve o resumo.
// A rota é chamada por agendadores externos e se autentica com o segredo
// compartilhado de gatilho, não com JWT de operador.
func RunDispatch(cfg *config.Config, tick *tick.DispatchTickService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunDispatch")

		if !triggerAuthorized(cfg, r) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Segredo de gatilho ausente ou inválido", nil)
			return
		}

		result, err := tick.RunOnce(r.Context())
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}
}

// DispatchStatus retorna o status do agendador de despacho
func DispatchStatus(tick *tick.DispatchTickService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DispatchStatus")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(tick.GetStatus())
	}
}

// TriggerDispatch dispara um tick assíncrono a partir do painel do operador
func TriggerDispatch(tick *tick.DispatchTickService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - TriggerDispatch")

		// O tick roda além da vida da requisição, então não herda o contexto
		// dela.
		tick.TriggerManualTick(context.Background())

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"message": "Tick de despacho iniciado com sucesso",
		})
	}
}

func triggerAuthorized(cfg *config.Config, r *http.Request) bool {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if token == "" {
		token = r.URL.Query().Get("token")
	}

	secret := cfg.Dispatch.TriggerToken
	if secret == "" {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(token), []byte(secret)) == 1
}
