package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Tabo-ecom/Grandline-antigravity-sub003/internal/config"
	"github.com/Tabo-ecom/Grandline-antigravity-sub003/internal/domain"
	"github.com/Tabo-ecom/Grandline-antigravity-sub003/internal/usecases/commanding"
	"github.com/Tabo-ecom/Grandline-antigravity-sub003/internal/usecases/reporting"
	"github.com/Tabo-ecom/Grandline-antigravity-sub003/pkg/signature"
)

type webhookMocks struct {
	tenants *commanding.MockChannelResolver
	pending *commanding.MockPendingActions
}

func webhookService(t *testing.T) (*commanding.Service, webhookMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mocks := webhookMocks{
		tenants: commanding.NewMockChannelResolver(ctrl),
		pending: commanding.NewMockPendingActions(ctrl),
	}

	service := commanding.NewService(
		&config.Config{},
		mocks.tenants,
		mocks.pending,
		commanding.NewMockCampaignReader(ctrl),
		commanding.NewMockCampaignWriter(ctrl),
		commanding.NewInterpreter(nil),
		reporting.NewService(nil),
	)

	return service, mocks
}

func webhookBundle() *domain.CredentialBundle {
	return &domain.CredentialBundle{
		TenantID:           "t1",
		SlackChannelID:     "C123",
		SlackSigningSecret: "segredo",
	}
}

func messageBody(channel, text string) string {
	return fmt.Sprintf(`{"type":"event_callback","event":{"type":"message","channel":%q,"user":"U1","text":%q}}`, channel, text)
}

func signedRequest(t *testing.T, secret, body string) *http.Request {
	t.Helper()

	ts := fmt.Sprintf("%d", time.Now().Unix())
	sig := signature.NewVerifier(secret).Sign([]byte(body), ts)

	req := httptest.NewRequest(http.MethodPost, "/v1/webhook/chat", strings.NewReader(body))
	req.Header.Set("X-Signature", sig)
	req.Header.Set("X-Request-Timestamp", ts)

	return req
}

func TestChatWebhook_URLVerificationEchoesChallenge(t *testing.T) {
	service, _ := webhookService(t)
	handler := ChatWebhook(service)

	body := `{"type":"url_verification","challenge":"abc123"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/webhook/chat", strings.NewReader(body))
	recorder := httptest.NewRecorder()

	handler(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, "abc123", resp["challenge"])
}

func TestChatWebhook_MalformedBody(t *testing.T) {
	service, _ := webhookService(t)
	handler := ChatWebhook(service)

	req := httptest.NewRequest(http.MethodPost, "/v1/webhook/chat", strings.NewReader("isto não é json"))
	recorder := httptest.NewRecorder()

	handler(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestChatWebhook_IgnoresBotMessages(t *testing.T) {
	service, _ := webhookService(t)
	handler := ChatWebhook(service)

	// Mensagem do próprio bot: confirmada e descartada sem resolver tenant.
	body := `{"type":"event_callback","event":{"type":"message","channel":"C123","text":"eco","bot_id":"B99"}}`
	req := httptest.NewRequest(http.MethodPost, "/v1/webhook/chat", strings.NewReader(body))
	recorder := httptest.NewRecorder()

	handler(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Empty(t, recorder.Body.String())
}

func TestChatWebhook_UnknownChannelIsAcknowledged(t *testing.T) {
	service, mocks := webhookService(t)
	handler := ChatWebhook(service)

	mocks.tenants.EXPECT().FindTenantByChannel(gomock.Any(), "C999").Return(nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/webhook/chat", strings.NewReader(messageBody("C999", "oi")))
	recorder := httptest.NewRecorder()

	handler(recorder, req)

	// Canal desconhecido não vaza informação: 200 sem corpo de resposta.
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Empty(t, recorder.Body.String())
}

func TestChatWebhook_RejectsBadSignature(t *testing.T) {
	tests := []struct {
		name      string
		signature string
		timestamp string
	}{
		{name: "Sem assinatura", signature: "", timestamp: fmt.Sprintf("%d", time.Now().Unix())},
		{name: "Timestamp velho", signature: "v0=deadbeef", timestamp: "1000000000"},
		{name: "Assinatura errada", signature: "v0=deadbeef", timestamp: fmt.Sprintf("%d", time.Now().Unix())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mocks := webhookService(t)
			handler := ChatWebhook(service)

			mocks.tenants.EXPECT().FindTenantByChannel(gomock.Any(), "C123").Return(webhookBundle(), nil)

			req := httptest.NewRequest(http.MethodPost, "/v1/webhook/chat", strings.NewReader(messageBody("C123", "sim")))
			if tt.signature != "" {
				req.Header.Set("X-Signature", tt.signature)
			}
			req.Header.Set("X-Request-Timestamp", tt.timestamp)
			recorder := httptest.NewRecorder()

			handler(recorder, req)

			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		})
	}
}

func TestChatWebhook_SignedMessageGetsReply(t *testing.T) {
	service, mocks := webhookService(t)
	handler := ChatWebhook(service)

	mocks.tenants.EXPECT().FindTenantByChannel(gomock.Any(), "C123").Return(webhookBundle(), nil)
	mocks.pending.EXPECT().Read(gomock.Any(), "t1").Return(nil, nil)

	body := messageBody("C123", "sim")
	recorder := httptest.NewRecorder()

	handler(recorder, signedRequest(t, "segredo", body))

	require.Equal(t, http.StatusOK, recorder.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, "Não há nenhuma ação pendente para confirmar.", resp["text"])
}
