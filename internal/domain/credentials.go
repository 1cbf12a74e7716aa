package domain

// CredentialBundle agrupa os segredos nomeados de um tenant. Os campos
// sensíveis são persistidos como envelope criptografado pelo vault; os
// demais ficam em claro.
type CredentialBundle struct {
	TenantID string `json:"tenant_id"`

	// AdsAccessToken autentica as chamadas à plataforma de anúncios.
	AdsAccessToken string `json:"ads_access_token"`
	// AdsAccountIDs são as contas de anúncio conectadas do tenant.
	AdsAccountIDs []string `json:"ads_account_ids"`

	SlackWebhookURL    string `json:"slack_webhook_url"`
	SlackSigningSecret string `json:"slack_signing_secret"`
	// SlackChannelID identifica o canal de chat do tenant e é a chave usada
	// para resolver o tenant dono de uma mensagem recebida via webhook.
	SlackChannelID string `json:"slack_channel_id"`

	TelegramBotToken string `json:"telegram_bot_token"`
	TelegramChatID   int64  `json:"telegram_chat_id"`
}

// SensitiveCredentialFields é a lista explícita de campos cifrados em
// repouso. Contrato rígido: campo novo sensível entra aqui, nada é cifrado
// implicitamente.
var SensitiveCredentialFields = []string{
	"ads_access_token",
	"slack_webhook_url",
	"slack_signing_secret",
	"telegram_bot_token",
}

// NotificationTarget reúne o necessário para entregar mensagens a um tenant.
type NotificationTarget struct {
	SlackWebhookURL  string
	TelegramBotToken string
	TelegramChatID   int64
}

// Target projeta o bundle nos dados de entrega de notificação.
func (b *CredentialBundle) Target() NotificationTarget {
	return NotificationTarget{
		SlackWebhookURL:  b.SlackWebhookURL,
		TelegramBotToken: b.TelegramBotToken,
		TelegramChatID:   b.TelegramChatID,
	}
}
