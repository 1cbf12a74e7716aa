// Package notifier entrega mensagens formatadas aos canais de chat do
// tenant. Cada canal é independente: a falha de um nunca impede a tentativa
// nos demais.
package notifier

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Tabo-ecom/Grandline-antigravity-sub003/internal/domain"
	"github.com/Tabo-ecom/Grandline-antigravity-sub003/pkg/metrics"
)

// Channel é um destino de notificação configurado para um tenant.
type Channel interface {
	Name() string
	Send(ctx context.Context, text string) error
}

// Dispatcher constrói os canais a partir do alvo do tenant e envia para
// todos, reportando sucesso por canal para que o chamador possa expor
// falha parcial.
type Dispatcher struct {
	httpClient *http.Client
	telegram   *telegramBotPool
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		telegram: newTelegramBotPool(),
	}
}

// Broadcast envia o texto a todos os canais configurados do alvo e devolve
// o resultado por canal. Um alvo sem canal algum devolve mapa vazio.
func (d *Dispatcher) Broadcast(ctx context.Context, target domain.NotificationTarget, text string) map[string]bool {
	results := make(map[string]bool)

	for _, channel := range d.channelsFor(target) {
		err := channel.Send(ctx, text)
		results[channel.Name()] = err == nil

		if err != nil {
			metrics.NotificationFailures.WithLabelValues(channel.Name()).Inc()
			logrus.WithFields(logrus.Fields{
				"channel": channel.Name(),
				"error":   err.Error(),
			}).Error("notifier: falha no envio, seguindo para o próximo canal")
			continue
		}

		metrics.NotificationsSent.WithLabelValues(channel.Name()).Inc()
	}

	return results
}

func (d *Dispatcher) channelsFor(target domain.NotificationTarget) []Channel {
	channels := make([]Channel, 0, 2)

	if target.SlackWebhookURL != "" {
		channels = append(channels, &slackChannel{
			httpClient: d.httpClient,
			webhookURL: target.SlackWebhookURL,
		})
	}

	if target.TelegramBotToken != "" && target.TelegramChatID != 0 {
		channels = append(channels, &telegramChannel{
			pool:   d.telegram,
			token:  target.TelegramBotToken,
			chatID: target.TelegramChatID,
		})
	}

	return channels
}
