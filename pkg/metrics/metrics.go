// Package metrics concentra os coletores Prometheus do serviço.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// VaultEncryptionDisabled vale 1 quando o serviço opera sem chave de
	// criptografia e segredos são persistidos em texto puro.
	VaultEncryptionDisabled = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "vault_encryption_disabled",
		Help: "1 quando o vault opera em modo degradado (sem chave configurada)",
	})

	// DispatchTicks conta execuções do loop de despacho, por resultado.
	DispatchTicks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dispatch_ticks_total",
		Help: "Execuções do loop de despacho de relatórios",
	}, []string{"result"})

	// DispatchTickDuration mede a duração de cada execução do loop.
	DispatchTickDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "dispatch_tick_duration_seconds",
		Help:    "Duração de uma execução completa do loop de despacho",
		Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
	})

	// NotificationFailures conta falhas de envio por canal.
	NotificationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "notification_failures_total",
		Help: "Falhas de envio de notificação por canal",
	}, []string{"channel"})

	// NotificationsSent conta envios bem-sucedidos por canal.
	NotificationsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "notifications_sent_total",
		Help: "Notificações enviadas com sucesso por canal",
	}, []string{"channel"})

	// WebhookRejections conta webhooks rejeitados, por motivo.
	WebhookRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "webhook_rejections_total",
		Help: "Webhooks de chat rejeitados por verificação",
	}, []string{"reason"})

	// AdsAPIRetries conta tentativas adicionais contra a plataforma de anúncios.
	AdsAPIRetries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ads_api_retries_total",
		Help: "Retentativas de chamadas à plataforma de anúncios após rate limit",
	})
)
