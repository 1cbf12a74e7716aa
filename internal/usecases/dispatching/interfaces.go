package dispatching

import (
	"context"
	"time"

	"github.com/Tabo-ecom/Grandline-antigravity-sub003/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks.go -package=dispatching

// TenantSource expõe o subconjunto do repositório de configurações que o
// despacho consome.
type TenantSource interface {
	ListScheduleConfigs(ctx context.Context) ([]*domain.ScheduleConfig, error)
	GetCredentialBundle(ctx context.Context, tenantID string) (*domain.CredentialBundle, error)
	UpdateSyncLastRun(ctx context.Context, tenantID string, ranAt time.Time) error
}

// Insighter busca métricas de campanha já normalizadas por conta.
type Insighter interface {
	GetCampaignInsights(ctx context.Context, accountID, accessToken string, filters *domain.InsightFilters) ([]*domain.CampaignInsight, error)
}

// Broadcaster entrega uma mensagem a todos os canais configurados do tenant e
// informa por canal se a entrega foi aceita.
type Broadcaster interface {
	Broadcast(ctx context.Context, target domain.NotificationTarget, text string) map[string]bool
}
