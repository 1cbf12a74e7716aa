package commanding

import (
	"context"

	adsdomain "github.com/Tabo-ecom/Grandline-antigravity-sub003/infrastructure/integrator/ads/domain"
	"github.com/Tabo-ecom/Grandline-antigravity-sub003/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks.go -package=commanding

// ChannelResolver resolve o tenant dono de um canal de chat.
type ChannelResolver interface {
	FindTenantByChannel(ctx context.Context, channelID string) (*domain.CredentialBundle, error)
}

// CampaignReader é o subconjunto de leitura da plataforma de anúncios que os
// comandos consomem.
type CampaignReader interface {
	GetCampaignInsights(ctx context.Context, accountID, accessToken string, filters *domain.InsightFilters) ([]*domain.CampaignInsight, error)
	ListCampaignNames(ctx context.Context, accountID, accessToken string) ([]adsdomain.Campaign, error)
}

// CampaignWriter aplica mutações confirmadas.
type CampaignWriter interface {
	SetBudget(ctx context.Context, level adsdomain.EntityLevel, entityID, accessToken string, dailyBudget float64) adsdomain.MutationResult
	SetStatus(ctx context.Context, level adsdomain.EntityLevel, entityID, accessToken, status string) adsdomain.MutationResult
}

// PendingActions guarda a mutação não confirmada de cada tenant.
type PendingActions interface {
	Create(ctx context.Context, tenantID string, kind domain.ActionKind, targetID, targetName string, newValue float64) (*domain.PendingAction, error)
	Read(ctx context.Context, tenantID string) (*domain.PendingAction, error)
	Clear(ctx context.Context, tenantID string) error
}
