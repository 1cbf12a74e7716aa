package ads

import (
	"context"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/Tabo-ecom/Grandline-antigravity-sub003/infrastructure/integrator/ads/adsclient"
	adsdomain "github.com/Tabo-ecom/Grandline-antigravity-sub003/infrastructure/integrator/ads/domain"
	"github.com/Tabo-ecom/Grandline-antigravity-sub003/internal/config"
	"github.com/Tabo-ecom/Grandline-antigravity-sub003/internal/domain"
)

// Insighter é a visão de leitura do integrador: insights normalizados com
// métricas derivadas e listagem de campanhas para casamento de nomes.
type Insighter interface {
	GetCampaignInsights(ctx context.Context, accountID, accessToken string, filters *domain.InsightFilters) ([]*domain.CampaignInsight, error)
	ListCampaignNames(ctx context.Context, accountID, accessToken string) ([]adsdomain.Campaign, error)
	GetAccountCurrency(ctx context.Context, accountID, accessToken string) (string, error)
}

// Controller é a visão de mutação: escrita de orçamento e status.
type Controller interface {
	SetBudget(ctx context.Context, level adsdomain.EntityLevel, entityID, accessToken string, dailyBudget float64) adsdomain.MutationResult
	SetStatus(ctx context.Context, level adsdomain.EntityLevel, entityID, accessToken, status string) adsdomain.MutationResult
}

type AdsIntegrator struct {
	cfg    *config.Config
	Client adsclient.Client
}

func New(cfg *config.Config, client adsclient.Client) *AdsIntegrator {
	return &AdsIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// GetCampaignInsights normaliza as linhas cruas da API em insights tipados
// com CPA, ROAS e CTR calculados no cliente com divisão protegida.
func (s *AdsIntegrator) GetCampaignInsights(ctx context.Context, accountID, accessToken string, filters *domain.InsightFilters) ([]*domain.CampaignInsight, error) {
	rows, err := s.Client.GetCampaignInsights(ctx, accountID, accessToken, filters)
	if err != nil {
		return nil, err
	}

	currency, err := s.GetAccountCurrency(ctx, accountID, accessToken)
	if err != nil {
		// Moeda é cosmética no resumo: falha aqui não derruba a busca.
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Warn("ads: erro ao buscar moeda da conta, seguindo sem moeda")
		currency = ""
	}

	insights := make([]*domain.CampaignInsight, 0, len(rows))
	for i := range rows {
		insight := factoryCampaignInsight(&rows[i])
		insight.Currency = currency
		insight.ComputeDerivedMetrics()
		insights = append(insights, insight)
	}

	return insights, nil
}

func (s *AdsIntegrator) ListCampaignNames(ctx context.Context, accountID, accessToken string) ([]adsdomain.Campaign, error) {
	return s.Client.ListCampaigns(ctx, accountID, accessToken)
}

func (s *AdsIntegrator) GetAccountCurrency(ctx context.Context, accountID, accessToken string) (string, error) {
	metadata, err := s.Client.GetAccountMetadata(ctx, accountID, accessToken)
	if err != nil {
		return "", err
	}

	return metadata.Currency, nil
}

func (s *AdsIntegrator) SetBudget(ctx context.Context, level adsdomain.EntityLevel, entityID, accessToken string, dailyBudget float64) adsdomain.MutationResult {
	return s.Client.SetBudget(ctx, level, entityID, accessToken, dailyBudget)
}

func (s *AdsIntegrator) SetStatus(ctx context.Context, level adsdomain.EntityLevel, entityID, accessToken, status string) adsdomain.MutationResult {
	return s.Client.SetStatus(ctx, level, entityID, accessToken, status)
}

// factoryCampaignInsight converte os campos string da API. Conversões que
// falham viram zero com aviso em log, nunca derrubam a linha inteira.
func factoryCampaignInsight(row *adsdomain.InsightRow) *domain.CampaignInsight {
	insight := &domain.CampaignInsight{
		CampaignID:   row.CampaignID,
		CampaignName: row.CampaignName,
		Spend:        parseFloat(row.Spend, row.CampaignID, "spend"),
		Impressions:  parseInt(row.Impressions, row.CampaignID, "impressions"),
		Clicks:       parseInt(row.Clicks, row.CampaignID, "clicks"),
		Date:         row.DateStart,
	}

	insight.Conversions = int(sumActionValues(row.Actions))
	insight.Revenue = sumActionValues(row.ActionValues)

	return insight
}

// sumActionValues soma os valores de compra das listas de ações.
func sumActionValues(actions []adsdomain.Action) float64 {
	total := 0.0
	for _, action := range actions {
		if action.ActionType != adsdomain.ActionTypePurchase && action.ActionType != adsdomain.ActionTypePixelPurchase {
			continue
		}

		value, err := strconv.ParseFloat(action.Value, 64)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"action_type": action.ActionType,
				"value":       action.Value,
			}).Warn("ads: valor de ação não numérico")
			continue
		}

		total += value
	}

	return total
}

func parseFloat(value, campaignID, field string) float64 {
	if value == "" {
		return 0
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignID,
			"field":       field,
			"value":       value,
		}).Warn("ads: erro ao converter valor numérico")
		return 0
	}

	return parsed
}

func parseInt(value, campaignID, field string) int {
	if value == "" {
		return 0
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignID,
			"field":       field,
			"value":       value,
		}).Warn("ads: erro ao converter valor inteiro")
		return 0
	}

	return parsed
}
