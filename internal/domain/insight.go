package domain

import (
	"time"

	"github.com/Tabo-ecom/Grandline-antigravity-sub003/pkg/utils"
)

type InsightFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// CampaignInsight é produzido fresco a cada busca e nunca persistido por
// este serviço: representa dados "vivos" consumidos imediatamente.
type CampaignInsight struct {
	CampaignID   string  `json:"campaign_id"`
	CampaignName string  `json:"campaign_name"`
	Spend        float64 `json:"spend"`
	Impressions  int     `json:"impressions"`
	Clicks       int     `json:"clicks"`
	Conversions  int     `json:"conversions"`
	Revenue      float64 `json:"revenue"`
	CPA          float64 `json:"cpa"`
	ROAS         float64 `json:"roas"`
	CTR          float64 `json:"ctr"`
	Currency     string  `json:"currency"`
	Date         string  `json:"date"`
}

// ComputeDerivedMetrics calcula CPA, ROAS e CTR com divisão protegida:
// denominador zero resulta em métrica zero.
func (c *CampaignInsight) ComputeDerivedMetrics() {
	c.CPA = utils.RoundWithTwoDecimalPlace(utils.SafeDivide(c.Spend, float64(c.Conversions)))
	c.ROAS = utils.RoundWithTwoDecimalPlace(utils.SafeDivide(c.Revenue, c.Spend))
	c.CTR = utils.RoundWithTwoDecimalPlace(utils.SafeDivide(float64(c.Clicks), float64(c.Impressions)) * 100)
}

// Relevant aplica o filtro de relevância do resumo de performance: a
// campanha entra no resumo quando gastou acima do piso ou converteu.
func (c *CampaignInsight) Relevant(minSpend float64) bool {
	return c.Spend >= minSpend || c.Conversions > 0
}
