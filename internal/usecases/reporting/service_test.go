package reporting

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Tabo-ecom/Grandline-antigravity-sub003/infrastructure/integrator/textgen"
	"github.com/Tabo-ecom/Grandline-antigravity-sub003/internal/domain"
)

type stubGenerator struct {
	response string
	err      error
}

func (s *stubGenerator) Generate(_ context.Context, _, _ string) (string, error) {
	return s.response, s.err
}

func sampleInsights() []*domain.CampaignInsight {
	return []*domain.CampaignInsight{
		{
			CampaignName: "Black Friday",
			Spend:        120.50,
			Impressions:  10000,
			Clicks:       300,
			Conversions:  12,
			Revenue:      480,
			ROAS:         3.98,
			Currency:     "BRL",
		},
		{
			CampaignName: "Remarketing",
			Spend:        45,
			Impressions:  2000,
			Clicks:       80,
			Conversions:  3,
			Revenue:      90,
			ROAS:         2,
			Currency:     "BRL",
		},
	}
}

func TestComposeReport_UsesGeneratedProse(t *testing.T) {
	service := NewService(&stubGenerator{response: "As campanhas foram bem ontem."})

	report := service.ComposeReport(context.Background(), PeriodDaily, sampleInsights())

	assert.Contains(t, report, "*Relatório diário de anúncios*")
	assert.Contains(t, report, "As campanhas foram bem ontem.")
}

func TestComposeReport_FallsBackToTable(t *testing.T) {
	tests := []struct {
		name      string
		generator textgen.Generator
	}{
		{name: "Sem gerador configurado", generator: nil},
		{name: "Gerador devolve erro", generator: &stubGenerator{err: errors.New("quota excedida")}},
		{name: "Serviço não configurado", generator: &stubGenerator{err: textgen.ErrNotConfigured}},
		{name: "Resposta vazia", generator: &stubGenerator{response: "   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewService(tt.generator)

			report := service.ComposeReport(context.Background(), PeriodWeekly, sampleInsights())

			assert.Contains(t, report, "*Relatório semanal de anúncios*")
			assert.Contains(t, report, "Black Friday")
			assert.Contains(t, report, "120.50 BRL")
			assert.Contains(t, report, "Remarketing")
		})
	}
}

func TestComposeReport_NoData(t *testing.T) {
	service := NewService(nil)

	report := service.ComposeReport(context.Background(), PeriodMonthly, nil)

	assert.Contains(t, report, "*Relatório mensal de anúncios*")
	assert.Contains(t, report, "Sem dados de campanha no período.")
}

func TestComposePerformanceSummary(t *testing.T) {
	service := NewService(nil)

	summary := service.ComposePerformanceSummary(sampleInsights())

	assert.Contains(t, summary, "*Resumo de performance das campanhas*")
	assert.Contains(t, summary, "Black Friday")
	assert.Contains(t, summary, "Remarketing")
	// Totais agregados de gasto e receita.
	assert.Contains(t, summary, "gasto 165.50 BRL")
	assert.Contains(t, summary, "receita 570.00 BRL")
}

func TestComposePerformanceSummary_Empty(t *testing.T) {
	service := NewService(nil)

	summary := service.ComposePerformanceSummary(nil)
	assert.Equal(t, "Nenhuma campanha com movimento relevante no período.", summary)
}
