package reporting

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Tabo-ecom/Grandline-antigravity-sub003/infrastructure/integrator/textgen"
	"github.com/Tabo-ecom/Grandline-antigravity-sub003/internal/domain"
)

// Period identifica o tipo de relatório agendado.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

var periodLabels = map[Period]string{
	PeriodDaily:   "diário",
	PeriodWeekly:  "semanal",
	PeriodMonthly: "mensal",
}

const reportInstruction = `Você escreve resumos executivos de performance de anúncios para lojistas.
Receberá métricas por campanha em texto tabular. Responda em português, tom direto,
no máximo 6 frases, destacando gasto total, ROAS e as campanhas que mais chamam atenção.
Use *negrito* para números importantes. Não invente dados.`

// Reporter compõe o corpo dos relatórios e resumos enviados aos canais.
type Reporter interface {
	ComposeReport(ctx context.Context, period Period, insights []*domain.CampaignInsight) string
	ComposePerformanceSummary(insights []*domain.CampaignInsight) string
}

type Service struct {
	generator textgen.Generator
}

func NewService(generator textgen.Generator) *Service {
	return &Service{generator: generator}
}

// ComposeReport delega a prosa ao serviço de geração de texto e cai para a
// formatação tabular quando o serviço falha ou não está configurado.
func (s *Service) ComposeReport(ctx context.Context, period Period, insights []*domain.CampaignInsight) string {
	plain := s.formatTable(period, insights)

	if s.generator == nil {
		return plain
	}

	prose, err := s.generator.Generate(ctx, reportInstruction, plain)
	if err != nil || strings.TrimSpace(prose) == "" {
		if err != nil && err != textgen.ErrNotConfigured {
			logrus.WithError(err).Warn("reporting: geração de prosa falhou, usando formato tabular")
		}
		return plain
	}

	return fmt.Sprintf("*Relatório %s de anúncios*\n\n%s", periodLabels[period], strings.TrimSpace(prose))
}

// ComposePerformanceSummary monta o resumo de sincronização por campanha,
// sempre no formato tabular (sem prosa: é um resumo operacional).
func (s *Service) ComposePerformanceSummary(insights []*domain.CampaignInsight) string {
	if len(insights) == 0 {
		return "Nenhuma campanha com movimento relevante no período."
	}

	var b strings.Builder
	b.WriteString("*Resumo de performance das campanhas*\n")

	totalSpend := 0.0
	totalRevenue := 0.0
	currency := ""

	for _, insight := range insights {
		totalSpend += insight.Spend
		totalRevenue += insight.Revenue
		if currency == "" {
			currency = insight.Currency
		}

		fmt.Fprintf(&b, "\n• %s\n", insight.CampaignName)
		fmt.Fprintf(&b, "  Gasto: %s | Conversões: %d | ROAS: %.2f | CPA: %s | CTR: %.2f%%\n",
			money(insight.Spend, insight.Currency),
			insight.Conversions,
			insight.ROAS,
			money(insight.CPA, insight.Currency),
			insight.CTR,
		)
	}

	fmt.Fprintf(&b, "\n*Total*: gasto %s, receita %s",
		money(totalSpend, currency),
		money(totalRevenue, currency),
	)

	return b.String()
}

func (s *Service) formatTable(period Period, insights []*domain.CampaignInsight) string {
	if len(insights) == 0 {
		return fmt.Sprintf("*Relatório %s de anúncios*\n\nSem dados de campanha no período.", periodLabels[period])
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*Relatório %s de anúncios*\n", periodLabels[period])

	for _, insight := range insights {
		fmt.Fprintf(&b, "\n%s — gasto %s, %d impressões, %d cliques, %d conversões, receita %s, ROAS %.2f",
			insight.CampaignName,
			money(insight.Spend, insight.Currency),
			insight.Impressions,
			insight.Clicks,
			insight.Conversions,
			money(insight.Revenue, insight.Currency),
			insight.ROAS,
		)
	}

	return b.String()
}

func money(value float64, currency string) string {
	if currency == "" {
		return fmt.Sprintf("%.2f", value)
	}

	return fmt.Sprintf("%.2f %s", value, currency)
}
