package dispatching

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	adsdomain "github.com/Tabo-ecom/Grandline-antigravity-sub003/infrastructure/integrator/ads/domain"
	"github.com/Tabo-ecom/Grandline-antigravity-sub003/internal/config"
	"github.com/Tabo-ecom/Grandline-antigravity-sub003/internal/domain"
	"github.com/Tabo-ecom/Grandline-antigravity-sub003/internal/scheduler"
	"github.com/Tabo-ecom/Grandline-antigravity-sub003/internal/usecases/reporting"
)

// TickResult resume um ciclo de despacho: o que foi entregue e o que falhou.
// Falhas por tenant são isoladas, nunca abortam o ciclo inteiro.
type TickResult struct {
	Dispatched []string `json:"dispatched"`
	Errors     []string `json:"errors"`
}

type Service struct {
	cfg      *config.Config
	tenants  TenantSource
	insights Insighter
	notifier Broadcaster
	reporter reporting.Reporter

	now func() time.Time
}

func NewService(
	cfg *config.Config,
	tenants TenantSource,
	insights Insighter,
	notifier Broadcaster,
	reporter reporting.Reporter,
) *Service {
	return &Service{
		cfg:      cfg,
		tenants:  tenants,
		insights: insights,
		notifier: notifier,
		reporter: reporter,
		now:      time.Now,
	}
}

// RunTick percorre todos os tenants, avalia o que está vencido no instante
// atual e despacha relatórios e sincronizações. Tenants são processados com
// concorrência limitada e timeout individual.
func (s *Service) RunTick(ctx context.Context) (*TickResult, error) {
	configs, err := s.tenants.ListScheduleConfigs(ctx)
	if err != nil {
		return nil, fmt.Errorf("dispatch: listando configurações de agendamento: %w", err)
	}

	nowUTC := s.now().UTC()
	result := &TickResult{Dispatched: []string{}, Errors: []string{}}

	maxConcurrent := s.cfg.Dispatch.MaxConcurrentTenants
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		semaphore = make(chan struct{}, maxConcurrent)
	)

	for _, sched := range configs {
		due := scheduler.Evaluate(sched, nowUTC)
		if !due.Any() {
			continue
		}

		wg.Add(1)
		semaphore <- struct{}{}

		go func(sched *domain.ScheduleConfig, due scheduler.DueJobs) {
			defer wg.Done()
			defer func() { <-semaphore }()

			dispatched, errs := s.runTenant(ctx, sched, due, nowUTC)

			mu.Lock()
			result.Dispatched = append(result.Dispatched, dispatched...)
			result.Errors = append(result.Errors, errs...)
			mu.Unlock()
		}(sched, due)
	}

	wg.Wait()

	return result, nil
}

func (s *Service) runTenant(ctx context.Context, sched *domain.ScheduleConfig, due scheduler.DueJobs, nowUTC time.Time) (dispatched, errs []string) {
	timeout := time.Duration(s.cfg.Dispatch.TenantTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = time.Minute
	}

	tenantCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	logger := logrus.WithField("tenant_id", sched.TenantID)

	bundle, err := s.tenants.GetCredentialBundle(tenantCtx, sched.TenantID)
	if err != nil {
		logger.WithError(err).Error("dispatch: falha ao carregar credenciais do tenant")
		return nil, []string{fmt.Sprintf("%s: credenciais: %v", sched.TenantID, err)}
	}

	target := bundle.Target()
	local := nowUTC.In(sched.Location())

	for _, job := range reportJobs(due) {
		if err := s.dispatchReport(tenantCtx, bundle, target, job, local); err != nil {
			logger.WithError(err).WithField("period", job).Error("dispatch: relatório falhou")
			errs = append(errs, fmt.Sprintf("%s: relatório %s: %v", sched.TenantID, job, err))
			continue
		}

		dispatched = append(dispatched, fmt.Sprintf("%s:%s_report", sched.TenantID, job))
	}

	if due.PerformanceSync {
		if err := s.dispatchPerformanceSync(tenantCtx, sched, bundle, target, local, nowUTC); err != nil {
			logger.WithError(err).Error("dispatch: sincronização de performance falhou")
			errs = append(errs, fmt.Sprintf("%s: performance_sync: %v", sched.TenantID, err))
		} else {
			dispatched = append(dispatched, fmt.Sprintf("%s:performance_sync", sched.TenantID))
		}
	}

	return dispatched, errs
}

func reportJobs(due scheduler.DueJobs) []reporting.Period {
	var jobs []reporting.Period
	if due.DailyReport {
		jobs = append(jobs, reporting.PeriodDaily)
	}
	if due.WeeklyReport {
		jobs = append(jobs, reporting.PeriodWeekly)
	}
	if due.MonthlyReport {
		jobs = append(jobs, reporting.PeriodMonthly)
	}
	return jobs
}

func (s *Service) dispatchReport(ctx context.Context, bundle *domain.CredentialBundle, target domain.NotificationTarget, period reporting.Period, local time.Time) error {
	filters := periodFilters(period, local)

	insights, err := s.fetchAllAccounts(ctx, bundle, target, filters)
	if err != nil {
		return err
	}

	text := s.reporter.ComposeReport(ctx, period, insights)

	return s.broadcast(ctx, target, text)
}

// dispatchPerformanceSync busca o movimento do dia, filtra campanhas
// relevantes e entrega o resumo. LastRunAt só avança depois que a entrega
// conclui: falha em qualquer etapa deixa o trabalho vencido para o próximo
// tick.
func (s *Service) dispatchPerformanceSync(ctx context.Context, sched *domain.ScheduleConfig, bundle *domain.CredentialBundle, target domain.NotificationTarget, local, nowUTC time.Time) error {
	startOfDay := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, local.Location())
	filters := &domain.InsightFilters{StartDate: &startOfDay, EndDate: &local}

	insights, err := s.fetchAllAccounts(ctx, bundle, target, filters)
	if err != nil {
		return err
	}

	relevant := make([]*domain.CampaignInsight, 0, len(insights))
	for _, insight := range insights {
		if insight.Relevant(s.cfg.Dispatch.MinCampaignSpend) {
			relevant = append(relevant, insight)
		}
	}

	text := s.reporter.ComposePerformanceSummary(relevant)

	if err := s.broadcast(ctx, target, text); err != nil {
		return err
	}

	if err := s.tenants.UpdateSyncLastRun(ctx, sched.TenantID, nowUTC); err != nil {
		return fmt.Errorf("registrando última execução: %w", err)
	}

	return nil
}

func (s *Service) fetchAllAccounts(ctx context.Context, bundle *domain.CredentialBundle, target domain.NotificationTarget, filters *domain.InsightFilters) ([]*domain.CampaignInsight, error) {
	var all []*domain.CampaignInsight

	for _, accountID := range bundle.AdsAccountIDs {
		insights, err := s.insights.GetCampaignInsights(ctx, accountID, bundle.AdsAccessToken, filters)
		if err != nil {
			var tokenErr *adsdomain.TokenExpiredError
			if errors.As(err, &tokenErr) {
				// Token vencido não é transitório: avisa o tenant e
				// interrompe, repetir só queimaria chamadas.
				s.notifier.Broadcast(ctx, target,
					"⚠️ O acesso à conta de anúncios expirou. Reconecte a conta para voltar a receber relatórios.")
				return nil, err
			}

			return nil, fmt.Errorf("conta %s: %w", accountID, err)
		}

		all = append(all, insights...)
	}

	return all, nil
}

func (s *Service) broadcast(ctx context.Context, target domain.NotificationTarget, text string) error {
	delivered := s.notifier.Broadcast(ctx, target, text)
	if len(delivered) == 0 {
		return errors.New("nenhum canal de notificação configurado")
	}

	for _, ok := range delivered {
		if ok {
			return nil
		}
	}

	return errors.New("entrega falhou em todos os canais")
}

// periodFilters traduz o período do relatório em um intervalo de datas no
// fuso do tenant: diário cobre ontem, semanal os últimos 7 dias fechados,
// mensal o mês corrente até ontem.
func periodFilters(period reporting.Period, local time.Time) *domain.InsightFilters {
	endOfYesterday := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, local.Location()).Add(-time.Second)

	var start time.Time
	switch period {
	case reporting.PeriodWeekly:
		start = endOfYesterday.AddDate(0, 0, -6)
	case reporting.PeriodMonthly:
		start = time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, local.Location())
	default:
		start = endOfYesterday
	}

	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, local.Location())

	return &domain.InsightFilters{StartDate: &start, EndDate: &endOfYesterday}
}
