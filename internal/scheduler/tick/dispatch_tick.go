package tick

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/Tabo-ecom/Grandline-antigravity-sub003/internal/config"
	"github.com/Tabo-ecom/Grandline-antigravity-sub003/internal/usecases/dispatching"
	"github.com/Tabo-ecom/Grandline-antigravity-sub003/pkg/metrics"
)

// DispatchTickService agenda e executa o tick de despacho: a cada disparo do
// cron o orquestrador avalia todos os tenants e entrega o que está vencido.
type DispatchTickService struct {
	scheduler           *gocron.Scheduler
	cfg                 *config.Config
	dispatcher          *dispatching.Service
	tickRunning         bool
	tickMutex           sync.Mutex
	lastTickStartedAt   time.Time
	lastTickCompletedAt time.Time
	lastTickResult      *dispatching.TickResult
}

// NewDispatchTickService cria o serviço de tick de despacho
func NewDispatchTickService(dispatcher *dispatching.Service, cfg *config.Config) *DispatchTickService {
	scheduler := gocron.NewScheduler(time.UTC)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":          cfg.Dispatch.CronSchedule,
		"dispatch_enabled":       cfg.Dispatch.Enabled,
		"max_concurrent_tenants": cfg.Dispatch.MaxConcurrentTenants,
	}).Info("Configuração do agendador de despacho carregada")

	return &DispatchTickService{
		scheduler:  scheduler,
		cfg:        cfg,
		dispatcher: dispatcher,
	}
}

// Start inicia o agendador
func (s *DispatchTickService) Start(ctx context.Context) error {
	if !s.cfg.Dispatch.Enabled {
		logrus.Info("Despacho agendado desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.cfg.Dispatch.CronSchedule).Info("Iniciando agendador de despacho")

	_, err := s.scheduler.Cron(s.cfg.Dispatch.CronSchedule).Do(func() {
		s.runTick(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar tick de despacho: %w", err)
	}

	s.scheduler.StartAsync()

	// Parar o agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de despacho")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *DispatchTickService) runTick(ctx context.Context) {
	s.tickMutex.Lock()
	if s.tickRunning {
		s.tickMutex.Unlock()
		logrus.Info("Tick de despacho já em andamento, ignorando")
		return
	}
	s.tickRunning = true
	s.tickMutex.Unlock()

	startTime := time.Now()
	s.lastTickStartedAt = startTime

	defer func() {
		s.tickMutex.Lock()
		s.tickRunning = false
		s.tickMutex.Unlock()
	}()

	logrus.Info("Iniciando tick de despacho para todos os tenants")

	result, err := s.dispatcher.RunTick(ctx)
	if err != nil {
		metrics.DispatchTicks.WithLabelValues("error").Inc()
		logrus.WithError(err).Error("Erro no tick de despacho")
		return
	}

	duration := time.Since(startTime)
	metrics.DispatchTicks.WithLabelValues("ok").Inc()
	metrics.DispatchTickDuration.Observe(duration.Seconds())

	logrus.WithFields(logrus.Fields{
		"duration":   duration.String(),
		"dispatched": len(result.Dispatched),
		"errors":     len(result.Errors),
	}).Info("Tick de despacho concluído")

	s.lastTickResult = result
	s.lastTickCompletedAt = time.Now()
}

// TriggerManualTick inicia manualmente um tick de despacho
func (s *DispatchTickService) TriggerManualTick(ctx context.Context) {
	s.tickMutex.Lock()
	if s.tickRunning {
		s.tickMutex.Unlock()
		logrus.Info("Tick de despacho já em andamento, ignorando solicitação manual")
		return
	}
	s.tickMutex.Unlock()

	logrus.Info("Iniciando tick manual de despacho")
	go s.runTick(ctx)
}

// RunOnce executa um tick síncrono e devolve o resultado. Usado pelo gatilho
// HTTP externo, que precisa do resumo na resposta.
func (s *DispatchTickService) RunOnce(ctx context.Context) (*dispatching.TickResult, error) {
	s.tickMutex.Lock()
	if s.tickRunning {
		s.tickMutex.Unlock()
		return nil, fmt.Errorf("tick de despacho já em andamento")
	}
	s.tickRunning = true
	s.tickMutex.Unlock()

	startTime := time.Now()
	s.lastTickStartedAt = startTime

	defer func() {
		s.tickMutex.Lock()
		s.tickRunning = false
		s.tickMutex.Unlock()
	}()

	result, err := s.dispatcher.RunTick(ctx)
	if err != nil {
		metrics.DispatchTicks.WithLabelValues("error").Inc()
		return nil, err
	}

	metrics.DispatchTicks.WithLabelValues("ok").Inc()
	metrics.DispatchTickDuration.Observe(time.Since(startTime).Seconds())

	s.lastTickResult = result
	s.lastTickCompletedAt = time.Now()

	return result, nil
}

// GetStatus retorna o status atual do agendador
func (s *DispatchTickService) GetStatus() map[string]any {
	status := map[string]any{
		"dispatch_enabled":       s.cfg.Dispatch.Enabled,
		"dispatch_cron":          s.cfg.Dispatch.CronSchedule,
		"max_concurrent_tenants": s.cfg.Dispatch.MaxConcurrentTenants,
		"tick_running":           s.tickRunning,
		"last_tick_started_at":   s.lastTickStartedAt,
		"last_tick_completed_at": s.lastTickCompletedAt,
	}

	if s.lastTickResult != nil {
		status["last_tick_dispatched"] = len(s.lastTickResult.Dispatched)
		status["last_tick_errors"] = len(s.lastTickResult.Errors)
	}

	return status
}
