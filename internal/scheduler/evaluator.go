package scheduler

import (
	"time"

	"github.com/Tabo-ecom/Grandline-antigravity-sub003/internal/domain"
)

// DueJobs é o veredito de um instante para um tenant: quais trabalhos estão
// vencidos agora.
type DueJobs struct {
	DailyReport     bool
	WeeklyReport    bool
	MonthlyReport   bool
	PerformanceSync bool
}

// Any indica se há qualquer trabalho vencido.
func (d DueJobs) Any() bool {
	return d.DailyReport || d.WeeklyReport || d.MonthlyReport || d.PerformanceSync
}

// Evaluate decide o que está vencido para o tenant no instante atual.
// Função pura e idempotente: o estado de agendamento só muda pela escrita
// explícita de LastRunAt feita pelo orquestrador após um ciclo
// bem-sucedido — é isso que evita envio duplicado quando o tick roda mais
// de uma vez na mesma hora.
func Evaluate(cfg *domain.ScheduleConfig, nowUTC time.Time) DueJobs {
	local := nowUTC.In(cfg.Location())

	return DueJobs{
		DailyReport:     dailyDue(cfg.DailyReport, local),
		WeeklyReport:    weeklyDue(cfg.WeeklyReport, local),
		MonthlyReport:   monthlyDue(cfg.MonthlyReport, local),
		PerformanceSync: performanceSyncDue(cfg.PerformanceSync, local, nowUTC),
	}
}

func dailyDue(cfg domain.DailyReportConfig, local time.Time) bool {
	return cfg.Enabled && local.Hour() == cfg.Hour
}

func weeklyDue(cfg domain.WeeklyReportConfig, local time.Time) bool {
	return cfg.Enabled &&
		int(local.Weekday()) == cfg.Weekday &&
		local.Hour() == cfg.Hour
}

func monthlyDue(cfg domain.MonthlyReportConfig, local time.Time) bool {
	if !cfg.Enabled || local.Hour() != cfg.Hour {
		return false
	}

	for _, day := range cfg.Days {
		if local.Day() == day {
			return true
		}
	}

	return false
}

func performanceSyncDue(cfg domain.PerformanceSyncConfig, local time.Time, nowUTC time.Time) bool {
	if !cfg.Enabled {
		return false
	}

	if !cfg.ActiveWindow.Contains(local.Hour()) {
		return false
	}

	// Primeira execução: nunca rodou, está vencida.
	if cfg.LastRunAt == nil {
		return true
	}

	elapsed := nowUTC.Sub(*cfg.LastRunAt)
	return elapsed >= time.Duration(cfg.IntervalHours)*time.Hour
}
