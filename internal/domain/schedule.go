package domain

import "time"

// ScheduleConfig é a configuração de agendamento de um tenant, um documento
// por tenant no armazenamento. Alterada somente pela interface de
// configurações; este serviço apenas lê e avança LastRunAt da sincronização.
type ScheduleConfig struct {
	TenantID string `json:"tenant_id"`
	Timezone string `json:"timezone"`

	DailyReport   DailyReportConfig   `json:"daily_report"`
	WeeklyReport  WeeklyReportConfig  `json:"weekly_report"`
	MonthlyReport MonthlyReportConfig `json:"monthly_report"`

	PerformanceSync PerformanceSyncConfig `json:"performance_sync"`

	AlertWindow HourWindow `json:"alert_window"`
}

type DailyReportConfig struct {
	Enabled bool `json:"enabled"`
	Hour    int  `json:"hour"`
}

type WeeklyReportConfig struct {
	Enabled bool `json:"enabled"`
	// Weekday segue time.Weekday: 0 = domingo.
	Weekday int `json:"weekday"`
	Hour    int `json:"hour"`
}

type MonthlyReportConfig struct {
	Enabled bool  `json:"enabled"`
	Days    []int `json:"days"`
	Hour    int   `json:"hour"`
}

// PerformanceSyncConfig controla a sincronização periódica de performance de
// anúncios. LastRunAt só é avançado pelo orquestrador após um ciclo de
// busca-e-envio bem-sucedido, nunca especulativamente.
type PerformanceSyncConfig struct {
	Enabled       bool       `json:"enabled"`
	IntervalHours int        `json:"interval_hours"`
	ActiveWindow  HourWindow `json:"active_window"`
	LastRunAt     *time.Time `json:"last_run_at,omitempty"`
}

// HourWindow é uma janela de horas locais [Start, End], inclusiva nas duas
// pontas. Uma janela zerada (0,0) é tratada como "sempre ativa" quando End
// também é zero e Start é zero — configurações reais sempre preenchem End.
type HourWindow struct {
	StartHour int `json:"start_hour"`
	EndHour   int `json:"end_hour"`
}

// Contains indica se a hora local cai dentro da janela. Janelas com
// End < Start atravessam a meia-noite.
func (w HourWindow) Contains(hour int) bool {
	if w.StartHour == 0 && w.EndHour == 0 {
		return true
	}

	if w.EndHour < w.StartHour {
		return hour >= w.StartHour || hour <= w.EndHour
	}

	return hour >= w.StartHour && hour <= w.EndHour
}

// Location resolve o fuso IANA do tenant, caindo para UTC quando o nome é
// inválido ou vazio.
func (s *ScheduleConfig) Location() *time.Location {
	if s.Timezone == "" {
		return time.UTC
	}

	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.UTC
	}

	return loc
}
