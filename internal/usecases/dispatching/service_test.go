package dispatching

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	adsdomain "github.com/Tabo-ecom/Grandline-antigravity-sub003/infrastructure/integrator/ads/domain"
	"github.com/Tabo-ecom/Grandline-antigravity-sub003/internal/config"
	"github.com/Tabo-ecom/Grandline-antigravity-sub003/internal/domain"
	"github.com/Tabo-ecom/Grandline-antigravity-sub003/internal/usecases/reporting"
)

func testConfig() *config.Config {
	return &config.Config{
		Dispatch: config.Dispatch{
			MaxConcurrentTenants: 2,
			TenantTimeoutSeconds: 5,
			MinCampaignSpend:     10,
		},
	}
}

func testService(t *testing.T, now time.Time) (*Service, *MockTenantSource, *MockInsighter, *MockBroadcaster) {
	t.Helper()

	ctrl := gomock.NewController(t)
	tenants := NewMockTenantSource(ctrl)
	insights := NewMockInsighter(ctrl)
	notifier := NewMockBroadcaster(ctrl)

	service := NewService(testConfig(), tenants, insights, notifier, reporting.NewService(nil))
	service.now = func() time.Time { return now }

	return service, tenants, insights, notifier
}

func dailySchedule(tenantID string, hour int) *domain.ScheduleConfig {
	return &domain.ScheduleConfig{
		TenantID:    tenantID,
		Timezone:    "UTC",
		DailyReport: domain.DailyReportConfig{Enabled: true, Hour: hour},
	}
}

func syncSchedule(tenantID string) *domain.ScheduleConfig {
	return &domain.ScheduleConfig{
		TenantID: tenantID,
		Timezone: "UTC",
		PerformanceSync: domain.PerformanceSyncConfig{
			Enabled:       true,
			IntervalHours: 1,
		},
	}
}

func testBundle(tenantID string) *domain.CredentialBundle {
	return &domain.CredentialBundle{
		TenantID:        tenantID,
		AdsAccessToken:  "tok-" + tenantID,
		AdsAccountIDs:   []string{"acc1"},
		SlackWebhookURL: "https://hooks.example.com/x",
	}
}

func TestRunTick_DispatchesDailyReport(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 30, 0, 0, time.UTC)
	service, tenants, insights, notifier := testService(t, now)

	tenants.EXPECT().ListScheduleConfigs(gomock.Any()).
		Return([]*domain.ScheduleConfig{dailySchedule("t1", 9)}, nil)
	tenants.EXPECT().GetCredentialBundle(gomock.Any(), "t1").
		Return(testBundle("t1"), nil)

	insights.EXPECT().
		GetCampaignInsights(gomock.Any(), "acc1", "tok-t1", gomock.Any()).
		Return([]*domain.CampaignInsight{{CampaignName: "Campanha A", Spend: 100}}, nil)

	notifier.EXPECT().
		Broadcast(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(map[string]bool{"slack": true})

	result, err := service.RunTick(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"t1:daily_report"}, result.Dispatched)
	assert.Empty(t, result.Errors)
}

func TestRunTick_BogotaMorningDeliversDailyReport(t *testing.T) {
	// 13:00 UTC = 08:00 em Bogotá (UTC-5); só o relatório diário vence e a
	// notificação sai contra o alvo deste tenant.
	now := time.Date(2024, 3, 1, 13, 0, 0, 0, time.UTC)
	service, tenants, insights, notifier := testService(t, now)

	sched := &domain.ScheduleConfig{
		TenantID:      "t1",
		Timezone:      "America/Bogota",
		DailyReport:   domain.DailyReportConfig{Enabled: true, Hour: 8},
		WeeklyReport:  domain.WeeklyReportConfig{Enabled: true, Weekday: 1, Hour: 8},
		MonthlyReport: domain.MonthlyReportConfig{Enabled: true, Days: []int{15}, Hour: 8},
	}

	tenants.EXPECT().ListScheduleConfigs(gomock.Any()).
		Return([]*domain.ScheduleConfig{sched}, nil)
	tenants.EXPECT().GetCredentialBundle(gomock.Any(), "t1").
		Return(testBundle("t1"), nil)

	insights.EXPECT().
		GetCampaignInsights(gomock.Any(), "acc1", "tok-t1", gomock.Any()).
		Return([]*domain.CampaignInsight{{CampaignName: "Campanha A", Spend: 100}}, nil)

	notifier.EXPECT().
		Broadcast(gomock.Any(), testBundle("t1").Target(), gomock.Any()).
		Return(map[string]bool{"slack": true})

	result, err := service.RunTick(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"t1:daily_report"}, result.Dispatched)
	assert.Empty(t, result.Errors)
}

func TestRunTick_SkipsTenantsWithNothingDue(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 30, 0, 0, time.UTC)
	service, tenants, _, _ := testService(t, now)

	// Relatório configurado para outra hora: nada vencido, nada buscado.
	tenants.EXPECT().ListScheduleConfigs(gomock.Any()).
		Return([]*domain.ScheduleConfig{dailySchedule("t1", 15)}, nil)

	result, err := service.RunTick(context.Background())
	require.NoError(t, err)
	assert.Empty(t, result.Dispatched)
	assert.Empty(t, result.Errors)
}

func TestRunTick_PerformanceSyncAdvancesLastRunOnlyAfterDelivery(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 30, 0, 0, time.UTC)

	t.Run("Entrega bem-sucedida avança LastRunAt", func(t *testing.T) {
		service, tenants, insights, notifier := testService(t, now)

		tenants.EXPECT().ListScheduleConfigs(gomock.Any()).
			Return([]*domain.ScheduleConfig{syncSchedule("t1")}, nil)
		tenants.EXPECT().GetCredentialBundle(gomock.Any(), "t1").
			Return(testBundle("t1"), nil)

		insights.EXPECT().
			GetCampaignInsights(gomock.Any(), "acc1", "tok-t1", gomock.Any()).
			Return([]*domain.CampaignInsight{{CampaignName: "Campanha A", Spend: 50, Conversions: 2}}, nil)

		notifier.EXPECT().
			Broadcast(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(map[string]bool{"slack": true})

		tenants.EXPECT().UpdateSyncLastRun(gomock.Any(), "t1", now).Return(nil)

		result, err := service.RunTick(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"t1:performance_sync"}, result.Dispatched)
	})

	t.Run("Falha de entrega não avança LastRunAt", func(t *testing.T) {
		service, tenants, insights, notifier := testService(t, now)

		tenants.EXPECT().ListScheduleConfigs(gomock.Any()).
			Return([]*domain.ScheduleConfig{syncSchedule("t1")}, nil)
		tenants.EXPECT().GetCredentialBundle(gomock.Any(), "t1").
			Return(testBundle("t1"), nil)

		insights.EXPECT().
			GetCampaignInsights(gomock.Any(), "acc1", "tok-t1", gomock.Any()).
			Return([]*domain.CampaignInsight{{CampaignName: "Campanha A", Spend: 50}}, nil)

		// Todos os canais falham: UpdateSyncLastRun não pode ser chamado,
		// o trabalho continua vencido para o próximo tick.
		notifier.EXPECT().
			Broadcast(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(map[string]bool{"slack": false})

		result, err := service.RunTick(context.Background())
		require.NoError(t, err)
		assert.Empty(t, result.Dispatched)
		assert.Len(t, result.Errors, 1)
	})

	t.Run("Falha de busca não avança LastRunAt", func(t *testing.T) {
		service, tenants, insights, _ := testService(t, now)

		tenants.EXPECT().ListScheduleConfigs(gomock.Any()).
			Return([]*domain.ScheduleConfig{syncSchedule("t1")}, nil)
		tenants.EXPECT().GetCredentialBundle(gomock.Any(), "t1").
			Return(testBundle("t1"), nil)

		insights.EXPECT().
			GetCampaignInsights(gomock.Any(), "acc1", "tok-t1", gomock.Any()).
			Return(nil, errors.New("timeout"))

		result, err := service.RunTick(context.Background())
		require.NoError(t, err)
		assert.Empty(t, result.Dispatched)
		assert.Len(t, result.Errors, 1)
	})
}

func TestRunTick_PerformanceSyncFiltersIrrelevantCampaigns(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 30, 0, 0, time.UTC)
	service, tenants, insights, notifier := testService(t, now)

	tenants.EXPECT().ListScheduleConfigs(gomock.Any()).
		Return([]*domain.ScheduleConfig{syncSchedule("t1")}, nil)
	tenants.EXPECT().GetCredentialBundle(gomock.Any(), "t1").
		Return(testBundle("t1"), nil)

	insights.EXPECT().
		GetCampaignInsights(gomock.Any(), "acc1", "tok-t1", gomock.Any()).
		Return([]*domain.CampaignInsight{
			{CampaignName: "Relevante por gasto", Spend: 50},
			{CampaignName: "Relevante por conversão", Spend: 1, Conversions: 3},
			{CampaignName: "Irrelevante", Spend: 2},
		}, nil)

	notifier.EXPECT().
		Broadcast(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.NotificationTarget, text string) map[string]bool {
			assert.Contains(t, text, "Relevante por gasto")
			assert.Contains(t, text, "Relevante por conversão")
			assert.NotContains(t, text, "Irrelevante")
			return map[string]bool{"slack": true}
		})

	tenants.EXPECT().UpdateSyncLastRun(gomock.Any(), "t1", now).Return(nil)

	_, err := service.RunTick(context.Background())
	require.NoError(t, err)
}

func TestRunTick_TenantFailureIsIsolated(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 30, 0, 0, time.UTC)
	service, tenants, insights, notifier := testService(t, now)

	tenants.EXPECT().ListScheduleConfigs(gomock.Any()).
		Return([]*domain.ScheduleConfig{
			dailySchedule("quebrado", 9),
			dailySchedule("saudavel", 9),
		}, nil)

	tenants.EXPECT().GetCredentialBundle(gomock.Any(), "quebrado").
		Return(nil, errors.New("documento corrompido"))
	tenants.EXPECT().GetCredentialBundle(gomock.Any(), "saudavel").
		Return(testBundle("saudavel"), nil)

	insights.EXPECT().
		GetCampaignInsights(gomock.Any(), "acc1", "tok-saudavel", gomock.Any()).
		Return([]*domain.CampaignInsight{{CampaignName: "Campanha A", Spend: 10}}, nil)

	notifier.EXPECT().
		Broadcast(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(map[string]bool{"slack": true})

	result, err := service.RunTick(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"saudavel:daily_report"}, result.Dispatched)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "quebrado")
}

func TestRunTick_TokenExpiredNotifiesTenant(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 30, 0, 0, time.UTC)
	service, tenants, insights, notifier := testService(t, now)

	tenants.EXPECT().ListScheduleConfigs(gomock.Any()).
		Return([]*domain.ScheduleConfig{dailySchedule("t1", 9)}, nil)
	tenants.EXPECT().GetCredentialBundle(gomock.Any(), "t1").
		Return(testBundle("t1"), nil)

	insights.EXPECT().
		GetCampaignInsights(gomock.Any(), "acc1", "tok-t1", gomock.Any()).
		Return(nil, &adsdomain.TokenExpiredError{Code: 190, Message: "expirado"})

	// O tenant é avisado uma única vez, sem retentativa de busca.
	notifier.EXPECT().
		Broadcast(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.NotificationTarget, text string) map[string]bool {
			assert.Contains(t, text, "Reconecte")
			return map[string]bool{"slack": true}
		})

	result, err := service.RunTick(context.Background())
	require.NoError(t, err)
	assert.Empty(t, result.Dispatched)
	require.Len(t, result.Errors, 1)
}

func TestRunTick_ListFailureAborts(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 30, 0, 0, time.UTC)
	service, tenants, _, _ := testService(t, now)

	tenants.EXPECT().ListScheduleConfigs(gomock.Any()).
		Return(nil, errors.New("banco indisponível"))

	_, err := service.RunTick(context.Background())
	assert.Error(t, err)
}
