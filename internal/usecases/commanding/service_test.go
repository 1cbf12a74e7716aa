package commanding

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

// stubInterpreter devolve sempre o mesmo comando, sem tocar no serviço de
// geração de texto.
type stubInterpreter struct {
	cmd domain.ParsedCommand
}

func (s *stubInterpreter) Interpret(_ context.Context, _ string) domain.ParsedCommand {
	return s.cmd
}

type commandMocks struct {
	tenants *MockChannelResolver
	pending *MockPendingActions
	reader  *MockCampaignReader
	writer  *MockCampaignWriter
}

func testCommandService(t *testing.T, cmd domain.ParsedCommand) (*Service, commandMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mocks := commandMocks{
		tenants: NewMockChannelResolver(ctrl),
		pending: NewMockPendingActions(ctrl),
		reader:  NewMockCampaignReader(ctrl),
		writer:  NewMockCampaignWriter(ctrl),
	}

	service := NewService(
		&config.Config{},
		mocks.tenants,
		mocks.pending,
		mocks.reader,
		mocks.writer,
		&stubInterpreter{cmd: cmd},
		reporting.NewService(nil),
	)
	service.now = func() time.Time {
		return time.Date(2024, 6, 10, 14, 0, 0, 0, time.UTC)
	}

	return service, mocks
}

func commandBundle() *domain.CredentialBundle {
	return &domain.CredentialBundle{
		TenantID:       "t1",
		AdsAccessToken: "tok",
		AdsAccountIDs:  []string{"acc1"},
		SlackChannelID: "C123",
	}
}

func pausePending() *domain.PendingAction {
	return &domain.PendingAction{
		ID:         "abc123",
		TenantID:   "t1",
		Kind:       domain.ActionPause,
		TargetID:   "camp1",
		TargetName: "Black Friday",
	}
}

func TestHandleMessage_ConfirmWithNothingPending(t *testing.T) {
	service, mocks := testCommandService(t, domain.UnknownCommand())

	mocks.pending.EXPECT().Read(gomock.Any(), "t1").Return(nil, nil)

	reply := service.HandleMessage(context.Background(), commandBundle(), "sim")
	assert.Equal(t, "Não há nenhuma ação pendente para confirmar.", reply)
}

func TestHandleMessage_ConfirmExecutesAndConsumes(t *testing.T) {
	tests := []struct {
		name    string
		message string
	}{
		{name: "Confirmação direta", message: "sim"},
		{name: "Confirmação com pontuação", message: "Sim!"},
		{name: "Confirmação em inglês", message: "yes"},
		{name: "Confirmação abreviada", message: "s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mocks := testCommandService(t, domain.UnknownCommand())

			mocks.pending.EXPECT().Read(gomock.Any(), "t1").Return(pausePending(), nil)
			mocks.writer.EXPECT().
				SetStatus(gomock.Any(), adsdomain.LevelCampaign, "camp1", "tok", adsdomain.StatusPaused).
				Return(adsdomain.MutationResult{Success: true})
			mocks.pending.EXPECT().Clear(gomock.Any(), "t1").Return(nil)

			reply := service.HandleMessage(context.Background(), commandBundle(), tt.message)
			assert.Equal(t, "Feito. A campanha *Black Friday* foi pausada.", reply)
		})
	}
}

func TestHandleMessage_ConfirmConsumesActionEvenOnFailure(t *testing.T) {
	service, mocks := testCommandService(t, domain.UnknownCommand())

	mocks.pending.EXPECT().Read(gomock.Any(), "t1").Return(pausePending(), nil)
	mocks.writer.EXPECT().
		SetStatus(gomock.Any(), adsdomain.LevelCampaign, "camp1", "tok", adsdomain.StatusPaused).
		Return(adsdomain.MutationResult{Success: false, Error: "permissão negada"})

	// A ação é consumida mesmo com a recusa: repetir "sim" não pode
	// reexecutar a mutação.
	mocks.pending.EXPECT().Clear(gomock.Any(), "t1").Return(nil)

	reply := service.HandleMessage(context.Background(), commandBundle(), "sim")
	assert.Contains(t, reply, "recusou a ação em *Black Friday*")
	assert.Contains(t, reply, "permissão negada")
}

func TestHandleMessage_CancelClearsWithoutExecuting(t *testing.T) {
	service, mocks := testCommandService(t, domain.UnknownCommand())

	mocks.pending.EXPECT().Read(gomock.Any(), "t1").Return(pausePending(), nil)
	mocks.pending.EXPECT().Clear(gomock.Any(), "t1").Return(nil)

	reply := service.HandleMessage(context.Background(), commandBundle(), "cancelar")
	assert.Equal(t, "Cancelado. Nada foi alterado em *Black Friday*.", reply)
}

func TestHandleMessage_CancelWithNothingPending(t *testing.T) {
	service, mocks := testCommandService(t, domain.UnknownCommand())

	mocks.pending.EXPECT().Read(gomock.Any(), "t1").Return(nil, nil)

	reply := service.HandleMessage(context.Background(), commandBundle(), "não")
	assert.Equal(t, "Não há nenhuma ação pendente para cancelar.", reply)
}

func TestHandleMessage_ConfirmTokenInsideSentenceIsNotConfirmation(t *testing.T) {
	// "sim" dentro de uma frase não confirma nada: o vocabulário casa com a
	// mensagem inteira. A frase cai no interpretador, que devolve unknown.
	service, _ := testCommandService(t, domain.UnknownCommand())

	reply := service.HandleMessage(context.Background(), commandBundle(), "sim senhor, como estão as coisas?")
	assert.Equal(t, unknownReply, reply)
}

func TestHandleMessage_StatusComposesSummary(t *testing.T) {
	service, mocks := testCommandService(t, domain.ParsedCommand{Action: domain.CommandStatus})

	mocks.reader.EXPECT().
		GetCampaignInsights(gomock.Any(), "acc1", "tok", gomock.Any()).
		Return([]*domain.CampaignInsight{
			{CampaignName: "Black Friday", Spend: 120.5, Conversions: 4, Currency: "BRL"},
		}, nil)

	reply := service.HandleMessage(context.Background(), commandBundle(), "como estão as campanhas?")
	assert.Contains(t, reply, "Black Friday")
	assert.Contains(t, reply, "Resumo de performance")
}

func TestHandleMessage_StatusFetchFailureIsReadable(t *testing.T) {
	service, mocks := testCommandService(t, domain.ParsedCommand{Action: domain.CommandStatus})

	mocks.reader.EXPECT().
		GetCampaignInsights(gomock.Any(), "acc1", "tok", gomock.Any()).
		Return(nil, errors.New("timeout"))

	reply := service.HandleMessage(context.Background(), commandBundle(), "status")
	assert.Contains(t, reply, "Não consegui consultar")
}

func TestHandleMessage_UnknownFallsBackToHelp(t *testing.T) {
	service, _ := testCommandService(t, domain.UnknownCommand())

	reply := service.HandleMessage(context.Background(), commandBundle(), "qual o sentido da vida?")
	assert.Equal(t, unknownReply, reply)
}

func TestHandleMessage_MutationWithoutTargetGetsHelp(t *testing.T) {
	// Sem nome de campanha não há o que casar: a resposta é a ajuda, sem
	// nenhuma consulta à plataforma de anúncios.
	tests := []struct {
		name   string
		entity string
	}{
		{name: "Alvo ausente", entity: ""},
		{name: "Alvo só com espaços", entity: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := testCommandService(t, domain.ParsedCommand{
				Action:     domain.CommandPause,
				EntityName: tt.entity,
			})

			reply := service.HandleMessage(context.Background(), commandBundle(), "pausa a campanha")
			assert.Equal(t, unknownReply, reply)
		})
	}
}

func TestHandleMessage_PauseStagesPendingAction(t *testing.T) {
	service, mocks := testCommandService(t, domain.ParsedCommand{
		Action:     domain.CommandPause,
		EntityName: "black friday",
	})

	mocks.reader.EXPECT().
		ListCampaignNames(gomock.Any(), "acc1", "tok").
		Return([]adsdomain.Campaign{
			{ID: "camp1", Name: "Black Friday", Status: "ACTIVE"},
			{ID: "camp2", Name: "Institucional", Status: "ACTIVE"},
		}, nil)

	mocks.pending.EXPECT().
		Create(gomock.Any(), "t1", domain.ActionPause, "camp1", "Black Friday", 0.0).
		Return(&domain.PendingAction{
			TenantID:   "t1",
			Kind:       domain.ActionPause,
			TargetID:   "camp1",
			TargetName: "Black Friday",
		}, nil)

	reply := service.HandleMessage(context.Background(), commandBundle(), "pausa a black friday")
	assert.Contains(t, reply, "Pausar a campanha *Black Friday*")
	assert.Contains(t, reply, "Responda *sim*")
	assert.Contains(t, reply, "5 minutos")
}

func TestHandleMessage_CampaignNotFound(t *testing.T) {
	service, mocks := testCommandService(t, domain.ParsedCommand{
		Action:     domain.CommandPause,
		EntityName: "inexistente",
	})

	mocks.reader.EXPECT().
		ListCampaignNames(gomock.Any(), "acc1", "tok").
		Return([]adsdomain.Campaign{{ID: "camp1", Name: "Black Friday"}}, nil)

	reply := service.HandleMessage(context.Background(), commandBundle(), "pausa a inexistente")
	assert.Contains(t, reply, `"inexistente"`)
	assert.Contains(t, reply, "Não encontrei")
}

func TestHandleMessage_PercentageBudgetUsesCurrentBudget(t *testing.T) {
	service, mocks := testCommandService(t, domain.ParsedCommand{
		Action:       domain.CommandIncreaseBudget,
		EntityName:   "black friday",
		Amount:       20,
		IsPercentage: true,
	})

	// Orçamento atual de 100,00 (10000 centavos); +20% alveja 120,00.
	mocks.reader.EXPECT().
		ListCampaignNames(gomock.Any(), "acc1", "tok").
		Return([]adsdomain.Campaign{
			{ID: "camp1", Name: "Black Friday", DailyBudget: "10000"},
		}, nil)

	mocks.pending.EXPECT().
		Create(gomock.Any(), "t1", domain.ActionIncreaseBudget, "camp1", "Black Friday", 120.0).
		Return(&domain.PendingAction{
			Kind:       domain.ActionIncreaseBudget,
			TargetName: "Black Friday",
			NewValue:   120,
		}, nil)

	reply := service.HandleMessage(context.Background(), commandBundle(), "aumenta o orçamento da black friday em 20%")
	assert.Contains(t, reply, "para 120.00")
}

func TestHandleMessage_PercentageDecreaseCannotZeroBudget(t *testing.T) {
	service, mocks := testCommandService(t, domain.ParsedCommand{
		Action:       domain.CommandDecreaseBudget,
		EntityName:   "black friday",
		Amount:       100,
		IsPercentage: true,
	})

	mocks.reader.EXPECT().
		ListCampaignNames(gomock.Any(), "acc1", "tok").
		Return([]adsdomain.Campaign{
			{ID: "camp1", Name: "Black Friday", DailyBudget: "10000"},
		}, nil)

	reply := service.HandleMessage(context.Background(), commandBundle(), "diminui o orçamento da black friday em 100%")
	assert.Contains(t, reply, "zeraria o orçamento")
}

func TestHandleMessage_PercentageWithoutOwnBudgetIsRejected(t *testing.T) {
	service, mocks := testCommandService(t, domain.ParsedCommand{
		Action:       domain.CommandIncreaseBudget,
		EntityName:   "black friday",
		Amount:       20,
		IsPercentage: true,
	})

	mocks.reader.EXPECT().
		ListCampaignNames(gomock.Any(), "acc1", "tok").
		Return([]adsdomain.Campaign{
			{ID: "camp1", Name: "Black Friday"},
		}, nil)

	reply := service.HandleMessage(context.Background(), commandBundle(), "aumenta o orçamento da black friday em 20%")
	assert.Contains(t, reply, "não tem orçamento diário próprio")
}

func TestHandleMessage_AbsoluteBudgetIsDirectTarget(t *testing.T) {
	service, mocks := testCommandService(t, domain.ParsedCommand{
		Action:     domain.CommandDecreaseBudget,
		EntityName: "black friday",
		Amount:     50,
	})

	mocks.reader.EXPECT().
		ListCampaignNames(gomock.Any(), "acc1", "tok").
		Return([]adsdomain.Campaign{
			{ID: "camp1", Name: "Black Friday", DailyBudget: "10000"},
		}, nil)

	mocks.pending.EXPECT().
		Create(gomock.Any(), "t1", domain.ActionDecreaseBudget, "camp1", "Black Friday", 50.0).
		Return(&domain.PendingAction{
			Kind:       domain.ActionDecreaseBudget,
			TargetName: "Black Friday",
			NewValue:   50,
		}, nil)

	reply := service.HandleMessage(context.Background(), commandBundle(), "diminui o orçamento da black friday para 50")
	assert.Contains(t, reply, "para 50.00")
}

func TestHandleMessage_NewCommandOverwritesPrevious(t *testing.T) {
	// O armazenamento sobrescreve na criação (última ordem vence); o serviço
	// sempre chama Create, nunca condiciona à existência de outra pendência.
	service, mocks := testCommandService(t, domain.ParsedCommand{
		Action:     domain.CommandEnable,
		EntityName: "institucional",
	})

	mocks.reader.EXPECT().
		ListCampaignNames(gomock.Any(), "acc1", "tok").
		Return([]adsdomain.Campaign{{ID: "camp2", Name: "Institucional"}}, nil)

	mocks.pending.EXPECT().
		Create(gomock.Any(), "t1", domain.ActionEnable, "camp2", "Institucional", 0.0).
		Return(&domain.PendingAction{
			Kind:       domain.ActionEnable,
			TargetName: "Institucional",
		}, nil)

	reply := service.HandleMessage(context.Background(), commandBundle(), "reativa a institucional")
	assert.Contains(t, reply, "Reativar a campanha *Institucional*")
}

func TestResolveTenant_UnknownChannel(t *testing.T) {
	service, mocks := testCommandService(t, domain.UnknownCommand())

	mocks.tenants.EXPECT().FindTenantByChannel(gomock.Any(), "C999").Return(nil, nil)

	bundle, err := service.ResolveTenant(context.Background(), "C999")
	require.NoError(t, err)
	assert.Nil(t, bundle)
}
