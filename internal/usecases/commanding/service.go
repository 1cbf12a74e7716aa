package commanding

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	adsdomain "github.com/Tabo-ecom/Grandline-antigravity-sub003/infrastructure/integrator/ads/domain"
	"github.com/Tabo-ecom/Grandline-antigravity-sub003/internal/config"
	"github.com/Tabo-ecom/Grandline-antigravity-sub003/internal/domain"
	"github.com/Tabo-ecom/Grandline-antigravity-sub003/internal/usecases/reporting"
	"github.com/Tabo-ecom/Grandline-antigravity-sub003/pkg/signature"
)

// Vocabulário de confirmação e cancelamento. Comparação feita sobre a
// mensagem inteira normalizada, nunca sobre substrings.
var (
	confirmTokens = map[string]bool{
		"sim": true, "s": true, "yes": true, "y": true,
		"confirmar": true, "confirm": true, "ok": true,
	}
	cancelTokens = map[string]bool{
		"não": true, "nao": true, "n": true, "no": true,
		"cancelar": true, "cancel": true,
	}
)

const unknownReply = `Não entendi o pedido. Eu sei fazer:
• "como estão as campanhas?" — resumo de performance
• "pausa a campanha X" / "reativa a campanha X"
• "aumenta o orçamento de X em 20%" / "diminui o orçamento de X para 50"`

// CommandInterpreter traduz a mensagem livre em um comando estruturado.
type CommandInterpreter interface {
	Interpret(ctx context.Context, message string) domain.ParsedCommand
}

// Service orquestra o fluxo de comandos conversacionais: resolve o tenant
// pelo canal, valida a assinatura da requisição e conduz a máquina de
// confirmação das mutações.
type Service struct {
	cfg         *config.Config
	tenants     ChannelResolver
	pending     PendingActions
	reader      CampaignReader
	writer      CampaignWriter
	interpreter CommandInterpreter
	reporter    reporting.Reporter

	now         func() time.Time
	verifierFor func(secret string) *signature.Verifier
}

func NewService(
	cfg *config.Config,
	tenants ChannelResolver,
	pending PendingActions,
	reader CampaignReader,
	writer CampaignWriter,
	interpreter CommandInterpreter,
	reporter reporting.Reporter,
) *Service {
	return &Service{
		cfg:         cfg,
		tenants:     tenants,
		pending:     pending,
		reader:      reader,
		writer:      writer,
		interpreter: interpreter,
		reporter:    reporter,
		now:         time.Now,
		verifierFor: signature.NewVerifier,
	}
}

// ResolveTenant encontra o tenant dono do canal. nil sem erro significa
// canal desconhecido.
func (s *Service) ResolveTenant(ctx context.Context, channelID string) (*domain.CredentialBundle, error) {
	return s.tenants.FindTenantByChannel(ctx, channelID)
}

// VerifySignature valida a assinatura HMAC da requisição com o segredo do
// próprio tenant.
func (s *Service) VerifySignature(bundle *domain.CredentialBundle, body []byte, providedSignature, providedTimestamp string) error {
	return s.verifierFor(bundle.SlackSigningSecret).Verify(body, providedSignature, providedTimestamp)
}

// HandleMessage processa uma mensagem de chat já autenticada e devolve o
// texto de resposta. Nunca devolve erro: falhas viram mensagens legíveis,
// porque o canal de chat é a única superfície que o usuário vê.
func (s *Service) HandleMessage(ctx context.Context, bundle *domain.CredentialBundle, text string) string {
	normalized := strings.ToLower(strings.TrimSpace(strings.Trim(strings.TrimSpace(text), ".!")))

	if confirmTokens[normalized] {
		return s.confirmPending(ctx, bundle)
	}

	if cancelTokens[normalized] {
		return s.cancelPending(ctx, bundle)
	}

	cmd := s.interpreter.Interpret(ctx, text)

	switch cmd.Action {
	case domain.CommandStatus:
		return s.statusSummary(ctx, bundle)
	case domain.CommandUnknown:
		return unknownReply
	default:
		return s.stageMutation(ctx, bundle, cmd)
	}
}

func (s *Service) confirmPending(ctx context.Context, bundle *domain.CredentialBundle) string {
	action, err := s.pending.Read(ctx, bundle.TenantID)
	if err != nil {
		logrus.WithError(err).WithField("tenant_id", bundle.TenantID).Error("commands: falha ao ler ação pendente")
		return "Não consegui verificar a ação pendente agora. Tente de novo em instantes."
	}

	if action == nil {
		return "Não há nenhuma ação pendente para confirmar."
	}

	result := s.execute(ctx, bundle, action)

	// A ação é consumida pela confirmação, com sucesso ou não: repetir a
	// execução exigiria um comando novo.
	if err := s.pending.Clear(ctx, bundle.TenantID); err != nil {
		logrus.WithError(err).WithField("tenant_id", bundle.TenantID).Error("commands: falha ao limpar ação pendente")
	}

	if !result.Success {
		return fmt.Sprintf("A plataforma de anúncios recusou a ação em *%s*: %s", action.TargetName, result.Error)
	}

	return s.successReply(action)
}

func (s *Service) cancelPending(ctx context.Context, bundle *domain.CredentialBundle) string {
	action, err := s.pending.Read(ctx, bundle.TenantID)
	if err != nil {
		logrus.WithError(err).WithField("tenant_id", bundle.TenantID).Error("commands: falha ao ler ação pendente")
		return "Não consegui verificar a ação pendente agora. Tente de novo em instantes."
	}

	if action == nil {
		return "Não há nenhuma ação pendente para cancelar."
	}

	if err := s.pending.Clear(ctx, bundle.TenantID); err != nil {
		logrus.WithError(err).WithField("tenant_id", bundle.TenantID).Error("commands: falha ao limpar ação pendente")
		return "Não consegui cancelar agora. Tente de novo em instantes."
	}

	return fmt.Sprintf("Cancelado. Nada foi alterado em *%s*.", action.TargetName)
}

func (s *Service) statusSummary(ctx context.Context, bundle *domain.CredentialBundle) string {
	local := s.now()
	startOfDay := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, local.Location())
	filters := &domain.InsightFilters{StartDate: &startOfDay, EndDate: &local}

	var all []*domain.CampaignInsight
	for _, accountID := range bundle.AdsAccountIDs {
		insights, err := s.reader.GetCampaignInsights(ctx, accountID, bundle.AdsAccessToken, filters)
		if err != nil {
			logrus.WithError(err).WithField("tenant_id", bundle.TenantID).Error("commands: falha ao buscar insights para status")
			return "Não consegui consultar a plataforma de anúncios agora. Tente de novo em instantes."
		}
		all = append(all, insights...)
	}

	return s.reporter.ComposePerformanceSummary(all)
}

// stageMutation registra a mutação como pendente e pede confirmação. Nada é
// aplicado na plataforma de anúncios neste passo.
func (s *Service) stageMutation(ctx context.Context, bundle *domain.CredentialBundle, cmd domain.ParsedCommand) string {
	kind, ok := cmd.MutationKind()
	if !ok {
		return unknownReply
	}

	// Sem alvo não há o que procurar na plataforma de anúncios.
	if strings.TrimSpace(cmd.EntityName) == "" {
		return unknownReply
	}

	campaign := s.findCampaign(ctx, bundle, cmd.EntityName)
	if campaign == nil {
		return fmt.Sprintf("Não encontrei nenhuma campanha parecida com \"%s\". Confira o nome e tente de novo.", cmd.EntityName)
	}

	newValue := 0.0
	if kind == domain.ActionIncreaseBudget || kind == domain.ActionDecreaseBudget {
		value, err := s.targetBudget(campaign, cmd)
		if err != nil {
			return err.Error()
		}
		newValue = value
	}

	action, err := s.pending.Create(ctx, bundle.TenantID, kind, campaign.ID, campaign.Name, newValue)
	if err != nil {
		logrus.WithError(err).WithField("tenant_id", bundle.TenantID).Error("commands: falha ao registrar ação pendente")
		return "Não consegui registrar o pedido agora. Tente de novo em instantes."
	}

	return s.confirmationPrompt(action)
}

func (s *Service) findCampaign(ctx context.Context, bundle *domain.CredentialBundle, name string) *adsdomain.Campaign {
	for _, accountID := range bundle.AdsAccountIDs {
		campaigns, err := s.reader.ListCampaignNames(ctx, accountID, bundle.AdsAccessToken)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"tenant_id":  bundle.TenantID,
				"account_id": accountID,
			}).Error("commands: falha ao listar campanhas para casamento de nome")
			continue
		}

		if match := matchCampaignName(campaigns, name); match != nil {
			return match
		}
	}

	return nil
}

// targetBudget resolve o orçamento diário alvo: valor absoluto é o alvo
// direto, percentual é aplicado sobre o orçamento atual da campanha.
func (s *Service) targetBudget(campaign *adsdomain.Campaign, cmd domain.ParsedCommand) (float64, error) {
	if !cmd.IsPercentage {
		if cmd.Amount <= 0 {
			return 0, fmt.Errorf("O valor de orçamento precisa ser maior que zero.")
		}
		return cmd.Amount, nil
	}

	currentCents, err := strconv.ParseFloat(campaign.DailyBudget, 64)
	if err != nil || currentCents <= 0 {
		return 0, fmt.Errorf("A campanha *%s* não tem orçamento diário próprio, então não consigo aplicar um ajuste percentual.", campaign.Name)
	}

	current := currentCents / 100
	factor := 1 + cmd.Amount/100
	if cmd.Action == domain.CommandDecreaseBudget {
		factor = 1 - cmd.Amount/100
	}

	if factor <= 0 {
		return 0, fmt.Errorf("Esse ajuste zeraria o orçamento de *%s*. Se a ideia é parar a campanha, peça para pausar.", campaign.Name)
	}

	return current * factor, nil
}

func (s *Service) confirmationPrompt(action *domain.PendingAction) string {
	minutes := int(domain.PendingActionTTL.Minutes())

	var what string
	switch action.Kind {
	case domain.ActionPause:
		what = fmt.Sprintf("Pausar a campanha *%s*", action.TargetName)
	case domain.ActionEnable:
		what = fmt.Sprintf("Reativar a campanha *%s*", action.TargetName)
	case domain.ActionIncreaseBudget:
		what = fmt.Sprintf("Aumentar o orçamento diário de *%s* para %.2f", action.TargetName, action.NewValue)
	case domain.ActionDecreaseBudget:
		what = fmt.Sprintf("Diminuir o orçamento diário de *%s* para %.2f", action.TargetName, action.NewValue)
	}

	return fmt.Sprintf("%s. Confirmar? Responda *sim* para executar ou *cancelar* para abortar (vale por %d minutos).", what, minutes)
}

func (s *Service) execute(ctx context.Context, bundle *domain.CredentialBundle, action *domain.PendingAction) adsdomain.MutationResult {
	switch action.Kind {
	case domain.ActionPause:
		return s.writer.SetStatus(ctx, adsdomain.LevelCampaign, action.TargetID, bundle.AdsAccessToken, adsdomain.StatusPaused)
	case domain.ActionEnable:
		return s.writer.SetStatus(ctx, adsdomain.LevelCampaign, action.TargetID, bundle.AdsAccessToken, adsdomain.StatusActive)
	case domain.ActionIncreaseBudget, domain.ActionDecreaseBudget:
		return s.writer.SetBudget(ctx, adsdomain.LevelCampaign, action.TargetID, bundle.AdsAccessToken, action.NewValue)
	default:
		return adsdomain.MutationResult{Success: false, Error: "tipo de ação desconhecido"}
	}
}

func (s *Service) successReply(action *domain.PendingAction) string {
	switch action.Kind {
	case domain.ActionPause:
		return fmt.Sprintf("Feito. A campanha *%s* foi pausada.", action.TargetName)
	case domain.ActionEnable:
		return fmt.Sprintf("Feito. A campanha *%s* foi reativada.", action.TargetName)
	default:
		return fmt.Sprintf("Feito. O orçamento diário de *%s* agora é %.2f.", action.TargetName, action.NewValue)
	}
}
