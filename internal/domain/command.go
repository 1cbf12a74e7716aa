package domain

// CommandAction enumera o vocabulário aceito do interpretador de comandos.
type CommandAction string

const (
	CommandPause          CommandAction = "pause"
	CommandEnable         CommandAction = "enable"
	CommandIncreaseBudget CommandAction = "increase_budget"
	CommandDecreaseBudget CommandAction = "decrease_budget"
	CommandStatus         CommandAction = "status"
	CommandUnknown        CommandAction = "unknown"
)

// ParsedCommand é a saída estruturada do interpretador. Valor transitório:
// nunca persistido diretamente, apenas semeia uma PendingAction ou é
// executado na hora no caso de status.
type ParsedCommand struct {
	Action CommandAction `json:"action"`
	// EntityName é o nome livre da campanha citada na mensagem, quando há.
	EntityName string `json:"entity_name,omitempty"`
	// Amount é o valor numérico de mutações de orçamento.
	Amount float64 `json:"amount,omitempty"`
	// IsPercentage distingue "aumenta 20%" de "aumenta para 20 reais".
	IsPercentage       bool `json:"is_percentage,omitempty"`
	ConfirmationNeeded bool `json:"confirmation_needed"`
}

// UnknownCommand é o fallback seguro para qualquer falha de interpretação.
func UnknownCommand() ParsedCommand {
	return ParsedCommand{
		Action:             CommandUnknown,
		ConfirmationNeeded: false,
	}
}

// MutationKind traduz a ação do comando para o tipo de mutação pendente.
// Só é válido para ações que exigem confirmação.
func (c ParsedCommand) MutationKind() (ActionKind, bool) {
	switch c.Action {
	case CommandPause:
		return ActionPause, true
	case CommandEnable:
		return ActionEnable, true
	case CommandIncreaseBudget:
		return ActionIncreaseBudget, true
	case CommandDecreaseBudget:
		return ActionDecreaseBudget, true
	default:
		return "", false
	}
}
