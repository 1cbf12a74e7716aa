package adsdomain

// Campaign identifica uma campanha ativa da conta.
type Campaign struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
	// DailyBudget vem da API em centavos, como string.
	DailyBudget string `json:"daily_budget,omitempty"`
}

// EntityLevel distingue mutações em campanha e em conjunto de anúncios.
type EntityLevel string

const (
	LevelCampaign EntityLevel = "campaign"
	LevelAdSet    EntityLevel = "adset"
)

// Status aceitos pelas mutações de entidade.
const (
	StatusActive = "ACTIVE"
	StatusPaused = "PAUSED"
)

// MutationResult é o resultado uniforme das mutações: falhas viram string
// reportável, nunca atravessam a borda como panic ou erro não tratado.
type MutationResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
