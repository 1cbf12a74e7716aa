package domain

import "time"

// ActionKind enumera as mutações que exigem confirmação humana.
type ActionKind string

const (
	ActionPause          ActionKind = "pause"
	ActionEnable         ActionKind = "enable"
	ActionIncreaseBudget ActionKind = "increase_budget"
	ActionDecreaseBudget ActionKind = "decrease_budget"
)

// PendingActionTTL limita a vida de uma confirmação: curto o bastante para
// conter o estrago de uma confirmação velha, longo o bastante para um humano
// ler e responder.
const PendingActionTTL = 5 * time.Minute

// PendingAction é a mutação não confirmada de um tenant. Existe no máximo
// uma por tenant; um comando novo sobrescreve a anterior (a última ordem
// vence, sem fila).
type PendingAction struct {
	ID         string     `json:"id"`
	TenantID   string     `json:"tenant_id"`
	Kind       ActionKind `json:"kind"`
	TargetID   string     `json:"target_id"`
	TargetName string     `json:"target_name"`
	// NewValue é o valor alvo para mutações de orçamento, na moeda da conta.
	NewValue  float64   `json:"new_value"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired indica se a ação já passou da validade. Leituras após ExpiresAt
// equivalem a ausência de ação pendente.
func (p *PendingAction) Expired(now time.Time) bool {
	return now.After(p.ExpiresAt)
}
