package commanding

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Tabo-ecom/Grandline-antigravity-sub003/internal/domain"
)

// stubGenerator devolve uma resposta fixa do serviço de geração de texto.
type stubGenerator struct {
	response string
	err      error
}

func (s *stubGenerator) Generate(_ context.Context, _, _ string) (string, error) {
	return s.response, s.err
}

func TestInterpret(t *testing.T) {
	tests := []struct {
		name     string
		response string
		err      error
		expected domain.ParsedCommand
	}{
		{
			name:     "JSON limpo vira comando",
			response: `{"action":"pause","entity_name":"Black Friday","confirmation_needed":true}`,
			expected: domain.ParsedCommand{
				Action:             domain.CommandPause,
				EntityName:         "Black Friday",
				ConfirmationNeeded: true,
			},
		},
		{
			name:     "JSON cercado de prosa é extraído",
			response: "Claro! Aqui está:\n```json\n{\"action\":\"status\",\"confirmation_needed\":false}\n```\nEspero ter ajudado.",
			expected: domain.ParsedCommand{Action: domain.CommandStatus},
		},
		{
			name:     "Orçamento percentual preserva valor e flag",
			response: `{"action":"increase_budget","entity_name":"Remarketing","amount":20,"is_percentage":true,"confirmation_needed":true}`,
			expected: domain.ParsedCommand{
				Action:             domain.CommandIncreaseBudget,
				EntityName:         "Remarketing",
				Amount:             20,
				IsPercentage:       true,
				ConfirmationNeeded: true,
			},
		},
		{
			name:     "Resposta sem JSON degrada para unknown",
			response: "Desculpe, não entendi a pergunta.",
			expected: domain.UnknownCommand(),
		},
		{
			name:     "JSON truncado degrada para unknown",
			response: `{"action":"pause","entity_name":"Black`,
			expected: domain.UnknownCommand(),
		},
		{
			name:     "Ação fora do vocabulário degrada para unknown",
			response: `{"action":"delete_account","confirmation_needed":true}`,
			expected: domain.UnknownCommand(),
		},
		{
			name:     "Erro do serviço degrada para unknown",
			response: "",
			err:      errors.New("quota excedida"),
			expected: domain.UnknownCommand(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			interpreter := NewInterpreter(&stubGenerator{response: tt.response, err: tt.err})
			cmd := interpreter.Interpret(context.Background(), "mensagem qualquer")
			assert.Equal(t, tt.expected, cmd)
		})
	}
}

func TestInterpret_NilGeneratorIsUnknown(t *testing.T) {
	interpreter := NewInterpreter(nil)
	cmd := interpreter.Interpret(context.Background(), "pausa tudo")
	assert.Equal(t, domain.UnknownCommand(), cmd)
}

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "Objeto puro",
			text:     `{"a":1}`,
			expected: `{"a":1}`,
		},
		{
			name:     "Objeto aninhado completo",
			text:     `prefixo {"a":{"b":2}} sufixo`,
			expected: `{"a":{"b":2}}`,
		},
		{
			name:     "Chaves dentro de string não fecham o objeto",
			text:     `{"texto":"uso de } aqui"}`,
			expected: `{"texto":"uso de } aqui"}`,
		},
		{
			name:     "Aspas escapadas dentro de string",
			text:     `{"texto":"cita \" e segue"}`,
			expected: `{"texto":"cita \" e segue"}`,
		},
		{
			name:     "Sem objeto",
			text:     "nenhum JSON por aqui",
			expected: "",
		},
		{
			name:     "Objeto nunca fechado",
			text:     `{"a":1`,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractJSONObject(tt.text))
		})
	}
}
