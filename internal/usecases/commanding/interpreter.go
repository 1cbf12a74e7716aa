package commanding

import (
	"context"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/Tabo-ecom/Grandline-antigravity-sub003/infrastructure/integrator/textgen"
	"github.com/Tabo-ecom/Grandline-antigravity-sub003/internal/domain"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

const interpreterInstruction = `Você interpreta mensagens de lojistas sobre campanhas de anúncios e responde
SOMENTE com um objeto JSON, sem texto ao redor, no formato:
{"action":"pause|enable|increase_budget|decrease_budget|status|unknown","entity_name":"nome da campanha citada","amount":0,"is_percentage":false,"confirmation_needed":true}
Regras:
- "pausa a campanha X" => action pause, entity_name X, confirmation_needed true
- "reativa/liga a campanha X" => action enable, confirmation_needed true
- "aumenta o orçamento de X em 20%" => increase_budget, amount 20, is_percentage true, confirmation_needed true
- "diminui o orçamento de X para 50" => decrease_budget, amount 50, is_percentage false, confirmation_needed true
- "como estão as campanhas?" ou pedido de números => status, confirmation_needed false
- qualquer outra coisa => unknown
Nunca invente nome de campanha que não foi citado.`

// Interpreter traduz linguagem natural no vocabulário fechado de comandos.
// Qualquer falha — serviço indisponível, resposta sem JSON, ação fora do
// vocabulário — degrada para o comando unknown, nunca para erro.
type Interpreter struct {
	generator textgen.Generator
}

func NewInterpreter(generator textgen.Generator) *Interpreter {
	return &Interpreter{generator: generator}
}

func (i *Interpreter) Interpret(ctx context.Context, message string) domain.ParsedCommand {
	if i.generator == nil {
		return domain.UnknownCommand()
	}

	raw, err := i.generator.Generate(ctx, interpreterInstruction, message)
	if err != nil {
		if err != textgen.ErrNotConfigured {
			logrus.WithError(err).Warn("commands: interpretação falhou, tratando como comando desconhecido")
		}
		return domain.UnknownCommand()
	}

	payload := extractJSONObject(raw)
	if payload == "" {
		logrus.WithField("response", truncateForLog(raw)).Warn("commands: resposta do interpretador sem objeto JSON")
		return domain.UnknownCommand()
	}

	var cmd domain.ParsedCommand
	if err := jsonAPI.UnmarshalFromString(payload, &cmd); err != nil {
		logrus.WithError(err).Warn("commands: objeto JSON do interpretador inválido")
		return domain.UnknownCommand()
	}

	switch cmd.Action {
	case domain.CommandPause, domain.CommandEnable,
		domain.CommandIncreaseBudget, domain.CommandDecreaseBudget,
		domain.CommandStatus:
		return cmd
	default:
		return domain.UnknownCommand()
	}
}

// extractJSONObject devolve o primeiro objeto JSON balanceado do texto, ou
// vazio. Modelos de linguagem às vezes cercam o JSON com prosa ou cercas de
// código; o contrato aqui é extrair, não validar.
func extractJSONObject(text string) string {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		c := text[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1]
			}
		}
	}

	return ""
}

func truncateForLog(s string) string {
	if len(s) > 200 {
		return s[:200] + "..."
	}
	return s
}
