// Package textgen encapsula o serviço externo de geração de texto atrás de
// um contrato estreito de instrução + entrada -> texto livre. Quem consome
// nunca assume que a resposta é JSON limpo.
package textgen

import (
	"context"

	"github.com/pkg/errors"
	"google.golang.org/genai"

	"github.com/Tabo-ecom/Grandline-antigravity-sub003/internal/config"
)

// ErrNotConfigured indica ausência de chave de API: quem chama degrada para
// o comportamento de fallback em vez de falhar.
var ErrNotConfigured = errors.New("textgen: serviço de geração de texto não configurado")

// Generator é o contrato consumido pelo interpretador de comandos e pela
// geração de prosa de relatórios.
type Generator interface {
	Generate(ctx context.Context, instruction, input string) (string, error)
}

type Client struct {
	cfg    *config.Config
	client *genai.Client
}

// NewClient cria o cliente. Sem chave configurada o cliente existe mas toda
// chamada devolve ErrNotConfigured.
func NewClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	c := &Client{cfg: cfg}

	if cfg.TextGen.APIKey == "" {
		return c, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.TextGen.APIKey,
	})
	if err != nil {
		return nil, errors.Wrap(err, "textgen: erro ao criar cliente")
	}

	c.client = client
	return c, nil
}

// Generate envia a instrução de sistema e o texto do usuário e devolve a
// resposta em texto livre.
func (c *Client) Generate(ctx context.Context, instruction, input string) (string, error) {
	if c.client == nil {
		return "", ErrNotConfigured
	}

	result, err := c.client.Models.GenerateContent(ctx,
		c.cfg.TextGen.Model,
		genai.Text(input),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(instruction, genai.RoleUser),
			Temperature:       genai.Ptr[float32](0),
		},
	)
	if err != nil {
		return "", errors.Wrap(err, "textgen: erro na geração de texto")
	}

	return result.Text(), nil
}
