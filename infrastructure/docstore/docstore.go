// Package docstore define o contrato de armazenamento de documentos usado
// pelo núcleo. O serviço o trata como um repositório chave-valor
// eventualmente disponível e nunca assume transações entre documentos.
package docstore

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
)

// Op é o operador de comparação aceito em consultas.
type Op string

const OpEqual Op = "=="

// ErrUnsupportedOp indica um operador de consulta fora do contrato.
var ErrUnsupportedOp = errors.New("docstore: operador de consulta não suportado")

// Document é um documento bruto devolvido por consultas.
type Document struct {
	ID   string
	Data json.RawMessage
}

// Decode desserializa o documento no destino.
func (d Document) Decode(out interface{}) error {
	return json.Unmarshal(d.Data, out)
}

// Store é o contrato mínimo de documento: leitura pontual, escrita com ou
// sem merge, consulta por campo e remoção.
type Store interface {
	// Get carrega o documento em out e indica se ele existe.
	Get(ctx context.Context, collection, id string, out interface{}) (bool, error)
	// Set grava o documento. Com merge=true, campos já gravados e ausentes
	// do novo valor são preservados.
	Set(ctx context.Context, collection, id string, value interface{}, merge bool) error
	// Query devolve os documentos cujo campo satisfaz o operador.
	Query(ctx context.Context, collection, field string, op Op, value string) ([]Document, error)
	// List devolve todos os documentos da coleção.
	List(ctx context.Context, collection string) ([]Document, error)
	// Delete remove o documento; remover um documento ausente não é erro.
	Delete(ctx context.Context, collection, id string) error
}
