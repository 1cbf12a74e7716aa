package docstore

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/Tabo-ecom/Grandline-antigravity-sub003/infrastructure/database/postgres"
)

const documentsTable = "documents"

// PostgresStore implementa Store sobre uma tabela JSONB única
// (collection, id, data). O merge usa concatenação JSONB no upsert, o que
// mantém a semântica last-writer-wins por documento.
type PostgresStore struct {
	conn *postgres.Connection
}

func NewPostgresStore(conn *postgres.Connection) *PostgresStore {
	return &PostgresStore{conn: conn}
}

// EnsureSchema cria a tabela de documentos quando ela não existe.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.conn.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS documents (
			collection TEXT NOT NULL,
			id         TEXT NOT NULL,
			data       JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			PRIMARY KEY (collection, id)
		)`)
	return errors.Wrap(err, "docstore: erro ao criar tabela de documentos")
}

func (s *PostgresStore) Get(ctx context.Context, collection, id string, out interface{}) (bool, error) {
	query, args, err := squirrel.
		Select("data").
		From(documentsTable).
		Where(squirrel.Eq{"collection": collection, "id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, err
	}

	var data []byte
	if err := s.conn.QueryRow(ctx, query, args...).Scan(&data); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, errors.Wrap(err, "docstore: erro ao buscar documento")
	}

	if err := json.Unmarshal(data, out); err != nil {
		return false, errors.Wrap(err, "docstore: documento com JSON inválido")
	}

	return true, nil
}

func (s *PostgresStore) Set(ctx context.Context, collection, id string, value interface{}, merge bool) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrap(err, "docstore: erro ao serializar documento")
	}

	onConflict := "ON CONFLICT (collection, id) DO UPDATE SET data = EXCLUDED.data, updated_at = now()"
	if merge {
		onConflict = "ON CONFLICT (collection, id) DO UPDATE SET data = documents.data || EXCLUDED.data, updated_at = now()"
	}

	query, args, err := squirrel.
		Insert(documentsTable).
		Columns("collection", "id", "data").
		Values(collection, id, data).
		Suffix(onConflict).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = s.conn.Exec(ctx, query, args...)
	return errors.Wrap(err, "docstore: erro ao gravar documento")
}

func (s *PostgresStore) Query(ctx context.Context, collection, field string, op Op, value string) ([]Document, error) {
	if op != OpEqual {
		return nil, ErrUnsupportedOp
	}

	query, args, err := squirrel.
		Select("id", "data").
		From(documentsTable).
		Where(squirrel.Eq{"collection": collection}).
		Where(squirrel.Expr("data->>? = ?", field, value)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	return s.queryDocuments(ctx, query, args...)
}

func (s *PostgresStore) List(ctx context.Context, collection string) ([]Document, error) {
	query, args, err := squirrel.
		Select("id", "data").
		From(documentsTable).
		Where(squirrel.Eq{"collection": collection}).
		OrderBy("id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	return s.queryDocuments(ctx, query, args...)
}

func (s *PostgresStore) Delete(ctx context.Context, collection, id string) error {
	query, args, err := squirrel.
		Delete(documentsTable).
		Where(squirrel.Eq{"collection": collection, "id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = s.conn.Exec(ctx, query, args...)
	return errors.Wrap(err, "docstore: erro ao remover documento")
}

func (s *PostgresStore) queryDocuments(ctx context.Context, query string, args ...interface{}) ([]Document, error) {
	rows, err := s.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "docstore: erro ao consultar documentos")
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var doc Document
		var data []byte
		if err := rows.Scan(&doc.ID, &data); err != nil {
			return nil, err
		}
		doc.Data = json.RawMessage(data)
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}
