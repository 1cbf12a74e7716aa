package docstore

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
)

// MemoryStore é uma implementação em memória do contrato, usada em testes e
// em execução local sem banco.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]map[string]json.RawMessage
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]map[string]json.RawMessage),
	}
}

func (s *MemoryStore) Get(_ context.Context, collection, id string, out interface{}) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	col, ok := s.data[collection]
	if !ok {
		return false, nil
	}

	raw, ok := col[id]
	if !ok {
		return false, nil
	}

	return true, json.Unmarshal(raw, out)
}

func (s *MemoryStore) Set(_ context.Context, collection, id string, value interface{}, merge bool) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	col, ok := s.data[collection]
	if !ok {
		col = make(map[string]json.RawMessage)
		s.data[collection] = col
	}

	if merge {
		if existing, ok := col[id]; ok {
			merged, err := mergeJSON(existing, data)
			if err != nil {
				return err
			}
			col[id] = merged
			return nil
		}
	}

	col[id] = data
	return nil
}

func (s *MemoryStore) Query(_ context.Context, collection, field string, op Op, value string) ([]Document, error) {
	if op != OpEqual {
		return nil, ErrUnsupportedOp
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var docs []Document
	for id, raw := range s.data[collection] {
		var fields map[string]interface{}
		if err := json.Unmarshal(raw, &fields); err != nil {
			continue
		}

		if str, ok := fields[field].(string); ok && str == value {
			docs = append(docs, Document{ID: id, Data: raw})
		}
	}

	sortDocuments(docs)
	return docs, nil
}

func (s *MemoryStore) List(_ context.Context, collection string) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var docs []Document
	for id, raw := range s.data[collection] {
		docs = append(docs, Document{ID: id, Data: raw})
	}

	sortDocuments(docs)
	return docs, nil
}

func (s *MemoryStore) Delete(_ context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if col, ok := s.data[collection]; ok {
		delete(col, id)
	}

	return nil
}

// mergeJSON faz merge raso no nível do documento, espelhando o
// comportamento do upsert JSONB do postgres.
func mergeJSON(existing, incoming json.RawMessage) (json.RawMessage, error) {
	var base, overlay map[string]json.RawMessage

	if err := json.Unmarshal(existing, &base); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(incoming, &overlay); err != nil {
		return nil, err
	}

	for k, v := range overlay {
		base[k] = v
	}

	return json.Marshal(base)
}

func sortDocuments(docs []Document) {
	sort.Slice(docs, func(i, j int) bool {
		return docs[i].ID < docs[j].ID
	})
}
