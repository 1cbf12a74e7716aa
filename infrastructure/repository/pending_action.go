package repository

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Tabo-ecom/Grandline-antigravity-sub003/infrastructure/docstore"
	"github.com/Tabo-ecom/Grandline-antigravity-sub003/internal/domain"
	"github.com/Tabo-ecom/Grandline-antigravity-sub003/pkg/utils"
)

const pendingActionsCollection = "pending_actions"

// PendingActionStore mantém a única mutação não confirmada de cada tenant.
// Máquina de estados por tenant: vazio -> pendente -> {confirmado,
// cancelado, expirado}, sempre colapsando de volta para vazio.
type PendingActionStore interface {
	// Create grava a ação pendente, sobrescrevendo qualquer anterior.
	Create(ctx context.Context, tenantID string, kind domain.ActionKind, targetID, targetName string, newValue float64) (*domain.PendingAction, error)
	// Read devolve a ação somente se ainda não expirou. Ação expirada é
	// tratada como ausente e removida preguiçosamente, mas a correção não
	// depende dessa limpeza acontecer.
	Read(ctx context.Context, tenantID string) (*domain.PendingAction, error)
	// Clear transiciona explicitamente para vazio.
	Clear(ctx context.Context, tenantID string) error
}

type pendingActionStore struct {
	store docstore.Store
	ttl   time.Duration
	now   func() time.Time
}

func NewPendingActionStore(store docstore.Store) PendingActionStore {
	return &pendingActionStore{
		store: store,
		ttl:   domain.PendingActionTTL,
		now:   time.Now,
	}
}

// NewPendingActionStoreWithClock permite TTL e relógio injetáveis em testes.
func NewPendingActionStoreWithClock(store docstore.Store, ttl time.Duration, now func() time.Time) PendingActionStore {
	return &pendingActionStore{
		store: store,
		ttl:   ttl,
		now:   now,
	}
}

func (s *pendingActionStore) Create(ctx context.Context, tenantID string, kind domain.ActionKind, targetID, targetName string, newValue float64) (*domain.PendingAction, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar id da ação pendente")
	}

	now := s.now()
	action := &domain.PendingAction{
		ID:         id,
		TenantID:   tenantID,
		Kind:       kind,
		TargetID:   targetID,
		TargetName: targetName,
		NewValue:   newValue,
		CreatedAt:  now,
		ExpiresAt:  now.Add(s.ttl),
	}

	// Sobrescrita intencional: a última ordem vence, não há fila de
	// confirmações simultâneas por tenant.
	if err := s.store.Set(ctx, pendingActionsCollection, tenantID, action, false); err != nil {
		return nil, errors.Wrap(err, "erro ao gravar ação pendente")
	}

	logrus.WithFields(logrus.Fields{
		"tenant_id": tenantID,
		"action_id": action.ID,
		"kind":      string(kind),
	}).Info("pending: ação pendente criada")

	return action, nil
}

func (s *pendingActionStore) Read(ctx context.Context, tenantID string) (*domain.PendingAction, error) {
	action := &domain.PendingAction{}

	found, err := s.store.Get(ctx, pendingActionsCollection, tenantID, action)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler ação pendente")
	}
	if !found {
		return nil, nil
	}

	if action.Expired(s.now()) {
		if err := s.Clear(ctx, tenantID); err != nil {
			logrus.WithField("tenant_id", tenantID).Warn("pending: falha ao limpar ação expirada")
		}
		return nil, nil
	}

	return action, nil
}

func (s *pendingActionStore) Clear(ctx context.Context, tenantID string) error {
	return errors.Wrap(
		s.store.Delete(ctx, pendingActionsCollection, tenantID),
		"erro ao limpar ação pendente",
	)
}
