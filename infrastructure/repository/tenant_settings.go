package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Tabo-ecom/Grandline-antigravity-sub003/infrastructure/docstore"
	"github.com/Tabo-ecom/Grandline-antigravity-sub003/internal/domain"
	"github.com/Tabo-ecom/Grandline-antigravity-sub003/pkg/vault"
)

const (
	scheduleConfigsCollection   = "schedule_configs"
	credentialBundlesCollection = "credential_bundles"
)

// TenantSettingsRepository expõe as configurações por tenant: agendamento e
// credenciais. As credenciais passam pelo vault na gravação e na leitura.
type TenantSettingsRepository interface {
	ListScheduleConfigs(ctx context.Context) ([]*domain.ScheduleConfig, error)
	GetScheduleConfig(ctx context.Context, tenantID string) (*domain.ScheduleConfig, error)
	// UpdateSyncLastRun avança o marcador de última sincronização. Chamado
	// pelo orquestrador somente após um ciclo bem-sucedido.
	UpdateSyncLastRun(ctx context.Context, tenantID string, ranAt time.Time) error

	GetCredentialBundle(ctx context.Context, tenantID string) (*domain.CredentialBundle, error)
	SaveCredentialBundle(ctx context.Context, bundle *domain.CredentialBundle) error

	// FindTenantByChannel resolve o tenant dono de um canal de chat.
	// Varredura linear sobre os bundles: aceitável na escala atual, trocar
	// por índice reverso canal->tenant se a base crescer.
	FindTenantByChannel(ctx context.Context, channelID string) (*domain.CredentialBundle, error)
}

type tenantSettingsRepository struct {
	store docstore.Store
	vault *vault.Vault
}

func NewTenantSettingsRepository(store docstore.Store, v *vault.Vault) TenantSettingsRepository {
	return &tenantSettingsRepository{
		store: store,
		vault: v,
	}
}

func (r *tenantSettingsRepository) ListScheduleConfigs(ctx context.Context) ([]*domain.ScheduleConfig, error) {
	docs, err := r.store.List(ctx, scheduleConfigsCollection)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar configurações de agendamento")
	}

	configs := make([]*domain.ScheduleConfig, 0, len(docs))
	for _, doc := range docs {
		cfg := &domain.ScheduleConfig{}
		if err := doc.Decode(cfg); err != nil {
			logrus.WithFields(logrus.Fields{
				"tenant_id": doc.ID,
				"error":     err.Error(),
			}).Warn("settings: documento de agendamento inválido, pulando tenant")
			continue
		}

		if cfg.TenantID == "" {
			cfg.TenantID = doc.ID
		}

		configs = append(configs, cfg)
	}

	return configs, nil
}

func (r *tenantSettingsRepository) GetScheduleConfig(ctx context.Context, tenantID string) (*domain.ScheduleConfig, error) {
	cfg := &domain.ScheduleConfig{}

	found, err := r.store.Get(ctx, scheduleConfigsCollection, tenantID, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar configuração de agendamento")
	}
	if !found {
		return nil, nil
	}

	if cfg.TenantID == "" {
		cfg.TenantID = tenantID
	}

	return cfg, nil
}

func (r *tenantSettingsRepository) UpdateSyncLastRun(ctx context.Context, tenantID string, ranAt time.Time) error {
	cfg, err := r.GetScheduleConfig(ctx, tenantID)
	if err != nil {
		return err
	}
	if cfg == nil {
		return errors.Errorf("tenant %s sem configuração de agendamento", tenantID)
	}

	// O merge do docstore é raso: performance_sync é regravado inteiro para
	// não perder os demais campos do objeto.
	cfg.PerformanceSync.LastRunAt = &ranAt
	patch := map[string]interface{}{
		"performance_sync": cfg.PerformanceSync,
	}

	return errors.Wrap(
		r.store.Set(ctx, scheduleConfigsCollection, tenantID, patch, true),
		"erro ao atualizar last_run_at da sincronização",
	)
}

func (r *tenantSettingsRepository) GetCredentialBundle(ctx context.Context, tenantID string) (*domain.CredentialBundle, error) {
	var raw map[string]json.RawMessage

	found, err := r.store.Get(ctx, credentialBundlesCollection, tenantID, &raw)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar credenciais do tenant")
	}
	if !found {
		return nil, nil
	}

	bundle, err := r.decodeBundle(tenantID, raw)
	if err != nil {
		return nil, err
	}

	return bundle, nil
}

func (r *tenantSettingsRepository) SaveCredentialBundle(ctx context.Context, bundle *domain.CredentialBundle) error {
	data, err := json.Marshal(bundle)
	if err != nil {
		return errors.Wrap(err, "erro ao serializar credenciais")
	}

	fields := stringFields(data)

	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	r.vault.EncryptFields(fields, domain.SensitiveCredentialFields)
	for _, field := range domain.SensitiveCredentialFields {
		if value, ok := fields[field]; ok {
			doc[field] = value
		}
	}

	return errors.Wrap(
		r.store.Set(ctx, credentialBundlesCollection, bundle.TenantID, doc, false),
		"erro ao gravar credenciais do tenant",
	)
}

func (r *tenantSettingsRepository) FindTenantByChannel(ctx context.Context, channelID string) (*domain.CredentialBundle, error) {
	docs, err := r.store.List(ctx, credentialBundlesCollection)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar credenciais para resolução de canal")
	}

	for _, doc := range docs {
		var raw map[string]json.RawMessage
		if err := json.Unmarshal(doc.Data, &raw); err != nil {
			continue
		}

		bundle, err := r.decodeBundle(doc.ID, raw)
		if err != nil {
			logrus.WithField("tenant_id", doc.ID).Warn("settings: bundle de credenciais inválido durante resolução de canal")
			continue
		}

		if bundle.SlackChannelID == channelID {
			return bundle, nil
		}
	}

	return nil, nil
}

// decodeBundle decifra os campos sensíveis e remonta o bundle tipado.
func (r *tenantSettingsRepository) decodeBundle(tenantID string, raw map[string]json.RawMessage) (*domain.CredentialBundle, error) {
	fields := map[string]string{}
	for _, field := range domain.SensitiveCredentialFields {
		if rawValue, ok := raw[field]; ok {
			var s string
			if err := json.Unmarshal(rawValue, &s); err == nil {
				fields[field] = s
			}
		}
	}

	r.vault.DecryptFields(fields, domain.SensitiveCredentialFields)

	for field, value := range fields {
		encoded, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		raw[field] = encoded
	}

	merged, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}

	bundle := &domain.CredentialBundle{}
	if err := json.Unmarshal(merged, bundle); err != nil {
		return nil, errors.Wrap(err, "erro ao desserializar credenciais")
	}

	if bundle.TenantID == "" {
		bundle.TenantID = tenantID
	}

	return bundle, nil
}

// stringFields extrai os campos string de primeiro nível do documento.
func stringFields(data []byte) map[string]string {
	out := map[string]string{}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return out
	}

	for k, v := range raw {
		var s string
		if err := json.Unmarshal(v, &s); err == nil {
			out[k] = s
		}
	}

	return out
}
