package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Tabo-ecom/Grandline-antigravity-sub003/infrastructure/database/postgres"
	"github.com/Tabo-ecom/Grandline-antigravity-sub003/infrastructure/docstore"
	"github.com/Tabo-ecom/Grandline-antigravity-sub003/infrastructure/integrator/ads"
	"github.com/Tabo-ecom/Grandline-antigravity-sub003/infrastructure/integrator/ads/adsclient"
	"github.com/Tabo-ecom/Grandline-antigravity-sub003/infrastructure/integrator/textgen"
	"github.com/Tabo-ecom/Grandline-antigravity-sub003/infrastructure/notifier"
	"github.com/Tabo-ecom/Grandline-antigravity-sub003/infrastructure/repository"
	"github.com/Tabo-ecom/Grandline-antigravity-sub003/internal/api"
	"github.com/Tabo-ecom/Grandline-antigravity-sub003/internal/config"
	"github.com/Tabo-ecom/Grandline-antigravity-sub003/internal/scheduler/tick"
	"github.com/Tabo-ecom/Grandline-antigravity-sub003/internal/usecases/authenticating"
	"github.com/Tabo-ecom/Grandline-antigravity-sub003/internal/usecases/commanding"
	"github.com/Tabo-ecom/Grandline-antigravity-sub003/internal/usecases/dispatching"
	"github.com/Tabo-ecom/Grandline-antigravity-sub003/internal/usecases/reporting"
	"github.com/Tabo-ecom/Grandline-antigravity-sub003/pkg/vault"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	store := docstore.NewPostgresStore(pgConn)
	if err := store.EnsureSchema(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao preparar o esquema de documentos")
	}

	secretVault, err := vault.New(cfg.Vault.EncryptionKey)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar o vault de segredos")
	}

	tenantRepo := repository.NewTenantSettingsRepository(store, secretVault)
	pendingActions := repository.NewPendingActionStore(store)

	adsClient := adsclient.NewClient(cfg)
	adsIntegrator := ads.New(cfg, adsClient)

	textgenClient, err := textgen.NewClient(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar o cliente de geração de texto")
	}

	dispatcher := notifier.NewDispatcher()
	reporter := reporting.NewService(textgenClient)

	authenticator := authenticating.NewService(cfg)

	dispatchService := dispatching.NewService(cfg, tenantRepo, adsIntegrator, dispatcher, reporter)

	interpreter := commanding.NewInterpreter(textgenClient)
	commandService := commanding.NewService(
		cfg,
		tenantRepo,
		pendingActions,
		adsIntegrator,
		adsIntegrator,
		interpreter,
		reporter,
	)

	dispatchTick := tick.NewDispatchTickService(dispatchService, cfg)

	// Inicia o agendador em background
	if err := dispatchTick.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de despacho")
	} else {
		logrus.Info("Agendador de despacho iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		authenticator,
		commandService,
		dispatchTick,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
