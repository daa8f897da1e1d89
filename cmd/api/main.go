package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cognitive-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/cognitive-insights-api/infrastructure/integrator/analytics"
	"github.com/vfg2006/cognitive-insights-api/infrastructure/integrator/analytics/analyticsclient"
	"github.com/vfg2006/cognitive-insights-api/infrastructure/integrator/commerce"
	"github.com/vfg2006/cognitive-insights-api/infrastructure/integrator/commerce/commerceclient"
	"github.com/vfg2006/cognitive-insights-api/infrastructure/integrator/meta"
	"github.com/vfg2006/cognitive-insights-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/cognitive-insights-api/infrastructure/repository"
	"github.com/vfg2006/cognitive-insights-api/internal/api"
	"github.com/vfg2006/cognitive-insights-api/internal/config"
	"github.com/vfg2006/cognitive-insights-api/internal/scheduler"
	"github.com/vfg2006/cognitive-insights-api/internal/usecases/account"
	"github.com/vfg2006/cognitive-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/cognitive-insights-api/internal/usecases/cognition"
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

	accountRepo := repository.NewAccountRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)
	snapshotRepo := repository.NewCognitiveSnapshotRepository(pgConn)
	planningRepo := repository.NewPlanningTargetRepository(pgConn)
	findingActionRepo := repository.NewFindingActionRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, accountRepo, cfg)

	renderClient := config.NewRenderClient(cfg)

	tokenManager := metaclient.NewTokenManager(cfg, renderClient)
	go tokenManager.StartAutoRefresh()
	defer tokenManager.StopAutoRefresh()

	metaClient := metaclient.NewClient(cfg, tokenManager)
	metaIntegrator := meta.New(cfg, metaClient)

	commerceClient := commerceclient.NewClient(cfg)
	commerceIntegrator := commerce.New(cfg, commerceClient)

	analyticsClient := analyticsclient.NewClient(cfg)
	analyticsIntegrator := analytics.New(cfg, analyticsClient)

	accountService := account.NewService(accountRepo, metaIntegrator, renderClient, commerceIntegrator, cfg)

	// Inicializa o serviço cognitivo com suporte a cache de snapshots
	cognitiveService := cognition.NewService(
		cfg,
		metaIntegrator,
		analyticsIntegrator,
		commerceIntegrator,
		accountRepo,
		planningRepo,
	).WithCache(snapshotRepo)

	// Inicializa o agendador de pré-cálculo de snapshots cognitivos
	snapshotSyncService := scheduler.NewSnapshotSyncService(
		accountRepo,
		cognitiveService,
		cfg,
	)

	if err := snapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshots cognitivos")
	} else {
		logrus.Info("Agendador de snapshots cognitivos iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		cognitiveService,
		accountService,
		authenticator,
		findingActionRepo,
		planningRepo,
		snapshotSyncService,
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
