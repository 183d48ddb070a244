package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/healthcard-api/infrastructure/database/postgres"
	"github.com/vfg2006/healthcard-api/infrastructure/integrator/googleads"
	"github.com/vfg2006/healthcard-api/infrastructure/integrator/googleads/gadsclient"
	"github.com/vfg2006/healthcard-api/infrastructure/integrator/meta"
	"github.com/vfg2006/healthcard-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/healthcard-api/infrastructure/repository"
	"github.com/vfg2006/healthcard-api/internal/api"
	"github.com/vfg2006/healthcard-api/internal/config"
	"github.com/vfg2006/healthcard-api/internal/scheduler"
	"github.com/vfg2006/healthcard-api/internal/usecases/account"
	"github.com/vfg2006/healthcard-api/internal/usecases/authenticating"
	"github.com/vfg2006/healthcard-api/internal/usecases/exporting"
	"github.com/vfg2006/healthcard-api/internal/usecases/healthchecking"
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
	reportRepo := repository.NewReportRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, accountRepo, cfg)

	tokenPool, err := metaclient.NewTokenPool(cfg.Meta.AccessTokens, cfg.Meta.RateLimitCooldown)
	if err != nil {
		logrus.Fatal(err)
	}

	metaClient := metaclient.NewClient(cfg, tokenPool)
	metaIntegrator := meta.New(cfg, metaClient)

	googleClient := gadsclient.NewClient(cfg)
	googleIntegrator := googleads.New(cfg, googleClient)

	accountService := account.NewService(accountRepo, metaIntegrator, googleIntegrator)

	// Inicializa o serviço de relatórios com suporte a cache
	healthService := healthchecking.NewService(cfg, metaIntegrator, googleIntegrator, accountRepo).
		WithCache(reportRepo)

	exportService := exporting.NewService()

	// Inicializa o agendador de sincronização de relatórios
	reportSyncService := scheduler.NewReportSyncService(
		reportRepo,
		healthService,
		cfg,
	)

	// Inicia o agendador em background
	if err := reportSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de relatórios")
	} else {
		logrus.Info("Agendador de sincronização de relatórios iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		healthService,
		exportService,
		accountService,
		authenticator,
		reportSyncService,
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
