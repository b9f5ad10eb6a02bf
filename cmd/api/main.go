package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/PietrangeloArdis/ArredissimAIM-sub000/infrastructure/database/postgres"
	"github.com/PietrangeloArdis/ArredissimAIM-sub000/infrastructure/repository"
	"github.com/PietrangeloArdis/ArredissimAIM-sub000/internal/api"
	"github.com/PietrangeloArdis/ArredissimAIM-sub000/internal/config"
	"github.com/PietrangeloArdis/ArredissimAIM-sub000/internal/scheduler"
	"github.com/PietrangeloArdis/ArredissimAIM-sub000/internal/usecases/authenticating"
	"github.com/PietrangeloArdis/ArredissimAIM-sub000/internal/usecases/campaigning"
	"github.com/PietrangeloArdis/ArredissimAIM-sub000/internal/usecases/reporting"
	"github.com/sirupsen/logrus"
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

	campaignRepo := repository.NewCampaignRepository(pgConn)
	referenceRepo := repository.NewReferenceRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	campaignService := campaigning.NewService(campaignRepo, cfg)
	reportingService := reporting.NewService(campaignRepo)

	// Inicializa o agendador de varredura de status das campanhas
	statusRefreshService := scheduler.NewStatusRefreshService(campaignRepo, cfg)

	if err := statusRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de varredura de status")
	} else {
		logrus.Info("Agendador de varredura de status iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		campaignService,
		reportingService,
		referenceRepo,
		authenticator,
		statusRefreshService,
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
