package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/performance-dashboard-api/infrastructure/integrator/sheets"
	"github.com/vfg2006/performance-dashboard-api/infrastructure/integrator/sheets/sheetsclient"
	"github.com/vfg2006/performance-dashboard-api/internal/api"
	"github.com/vfg2006/performance-dashboard-api/internal/config"
	"github.com/vfg2006/performance-dashboard-api/internal/scheduler"
	"github.com/vfg2006/performance-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/performance-dashboard-api/internal/usecases/normalizing"
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

	sheetsClient := sheetsclient.NewClient(cfg)
	sheetsIntegrator := sheets.New(cfg, sheetsClient)

	normalizer := normalizing.NewService(cfg)

	dashboardService := dashboarding.NewService(cfg, sheetsIntegrator, normalizer)

	// Primeira carga dos feeds. Falha aqui não derruba a aplicação: o
	// agendador e a rota de recarga manual podem completar depois.
	if err := dashboardService.Reload(ctx); err != nil {
		logrus.WithError(err).Warn("Falha na carga inicial dos feeds, servindo sem dados até a próxima recarga")
	}

	feedRefreshService := scheduler.NewFeedRefreshService(dashboardService, cfg)

	if err := feedRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recarga dos feeds")
	} else {
		logrus.Info("Agendador de recarga dos feeds iniciado com sucesso")
	}

	server, err := api.New(cfg, dashboardService, feedRefreshService)
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
