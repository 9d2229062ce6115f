package app

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/Egor213/DQMeta/internal/config"
	httpv1 "github.com/Egor213/DQMeta/internal/controller/http/v1"
	"github.com/Egor213/DQMeta/internal/metrics"
	"github.com/Egor213/DQMeta/internal/repo"
	"github.com/Egor213/DQMeta/internal/service"
	errorsUtils "github.com/Egor213/DQMeta/pkg/errors"
	"github.com/Egor213/DQMeta/pkg/httpserver"
	"github.com/Egor213/DQMeta/pkg/logger"
	"github.com/Egor213/DQMeta/pkg/postgres"
	"github.com/labstack/echo/v4"

	log "github.com/sirupsen/logrus"
)

func Run() {
	// Config
	cfg, err := config.New()
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}

	// Logger
	logger.SetupLogger(cfg.Log.Level)
	log.WithFields(log.Fields{
		"app":     cfg.App.Name,
		"version": cfg.App.Version,
	}).Info("Logger has been set up")

	// Schema
	log.Info("Ensuring schema")
	if err := EnsureSchema(cfg.PG.URL); err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}

	// DB connecting
	log.Info("Connecting to DB")
	pg, err := postgres.New(cfg.PG.URL, postgres.MaxPoolSize(cfg.PG.MaxPoolSize))
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}
	defer pg.Close()
	log.Info("Connected to DB")

	// Repos
	repositories := repo.NewRepositories(pg)

	// Services
	metricsCnt := metrics.New()
	deps := service.ServicesDependencies{
		Repos:     repositories,
		TxManager: pg.TxManager(),
	}
	services := service.NewServices(deps)

	// API server
	log.Info("Starting API server...")
	log.Debugf("API server port: %s", cfg.HTTP.Port)
	apiHandler := echo.New()
	httpv1.ConfigureRouter(apiHandler, services, metricsCnt, metrics.Middleware())
	apiServer := httpserver.New(apiHandler, httpserver.Port(cfg.HTTP.Port))

	// Prometheus server
	log.Info("Starting metrics server...")
	log.Debugf("Metrics server port: %s", cfg.Prometheus.Port)
	metricsHandler := echo.New()
	metrics.ConfigureRouter(metricsHandler)
	metricsServer := httpserver.New(metricsHandler, httpserver.Port(cfg.Prometheus.Port))

	// Waiting signal
	log.Info("Configuring graceful shutdown...")
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info(errorsUtils.WrapPathErr(errors.New(s.String())))
	case err := <-apiServer.Notify():
		log.Error(errorsUtils.WrapPathErr(err))
	case err := <-metricsServer.Notify():
		log.Error(errorsUtils.WrapPathErr(err))
	}

	// Graceful shutdown
	shutdownApp(apiServer, metricsServer)
}

func shutdownApp(servers ...*httpserver.Server) {
	log.Info("Shutting down...")
	for _, s := range servers {
		if err := s.Shutdown(); err != nil {
			log.Error(errorsUtils.WrapPathErr(err))
		}
	}
}
