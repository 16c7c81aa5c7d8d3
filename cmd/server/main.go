package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"soccer_team/internal/api"
	"soccer_team/internal/api/handlers"
	"soccer_team/internal/metrics"
	"soccer_team/internal/repository"
	"soccer_team/internal/service"
	"soccer_team/pkg/config"
	"soccer_team/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	appLogger := logger.New(cfg.Log.Level, cfg.Log.Format, os.Stdout)
	appLogger.Info("starting soccer team service",
		"version", "1.0.0",
		"port", cfg.Server.Port,
		"metrics_enabled", cfg.Metrics.Enabled,
	)

	// Метрики
	var (
		recorder   metrics.Recorder = metrics.NewNop()
		routerOpts []api.RouterOption
	)
	if cfg.Metrics.Enabled {
		registry := prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		recorder = metrics.NewPrometheus(registry, cfg.Metrics.Namespace)
		routerOpts = append(routerOpts, api.WithMetrics(cfg.Metrics.Path, registry))
	}

	// Инициализация репозиториев
	teamRepo := repository.NewTeamRepository(appLogger)
	statsRepo := repository.NewStatsRepository(teamRepo, appLogger)

	// Инициализация сервисов
	teamService := service.NewTeamService(teamRepo, recorder, appLogger,
		service.WithJerseySeed(cfg.Team.JerseySeed),
	)
	statsService := service.NewStatsService(statsRepo, appLogger)

	// Инициализация хендлеров
	handler := handlers.NewHandler(teamService, statsService, appLogger)

	// Инициализация роутера и мидлваре
	router := api.NewRouter(handler, appLogger, routerOpts...)

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		appLogger.Info("server listening", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	appLogger.Info("server stopped gracefully")
}
