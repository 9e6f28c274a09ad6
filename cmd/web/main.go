package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"todoweb/internal/adapter/web"
	"todoweb/internal/core/telemetry"
	"todoweb/internal/metrics"
	"todoweb/pkg/config"
	"todoweb/pkg/logging"
	"todoweb/pkg/tracing"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	logger, err := logging.New(cfg.Environment)

	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	defer logger.Sync()

	registry := prometheus.NewRegistry()

	if cfg.TelemetryEnabled {
		tel, err := tracing.InitTelemetry(tracing.TelemetryConfig{
			ServiceName:    "todoweb",
			ServiceVersion: "1.0.0",
			Environment:    cfg.Environment,
			OTLPEndpoint:   cfg.OTLPEndpoint,
		})

		if err != nil {
			log.Fatal("Failed to initialize telemetry:", err)
		}

		defer tel.Shutdown(ctx)

		registry = tel.PrometheusRegistry
	}

	appMetrics := metrics.NewAppMetrics(registry)
	probe := telemetry.NewOtelProbe("todoweb", appMetrics)

	container, err := web.NewContainer(cfg, logger, probe)

	if err != nil {
		logger.Fatal("Failed to open database", zap.Error(err))
	}

	defer container.Close()

	router := web.SetupRouter(web.RouterConfig{
		TodoHandler: container.TodoHandler,
		Logger:      logger,
		Metrics:     appMetrics,
		AppConfig:   cfg,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Info("Server starting",
			zap.String("port", cfg.Port),
			zap.String("environment", cfg.Environment),
			zap.Bool("rate_limit_enabled", cfg.RateLimitEnabled),
			zap.Bool("page_cache_enabled", cfg.PageCacheEnabled),
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	logger.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}
}
