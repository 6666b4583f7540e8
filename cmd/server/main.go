package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/launchpad/backend/internal/api"
	"github.com/launchpad/backend/internal/api/handler"
	apimw "github.com/launchpad/backend/internal/api/middleware"
	"github.com/launchpad/backend/internal/config"
	"github.com/launchpad/backend/internal/db"
	"github.com/launchpad/backend/internal/domain"
	"github.com/launchpad/backend/internal/metrics"
	"github.com/launchpad/backend/internal/openapi"
)

func main() {
	// ---- configuration ----
	cfg, err := config.Load()
	if err != nil {
		boot, _ := zap.NewProduction()
		boot.Fatal("failed to load config", zap.Error(err))
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(cfg.LogLevel)
	logger, err := zcfg.Build()
	if err != nil {
		panic(err)
	}
	defer logger.Sync() //nolint:errcheck

	logger = logger.With(
		zap.String("service", cfg.ServiceName),
		zap.String("version", cfg.ServiceVersion),
	)

	ctx := context.Background()

	// ---- database (optional, readiness only) ----
	// An unreachable database does not stop startup; /ready reports it.
	var pinger handler.Pinger
	if cfg.DatabaseEnabled() {
		pool, err := db.Open(ctx, cfg)
		if err != nil {
			logger.Fatal("failed to configure database pool", zap.Error(err))
		}
		defer pool.Close()
		pinger = pool

		pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
		if err := pool.Ping(pingCtx); err != nil {
			logger.Warn("database not reachable at startup; readiness will report unavailable", zap.Error(err))
		} else {
			logger.Info("database connected")
		}
		pingCancel()
	}

	// ---- core dependencies ----
	reg := prometheus.NewRegistry()
	metrics.RegisterRuntime(reg)
	m := metrics.New(reg)

	info := domain.ServiceInfo{Service: cfg.ServiceName, Version: cfg.ServiceVersion}
	doc, err := openapi.Build(ctx, openapi.Info{
		Title:       cfg.ServiceName,
		Version:     cfg.ServiceVersion,
		Description: cfg.ServiceDescription,
	})
	if err != nil {
		logger.Fatal("failed to build API description", zap.Error(err))
	}
	oh, err := handler.NewOpenAPIHandler(doc)
	if err != nil {
		logger.Fatal("failed to render API description", zap.Error(err))
	}

	// ---- HTTP server ----
	router := api.NewRouter(api.Options{
		Health:   handler.NewHealthHandler(pinger, info, logger),
		OpenAPI:  oh,
		Metrics:  m,
		Gatherer: reg,
		CORS: apimw.CORSOptions{
			AllowedOrigins:   cfg.CORSAllowedOrigins,
			AllowCredentials: cfg.CORSAllowCredentials,
			MaxAge:           cfg.CORSMaxAge,
		},
		MaxBodyBytes: cfg.MaxBodyBytes,
		Logger:       logger,
	})
	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start server in a goroutine so it does not block the shutdown listener.
	go func() {
		logger.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	// ---- graceful shutdown ----
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutdown signal received")

	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	logger.Info("server stopped cleanly")
}
