package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"calcsuite/internal/advisor"
	"calcsuite/internal/analytics"
	"calcsuite/internal/calculator"
	"calcsuite/internal/config"
	"calcsuite/internal/history"
	"calcsuite/internal/observability"
	"calcsuite/internal/report"
	"calcsuite/internal/server"
	"calcsuite/internal/sharing"
)

func main() {
	loadEnv()

	if err := observability.InitLogger(); err != nil {
		panic(err)
	}
	defer observability.SyncLogger()

	logger := observability.Logger

	cfg, err := config.Load(os.Getenv("CALCSUITE_CONFIG"))
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdowns, err := initTelemetry(ctx)
	if err != nil {
		logger.Fatal("failed to initialize telemetry", zap.Error(err))
	}
	logger = observability.Logger

	if err := initDomainMetrics(); err != nil {
		logger.Fatal("failed to register metrics", zap.Error(err))
	}

	store, err := history.Open(cfg.History.DBPath)
	if err != nil {
		logger.Fatal("failed to open history database",
			zap.String("path", cfg.History.DBPath), zap.Error(err))
	}
	defer store.Close()

	deps := server.Deps{
		Calculator: calculator.NewHandler(),
		History:    history.NewHandler(store),
		Analytics:  analytics.NewHandler(analytics.NewService(store)),
		Sharing:    sharing.NewHandler(sharing.NewService(cfg.Share.BaseURL)),
		Advisor:    advisor.NewHandler(),
		Report:     report.NewHandler(report.NewGenerator()),
	}

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: server.NewRouter(deps),
	}

	go func() {
		logger.Info("server listening", zap.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}

	for i := len(shutdowns) - 1; i >= 0; i-- {
		if err := shutdowns[i](shutdownCtx); err != nil {
			logger.Error("telemetry shutdown failed", zap.Error(err))
		}
	}
}
