package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cimillas/checkout/internal/app"
	"github.com/cimillas/checkout/internal/auth"
	"github.com/cimillas/checkout/internal/clock"
	"github.com/cimillas/checkout/internal/config"
	"github.com/cimillas/checkout/internal/logging"
	"github.com/cimillas/checkout/internal/storage/memory"
	"github.com/cimillas/checkout/internal/storage/postgres"
	transporthttp "github.com/cimillas/checkout/internal/transport/http"
	"github.com/cimillas/checkout/migrations"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	logger := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("checkoutd stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger) error {
	var (
		receipts app.ReceiptRepository
		checks   []transporthttp.HealthCheck
	)
	if cfg.DatabaseURL == "" {
		logger.Warn("DATABASE_URL not set, keeping receipts in memory")
		receipts = memory.NewReceiptStore()
	} else {
		pool, err := openPool(cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer pool.Close()
		receipts = postgres.NewReceiptRepository(pool)
		checks = append(checks, pool.Ping)
	}

	registry := auth.NewRegistry(logger)
	checkoutSvc := app.NewCheckoutService(receipts, registry, clock.System(), logger)
	authSvc := app.NewAuthorizationService(registry)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           transporthttp.NewRouter(checkoutSvc, authSvc, cfg.CORSOrigins, logger, checks...),
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("checkoutd listening", "addr", server.Addr)

	srvErr := make(chan error, 1)
	go func() {
		srvErr <- server.ListenAndServe()
	}()

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-stopCtx.Done():
		logger.Info("shutdown signal received, stopping server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server shutdown error", "error", err)
	}
	logger.Info("server stopped")
	return nil
}

func openPool(dsn string) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	if err := migrations.Apply(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}
