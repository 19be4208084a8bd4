// Command stubapi serves an in-memory implementation of the site's backend API for
// local development of the admin console.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"ipoadvisor/internal/config"
	"ipoadvisor/internal/http/handler"
	"ipoadvisor/internal/logging"
	"ipoadvisor/internal/otel"
	"ipoadvisor/internal/storage"
)

// @title                       IPO Advisor stub API
// @version                     1.0
// @description                 In-memory backend for the IPO advisory site and its admin console.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Bearer token from /api/admin/login
func main() {
	cfg := config.Load()
	logger := logging.New(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, cfg, logger)
	stop()
	if err != nil {
		logger.Error("stub backend stopped", zap.Error(err))
	}
	_ = logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

// run serves until ctx is cancelled. Deferred cleanup runs before main exits.
func run(ctx context.Context, cfg *config.AppConfig, logger *zap.Logger) error {
	shutdownTracing, err := otel.Init(ctx, "ipoadvisor-stub", logger)
	if err != nil {
		return fmt.Errorf("initialize tracing: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(sctx)
	}()

	if cfg.Stub.AdminEmail == "" || cfg.Stub.AdminPassword == "" {
		logger.Warn("ADMIN_EMAIL or ADMIN_PASSWORD not set, every login will be rejected")
	}

	// File content goes to MinIO when it is configured, otherwise it lives in memory.
	var objStore storage.Storage
	if cfg.MinIO.Endpoint != "" {
		objStore, err = storage.NewMinIO(ctx, cfg.MinIO)
		if err != nil {
			return fmt.Errorf("initialize object storage: %w", err)
		}
		logger.Info("file storage", zap.String("driver", "minio"), zap.String("bucket", cfg.MinIO.Bucket))
	} else {
		objStore = storage.NewMemory("stub")
		logger.Info("file storage", zap.String("driver", "memory"))
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	app, err := handler.NewApp(handler.AppOptions{
		Services: handler.MemoryServices(objStore, handler.AdminAccount{
			Email:    cfg.Stub.AdminEmail,
			Password: cfg.Stub.AdminPassword,
			TokenTTL: time.Duration(cfg.Stub.TokenTTLHours) * time.Hour,
		}),
		Logger:         logger,
		Registry:       reg,
		MaxUploadBytes: int64(cfg.Stub.MaxUploadBytes),
	})
	if err != nil {
		return fmt.Errorf("build app: %w", err)
	}

	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(sctx); err != nil {
			logger.Error("shutdown failed", zap.Error(err))
		}
	}()

	addr := ":" + cfg.Stub.Port
	logger.Info("stub backend listening", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		return fmt.Errorf("start server: %w", err)
	}
	return nil
}
