package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rakesh-patoju/Payment-Platform-Design-New/internal/adapter/handler"
	"github.com/rakesh-patoju/Payment-Platform-Design-New/internal/adapter/storage"
	"github.com/rakesh-patoju/Payment-Platform-Design-New/internal/core/config"
	"github.com/rakesh-patoju/Payment-Platform-Design-New/internal/core/payment"
	"github.com/rakesh-patoju/Payment-Platform-Design-New/internal/core/worker"
	"github.com/rakesh-patoju/Payment-Platform-Design-New/internal/core/workflow"
)

func main() {
	// 1. Setup Logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// 2. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("❌ Invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 3. Open the store
	kv, err := storage.Open(ctx, storage.Options{
		Driver:      cfg.StoreDriver,
		DataFile:    cfg.DataFile,
		DatabaseURL: cfg.DatabaseURL,
		SQLitePath:  cfg.SQLitePath,
		RedisAddr:   cfg.RedisAddr,
	})
	if err != nil {
		slog.Error("❌ Store connection failed", "driver", cfg.StoreDriver, "error", err)
		os.Exit(1)
	}

	// 4. Sessions share the registered users and one simulator; login data
	// is kept per session id
	accounts := storage.NewAccountRepository(kv)
	simulator := payment.NewSimulator(cfg.PaymentDelay, cfg.Location)
	registry := workflow.NewRegistry(func(id string) *workflow.Session {
		return workflow.NewSession(accounts.Scoped(id), cfg.Catalog, simulator)
	}, cfg.SessionTTL)
	registry.StartJanitor(ctx, time.Minute)

	// 5. Start Worker
	deps := handler.Deps{Registry: registry, KV: kv}
	if cfg.WebhookURL != "" {
		webhooks := worker.NewWebhookWorker(cfg.WebhookURL, cfg.WebhookSecret)
		webhooks.Start(ctx)
		deps.Notifier = webhooks
	}
	if info, err := os.Stat("./public"); err == nil && info.IsDir() {
		deps.StaticDir = "./public"
	}

	app := handler.NewApp(deps)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("🚀 Server starting", "env", cfg.Env, "port", cfg.Port, "store", cfg.StoreDriver)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("Server forced to shutdown", "error", err)
		}
	}()

	<-stop
	slog.Info("🛑 Shutting down server...")

	// Finish active requests before the store goes away
	if err := app.Shutdown(); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}
	cancel()

	if err := kv.Close(); err != nil {
		slog.Error("Store close failed", "error", err)
	} else {
		slog.Info("✅ Store closed")
	}

	slog.Info("👋 Server exited successfully")
}
