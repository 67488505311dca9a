package main

import (
	"context"
	"errors"
	"log"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lunchbox/backend/internal/app"
	"lunchbox/backend/internal/config"
	"lunchbox/backend/internal/handler"
	transport "lunchbox/backend/internal/http"
	"lunchbox/backend/internal/logger"
	"lunchbox/backend/internal/scheduler"
)

func main() {
	cfg := config.Load()
	logger.Init(logger.ParseLevel(cfg.LogLevel), cfg.LogFormat)

	a, err := app.New(cfg)
	if err != nil {
		log.Fatalf("init app: %v", err)
	}
	defer a.Close()

	webhookHandler := handler.NewWebhookHandler(a.Orders, a.Settings)
	router := transport.NewRouter(webhookHandler, transport.RouterOptions{
		WebhookPath: cfg.WebhookPath,
		CORSOrigins: cfg.CORSOrigins,
		RateLimit:   cfg.RateLimit,
	})

	var sched *scheduler.Scheduler
	if cfg.CleanupInterval > 0 {
		sched = scheduler.New(a.Maintenance, cfg.CleanupInterval)
		sched.Start()
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutting down", "module", "server", "action", "shutdown", "resource", "http", "result", "ok")
		if sched != nil {
			sched.Stop()
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := router.Shutdown(ctx); err != nil {
			logger.Error("shutdown failed", "module", "server", "action", "shutdown", "resource", "http", "result", "failed", "error", err)
		}
	}()

	logger.Info("server starting", "module", "server", "action", "start", "resource", "http", "result", "ok",
		"addr", cfg.Addr, "store", a.Dialect.String(), "timezone", cfg.Timezone, "webhook_path", cfg.WebhookPath)
	if err := router.Start(cfg.Addr); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
		log.Fatalf("start server: %v", err)
	}
}
