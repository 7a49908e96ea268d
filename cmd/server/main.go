package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/WebOleg/tether-admin/internal/backend"
	"github.com/WebOleg/tether-admin/internal/config"
	"github.com/WebOleg/tether-admin/internal/handler"
	"github.com/WebOleg/tether-admin/internal/lifecycle"
	"github.com/WebOleg/tether-admin/internal/notify"
	"github.com/WebOleg/tether-admin/internal/preflight"
	"github.com/WebOleg/tether-admin/internal/server"
	"github.com/WebOleg/tether-admin/internal/session"
	"github.com/WebOleg/tether-admin/internal/storage"
	"github.com/WebOleg/tether-admin/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.New(cfg.Logging.Level)
	defer log.Sync()

	ctx := context.Background()
	log.Info(ctx, "Starting admin gateway")

	repo := storage.NewMemoryStore()

	tokens := session.NewStore()
	tokens.OnInvalidate(func() {
		log.Warn(ctx, "Backend session invalidated, re-login required")
	})

	client := backend.NewHTTPClient(cfg.Backend, tokens, log)
	log.Info(ctx, "Backend client initialized",
		"base_url", cfg.Backend.BaseURL,
	)

	busCfg := &notify.Config{
		ChannelBuffer: cfg.Notify.ChannelBufferSize,
		MaxRetries:    cfg.Notify.MaxRetries,
	}
	bus := notify.New(log, busCfg)

	notificationConsumer := notify.NewNotificationConsumer(repo, log, cfg.Notify.WorkerCount)
	for _, eventType := range []notify.EventType{
		notify.EventTypeUploadCompleted,
		notify.EventTypeUploadFailed,
		notify.EventTypeVopCompleted,
		notify.EventTypeVopTimeout,
		notify.EventTypeBillingCompleted,
		notify.EventTypeSyncRejected,
	} {
		if err := bus.Subscribe(eventType, notificationConsumer); err != nil {
			log.Fatal(ctx, "Failed to subscribe notification consumer",
				"event_type", eventType,
				"error", err,
			)
		}
	}

	if err := bus.Start(ctx); err != nil {
		log.Fatal(ctx, "Failed to start notify bus",
			"error", err,
		)
	}

	checker := preflight.NewChecker(cfg.Upload, log)
	manager := lifecycle.NewManager(client, repo, bus, checker, cfg, log)
	log.Info(ctx, "Lifecycle manager initialized")

	authHandler := handler.NewAuthHandler(tokens, log)
	uploadHandler := handler.NewUploadHandler(manager, log)
	sessionHandler := handler.NewSessionHandler(manager, log)
	notificationHandler := handler.NewNotificationHandler(repo, log)
	healthHandler := handler.NewHealthHandler()

	srv := server.New(cfg, log,
		authHandler, uploadHandler, sessionHandler, notificationHandler, healthHandler)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal(ctx, "Failed to start HTTP server",
				"error", err,
			)
		}
	}()

	log.Info(ctx, "Admin gateway started")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info(ctx, "Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()

	// Graceful shutdown in order:
	// 1. Stop accepting new HTTP requests
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "HTTP server shutdown error",
			"error", err,
		)
	}

	// 2. Stop every polling loop and open session
	manager.Shutdown(shutdownCtx)

	// 3. Stop the notify bus and wait for workers to finish
	if err := bus.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "Notify bus shutdown error",
			"error", err,
		)
	}

	log.Info(ctx, "Admin gateway stopped gracefully")
}
