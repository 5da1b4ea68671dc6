package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/devinterview/question-catalog/internal/api"
	"github.com/devinterview/question-catalog/internal/catalog"
	"github.com/devinterview/question-catalog/internal/config"
	"github.com/devinterview/question-catalog/internal/refresh"
	"github.com/devinterview/question-catalog/internal/seed"
	"github.com/devinterview/question-catalog/pkg/client"
)

func main() {
	// Setup structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	slog.Info("starting question-catalog",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"remote", cfg.Remote.BaseURL,
	)

	// Load seed data
	seedLoader := seed.NewLoader()
	if cfg.Seed.File != "" {
		if err := seedLoader.LoadFromFile(cfg.Seed.File); err != nil {
			slog.Warn("failed to load seed file, using embedded seed", "file", cfg.Seed.File, "error", err)
			cfg.Seed.File = ""
		}
	}
	if cfg.Seed.File == "" {
		if err := seedLoader.LoadDefault(); err != nil {
			slog.Error("failed to load embedded seed", "error", err)
			os.Exit(1)
		}
	}

	// Import service client and collection store
	remote := client.NewClient(cfg.Remote.BaseURL, client.WithTimeout(cfg.Remote.Timeout))
	store := catalog.NewStore(remote, seedLoader.Questions())

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start refresh worker
	refresher := refresh.NewRefresher(store, cfg.Refresh.Interval)
	refresher.Start(ctx)

	// Setup HTTP server
	server := api.NewServer(cfg.Server, store, seedLoader, remote, cfg.Auth.AdminAPIKey)
	httpServer := &http.Server{
		Addr:        fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:     server.Router(),
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("HTTP server starting", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down gracefully...")

	// Cancel context to stop background workers
	cancel()

	// Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("question-catalog stopped")
}
