// Command api is the club site API server.
//
// Usage:
//
//	clubsite-api
//	API_PORT=8080 clubsite-api
//
// With no DATABASE_URL the server runs in demo mode: every read endpoint
// serves its hardcoded fallback content and writes are rejected.

// @title Club Site API
// @version 1.0.0
// @description Public API for the club website: settings, roster with season aggregates, fixtures, results, news, and the home page summary counters.
// @host localhost:8000
// @BasePath /api/v1
// @schemes http https
// @license.name MIT
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/newfriendscc/clubsite/internal/api"
	"github.com/newfriendscc/clubsite/internal/cache"
	"github.com/newfriendscc/clubsite/internal/config"
	"github.com/newfriendscc/clubsite/internal/db"
	"github.com/newfriendscc/clubsite/internal/resolver"
	"github.com/newfriendscc/clubsite/internal/store"

	_ "github.com/newfriendscc/clubsite/docs" // swagger docs
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Load .env if present
	_ = godotenv.Load(".env")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	// Connect to database when one is configured; otherwise stay up in
	// demo mode so the site always has content to show.
	var st store.Store
	if cfg.StoreConfigured() {
		logger.Info("Connecting to database...")
		pool, err := db.New(ctx, cfg)
		if err != nil {
			logger.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		logger.Info("Database connected",
			"min_conns", cfg.DBPoolMinConns,
			"max_conns", cfg.DBPoolMaxConns)
		st = store.NewPostgres(pool)
	} else {
		logger.Warn("No DATABASE_URL set, serving demo content")
	}

	// Initialize cache
	appCache := cache.New(cfg.CacheEnabled)
	logger.Info("Cache initialized", "enabled", cfg.CacheEnabled)

	// Resolver owns the fallback policy for every read
	res := resolver.New(st, logger)

	// Create router
	router := api.NewRouter(res, st, appCache, cfg)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.APIHost, cfg.APIPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	go func() {
		logger.Info("Starting Club Site API",
			"addr", addr,
			"environment", cfg.Environment,
			"demo_mode", !cfg.StoreConfigured(),
			"docs", fmt.Sprintf("http://localhost:%d/docs/", cfg.APIPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt
	<-ctx.Done()
	logger.Info("Shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}
