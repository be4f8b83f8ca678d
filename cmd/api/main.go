// Command api is the Fielddex API server.
//
// Usage:
//
//	fielddex-api
//	API_PORT=8080 fielddex-api

// @title Fielddex API
// @version 1.0.0
// @description Pokemon field research API: locations, trainers, and sightings with PokeAPI enrichment and role-based access control.
// @host localhost:8000
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
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

	"github.com/oakhq/fielddex/internal/api"
	"github.com/oakhq/fielddex/internal/api/handler"
	"github.com/oakhq/fielddex/internal/auth"
	"github.com/oakhq/fielddex/internal/config"
	"github.com/oakhq/fielddex/internal/pokeapi"
	"github.com/oakhq/fielddex/internal/service"
	"github.com/oakhq/fielddex/internal/store"

	_ "github.com/oakhq/fielddex/docs" // swagger docs
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

	// Connect to database
	logger.Info("Connecting to database...")
	pg, err := store.NewPostgres(ctx, cfg)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pg.Close()
	logger.Info("Database connected",
		"min_conns", cfg.DBPoolMinConns,
		"max_conns", cfg.DBPoolMaxConns)

	// PokeAPI client
	lookup := pokeapi.NewClient(cfg.PokeAPIBaseURL, cfg.PokeAPIRequestsMin, logger)

	// Identity provider backed by the same document store
	provider := auth.NewJWTProvider(cfg, pg)

	// Services
	locations := service.NewLocationService(pg, lookup, logger)
	trainers := service.NewTrainerService(pg, lookup, logger)
	sightings := service.NewSightingService(pg, lookup, logger)

	// Create router
	h := handler.New(locations, trainers, sightings, provider, pg, logger)
	router := api.NewRouter(h, provider, cfg, logger)

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
		logger.Info("Starting Fielddex API",
			"addr", addr,
			"environment", cfg.Environment,
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
