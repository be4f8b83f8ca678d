// Package handler provides HTTP handlers for all API endpoints. Handlers
// translate requests into service calls and route every failure through the
// respond pipeline — no business logic lives here.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/oakhq/fielddex/internal/api/respond"
	"github.com/oakhq/fielddex/internal/auth"
	"github.com/oakhq/fielddex/internal/service"
)

// Version is reported by the root and health endpoints.
const Version = "1.0.0"

// Pinger verifies backing-store connectivity. The Postgres store satisfies
// it; the in-memory store runs without one.
type Pinger interface {
	HealthCheck(ctx context.Context) error
}

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	locations *service.LocationService
	trainers  *service.TrainerService
	sightings *service.SightingService
	provider  auth.Provider
	pinger    Pinger
	logger    *slog.Logger
	startedAt time.Time
}

// New creates a Handler with shared dependencies. pinger may be nil when no
// external store is attached.
func New(
	locations *service.LocationService,
	trainers *service.TrainerService,
	sightings *service.SightingService,
	provider auth.Provider,
	pinger Pinger,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		locations: locations,
		trainers:  trainers,
		sightings: sightings,
		provider:  provider,
		pinger:    pinger,
		logger:    logger,
		startedAt: time.Now(),
	}
}

// Root serves API info at /.
// @Summary API root info
// @Description Returns API name, version, status, and docs location.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]interface{}{
		"name":    "Fielddex API",
		"version": Version,
		"status":  "running",
		"docs":    "/docs",
	})
}

// Health returns service status, uptime, and version. Unauthenticated.
// @Summary Health check
// @Description Returns service status, uptime, timestamp, and version.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	body := map[string]interface{}{
		"status":    "OK",
		"uptime":    time.Since(h.startedAt).Round(time.Second).String(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   Version,
	}

	if h.pinger != nil {
		if err := h.pinger.HealthCheck(r.Context()); err != nil {
			h.logger.Error("store health check failed", "error", err)
			body["status"] = "unhealthy"
			body["database"] = "disconnected"
			respond.JSON(w, http.StatusServiceUnavailable, body)
			return
		}
		body["database"] = "connected"
	}

	respond.JSON(w, http.StatusOK, body)
}
