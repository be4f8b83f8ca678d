// Package api assembles the HTTP surface: middleware stack, route tree, and
// the per-route authentication/authorization chain.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/oakhq/fielddex/internal/api/handler"
	"github.com/oakhq/fielddex/internal/auth"
	"github.com/oakhq/fielddex/internal/config"
)

// NewRouter creates and configures the Chi router with all middleware and routes.
func NewRouter(h *handler.Handler, provider auth.Provider, cfg *config.Config, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(TimingMiddleware)
	r.Use(middleware.Compress(5)) // gzip

	// CORS
	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Process-Time", "Retry-After"},
		AllowCredentials: false,
	})
	r.Use(c.Handler)

	// Rate limiting
	if cfg.RateLimitEnabled {
		r.Use(RateLimitMiddleware(cfg.RateLimitRequests, cfg.RateLimitWindow))
	}

	authenticate := auth.Authenticate(provider, logger)
	roles := func(list ...string) func(http.Handler) http.Handler {
		return auth.Authorize(auth.Options{HasRole: list}, logger)
	}

	// --- Routes ---

	// Root
	r.Get("/", h.Root)

	// Swagger UI
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Health, unauthenticated
		r.Get("/health", h.Health)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)

			// Locations
			r.Route("/locations", func(r chi.Router) {
				r.With(roles(auth.RoleAdmin, auth.RoleOfficer, auth.RoleManager)).Post("/", h.CreateLocation)
				r.With(roles(auth.RoleAdmin, auth.RoleManager, auth.RoleOfficer, auth.RoleUser)).Get("/", h.GetLocations)
				r.With(roles(auth.RoleAdmin, auth.RoleManager, auth.RoleOfficer, auth.RoleUser)).Get("/{id}", h.GetLocation)
				r.With(roles(auth.RoleAdmin, auth.RoleOfficer, auth.RoleManager)).Put("/{id}", h.UpdateLocation)
				r.With(roles(auth.RoleAdmin, auth.RoleManager)).Delete("/{id}", h.DeleteLocation)
			})

			// Trainers
			r.Route("/trainers", func(r chi.Router) {
				r.With(roles(auth.RoleAdmin, auth.RoleManager)).Post("/", h.CreateTrainer)
				r.With(roles(auth.RoleAdmin, auth.RoleManager, auth.RoleUser)).Get("/", h.GetTrainers)
				r.With(roles(auth.RoleAdmin, auth.RoleManager, auth.RoleUser)).Get("/{id}", h.GetTrainer)
				r.With(roles(auth.RoleAdmin, auth.RoleManager)).Put("/{id}", h.UpdateTrainer)
				r.With(roles(auth.RoleAdmin)).Delete("/{id}", h.DeleteTrainer)
			})

			// Sightings
			r.Route("/sightings", func(r chi.Router) {
				r.With(roles(auth.RoleAdmin, auth.RoleManager, auth.RoleUser)).Post("/", h.CreateSighting)
				r.With(roles(auth.RoleAdmin, auth.RoleManager, auth.RoleOfficer, auth.RoleUser)).Get("/", h.GetSightings)
				r.With(roles(auth.RoleAdmin, auth.RoleManager, auth.RoleOfficer, auth.RoleUser)).Get("/{id}", h.GetSighting)
				r.With(roles(auth.RoleAdmin, auth.RoleManager, auth.RoleUser)).Put("/{id}", h.UpdateSighting)
				r.With(roles(auth.RoleAdmin, auth.RoleManager)).Delete("/{id}", h.DeleteSighting)
			})

			// Users: same-user bypass comes before the role check, so a
			// subject with no role claim can still read their own profile.
			r.With(auth.Authorize(auth.Options{
				HasRole:       []string{auth.RoleAdmin, auth.RoleManager, auth.RoleUser, auth.RoleOfficer},
				AllowSameUser: true,
				Param:         "uid",
			}, logger)).Get("/users/{uid}", h.GetUserProfile)

			// Admin
			r.With(roles(auth.RoleAdmin)).Post("/admin/setCustomClaims", h.SetCustomClaims)
		})
	})

	return r
}
