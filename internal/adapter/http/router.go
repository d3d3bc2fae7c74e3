package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/iho/transfermarket/internal/adapter/http/handler"
	"github.com/iho/transfermarket/internal/adapter/http/middleware"
	"github.com/iho/transfermarket/internal/infrastructure/auth"
	"github.com/iho/transfermarket/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	AuthHandler      *handler.AuthHandler
	TeamHandler      *handler.TeamHandler
	TransferHandler  *handler.TransferHandler
	HealthHandler    *handler.HealthHandler
	JWTManager       *auth.JWTManager
	IdempotencyStore usecase.IdempotencyStore
	AuthRateLimiter  *middleware.RateLimiter
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	requireAuth := middleware.AuthMiddleware(cfg.JWTManager)

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Auth endpoints are rate limited per IP against credential stuffing.
		r.Group(func(r chi.Router) {
			if cfg.AuthRateLimiter != nil {
				r.Use(cfg.AuthRateLimiter.Limit)
			}
			r.Post("/auth/login-register", cfg.AuthHandler.LoginOrRegister)
		})

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/auth/profile", cfg.AuthHandler.GetProfile)
		})

		// Teams
		r.Route("/teams", func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/", cfg.TeamHandler.Create)
			r.Get("/me", cfg.TeamHandler.GetMine)
		})

		// Transfer market
		r.Route("/transfers", func(r chi.Router) {
			r.Get("/market", cfg.TransferHandler.Market)

			r.Group(func(r chi.Router) {
				r.Use(requireAuth)

				// Replay protection for mutating market operations
				if cfg.IdempotencyStore != nil {
					idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
					r.Use(idempotencyMiddleware.Wrap)
				}

				r.Post("/list", cfg.TransferHandler.List)
				r.Delete("/list/{playerID}", cfg.TransferHandler.Delist)
				r.Post("/buy/{playerID}", cfg.TransferHandler.Buy)
				r.Get("/history", cfg.TransferHandler.History)
				r.Get("/{id}", cfg.TransferHandler.Get)
			})
		})
	})

	return r
}
