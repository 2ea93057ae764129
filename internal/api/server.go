// Package api provides the localhost HTTP control surface for the
// planshift daemon: plan inspection and switching, AFK configuration,
// change history, health, and metrics.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/planshift/planshift/internal/app/afk"
	"github.com/planshift/planshift/internal/app/track"
	"github.com/planshift/planshift/internal/domain"
	"github.com/planshift/planshift/internal/health"
)

// HistoryStore is the journal read side consumed by the API.
type HistoryStore interface {
	PlanHistory(limit int) ([]domain.PlanChange, error)
}

// Server is the planshift HTTP API server.
type Server struct {
	registry domain.PlanRegistry
	idle     domain.IdleMonitor
	engine   *afk.Engine
	tracker  *track.Tracker
	history  HistoryStore

	health         *health.Checker
	version        string
	metricsEnabled bool
}

// NewServer creates a new API server.
func NewServer(registry domain.PlanRegistry, idle domain.IdleMonitor, engine *afk.Engine, tracker *track.Tracker, history HistoryStore) *Server {
	return &Server{
		registry: registry,
		idle:     idle,
		engine:   engine,
		tracker:  tracker,
		history:  history,
		version:  "dev",
	}
}

// SetVersion sets the version string reported by /api/status.
func (s *Server) SetVersion(v string) { s.version = v }

// SetHealth attaches the health checker backing /health.
func (s *Server) SetHealth(h *health.Checker) { s.health = h }

// EnableMetrics enables the /metrics Prometheus endpoint.
func (s *Server) EnableMetrics() { s.metricsEnabled = true }

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/status", s.handleStatus)
		r.Get("/plans", s.handleListPlans)
		r.Get("/plans/active", s.handleGetActive)
		r.Put("/plans/active", s.handleSetActive)
		r.Get("/afk", s.handleGetAfk)
		r.Put("/afk", s.handleUpdateAfk)
		r.Post("/afk/disable", s.handleDisableAfk)
		r.Get("/history", s.handleHistory)
	})

	if s.metricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	return r
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]interface{}{
		"error": map[string]interface{}{
			"message": msg,
			"type":    "error",
		},
	})
}
