// Package server exposes the game backend over HTTP: NPC management,
// activity execution, and a sandbox surface for poking the emotion
// engine directly.
package server

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/hollowbrook/hamlet/internal/activity"
	"github.com/hollowbrook/hamlet/internal/emotion"
	"github.com/hollowbrook/hamlet/internal/store"
)

// Server is the hamlet HTTP API server.
type Server struct {
	db         *store.DB
	activities *activity.Service
	router     chi.Router
	version    string
	started    time.Time

	// Sandbox state: one shared vector for interactive engine testing.
	sandboxMu sync.Mutex
	sandbox   emotion.Vector
}

// New creates a new Server with the given database and version string.
func New(db *store.DB, activities *activity.Service, version string) *Server {
	s := &Server{
		db:         db,
		activities: activities,
		version:    version,
		started:    time.Now(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)

		r.Post("/npcs", s.handleCreateNPC)
		r.Get("/npcs", s.handleListNPCs)
		r.Get("/npcs/{npcID}", s.handleGetNPC)
		r.Get("/npcs/{npcID}/mood", s.handleNPCMood)
		r.Post("/npcs/{npcID}/activities", s.handlePerformActivity)
		r.Post("/npcs/{npcID}/reset", s.handleResetNPC)

		r.Get("/activities", s.handleListActivities)

		r.Route("/sandbox", func(r chi.Router) {
			r.Post("/apply-pulls", s.handleSandboxApplyPulls)
			r.Post("/reset", s.handleSandboxReset)
			r.Get("/config", s.handleSandboxConfig)
		})
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	dbOK := true
	if err := s.db.Ping(); err != nil {
		dbOK = false
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"version": s.version,
		"uptime":  time.Since(s.started).Seconds(),
		"db":      dbOK,
		"db_path": s.db.Path,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
