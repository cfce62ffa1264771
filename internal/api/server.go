package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/finplan/projection-engine/internal/calculation"
)

// Server exposes the projection engine over HTTP. It is stateless: every
// request is an independent engine invocation.
type Server struct {
	engine *calculation.Engine
	logger calculation.Logger
	router chi.Router
}

// NewServer wires the routes around an engine.
func NewServer(engine *calculation.Engine, logger calculation.Logger) *Server {
	if logger == nil {
		logger = calculation.NopLogger{}
	}
	s := &Server{engine: engine, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/projection", s.handleProjection)
		r.Post("/drawdown", s.handleDrawdown)
		r.Post("/solve", s.handleSolve)
		r.Post("/funding", s.handleFunding)
		r.Post("/plan", s.handlePlan)
	})

	s.router = r
	return s
}

// Handler returns the root http.Handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe starts the server on the given address.
func (s *Server) ListenAndServe(addr string) error {
	s.logger.Infof("projection API listening on %s", addr)
	return http.ListenAndServe(addr, s.router)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
