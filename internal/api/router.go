package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nerrad567/rigdesc/internal/auth"
)

// buildRouter creates the HTTP router with all routes and middleware.
func (s *Server) buildRouter() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(s.requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(s.recoveryMiddleware)
	r.Use(s.corsMiddleware)
	r.Use(s.bodySizeLimitMiddleware)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeNotFound(w, "no such route")
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)

		r.Post("/validate", s.handleValidate)

		r.With(s.requirePermission(auth.PermArchiveRead)).Get("/audit", s.handleListAudit)

		r.Route("/instruments", func(r chi.Router) {
			r.Get("/", s.handleListInstruments)
			r.With(s.requirePermission(auth.PermArchiveWrite)).Post("/", s.handleArchiveInstrument)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handleGetInstrument)
				r.Get("/history", s.handleInstrumentHistory)
			})
		})
	})

	return r
}

// handleHealth returns the server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"version": s.version,
	})
}
