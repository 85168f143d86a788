package handlers

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts the health check and the read-only admin pages on r.
func (h *Handlers) Routes(r chi.Router) {
	r.Get("/", h.Home)
	r.Get("/health", h.Health)

	r.Route("/admin", func(r chi.Router) {
		r.Get("/", h.Dashboard)
		r.Get("/categories", h.Categories)
		r.Get("/sections", h.Sections)
	})
}
