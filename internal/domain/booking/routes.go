package booking

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns booking routes. Submission is public; the dashboard
// endpoints require an authenticated venue owner.
func (h *Handler) Routes(authMiddleware, ownerMiddleware func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.Submit)

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Use(ownerMiddleware)

		r.Get("/", h.List)
		r.Get("/{id}", h.GetByID)
		r.Patch("/{id}/status", h.Decide)
	})

	return r
}
