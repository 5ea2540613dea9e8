package venue

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns the public venue routes
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Get("/{id}", h.GetByID)

	return r
}
