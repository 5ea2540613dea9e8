package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns the public auth routes
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/google", h.GoogleAuthURL)
	r.Get("/callback", h.Callback)

	return r
}
