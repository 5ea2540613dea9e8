package auth

import (
	"errors"
	"net/http"

	"github.com/kigalivenues/venues-api/internal/pkg/response"
)

// Handler handles auth HTTP requests
type Handler struct {
	svc *Service
}

// NewHandler creates auth handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// GoogleAuthURL handles GET /auth/google?role=customer|owner
func (h *Handler) GoogleAuthURL(w http.ResponseWriter, r *http.Request) {
	role := r.URL.Query().Get("role")
	if role == "" {
		role = RoleCustomer
	}

	authURL, err := h.svc.AuthURL(role)
	if err != nil {
		response.BadRequest(w, "Invalid role")
		return
	}

	response.OK(w, map[string]string{"auth_url": authURL})
}

// Callback handles GET /auth/callback?code=...&state=...
func (h *Handler) Callback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	state := r.URL.Query().Get("state")

	principal, token, err := h.svc.HandleCallback(r.Context(), code, state)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingCode):
			response.BadRequest(w, "Missing authorization code")
		case errors.Is(err, ErrInvalidRole):
			response.BadRequest(w, "Invalid state")
		default:
			response.InternalError(w)
		}
		return
	}

	response.OK(w, map[string]interface{}{
		"user":         principal,
		"access_token": token,
	})
}
