package venue

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/kigalivenues/venues-api/internal/pkg/response"
)

// Handler handles venue HTTP requests
type Handler struct {
	catalog *Catalog
}

// NewHandler creates venue handler
func NewHandler(catalog *Catalog) *Handler {
	return &Handler{catalog: catalog}
}

// List handles GET /venues
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	venues := h.catalog.List()
	response.OK(w, map[string]interface{}{
		"venues": venues,
		"total":  len(venues),
	})
}

// GetByID handles GET /venues/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid venue ID")
		return
	}

	v := h.catalog.GetByID(id)
	if v == nil {
		response.NotFound(w, "Venue not found")
		return
	}

	response.OK(w, v)
}
