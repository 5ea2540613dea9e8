package booking

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/kigalivenues/venues-api/internal/pkg/response"
	"github.com/kigalivenues/venues-api/internal/pkg/validator"
)

// Handler handles booking HTTP requests
type Handler struct {
	svc *Service
}

// NewHandler creates booking handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Submit handles POST /bookings (public)
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	b, err := h.svc.Submit(r.Context(), &req)
	if err != nil {
		response.InternalError(w)
		return
	}

	response.Created(w, map[string]interface{}{
		"booking": ToResponse(b),
		"message": "Booking request submitted successfully",
	})
}

// List handles GET /bookings (owner dashboard)
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	var status *Status
	if s := r.URL.Query().Get("status"); s != "" {
		st := Status(s)
		if !st.IsValid() {
			response.BadRequest(w, "Invalid status filter")
			return
		}
		status = &st
	}

	bookings, err := h.svc.List(r.Context(), status)
	if err != nil {
		response.InternalError(w)
		return
	}

	items := make([]*BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = ToResponse(b)
	}

	response.OK(w, map[string]interface{}{
		"bookings": items,
		"total":    len(items),
	})
}

// GetByID handles GET /bookings/{id} (owner dashboard)
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid booking ID")
		return
	}

	b, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			response.NotFound(w, "Booking not found")
			return
		}
		response.InternalError(w)
		return
	}

	response.OK(w, ToResponse(b))
}

// Decide handles PATCH /bookings/{id}/status (owner dashboard)
func (h *Handler) Decide(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid booking ID")
		return
	}

	var req DecideBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	updated, emailSent, err := h.svc.Decide(r.Context(), id, Status(req.Status), req.RejectionReason)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidDecision):
			response.BadRequest(w, "Invalid status")
		case errors.Is(err, ErrBookingNotFound):
			response.NotFound(w, "Booking not found")
		case errors.Is(err, ErrAlreadyDecided):
			response.Conflict(w, "Booking is already decided")
		default:
			response.InternalError(w)
		}
		return
	}

	response.OK(w, &DecisionResponse{
		Booking:   ToResponse(updated),
		EmailSent: emailSent,
		Message:   "Booking " + req.Status + " successfully",
	})
}
