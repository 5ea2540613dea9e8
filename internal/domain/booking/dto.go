package booking

import "time"

// CreateBookingRequest for submitting a booking (public endpoint)
type CreateBookingRequest struct {
	VenueID      int    `json:"venue_id" validate:"required,gt=0"`
	VenueName    string `json:"venue_name" validate:"required,min=2,max=255"`
	CustomerName string `json:"customer_name" validate:"required,min=2,max=255"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"required,min=7,max=20"`
	EventDate    string `json:"event_date" validate:"required,isodate"`
	GuestCount   int    `json:"guest_count" validate:"required,gt=0"`
	Message      string `json:"message,omitempty" validate:"max=2000"`
}

// DecideBookingRequest for approving or rejecting a booking
type DecideBookingRequest struct {
	Status          string `json:"status" validate:"required,decision"`
	RejectionReason string `json:"rejection_reason,omitempty" validate:"max=2000"`
}

// BookingResponse for API responses
type BookingResponse struct {
	ID              int    `json:"id"`
	VenueID         int    `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	CustomerName    string `json:"customer_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	EventDate       string `json:"event_date"`
	GuestCount      int    `json:"guest_count"`
	Message         string `json:"message,omitempty"`
	Price           string `json:"price"`
	Status          string `json:"status"`
	RejectionReason string `json:"rejection_reason,omitempty"`
	SubmittedAt     string `json:"submitted_at"`
}

// ToResponse converts entity to response
func ToResponse(b *Booking) *BookingResponse {
	return &BookingResponse{
		ID:              b.ID,
		VenueID:         b.VenueID,
		VenueName:       b.VenueName,
		CustomerName:    b.CustomerName,
		Email:           b.Email,
		Phone:           b.Phone,
		EventDate:       b.EventDate,
		GuestCount:      b.GuestCount,
		Message:         b.Message,
		Price:           b.Price,
		Status:          string(b.Status),
		RejectionReason: b.RejectionReason,
		SubmittedAt:     b.SubmittedAt.Format(time.RFC3339),
	}
}

// DecisionResponse reports the decided booking and whether the customer
// notification went out
type DecisionResponse struct {
	Booking   *BookingResponse `json:"booking"`
	EmailSent bool             `json:"email_sent"`
	Message   string           `json:"message"`
}
