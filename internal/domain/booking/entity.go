package booking

import "time"

// Status of a booking request
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// IsValid reports whether s is a known status
func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// IsDecision reports whether s is a valid owner decision
func (s Status) IsDecision() bool {
	return s == StatusApproved || s == StatusRejected
}

// Booking is a customer's request to reserve a venue for a dated event.
// Price is snapshotted from the venue catalog at creation time and never
// recomputed. RejectionReason is set iff the booking was rejected.
type Booking struct {
	ID              int       `json:"id"`
	VenueID         int       `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	CustomerName    string    `json:"customer_name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	EventDate       string    `json:"event_date"` // ISO-8601 calendar date
	GuestCount      int       `json:"guest_count"`
	Message         string    `json:"message,omitempty"`
	Price           string    `json:"price"`
	Status          Status    `json:"status"`
	RejectionReason string    `json:"rejection_reason,omitempty"`
	SubmittedAt     time.Time `json:"submitted_at"`
}

// IsDecided reports whether the booking reached a terminal status
func (b *Booking) IsDecided() bool {
	return b.Status == StatusApproved || b.Status == StatusRejected
}
