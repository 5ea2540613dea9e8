package booking

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/kigalivenues/venues-api/internal/pkg/email"
)

// Venue-owner identity is not modelled; notifications use a fixed display
// name, and the booking's own phone number doubles as the contact line.
const ownerDisplayName = "Venue Owner"

// EmailNotifier renders decision notifications and hands them to the
// dispatcher. Implements Mailer.
type EmailNotifier struct {
	renderer   *email.Renderer
	dispatcher *email.Dispatcher
}

// NewEmailNotifier creates the email-backed notifier
func NewEmailNotifier(renderer *email.Renderer, dispatcher *email.Dispatcher) *EmailNotifier {
	return &EmailNotifier{renderer: renderer, dispatcher: dispatcher}
}

// SendBookingApproved sends the approval notification
func (n *EmailNotifier) SendBookingApproved(ctx context.Context, b *Booking) bool {
	rendered, err := n.renderer.RenderApproval(&email.ApprovalData{
		CustomerName:   b.CustomerName,
		CustomerEmail:  b.Email,
		VenueName:      b.VenueName,
		EventDate:      b.EventDate,
		GuestCount:     b.GuestCount,
		Price:          b.Price,
		VenueOwnerName: ownerDisplayName,
		VenueContact:   b.Phone,
	})
	if err != nil {
		log.Error().Err(err).Int("booking_id", b.ID).Msg("Failed to render approval email")
		return false
	}
	return n.dispatcher.Dispatch(ctx, rendered)
}

// SendBookingRejected sends the rejection notification
func (n *EmailNotifier) SendBookingRejected(ctx context.Context, b *Booking) bool {
	reason := b.RejectionReason
	if reason == "" {
		reason = "No reason provided"
	}

	rendered, err := n.renderer.RenderRejection(&email.RejectionData{
		CustomerName:    b.CustomerName,
		CustomerEmail:   b.Email,
		VenueName:       b.VenueName,
		EventDate:       b.EventDate,
		RejectionReason: reason,
		VenueOwnerName:  ownerDisplayName,
	})
	if err != nil {
		log.Error().Err(err).Int("booking_id", b.ID).Msg("Failed to render rejection email")
		return false
	}
	return n.dispatcher.Dispatch(ctx, rendered)
}
