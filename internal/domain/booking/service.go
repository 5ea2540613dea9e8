package booking

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// PriceResolver resolves a venue's price at submission time
type PriceResolver interface {
	PriceFor(venueID int) string
}

// Mailer sends decision notifications to the customer. It reports delivery
// success as a boolean: a failed notification must never fail the decision.
type Mailer interface {
	SendBookingApproved(ctx context.Context, b *Booking) bool
	SendBookingRejected(ctx context.Context, b *Booking) bool
}

// Service orchestrates the booking lifecycle: submission, owner decision,
// status transition and customer notification.
type Service struct {
	repo   Repository
	prices PriceResolver
	mailer Mailer
}

// NewService creates booking service
func NewService(repo Repository, prices PriceResolver, mailer Mailer) *Service {
	return &Service{repo: repo, prices: prices, mailer: mailer}
}

// Submit creates a new pending booking. The price is snapshotted from the
// venue catalog; unknown venue ids get the default price. No email is sent
// on submission.
func (s *Service) Submit(ctx context.Context, req *CreateBookingRequest) (*Booking, error) {
	b := &Booking{
		VenueID:      req.VenueID,
		VenueName:    req.VenueName,
		CustomerName: req.CustomerName,
		Email:        req.Email,
		Phone:        req.Phone,
		EventDate:    req.EventDate,
		GuestCount:   req.GuestCount,
		Message:      req.Message,
		Price:        s.prices.PriceFor(req.VenueID),
	}

	created, err := s.repo.Create(ctx, b)
	if err != nil {
		return nil, err
	}

	log.Info().
		Int("booking_id", created.ID).
		Int("venue_id", created.VenueID).
		Str("event_date", created.EventDate).
		Msg("Booking submitted")

	return created, nil
}

// Decide applies an owner decision to a pending booking and notifies the
// customer. The returned bool reports notification delivery; the status
// transition is committed regardless of it.
func (s *Service) Decide(ctx context.Context, id int, status Status, rejectionReason string) (*Booking, bool, error) {
	if !status.IsDecision() {
		return nil, false, ErrInvalidDecision
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, false, err
	}
	if current == nil {
		return nil, false, ErrBookingNotFound
	}
	if current.IsDecided() {
		return nil, false, ErrAlreadyDecided
	}

	updated, err := s.repo.UpdateStatus(ctx, id, status, rejectionReason)
	if err != nil {
		return nil, false, err
	}
	if updated == nil {
		// The booking existed a moment ago; losing it here is an
		// invariant violation, not a user error.
		return nil, false, fmt.Errorf("booking %d vanished during transition", id)
	}

	var emailSent bool
	switch status {
	case StatusApproved:
		emailSent = s.mailer.SendBookingApproved(ctx, updated)
	case StatusRejected:
		emailSent = s.mailer.SendBookingRejected(ctx, updated)
	}

	log.Info().
		Int("booking_id", updated.ID).
		Str("status", string(updated.Status)).
		Bool("email_sent", emailSent).
		Msg("Booking decided")

	return updated, emailSent, nil
}

// List returns bookings, optionally filtered by status
func (s *Service) List(ctx context.Context, status *Status) ([]*Booking, error) {
	if status != nil {
		return s.repo.ListByStatus(ctx, *status)
	}
	return s.repo.List(ctx)
}

// GetByID returns a booking by id
func (s *Service) GetByID(ctx context.Context, id int) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}
	return b, nil
}
