package booking

import (
	"context"
	"errors"
	"testing"
)

type stubPrices struct {
	prices map[int]string
}

func (s *stubPrices) PriceFor(venueID int) string {
	if p, ok := s.prices[venueID]; ok {
		return p
	}
	return "$2,000"
}

type stubMailer struct {
	approvals  int
	rejections int
	lastReason string
	result     bool
}

func (m *stubMailer) SendBookingApproved(ctx context.Context, b *Booking) bool {
	m.approvals++
	return m.result
}

func (m *stubMailer) SendBookingRejected(ctx context.Context, b *Booking) bool {
	m.rejections++
	m.lastReason = b.RejectionReason
	return m.result
}

func newTestService() (*Service, *MemoryRepository, *stubMailer) {
	repo := NewMemoryRepository()
	mailer := &stubMailer{result: true}
	svc := NewService(repo, &stubPrices{prices: map[int]string{1: "$2,500"}}, mailer)
	return svc, repo, mailer
}

func submitRequest() *CreateBookingRequest {
	return &CreateBookingRequest{
		VenueID:      1,
		VenueName:    "Kigali Serena Hotel",
		CustomerName: "Sarah Johnson",
		Email:        "sarah@email.com",
		Phone:        "+250 788 123 456",
		EventDate:    "2024-08-15",
		GuestCount:   150,
	}
}

func TestSubmitSnapshotsVenuePrice(t *testing.T) {
	svc, _, _ := newTestService()

	b, err := svc.Submit(context.Background(), submitRequest())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if b.Price != "$2,500" {
		t.Fatalf("expected price $2,500, got %q", b.Price)
	}
	if b.Status != StatusPending {
		t.Fatalf("expected pending, got %s", b.Status)
	}
}

func TestSubmitUnknownVenueUsesDefaultPrice(t *testing.T) {
	svc, _, _ := newTestService()

	req := submitRequest()
	req.VenueID = 99
	req.VenueName = "Somewhere Else"

	b, err := svc.Submit(context.Background(), req)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if b.Price != "$2,000" {
		t.Fatalf("expected default price, got %q", b.Price)
	}
}

func TestSubmitSendsNoEmail(t *testing.T) {
	svc, _, mailer := newTestService()

	if _, err := svc.Submit(context.Background(), submitRequest()); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if mailer.approvals != 0 || mailer.rejections != 0 {
		t.Fatal("submission must not send notifications")
	}
}

func TestDecideApprove(t *testing.T) {
	svc, _, mailer := newTestService()
	ctx := context.Background()

	created, _ := svc.Submit(ctx, submitRequest())

	updated, emailSent, err := svc.Decide(ctx, created.ID, StatusApproved, "")
	if err != nil {
		t.Fatalf("decide: %v", err)
	}
	if updated.Status != StatusApproved {
		t.Fatalf("expected approved, got %s", updated.Status)
	}
	if updated.Price != "$2,500" {
		t.Fatalf("price changed during decision: %q", updated.Price)
	}
	if updated.RejectionReason != "" {
		t.Fatalf("unexpected rejection reason: %q", updated.RejectionReason)
	}
	if !emailSent {
		t.Fatal("expected email_sent=true")
	}
	if mailer.approvals != 1 {
		t.Fatalf("expected 1 approval notification, got %d", mailer.approvals)
	}
}

func TestDecideReject(t *testing.T) {
	svc, _, mailer := newTestService()
	ctx := context.Background()

	created, _ := svc.Submit(ctx, submitRequest())

	const reason = "Venue is already booked for that date."
	updated, emailSent, err := svc.Decide(ctx, created.ID, StatusRejected, reason)
	if err != nil {
		t.Fatalf("decide: %v", err)
	}
	if updated.Status != StatusRejected {
		t.Fatalf("expected rejected, got %s", updated.Status)
	}
	if updated.RejectionReason != reason {
		t.Fatalf("expected reason %q, got %q", reason, updated.RejectionReason)
	}
	if !emailSent {
		t.Fatal("expected email_sent=true")
	}
	if mailer.rejections != 1 {
		t.Fatalf("expected 1 rejection notification, got %d", mailer.rejections)
	}
	if mailer.lastReason != reason {
		t.Fatalf("notification carried reason %q, want %q", mailer.lastReason, reason)
	}
}

func TestDecideUnknownBooking(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	_, _, err := svc.Decide(ctx, 42, StatusApproved, "")
	if !errors.Is(err, ErrBookingNotFound) {
		t.Fatalf("expected ErrBookingNotFound, got %v", err)
	}

	all, _ := repo.List(ctx)
	if len(all) != 0 {
		t.Fatalf("store changed on failed decide: %d bookings", len(all))
	}
}

func TestDecideInvalidStatus(t *testing.T) {
	svc, _, _ := newTestService()

	created, _ := svc.Submit(context.Background(), submitRequest())

	_, _, err := svc.Decide(context.Background(), created.ID, StatusPending, "")
	if !errors.Is(err, ErrInvalidDecision) {
		t.Fatalf("expected ErrInvalidDecision, got %v", err)
	}
}

func TestDecideTwice(t *testing.T) {
	svc, _, mailer := newTestService()
	ctx := context.Background()

	created, _ := svc.Submit(ctx, submitRequest())

	if _, _, err := svc.Decide(ctx, created.ID, StatusApproved, ""); err != nil {
		t.Fatalf("first decide: %v", err)
	}

	_, _, err := svc.Decide(ctx, created.ID, StatusRejected, "changed my mind")
	if !errors.Is(err, ErrAlreadyDecided) {
		t.Fatalf("expected ErrAlreadyDecided, got %v", err)
	}

	// Terminal state stands
	b, err := svc.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if b.Status != StatusApproved {
		t.Fatalf("terminal state was overwritten: %s", b.Status)
	}
	if mailer.rejections != 0 {
		t.Fatal("rejection notification sent for a refused transition")
	}
}

func TestNotificationFailureDoesNotRollBack(t *testing.T) {
	svc, _, mailer := newTestService()
	mailer.result = false
	ctx := context.Background()

	created, _ := svc.Submit(ctx, submitRequest())

	updated, emailSent, err := svc.Decide(ctx, created.ID, StatusApproved, "")
	if err != nil {
		t.Fatalf("decide must not fail on notification failure: %v", err)
	}
	if emailSent {
		t.Fatal("expected email_sent=false")
	}
	if updated.Status != StatusApproved {
		t.Fatalf("expected approved, got %s", updated.Status)
	}

	// The committed transition is visible on re-read
	b, _ := svc.GetByID(ctx, created.ID)
	if b.Status != StatusApproved {
		t.Fatalf("transition rolled back: %s", b.Status)
	}
}
