package booking

import (
	"context"
	"testing"
)

func TestCreateAssignsMonotonicIDs(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	seen := map[int]bool{}
	for i := 0; i < 3; i++ {
		b, err := repo.Create(ctx, &Booking{VenueID: 1, VenueName: "Kigali Serena Hotel"})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if b.ID != i+1 {
			t.Fatalf("expected id %d, got %d", i+1, b.ID)
		}
		if seen[b.ID] {
			t.Fatalf("duplicate id %d", b.ID)
		}
		seen[b.ID] = true
	}
}

func TestCreateContinuesFromMaxSeededID(t *testing.T) {
	repo := NewMemoryRepository()
	repo.Seed(DemoBookings())

	b, err := repo.Create(context.Background(), &Booking{VenueID: 2, VenueName: "Ubumwe Grande Hotel"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if b.ID != 4 {
		t.Fatalf("expected id 4 after three seeded bookings, got %d", b.ID)
	}
}

func TestCreateForcesPendingStatus(t *testing.T) {
	repo := NewMemoryRepository()

	b, err := repo.Create(context.Background(), &Booking{
		VenueID:         1,
		VenueName:       "Kigali Serena Hotel",
		Status:          StatusApproved,
		RejectionReason: "should be dropped",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if b.Status != StatusPending {
		t.Fatalf("expected pending, got %s", b.Status)
	}
	if b.RejectionReason != "" {
		t.Fatalf("expected empty rejection reason, got %q", b.RejectionReason)
	}
	if b.SubmittedAt.IsZero() {
		t.Fatal("expected submitted_at to be set")
	}
}

func TestGetByIDReturnsCopy(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	created, _ := repo.Create(ctx, &Booking{VenueID: 1, VenueName: "Kigali Serena Hotel", CustomerName: "Sarah Johnson"})

	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	got.CustomerName = "Mutated"
	got.Status = StatusRejected

	again, _ := repo.GetByID(ctx, created.ID)
	if again.CustomerName != "Sarah Johnson" {
		t.Fatalf("store was mutated through a returned copy: %q", again.CustomerName)
	}
	if again.Status != StatusPending {
		t.Fatalf("store status was mutated through a returned copy: %s", again.Status)
	}
}

func TestGetByIDAbsent(t *testing.T) {
	repo := NewMemoryRepository()

	b, err := repo.GetByID(context.Background(), 42)
	if err != nil {
		t.Fatalf("expected no error for absent id, got %v", err)
	}
	if b != nil {
		t.Fatalf("expected nil for absent id, got %+v", b)
	}
}

func TestUpdateStatusAbsent(t *testing.T) {
	repo := NewMemoryRepository()

	b, err := repo.UpdateStatus(context.Background(), 42, StatusApproved, "")
	if err != nil {
		t.Fatalf("expected no error for absent id, got %v", err)
	}
	if b != nil {
		t.Fatalf("expected nil for absent id, got %+v", b)
	}
}

func TestUpdateStatusRejectionReasonPairing(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	created, _ := repo.Create(ctx, &Booking{VenueID: 1, VenueName: "Kigali Serena Hotel"})

	rejected, err := repo.UpdateStatus(ctx, created.ID, StatusRejected, "Venue is already booked for that date.")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if rejected.RejectionReason != "Venue is already booked for that date." {
		t.Fatalf("expected rejection reason, got %q", rejected.RejectionReason)
	}

	// Approving clears any stale reason so the pairing invariant holds
	approved, err := repo.UpdateStatus(ctx, created.ID, StatusApproved, "")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if approved.RejectionReason != "" {
		t.Fatalf("expected cleared rejection reason, got %q", approved.RejectionReason)
	}
}

func TestListPreservesInsertionOrder(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	for _, name := range []string{"first", "second", "third"} {
		if _, err := repo.Create(ctx, &Booking{VenueID: 1, VenueName: "Kigali Serena Hotel", CustomerName: name}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 bookings, got %d", len(all))
	}
	for i, name := range []string{"first", "second", "third"} {
		if all[i].CustomerName != name {
			t.Fatalf("expected %q at position %d, got %q", name, i, all[i].CustomerName)
		}
	}
}

func TestListByStatus(t *testing.T) {
	repo := NewMemoryRepository()
	repo.Seed(DemoBookings())

	pending, err := repo.ListByStatus(context.Background(), StatusPending)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("expected 1 pending booking in fixtures, got %d", len(pending))
	}
	if pending[0].CustomerName != "Sarah Johnson" {
		t.Fatalf("unexpected pending booking: %q", pending[0].CustomerName)
	}
}
