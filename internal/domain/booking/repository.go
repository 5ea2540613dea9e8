package booking

import (
	"context"
	"sync"
	"time"
)

// Repository is the authoritative store of bookings. Absence is not an
// error: lookups return nil for unknown ids. A durable implementation can
// replace the in-memory one behind this interface.
type Repository interface {
	List(ctx context.Context) ([]*Booking, error)
	ListByStatus(ctx context.Context, status Status) ([]*Booking, error)
	GetByID(ctx context.Context, id int) (*Booking, error)
	Create(ctx context.Context, b *Booking) (*Booking, error)
	UpdateStatus(ctx context.Context, id int, status Status, rejectionReason string) (*Booking, error)
}

// MemoryRepository keeps bookings in process memory, insertion-ordered.
// All mutations run under a mutex so concurrent submissions cannot allocate
// duplicate ids or lose updates.
type MemoryRepository struct {
	mu       sync.Mutex
	bookings []*Booking
}

// NewMemoryRepository creates an empty in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// List returns snapshot copies of all bookings, oldest first
func (r *MemoryRepository) List(ctx context.Context) ([]*Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*Booking, len(r.bookings))
	for i, b := range r.bookings {
		cp := *b
		out[i] = &cp
	}
	return out, nil
}

// ListByStatus returns snapshot copies of bookings with the given status
func (r *MemoryRepository) ListByStatus(ctx context.Context, status Status) ([]*Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*Booking
	for _, b := range r.bookings {
		if b.Status == status {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}

// GetByID returns a copy of the booking, or nil when absent
func (r *MemoryRepository) GetByID(ctx context.Context, id int) (*Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if b := r.find(id); b != nil {
		cp := *b
		return &cp, nil
	}
	return nil, nil
}

// Create allocates the next id, stamps submission time, forces pending
// status and appends the booking. Returns a copy of the stored record.
func (r *MemoryRepository) Create(ctx context.Context, b *Booking) (*Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *b
	stored.ID = r.nextID()
	stored.Status = StatusPending
	stored.RejectionReason = ""
	stored.SubmittedAt = time.Now().UTC()

	r.bookings = append(r.bookings, &stored)

	cp := stored
	return &cp, nil
}

// UpdateStatus overwrites status (and rejection reason when rejecting) and
// returns a copy of the updated record, or nil when the id is unknown.
// Transition legality is the caller's responsibility.
func (r *MemoryRepository) UpdateStatus(ctx context.Context, id int, status Status, rejectionReason string) (*Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b := r.find(id)
	if b == nil {
		return nil, nil
	}

	b.Status = status
	if status == StatusRejected {
		b.RejectionReason = rejectionReason
	} else {
		b.RejectionReason = ""
	}

	cp := *b
	return &cp, nil
}

// Seed loads fixture bookings, keeping copies so callers cannot mutate the
// store afterwards
func (r *MemoryRepository) Seed(bookings []*Booking) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range bookings {
		cp := *b
		r.bookings = append(r.bookings, &cp)
	}
}

func (r *MemoryRepository) find(id int) *Booking {
	for _, b := range r.bookings {
		if b.ID == id {
			return b
		}
	}
	return nil
}

func (r *MemoryRepository) nextID() int {
	max := 0
	for _, b := range r.bookings {
		if b.ID > max {
			max = b.ID
		}
	}
	return max + 1
}
