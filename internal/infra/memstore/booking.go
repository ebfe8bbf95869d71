package memstore

import (
	"context"
	"time"

	"venue-booking-engine/internal/domain/booking"
	"venue-booking-engine/internal/infra"

	"github.com/google/uuid"
)

type BookingStore struct {
	s *Store
}

func (r *BookingStore) Create(ctx context.Context, b *booking.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	// Same arbitration the postgres exclusion constraint performs.
	if b.Occupies() {
		for _, existing := range r.s.bookings {
			if existing.ResourceID() != b.ResourceID() || !existing.Occupies() {
				continue
			}
			if existing.Interval().Overlaps(b.Interval()) {
				return infra.WrapRepoErr("overlapping confirmed booking", nil, infra.KindConflict)
			}
		}
	}

	r.s.bookings[b.ID()] = *b
	return nil
}

func (r *BookingStore) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	b, ok := r.s.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return &b, nil
}

func (r *BookingStore) Update(ctx context.Context, b *booking.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.bookings[b.ID()]; !ok {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	r.s.bookings[b.ID()] = *b
	return nil
}

func (r *BookingStore) ConfirmedInWindow(ctx context.Context, resourceID uuid.UUID, from, to time.Time) ([]*booking.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var result []*booking.Booking
	for _, b := range r.s.bookings {
		if b.ResourceID() != resourceID || !b.Occupies() {
			continue
		}
		iv := b.Interval()
		if iv.Start().Before(to) && iv.End().After(from) {
			cp := b
			result = append(result, &cp)
		}
	}
	return result, nil
}

func (r *BookingStore) HasConfirmedAfter(ctx context.Context, resourceID uuid.UUID, t time.Time) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, b := range r.s.bookings {
		if b.ResourceID() == resourceID && b.Occupies() && b.Interval().End().After(t) {
			return true, nil
		}
	}
	return false, nil
}

func (r *BookingStore) ListAll(ctx context.Context) ([]*booking.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	result := make([]*booking.Booking, 0, len(r.s.bookings))
	for _, b := range r.s.bookings {
		cp := b
		result = append(result, &cp)
	}
	return result, nil
}

func (r *BookingStore) ListByResourceIDs(ctx context.Context, resourceIDs []uuid.UUID) ([]*booking.Booking, error) {
	members := make(map[uuid.UUID]struct{}, len(resourceIDs))
	for _, id := range resourceIDs {
		members[id] = struct{}{}
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var result []*booking.Booking
	for _, b := range r.s.bookings {
		if _, ok := members[b.ResourceID()]; ok {
			cp := b
			result = append(result, &cp)
		}
	}
	return result, nil
}

func (r *BookingStore) ConfirmedOverlapSet(ctx context.Context, resourceIDs []uuid.UUID, from, to time.Time) (map[uuid.UUID]struct{}, error) {
	members := make(map[uuid.UUID]struct{}, len(resourceIDs))
	for _, id := range resourceIDs {
		members[id] = struct{}{}
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	taken := make(map[uuid.UUID]struct{})
	for _, b := range r.s.bookings {
		if _, ok := members[b.ResourceID()]; !ok || !b.Occupies() {
			continue
		}
		iv := b.Interval()
		if iv.Start().Before(to) && iv.End().After(from) {
			taken[b.ResourceID()] = struct{}{}
		}
	}
	return taken, nil
}
