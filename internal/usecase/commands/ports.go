package commands

import (
	"context"
	"time"

	"venue-booking-engine/internal/domain/booking"
	"venue-booking-engine/internal/domain/resource"
	"venue-booking-engine/internal/domain/user"

	"github.com/google/uuid"
)

// Write-side ports. Infra implements them on postgres; the in-memory store
// implements them for isolated tests.

type ResourceRepository interface {
	Create(ctx context.Context, r *resource.Resource) error
	FindByID(ctx context.Context, id uuid.UUID) (*resource.Resource, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type BookingRepository interface {
	// Create persists a booking. Implementations must refuse an insert that
	// would overlap an existing CONFIRMED booking on the same resource and
	// report it as a conflict kind, so a commit race lost to another process
	// surfaces instead of corrupting the availability invariant.
	Create(ctx context.Context, b *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	Update(ctx context.Context, b *booking.Booking) error
	// ConfirmedInWindow loads CONFIRMED bookings for the resource whose
	// stored bounds intersect [from, to). This is the coarse pre-filter;
	// the exact overlap predicate runs in the domain.
	ConfirmedInWindow(ctx context.Context, resourceID uuid.UUID, from, to time.Time) ([]*booking.Booking, error)
	HasConfirmedAfter(ctx context.Context, resourceID uuid.UUID, t time.Time) (bool, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindByUsername(ctx context.Context, username string) (*user.User, error)
	// CreateOwnerWithResource inserts both records atomically. If the
	// resource insert fails the owner insert is rolled back with it.
	CreateOwnerWithResource(ctx context.Context, owner *user.User, r *resource.Resource) error
}
