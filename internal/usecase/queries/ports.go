package queries

import (
	"context"
	"time"

	"venue-booking-engine/internal/domain/booking"
	"venue-booking-engine/internal/domain/resource"
	"venue-booking-engine/internal/domain/user"

	"github.com/google/uuid"
)

// Read-side ports. Stores return domain entities; views are assembled here
// so price resolution and interval formatting stay in one place.

type ResourceReads interface {
	FindByID(ctx context.Context, id uuid.UUID) (*resource.Resource, error)
	List(ctx context.Context, filter ResourceFilter) ([]*resource.Resource, error)
}

type BookingReads interface {
	ListAll(ctx context.Context) ([]*booking.Booking, error)
	ListByResourceIDs(ctx context.Context, resourceIDs []uuid.UUID) ([]*booking.Booking, error)
	// ConfirmedOverlapSet returns the ids among resourceIDs that have at
	// least one CONFIRMED booking intersecting [from, to).
	ConfirmedOverlapSet(ctx context.Context, resourceIDs []uuid.UUID, from, to time.Time) (map[uuid.UUID]struct{}, error)
}

type UserReads interface {
	ListByRole(ctx context.Context, role user.Role) ([]*user.User, error)
}
