package queries

import (
	"context"
	"time"

	"venue-booking-engine/internal/domain/booking"
	"venue-booking-engine/internal/domain/resource"
	"venue-booking-engine/internal/infra"
	"venue-booking-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidSearchType = errs.New("invalid resource type")
	ErrInvalidInterval   = errs.New("invalid search interval")
	ErrResourceNotFound  = errs.New("resource not found")
)

type ResourceQueries interface {
	// GetVisible returns a single resource if the caller may see it.
	// A resource outside the caller's visibility reads as not found.
	GetVisible(ctx context.Context, caller Caller, id uuid.UUID) (*ResourceView, error)
	// ListVisible returns the catalog slice the caller is allowed to see,
	// optionally narrowed by type.
	ListVisible(ctx context.Context, caller Caller, kind *string) ([]*ResourceView, error)
	// SearchAvailable returns resources of the given type whose commit
	// would not immediately conflict for the interval. Non-binding: the
	// binding decision is made at commit time.
	SearchAvailable(ctx context.Context, kind string, start, end time.Time) ([]*ResourceView, error)
}

type resourceQueriesImpl struct {
	resources ResourceReads
	bookings  BookingReads
}

func NewResourceQueries(resources ResourceReads, bookings BookingReads) ResourceQueries {
	return &resourceQueriesImpl{
		resources: resources,
		bookings:  bookings,
	}
}

func (q *resourceQueriesImpl) GetVisible(ctx context.Context, caller Caller, id uuid.UUID) (*ResourceView, error) {
	r, err := q.resources.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, err
	}
	if !caller.SeesEverything() && r.OwnerID() != caller.ID {
		return nil, ErrResourceNotFound
	}
	return toResourceView(r), nil
}

func (q *resourceQueriesImpl) ListVisible(ctx context.Context, caller Caller, kind *string) ([]*ResourceView, error) {
	filter := applyVisibility(caller, ResourceFilter{Type: kind})

	entities, err := q.resources.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	views := make([]*ResourceView, len(entities))
	for i, r := range entities {
		views[i] = toResourceView(r)
	}
	return views, nil
}

func (q *resourceQueriesImpl) SearchAvailable(ctx context.Context, kind string, start, end time.Time) ([]*ResourceView, error) {
	resourceType, err := resource.NewType(kind)
	if err != nil {
		return nil, ErrInvalidSearchType
	}

	iv, err := searchInterval(resourceType, start, end)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidInterval)
	}

	typeStr := resourceType.String()
	entities, err := q.resources.List(ctx, ResourceFilter{Type: &typeStr})
	if err != nil {
		return nil, err
	}
	if len(entities) == 0 {
		return []*ResourceView{}, nil
	}

	ids := make([]uuid.UUID, len(entities))
	for i, r := range entities {
		ids[i] = r.ID()
	}

	taken, err := q.bookings.ConfirmedOverlapSet(ctx, ids, iv.Start(), iv.End())
	if err != nil {
		return nil, err
	}

	views := make([]*ResourceView, 0, len(entities))
	for _, r := range entities {
		if _, conflicted := taken[r.ID()]; conflicted {
			continue
		}
		views = append(views, toResourceView(r))
	}
	return views, nil
}

// searchInterval builds the interval shape the searched type dictates, the
// same way the commit protocol does.
func searchInterval(t resource.Type, start, end time.Time) (booking.Interval, error) {
	if t.UsesTimeSlots() {
		return booking.NewTimeSlot(start, end)
	}
	return booking.NewStayRange(start, end)
}

func toResourceView(r *resource.Resource) *ResourceView {
	return &ResourceView{
		ID:           r.ID(),
		Name:         r.Name(),
		Type:         r.Kind().String(),
		OwnerID:      r.OwnerID(),
		IsAC:         r.IsAC(),
		Image:        r.Image(),
		Address:      r.Address(),
		DisplayPrice: resource.ResolvePrice(r),
		CreatedAt:    r.CreatedAt(),
	}
}
