package queries

import (
	"context"

	"venue-booking-engine/internal/domain/booking"

	"github.com/google/uuid"
)

type BookingQueries interface {
	// ListVisible returns every booking on a resource the caller may see.
	ListVisible(ctx context.Context, caller Caller) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	bookings  BookingReads
	resources ResourceReads
}

func NewBookingQueries(bookings BookingReads, resources ResourceReads) BookingQueries {
	return &bookingQueriesImpl{
		bookings:  bookings,
		resources: resources,
	}
}

func (q *bookingQueriesImpl) ListVisible(ctx context.Context, caller Caller) ([]*BookingView, error) {
	visible, err := q.resources.List(ctx, applyVisibility(caller, ResourceFilter{}))
	if err != nil {
		return nil, err
	}

	names := make(map[uuid.UUID]string, len(visible))
	ids := make([]uuid.UUID, len(visible))
	for i, r := range visible {
		ids[i] = r.ID()
		names[r.ID()] = r.Name()
	}

	var entities []*booking.Booking
	if caller.SeesEverything() {
		// Includes bookings whose resource was deleted since; they keep
		// their denormalized type and stay auditable.
		entities, err = q.bookings.ListAll(ctx)
	} else {
		entities, err = q.bookings.ListByResourceIDs(ctx, ids)
	}
	if err != nil {
		return nil, err
	}

	views := make([]*BookingView, len(entities))
	for i, b := range entities {
		views[i] = toBookingView(b, names[b.ResourceID()])
	}
	return views, nil
}

func toBookingView(b *booking.Booking, resourceName string) *BookingView {
	iv := b.Interval()
	return &BookingView{
		ID:             b.ID(),
		ResourceID:     b.ResourceID(),
		ResourceName:   resourceName,
		ResourceType:   b.ResourceType().String(),
		Start:          iv.Start(),
		End:            iv.End(),
		Interval:       iv.String(),
		CustomerName:   b.Customer().Name,
		CustomerPhone:  b.Customer().Phone,
		CustomerEmail:  b.Customer().Email,
		IdentityNumber: b.Customer().IdentityNumber,
		TotalAmount:    b.TotalAmount(),
		PaymentStatus:  b.PaymentStatus().String(),
		Status:         b.Status().String(),
		CreatedAt:      b.CreatedAt(),
	}
}
