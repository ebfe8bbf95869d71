package commands

import (
	"context"
	"time"

	"venue-booking-engine/internal/domain/booking"
	"venue-booking-engine/internal/domain/resource"
	"venue-booking-engine/internal/infra"
	"venue-booking-engine/internal/pkg/clock"
	"venue-booking-engine/internal/pkg/errs"
	"venue-booking-engine/internal/pkg/lockmap"

	"github.com/google/uuid"
)

type CreateBookingParams struct {
	ResourceID uuid.UUID
	// For halls Start/End are the slot's clock bounds on one date. For
	// villas and rooms they are the check-in and check-out dates.
	Start time.Time
	End   time.Time

	CustomerName           string
	CustomerPhone          string
	CustomerEmail          string
	CustomerIdentityNumber string
}

type BookingCommands interface {
	Create(ctx context.Context, params CreateBookingParams) (*booking.Booking, error)
	Cancel(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	UpdatePayment(ctx context.Context, id uuid.UUID, next booking.PaymentStatus) (*booking.Booking, error)
}

type bookingCommandsImpl struct {
	bookings  BookingRepository
	resources ResourceRepository
	locks     *lockmap.LockMap
	clock     clock.Clock
}

func NewBookingCommands(
	bookings BookingRepository,
	resources ResourceRepository,
	locks *lockmap.LockMap,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		bookings:  bookings,
		resources: resources,
		locks:     locks,
		clock:     clk,
	}
}

// Create runs the commit protocol: snapshot the resource, build the booking,
// then check-and-insert under the resource's lock. Requests for different
// resources proceed in parallel; a lost race returns immediately, retrying is
// the caller's decision.
func (c *bookingCommandsImpl) Create(ctx context.Context, params CreateBookingParams) (*booking.Booking, error) {
	res, err := c.resources.FindByID(ctx, params.ResourceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, errs.Mark(err, ErrStorage)
	}

	iv, err := buildInterval(res.Kind(), params.Start, params.End)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	customer, err := booking.NewCustomerDetails(
		params.CustomerName,
		params.CustomerPhone,
		params.CustomerEmail,
		params.CustomerIdentityNumber,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	// Price is resolved from the resource snapshot read above; the same
	// fallback chain backs the amounts shown at search time.
	amount := resource.ResolvePrice(res)

	entity, err := booking.NewBooking(res.ID(), res.Kind(), iv, customer, amount, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	c.locks.Lock(res.ID())
	defer c.locks.Unlock(res.ID())

	candidates, err := c.bookings.ConfirmedInWindow(ctx, res.ID(), iv.Start(), iv.End())
	if err != nil {
		return nil, errs.Mark(err, ErrStorage)
	}
	if conflicting := booking.FindConflict(candidates, iv); conflicting != nil {
		return nil, newConflictError(conflicting.Interval())
	}

	if err := c.bookings.Create(ctx, entity); err != nil {
		// Another process slipped past the in-process lock; the storage
		// constraint caught it.
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.Mark(err, ErrConcurrencyConflict)
		}
		return nil, errs.Mark(err, ErrStorage)
	}

	return entity, nil
}

func (c *bookingCommandsImpl) Cancel(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	entity, err := c.findBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := entity.Cancel(); err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	if err := c.bookings.Update(ctx, entity); err != nil {
		return nil, errs.Mark(err, ErrStorage)
	}
	return entity, nil
}

func (c *bookingCommandsImpl) UpdatePayment(ctx context.Context, id uuid.UUID, next booking.PaymentStatus) (*booking.Booking, error) {
	entity, err := c.findBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := entity.TransitionPayment(next); err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	if err := c.bookings.Update(ctx, entity); err != nil {
		return nil, errs.Mark(err, ErrStorage)
	}
	return entity, nil
}

func (c *bookingCommandsImpl) findBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	entity, err := c.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrStorage)
	}
	return entity, nil
}

// buildInterval picks the interval shape the resource type dictates.
func buildInterval(t resource.Type, start, end time.Time) (booking.Interval, error) {
	if t.UsesTimeSlots() {
		return booking.NewTimeSlot(start, end)
	}
	return booking.NewStayRange(start, end)
}
