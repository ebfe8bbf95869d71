//go:build unit

package commands_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"venue-booking-engine/internal/domain/booking"
	"venue-booking-engine/internal/domain/resource"
	"venue-booking-engine/internal/infra/memstore"
	"venue-booking-engine/internal/pkg/clock"
	"venue-booking-engine/internal/pkg/lockmap"
	"venue-booking-engine/internal/usecase/commands"
	"venue-booking-engine/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 1, 20, 9, 0, 0, 0, time.UTC)

func newBookingFixture(t *testing.T) (commands.BookingCommands, *memstore.Store) {
	t.Helper()
	store := memstore.New()
	cmds := commands.NewBookingCommands(store.Bookings(), store.Resources(), lockmap.New(), clock.NewMockClock(testNow))
	return cmds, store
}

func seedResource(t *testing.T, store *memstore.Store, build func(*builder.ResourceBuilder)) *resource.Resource {
	t.Helper()
	b := builder.NewResourceBuilder()
	if build != nil {
		build(b)
	}
	r, err := b.BuildDomain()
	require.NoError(t, err)
	require.NoError(t, store.Resources().Create(context.Background(), r))
	return r
}

func slotParams(resourceID uuid.UUID, startHour, endHour int) commands.CreateBookingParams {
	return commands.CreateBookingParams{
		ResourceID:    resourceID,
		Start:         time.Date(2026, 2, 1, startHour, 0, 0, 0, time.UTC),
		End:           time.Date(2026, 2, 1, endHour, 0, 0, 0, time.UTC),
		CustomerName:  "Asha Verma",
		CustomerPhone: "+91-98100-12345",
	}
}

func stayParams(resourceID uuid.UUID, checkInDay, checkOutDay int) commands.CreateBookingParams {
	return commands.CreateBookingParams{
		ResourceID:    resourceID,
		Start:         time.Date(2026, 2, checkInDay, 0, 0, 0, 0, time.UTC),
		End:           time.Date(2026, 2, checkOutDay, 0, 0, 0, 0, time.UTC),
		CustomerName:  "Asha Verma",
		CustomerPhone: "+91-98100-12345",
	}
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("hall slot priced from the resource", func(t *testing.T) {
		cmds, store := newBookingFixture(t)
		hall := seedResource(t, store, nil)

		created, err := cmds.Create(ctx, slotParams(hall.ID(), 10, 14))
		require.NoError(t, err)

		assert.Equal(t, hall.ID(), created.ResourceID())
		assert.Equal(t, booking.StatusConfirmed, created.Status())
		assert.Equal(t, booking.PaymentPending, created.PaymentStatus())
		assert.Equal(t, int64(20000), created.TotalAmount())
	})

	t.Run("unknown resource", func(t *testing.T) {
		cmds, _ := newBookingFixture(t)

		_, err := cmds.Create(ctx, slotParams(uuid.New(), 10, 14))
		require.ErrorIs(t, err, commands.ErrResourceNotFound)
	})

	t.Run("overlapping slot is rejected with the blocking interval", func(t *testing.T) {
		cmds, store := newBookingFixture(t)
		hall := seedResource(t, store, nil)

		first, err := cmds.Create(ctx, slotParams(hall.ID(), 10, 14))
		require.NoError(t, err)

		_, err = cmds.Create(ctx, slotParams(hall.ID(), 13, 16))
		require.ErrorIs(t, err, commands.ErrBookingConflict)

		var conflict *commands.ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, first.Interval().String(), conflict.Conflicting.String())
	})

	t.Run("adjacent slot succeeds", func(t *testing.T) {
		cmds, store := newBookingFixture(t)
		hall := seedResource(t, store, nil)

		_, err := cmds.Create(ctx, slotParams(hall.ID(), 10, 14))
		require.NoError(t, err)

		_, err = cmds.Create(ctx, slotParams(hall.ID(), 14, 18))
		require.NoError(t, err)
	})

	t.Run("cancelled booking frees its interval", func(t *testing.T) {
		cmds, store := newBookingFixture(t)
		hall := seedResource(t, store, nil)

		first, err := cmds.Create(ctx, slotParams(hall.ID(), 10, 14))
		require.NoError(t, err)
		_, err = cmds.Cancel(ctx, first.ID())
		require.NoError(t, err)

		_, err = cmds.Create(ctx, slotParams(hall.ID(), 10, 14))
		require.NoError(t, err)
	})

	t.Run("villa stay with reusable check-out day", func(t *testing.T) {
		cmds, store := newBookingFixture(t)
		villa := seedResource(t, store, func(b *builder.ResourceBuilder) { b.AsVilla() })

		first, err := cmds.Create(ctx, stayParams(villa.ID(), 1, 5))
		require.NoError(t, err)
		assert.Equal(t, int64(8000), first.TotalAmount())

		_, err = cmds.Create(ctx, stayParams(villa.ID(), 5, 7))
		require.NoError(t, err)

		_, err = cmds.Create(ctx, stayParams(villa.ID(), 4, 6))
		require.ErrorIs(t, err, commands.ErrBookingConflict)
	})

	t.Run("slot bounds on a villa collapse to an empty stay", func(t *testing.T) {
		cmds, store := newBookingFixture(t)
		villa := seedResource(t, store, func(b *builder.ResourceBuilder) { b.AsVilla() })

		params := slotParams(villa.ID(), 10, 14)
		_, err := cmds.Create(ctx, params)
		require.ErrorIs(t, err, commands.ErrValidation)
	})

	t.Run("missing customer name", func(t *testing.T) {
		cmds, store := newBookingFixture(t)
		hall := seedResource(t, store, nil)

		params := slotParams(hall.ID(), 10, 14)
		params.CustomerName = ""
		_, err := cmds.Create(ctx, params)
		require.ErrorIs(t, err, commands.ErrValidation)
	})

	t.Run("different resources do not contend", func(t *testing.T) {
		cmds, store := newBookingFixture(t)
		hallA := seedResource(t, store, nil)
		hallB := seedResource(t, store, func(b *builder.ResourceBuilder) { b.Name = "East Hall" })

		_, err := cmds.Create(ctx, slotParams(hallA.ID(), 10, 14))
		require.NoError(t, err)
		_, err = cmds.Create(ctx, slotParams(hallB.ID(), 10, 14))
		require.NoError(t, err)
	})
}

func TestCreateBookingConcurrent(t *testing.T) {
	ctx := context.Background()
	cmds, store := newBookingFixture(t)
	hall := seedResource(t, store, nil)

	const attempts = 32

	var wg sync.WaitGroup
	results := make([]error, attempts)
	for i := range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, results[i] = cmds.Create(ctx, slotParams(hall.ID(), 10, 14))
		}()
	}
	wg.Wait()

	var successes, conflicts int
	for _, err := range results {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, commands.ErrBookingConflict):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, successes)
	assert.Equal(t, attempts-1, conflicts)

	stored, err := store.Bookings().ConfirmedInWindow(ctx, hall.ID(),
		time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestCancelBooking(t *testing.T) {
	ctx := context.Background()
	cmds, store := newBookingFixture(t)
	hall := seedResource(t, store, nil)

	t.Run("unknown booking", func(t *testing.T) {
		_, err := cmds.Cancel(ctx, uuid.New())
		require.ErrorIs(t, err, commands.ErrBookingNotFound)
	})

	t.Run("cancel then cancel again", func(t *testing.T) {
		created, err := cmds.Create(ctx, slotParams(hall.ID(), 10, 14))
		require.NoError(t, err)

		cancelled, err := cmds.Cancel(ctx, created.ID())
		require.NoError(t, err)
		assert.Equal(t, booking.StatusCancelled, cancelled.Status())

		_, err = cmds.Cancel(ctx, created.ID())
		require.ErrorIs(t, err, commands.ErrValidation)
	})
}

func TestUpdatePayment(t *testing.T) {
	ctx := context.Background()
	cmds, store := newBookingFixture(t)
	hall := seedResource(t, store, nil)

	created, err := cmds.Create(ctx, slotParams(hall.ID(), 10, 14))
	require.NoError(t, err)

	t.Run("unknown booking", func(t *testing.T) {
		_, err := cmds.UpdatePayment(ctx, uuid.New(), booking.PaymentPaid)
		require.ErrorIs(t, err, commands.ErrBookingNotFound)
	})

	t.Run("skipping a step is rejected", func(t *testing.T) {
		_, err := cmds.UpdatePayment(ctx, created.ID(), booking.PaymentRefunded)
		require.ErrorIs(t, err, commands.ErrValidation)
	})

	t.Run("pending to paid to refunded", func(t *testing.T) {
		paid, err := cmds.UpdatePayment(ctx, created.ID(), booking.PaymentPaid)
		require.NoError(t, err)
		assert.Equal(t, booking.PaymentPaid, paid.PaymentStatus())

		refunded, err := cmds.UpdatePayment(ctx, created.ID(), booking.PaymentRefunded)
		require.NoError(t, err)
		assert.Equal(t, booking.PaymentRefunded, refunded.PaymentStatus())
	})
}
