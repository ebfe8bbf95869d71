//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"venue-booking-engine/internal/domain/resource"
	"venue-booking-engine/internal/domain/user"
	"venue-booking-engine/internal/infra/memstore"
	"venue-booking-engine/internal/pkg/ptr"
	"venue-booking-engine/internal/usecase/queries"
	"venue-booking-engine/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

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

func seedSlotBooking(t *testing.T, store *memstore.Store, resourceID uuid.UUID, startHour, endHour int) {
	t.Helper()
	b, err := builder.NewBookingBuilder().With(func(bb *builder.BookingBuilder) {
		bb.ResourceID = resourceID
		bb.Start = time.Date(2026, 2, 1, startHour, 0, 0, 0, time.UTC)
		bb.End = time.Date(2026, 2, 1, endHour, 0, 0, 0, time.UTC)
	}).BuildDomain()
	require.NoError(t, err)
	require.NoError(t, store.Bookings().Create(context.Background(), b))
}

func adminCaller() queries.Caller {
	return queries.Caller{ID: uuid.New(), Role: user.RoleSuperAdmin}
}

func ownerCaller(id uuid.UUID) queries.Caller {
	return queries.Caller{ID: id, Role: user.RoleOwner}
}

func TestListVisible(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	q := queries.NewResourceQueries(store.Resources(), store.Bookings())

	ownerA := uuid.New()
	ownerB := uuid.New()
	seedResource(t, store, nil) // platform hall
	resA := seedResource(t, store, func(b *builder.ResourceBuilder) {
		b.AsVilla()
		b.OwnerID = ownerA
	})
	seedResource(t, store, func(b *builder.ResourceBuilder) {
		b.AsRoom()
		b.OwnerID = ownerB
	})

	t.Run("super admin sees the whole catalog", func(t *testing.T) {
		views, err := q.ListVisible(ctx, adminCaller(), nil)
		require.NoError(t, err)
		assert.Len(t, views, 3)
	})

	t.Run("owner only sees their own resources", func(t *testing.T) {
		views, err := q.ListVisible(ctx, ownerCaller(ownerA), nil)
		require.NoError(t, err)
		require.Len(t, views, 1)

		expected := queries.ResourceView{
			ID:           resA.ID(),
			Name:         "Seaside Villa",
			Type:         "VILLA",
			OwnerID:      ownerA,
			IsAC:         true,
			Address:      "12 Harbor Street",
			DisplayPrice: 8000,
		}
		if diff := cmp.Diff(&expected, views[0], cmpopts.IgnoreFields(queries.ResourceView{}, "CreatedAt")); diff != "" {
			t.Errorf("ResourceView mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("owner with no resources sees nothing", func(t *testing.T) {
		views, err := q.ListVisible(ctx, ownerCaller(uuid.New()), nil)
		require.NoError(t, err)
		assert.Empty(t, views)
	})

	t.Run("type filter narrows within visibility", func(t *testing.T) {
		kind := "VILLA"
		views, err := q.ListVisible(ctx, adminCaller(), &kind)
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, "VILLA", views[0].Type)

		views, err = q.ListVisible(ctx, ownerCaller(ownerB), &kind)
		require.NoError(t, err)
		assert.Empty(t, views)
	})
}

func TestGetVisible(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	q := queries.NewResourceQueries(store.Resources(), store.Bookings())

	ownerA := uuid.New()
	res := seedResource(t, store, func(b *builder.ResourceBuilder) {
		b.AsVilla()
		b.OwnerID = ownerA
	})

	t.Run("super admin fetches any resource", func(t *testing.T) {
		view, err := q.GetVisible(ctx, adminCaller(), res.ID())
		require.NoError(t, err)
		assert.Equal(t, res.ID(), view.ID)
	})

	t.Run("owner fetches their own resource", func(t *testing.T) {
		view, err := q.GetVisible(ctx, ownerCaller(ownerA), res.ID())
		require.NoError(t, err)
		assert.Equal(t, int64(8000), view.DisplayPrice)
	})

	t.Run("another owner's resource reads as not found", func(t *testing.T) {
		_, err := q.GetVisible(ctx, ownerCaller(uuid.New()), res.ID())
		require.ErrorIs(t, err, queries.ErrResourceNotFound)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := q.GetVisible(ctx, adminCaller(), uuid.New())
		require.ErrorIs(t, err, queries.ErrResourceNotFound)
	})
}

func TestSearchAvailable(t *testing.T) {
	ctx := context.Background()

	slot := func(h int) time.Time {
		return time.Date(2026, 2, 1, h, 0, 0, 0, time.UTC)
	}

	t.Run("booked hall is excluded for an overlapping slot", func(t *testing.T) {
		store := memstore.New()
		q := queries.NewResourceQueries(store.Resources(), store.Bookings())
		booked := seedResource(t, store, nil)
		free := seedResource(t, store, func(b *builder.ResourceBuilder) { b.Name = "East Hall" })
		seedSlotBooking(t, store, booked.ID(), 10, 14)

		views, err := q.SearchAvailable(ctx, "HALL", slot(13), slot(16))
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, free.ID(), views[0].ID)
	})

	t.Run("adjacent slot keeps the hall available", func(t *testing.T) {
		store := memstore.New()
		q := queries.NewResourceQueries(store.Resources(), store.Bookings())
		booked := seedResource(t, store, nil)
		seedSlotBooking(t, store, booked.ID(), 10, 14)

		views, err := q.SearchAvailable(ctx, "HALL", slot(14), slot(18))
		require.NoError(t, err)
		assert.Len(t, views, 1)
	})

	t.Run("cancelled booking does not hide the resource", func(t *testing.T) {
		store := memstore.New()
		q := queries.NewResourceQueries(store.Resources(), store.Bookings())
		booked := seedResource(t, store, nil)

		b, err := builder.NewBookingBuilder().With(func(bb *builder.BookingBuilder) {
			bb.ResourceID = booked.ID()
		}).BuildDomain()
		require.NoError(t, err)
		require.NoError(t, b.Cancel())
		require.NoError(t, store.Bookings().Create(ctx, b))

		views, err := q.SearchAvailable(ctx, "HALL", slot(10), slot(14))
		require.NoError(t, err)
		assert.Len(t, views, 1)
	})

	t.Run("stay search uses the check-out exclusive rule", func(t *testing.T) {
		store := memstore.New()
		q := queries.NewResourceQueries(store.Resources(), store.Bookings())
		villa := seedResource(t, store, func(b *builder.ResourceBuilder) { b.AsVilla() })

		b, err := builder.NewBookingBuilder().With(func(bb *builder.BookingBuilder) {
			bb.ResourceID = villa.ID()
			bb.AsStay(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC))
		}).BuildDomain()
		require.NoError(t, err)
		require.NoError(t, store.Bookings().Create(ctx, b))

		views, err := q.SearchAvailable(ctx, "VILLA",
			time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC), time.Date(2026, 2, 7, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Len(t, views, 1)

		views, err = q.SearchAvailable(ctx, "VILLA",
			time.Date(2026, 2, 4, 0, 0, 0, 0, time.UTC), time.Date(2026, 2, 6, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Empty(t, views)
	})

	t.Run("invalid type", func(t *testing.T) {
		store := memstore.New()
		q := queries.NewResourceQueries(store.Resources(), store.Bookings())

		_, err := q.SearchAvailable(ctx, "TENT", slot(10), slot(14))
		require.ErrorIs(t, err, queries.ErrInvalidSearchType)
	})

	t.Run("invalid interval", func(t *testing.T) {
		store := memstore.New()
		q := queries.NewResourceQueries(store.Resources(), store.Bookings())

		_, err := q.SearchAvailable(ctx, "HALL", slot(14), slot(10))
		require.ErrorIs(t, err, queries.ErrInvalidInterval)
	})
}

func TestDisplayPriceFallback(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	q := queries.NewResourceQueries(store.Resources(), store.Bookings())

	seedResource(t, store, func(b *builder.ResourceBuilder) {
		b.Morning = nil
		b.FullDay = ptr.To(int64(30000))
	})

	views, err := q.ListVisible(ctx, adminCaller(), nil)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, int64(30000), views[0].DisplayPrice)
}
