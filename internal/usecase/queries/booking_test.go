//go:build unit

package queries_test

import (
	"context"
	"testing"

	"venue-booking-engine/internal/infra/memstore"
	"venue-booking-engine/internal/usecase/queries"
	"venue-booking-engine/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListVisibleBookings(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	q := queries.NewBookingQueries(store.Bookings(), store.Resources())

	ownerA := uuid.New()
	ownerB := uuid.New()
	resA := seedResource(t, store, func(b *builder.ResourceBuilder) { b.OwnerID = ownerA })
	resB := seedResource(t, store, func(b *builder.ResourceBuilder) {
		b.Name = "East Hall"
		b.OwnerID = ownerB
	})

	seedSlotBooking(t, store, resA.ID(), 10, 14)
	seedSlotBooking(t, store, resB.ID(), 10, 14)

	// Booking whose resource no longer exists.
	orphan, err := builder.NewBookingBuilder().BuildDomain()
	require.NoError(t, err)
	require.NoError(t, store.Bookings().Create(ctx, orphan))

	t.Run("super admin sees every booking including orphans", func(t *testing.T) {
		views, err := q.ListVisible(ctx, adminCaller())
		require.NoError(t, err)
		assert.Len(t, views, 3)

		var orphanView *queries.BookingView
		for _, v := range views {
			if v.ID == orphan.ID() {
				orphanView = v
			}
		}
		require.NotNil(t, orphanView)
		assert.Empty(t, orphanView.ResourceName)
		assert.Equal(t, "HALL", orphanView.ResourceType)
	})

	t.Run("owner sees only bookings on their resources", func(t *testing.T) {
		views, err := q.ListVisible(ctx, ownerCaller(ownerA))
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, resA.ID(), views[0].ResourceID)
		assert.Equal(t, resA.Name(), views[0].ResourceName)
	})

	t.Run("owner of nothing sees nothing", func(t *testing.T) {
		views, err := q.ListVisible(ctx, ownerCaller(uuid.New()))
		require.NoError(t, err)
		assert.Empty(t, views)
	})
}

func TestListOwners(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	q := queries.NewUserQueries(store.Users())

	owner, err := builder.NewUserBuilder().BuildDomain()
	require.NoError(t, err)
	require.NoError(t, store.Users().Create(ctx, owner))

	admin, err := builder.NewUserBuilder().AsSuperAdmin().BuildDomain()
	require.NoError(t, err)
	require.NoError(t, store.Users().Create(ctx, admin))

	views, err := q.ListOwners(ctx)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, owner.ID(), views[0].ID)
	assert.Equal(t, "owner1", views[0].Username)
}
