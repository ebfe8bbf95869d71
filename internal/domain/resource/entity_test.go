//go:build unit

package resource_test

import (
	"strings"
	"testing"

	"venue-booking-engine/internal/domain/resource"
	"venue-booking-engine/internal/pkg/ptr"
	"venue-booking-engine/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ResourceBuilder)
	errIs  error
}

func TestNewResource(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewResourceBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Grand Hall", actual.Name())
		assert.Equal(t, resource.TypeHall, actual.Kind())
		assert.True(t, actual.IsPlatformOperated())
	})

	t.Run("owned resource", func(t *testing.T) {
		ownerID := uuid.New()
		actual, err := builder.NewResourceBuilder().With(func(b *builder.ResourceBuilder) {
			b.OwnerID = ownerID
		}).BuildDomain()
		require.NoError(t, err)

		assert.False(t, actual.IsPlatformOperated())
		assert.Equal(t, ownerID, actual.OwnerID())
	})

	t.Run("name validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty name",
				mutate: func(b *builder.ResourceBuilder) { b.Name = "" },
				errIs:  resource.ErrEmptyResourceName,
			},
			{
				name:   "whitespace only name",
				mutate: func(b *builder.ResourceBuilder) { b.Name = "   " },
				errIs:  resource.ErrEmptyResourceName,
			},
			{
				name:   "name at maximum length",
				mutate: func(b *builder.ResourceBuilder) { b.Name = strings.Repeat("a", resource.MaxNameLength) },
			},
			{
				name:   "name exceeds maximum length",
				mutate: func(b *builder.ResourceBuilder) { b.Name = strings.Repeat("a", resource.MaxNameLength+1) },
				errIs:  resource.ErrNameTooLong,
			},
		})
	})

	t.Run("price shape validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name: "hall without any slot price",
				mutate: func(b *builder.ResourceBuilder) {
					b.Morning, b.Evening, b.FullDay = nil, nil, nil
				},
				errIs: resource.ErrEmptyPriceShape,
			},
			{
				name: "hall with only a per-night price",
				mutate: func(b *builder.ResourceBuilder) {
					b.Morning = nil
					b.PerNight = ptr.To(int64(5000))
				},
				errIs: resource.ErrEmptyPriceShape,
			},
			{
				name: "villa without per-night price",
				mutate: func(b *builder.ResourceBuilder) {
					b.AsVilla()
					b.PerNight = nil
				},
				errIs: resource.ErrEmptyPriceShape,
			},
			{
				name: "zero price",
				mutate: func(b *builder.ResourceBuilder) {
					b.Morning = ptr.To(int64(0))
				},
				errIs: resource.ErrNonPositivePrice,
			},
			{
				name: "negative price",
				mutate: func(b *builder.ResourceBuilder) {
					b.Morning = ptr.To(int64(-100))
				},
				errIs: resource.ErrNonPositivePrice,
			},
			{
				name:   "room with per-night price",
				mutate: func(b *builder.ResourceBuilder) { b.AsRoom() },
			},
		})
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := resource.NewType("TENT")
		require.ErrorIs(t, err, resource.ErrInvalidType)
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewResourceBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
