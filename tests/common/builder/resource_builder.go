//go:build unit || integration

package builder

import (
	"time"

	"venue-booking-engine/internal/domain/resource"
	"venue-booking-engine/internal/pkg/ptr"

	"github.com/google/uuid"
)

type ResourceBuilder struct {
	Name     string
	Type     string
	OwnerID  uuid.UUID
	IsAC     bool
	Image    string
	Address  string
	Morning  *int64
	Evening  *int64
	FullDay  *int64
	PerNight *int64
	Now      time.Time
}

// NewResourceBuilder defaults to a platform-operated hall with a morning
// price set.
func NewResourceBuilder() *ResourceBuilder {
	return &ResourceBuilder{
		Name:    "Grand Hall",
		Type:    "HALL",
		OwnerID: resource.PlatformOwnerID,
		IsAC:    true,
		Address: "12 Harbor Street",
		Morning: ptr.To(int64(20000)),
		Now:     time.Date(2026, 1, 20, 9, 0, 0, 0, time.UTC),
	}
}

func (b *ResourceBuilder) With(mutate func(*ResourceBuilder)) *ResourceBuilder {
	mutate(b)
	return b
}

func (b *ResourceBuilder) AsVilla() *ResourceBuilder {
	b.Type = "VILLA"
	b.Name = "Seaside Villa"
	b.Morning, b.Evening, b.FullDay = nil, nil, nil
	b.PerNight = ptr.To(int64(8000))
	return b
}

func (b *ResourceBuilder) AsRoom() *ResourceBuilder {
	b.Type = "ROOM"
	b.Name = "Room 101"
	b.Morning, b.Evening, b.FullDay = nil, nil, nil
	b.PerNight = ptr.To(int64(3000))
	return b
}

func (b *ResourceBuilder) BuildDomain() (*resource.Resource, error) {
	kind, err := resource.NewType(b.Type)
	if err != nil {
		return nil, err
	}

	return resource.NewResource(b.Name, kind, b.OwnerID, b.IsAC, b.Image, b.Address, resource.PriceShape{
		Morning:  b.Morning,
		Evening:  b.Evening,
		FullDay:  b.FullDay,
		PerNight: b.PerNight,
	}, b.Now)
}
