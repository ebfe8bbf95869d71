package resource

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidType       = errors.New("invalid resource type")
	ErrEmptyResourceName = errors.New("resource name cannot be empty")
	ErrNameTooLong       = errors.New("resource name is too long (max 255 characters)")
	ErrEmptyPriceShape   = errors.New("price shape has no populated field for the resource type")
	ErrNonPositivePrice  = errors.New("price fields must be positive when set")
)

const MaxNameLength = 255

// PlatformOwnerID marks a resource operated by the platform itself rather
// than a registered owner.
var PlatformOwnerID = uuid.Nil

// PriceShape carries the type-specific optional price fields, in the smallest
// currency unit. Halls use the slot fields, villas and rooms use PerNight.
type PriceShape struct {
	Morning  *int64
	Evening  *int64
	FullDay  *int64
	PerNight *int64
}

func (p PriceShape) populatedFor(t Type) bool {
	if t.UsesTimeSlots() {
		return p.Morning != nil || p.Evening != nil || p.FullDay != nil
	}
	return p.PerNight != nil
}

func (p PriceShape) validate(t Type) error {
	for _, v := range []*int64{p.Morning, p.Evening, p.FullDay, p.PerNight} {
		if v != nil && *v <= 0 {
			return ErrNonPositivePrice
		}
	}
	if !p.populatedFor(t) {
		return ErrEmptyPriceShape
	}
	return nil
}

type Resource struct {
	id         uuid.UUID
	name       string
	kind       Type
	ownerID    uuid.UUID
	isAC       bool
	image      string
	address    string
	priceShape PriceShape
	createdAt  time.Time
	updatedAt  time.Time
}

func NewResource(name string, kind Type, ownerID uuid.UUID, isAC bool, image, address string, prices PriceShape, now time.Time) (*Resource, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyResourceName
	}
	if len(name) > MaxNameLength {
		return nil, ErrNameTooLong
	}
	if !kind.IsValid() {
		return nil, ErrInvalidType
	}
	if err := prices.validate(kind); err != nil {
		return nil, err
	}

	return &Resource{
		id:         uuid.New(),
		name:       name,
		kind:       kind,
		ownerID:    ownerID,
		isAC:       isAC,
		image:      image,
		address:    address,
		priceShape: prices,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructResource(
	id uuid.UUID,
	name string,
	kind Type,
	ownerID uuid.UUID,
	isAC bool,
	image, address string,
	prices PriceShape,
	createdAt, updatedAt time.Time,
) *Resource {
	return &Resource{
		id:         id,
		name:       name,
		kind:       kind,
		ownerID:    ownerID,
		isAC:       isAC,
		image:      image,
		address:    address,
		priceShape: prices,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (r *Resource) IsPlatformOperated() bool {
	return r.ownerID == PlatformOwnerID
}

func (r *Resource) ID() uuid.UUID          { return r.id }
func (r *Resource) Name() string           { return r.name }
func (r *Resource) Kind() Type             { return r.kind }
func (r *Resource) OwnerID() uuid.UUID     { return r.ownerID }
func (r *Resource) IsAC() bool             { return r.isAC }
func (r *Resource) Image() string          { return r.image }
func (r *Resource) Address() string        { return r.address }
func (r *Resource) PriceShape() PriceShape { return r.priceShape }
func (r *Resource) CreatedAt() time.Time   { return r.createdAt }
func (r *Resource) UpdatedAt() time.Time   { return r.updatedAt }
