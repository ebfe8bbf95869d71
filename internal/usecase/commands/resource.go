package commands

import (
	"context"
	"time"

	"venue-booking-engine/internal/domain/resource"
	"venue-booking-engine/internal/domain/user"
	"venue-booking-engine/internal/infra"
	"venue-booking-engine/internal/pkg/clock"
	"venue-booking-engine/internal/pkg/errs"
	"venue-booking-engine/internal/pkg/password"

	"github.com/google/uuid"
)

type CreateResourceParams struct {
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
}

type RegisterOwnerParams struct {
	Username string
	Password string
	Name     string
}

type ResourceCommands interface {
	Create(ctx context.Context, params CreateResourceParams) (*resource.Resource, error)
	// CreateOwnerWithResource onboards a new owner and their first property
	// in one user action. All-or-nothing: a failure on either side reports
	// to the caller and leaves no orphaned owner record.
	CreateOwnerWithResource(ctx context.Context, ownerParams RegisterOwnerParams, resourceParams CreateResourceParams) (*user.User, *resource.Resource, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type resourceCommandsImpl struct {
	resources ResourceRepository
	bookings  BookingRepository
	users     UserRepository
	clock     clock.Clock
}

func NewResourceCommands(
	resources ResourceRepository,
	bookings BookingRepository,
	users UserRepository,
	clk clock.Clock,
) ResourceCommands {
	return &resourceCommandsImpl{
		resources: resources,
		bookings:  bookings,
		users:     users,
		clock:     clk,
	}
}

func (c *resourceCommandsImpl) Create(ctx context.Context, params CreateResourceParams) (*resource.Resource, error) {
	if err := c.requireOwner(ctx, params.OwnerID); err != nil {
		return nil, err
	}

	entity, err := buildResource(params, c.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := c.resources.Create(ctx, entity); err != nil {
		return nil, errs.Mark(err, ErrStorage)
	}
	return entity, nil
}

func (c *resourceCommandsImpl) CreateOwnerWithResource(
	ctx context.Context,
	ownerParams RegisterOwnerParams,
	resourceParams CreateResourceParams,
) (*user.User, *resource.Resource, error) {
	hash, err := password.HashPassword(ownerParams.Password)
	if err != nil {
		return nil, nil, errs.Mark(err, ErrValidation)
	}

	owner, err := user.NewUser(ownerParams.Username, hash, user.RoleOwner, ownerParams.Name, c.clock.Now())
	if err != nil {
		return nil, nil, errs.Mark(err, ErrValidation)
	}

	// Both entities validate before anything is written, so the only way
	// the transaction fails is a storage error or a username collision.
	resourceParams.OwnerID = owner.ID()
	entity, err := buildResource(resourceParams, c.clock.Now())
	if err != nil {
		return nil, nil, err
	}

	if err := c.users.CreateOwnerWithResource(ctx, owner, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, nil, ErrUsernameTaken
		}
		return nil, nil, errs.Mark(err, ErrStorage)
	}
	return owner, entity, nil
}

func (c *resourceCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := c.resources.FindByID(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrResourceNotFound
		}
		return errs.Mark(err, ErrStorage)
	}

	// Bookings hold a weak reference to the resource; the catalog refuses
	// deletion while any CONFIRMED future booking still points here.
	inUse, err := c.bookings.HasConfirmedAfter(ctx, id, c.clock.Now())
	if err != nil {
		return errs.Mark(err, ErrStorage)
	}
	if inUse {
		return ErrResourceInUse
	}

	if err := c.resources.Delete(ctx, id); err != nil {
		return errs.Mark(err, ErrStorage)
	}
	return nil
}

// requireOwner resolves the owner reference. The platform sentinel is always
// acceptable; anything else must be an existing OWNER user.
func (c *resourceCommandsImpl) requireOwner(ctx context.Context, ownerID uuid.UUID) error {
	if ownerID == resource.PlatformOwnerID {
		return nil
	}

	owner, err := c.users.FindByID(ctx, ownerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrOwnerNotFound
		}
		return errs.Mark(err, ErrStorage)
	}
	if owner.Role() != user.RoleOwner {
		return ErrOwnerNotFound
	}
	return nil
}

func buildResource(params CreateResourceParams, now time.Time) (*resource.Resource, error) {
	kind, err := resource.NewType(params.Type)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	entity, err := resource.NewResource(
		params.Name,
		kind,
		params.OwnerID,
		params.IsAC,
		params.Image,
		params.Address,
		resource.PriceShape{
			Morning:  params.Morning,
			Evening:  params.Evening,
			FullDay:  params.FullDay,
			PerNight: params.PerNight,
		},
		now,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}
	return entity, nil
}
