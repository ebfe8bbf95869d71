package queries

import (
	"context"

	"venue-booking-engine/internal/domain/user"
)

type UserQueries interface {
	// ListOwners feeds the admin's owner dropdown.
	ListOwners(ctx context.Context) ([]*OwnerView, error)
}

type userQueriesImpl struct {
	users UserReads
}

func NewUserQueries(users UserReads) UserQueries {
	return &userQueriesImpl{users: users}
}

func (q *userQueriesImpl) ListOwners(ctx context.Context) ([]*OwnerView, error) {
	owners, err := q.users.ListByRole(ctx, user.RoleOwner)
	if err != nil {
		return nil, err
	}

	views := make([]*OwnerView, len(owners))
	for i, o := range owners {
		views[i] = &OwnerView{
			ID:       o.ID(),
			Username: o.Username(),
			Name:     o.Name(),
		}
	}
	return views, nil
}
