package memstore

import (
	"context"

	"venue-booking-engine/internal/domain/resource"
	"venue-booking-engine/internal/domain/user"
	"venue-booking-engine/internal/infra"

	"github.com/google/uuid"
)

type UserStore struct {
	s *Store
}

func (r *UserStore) Create(ctx context.Context, u *user.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.insertUserLocked(u)
}

func (r *UserStore) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return &u, nil
}

func (r *UserStore) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	id, ok := r.s.usernames[username]
	if !ok {
		return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	u := r.s.users[id]
	return &u, nil
}

func (r *UserStore) ListByRole(ctx context.Context, role user.Role) ([]*user.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var result []*user.User
	for _, u := range r.s.users {
		if u.Role() == role {
			cp := u
			result = append(result, &cp)
		}
	}
	return result, nil
}

func (r *UserStore) CreateOwnerWithResource(ctx context.Context, owner *user.User, res *resource.Resource) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.insertUserLocked(owner); err != nil {
		return err
	}
	r.s.resources[res.ID()] = *res
	return nil
}
