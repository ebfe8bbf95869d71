package memstore

import (
	"context"

	"venue-booking-engine/internal/domain/resource"
	"venue-booking-engine/internal/infra"
	"venue-booking-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type ResourceStore struct {
	s *Store
}

func (r *ResourceStore) Create(ctx context.Context, res *resource.Resource) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.resources[res.ID()] = *res
	return nil
}

func (r *ResourceStore) FindByID(ctx context.Context, id uuid.UUID) (*resource.Resource, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	res, ok := r.s.resources[id]
	if !ok {
		return nil, infra.WrapRepoErr("resource not found", nil, infra.KindNotFound)
	}
	return &res, nil
}

func (r *ResourceStore) Delete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.resources[id]; !ok {
		return infra.WrapRepoErr("resource not found", nil, infra.KindNotFound)
	}
	delete(r.s.resources, id)
	return nil
}

func (r *ResourceStore) List(ctx context.Context, filter queries.ResourceFilter) ([]*resource.Resource, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var result []*resource.Resource
	for _, res := range r.s.resources {
		if filter.Type != nil && res.Kind().String() != *filter.Type {
			continue
		}
		if filter.OwnerID != nil && res.OwnerID() != *filter.OwnerID {
			continue
		}
		cp := res
		result = append(result, &cp)
	}
	return result, nil
}
