package response

import (
	"time"

	"venue-booking-engine/internal/domain/resource"

	"github.com/google/uuid"
)

type ResourceResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	OwnerID      uuid.UUID `json:"owner_id"`
	IsAC         bool      `json:"is_ac"`
	Image        string    `json:"image,omitempty"`
	Address      string    `json:"address,omitempty"`
	DisplayPrice int64     `json:"display_price"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromResource(r *resource.Resource) *ResourceResponse {
	return &ResourceResponse{
		ID:           r.ID(),
		Name:         r.Name(),
		Type:         r.Kind().String(),
		OwnerID:      r.OwnerID(),
		IsAC:         r.IsAC(),
		Image:        r.Image(),
		Address:      r.Address(),
		DisplayPrice: resource.ResolvePrice(r),
		CreatedAt:    r.CreatedAt(),
	}
}

type OwnerWithResourceResponse struct {
	Owner    *UserResponse     `json:"owner"`
	Resource *ResourceResponse `json:"resource"`
}
