package request

import (
	"github.com/google/uuid"

	"venue-booking-engine/internal/usecase/commands"
)

type CreateResourceRequest struct {
	Name    string `json:"name" binding:"required"`
	Type    string `json:"type" binding:"required"`
	OwnerID string `json:"owner_id,omitempty"`
	IsAC    bool   `json:"is_ac"`
	Image   string `json:"image,omitempty"`
	Address string `json:"address,omitempty"`

	// Price fields in cents. Halls use the first three, villas and rooms
	// use per_night; absent fields fall back to defaults at quote time.
	Morning  *int64 `json:"morning,omitempty"`
	Evening  *int64 `json:"evening,omitempty"`
	FullDay  *int64 `json:"full_day,omitempty"`
	PerNight *int64 `json:"per_night,omitempty"`
}

// ToParams converts the payload. An absent owner_id means platform-operated.
func (r *CreateResourceRequest) ToParams() (commands.CreateResourceParams, error) {
	ownerID := uuid.Nil
	if r.OwnerID != "" {
		parsed, err := uuid.Parse(r.OwnerID)
		if err != nil {
			return commands.CreateResourceParams{}, err
		}
		ownerID = parsed
	}

	return commands.CreateResourceParams{
		Name:     r.Name,
		Type:     r.Type,
		OwnerID:  ownerID,
		IsAC:     r.IsAC,
		Image:    r.Image,
		Address:  r.Address,
		Morning:  r.Morning,
		Evening:  r.Evening,
		FullDay:  r.FullDay,
		PerNight: r.PerNight,
	}, nil
}

type CreateOwnerWithResourceRequest struct {
	Owner    RegisterOwnerRequest  `json:"owner" binding:"required"`
	Resource CreateResourceRequest `json:"resource" binding:"required"`
}
