package queries

import (
	"time"

	"venue-booking-engine/internal/domain/user"

	"github.com/google/uuid"
)

// Caller is the authenticated principal a query runs on behalf of. It is the
// only input to the visibility filter.
type Caller struct {
	ID   uuid.UUID
	Role user.Role
}

func (c Caller) SeesEverything() bool {
	return c.Role == user.RoleSuperAdmin
}

// Read models (DTO for read side)
type ResourceView struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Type    string    `json:"type"`
	OwnerID uuid.UUID `json:"owner_id"`
	IsAC    bool      `json:"is_ac"`
	Image   string    `json:"image,omitempty"`
	Address string    `json:"address,omitempty"`
	// DisplayPrice is resolved through the same fallback chain that prices
	// a commit, so the quoted and charged totals cannot diverge.
	DisplayPrice int64     `json:"display_price"`
	CreatedAt    time.Time `json:"created_at"`
}

type BookingView struct {
	ID             uuid.UUID `json:"id"`
	ResourceID     uuid.UUID `json:"resource_id"`
	ResourceName   string    `json:"resource_name,omitempty"`
	ResourceType   string    `json:"resource_type"`
	Start          time.Time `json:"start"`
	End            time.Time `json:"end"`
	Interval       string    `json:"interval"`
	CustomerName   string    `json:"customer_name"`
	CustomerPhone  string    `json:"customer_phone"`
	CustomerEmail  string    `json:"customer_email,omitempty"`
	IdentityNumber string    `json:"identity_number,omitempty"`
	TotalAmount    int64     `json:"total_amount"`
	PaymentStatus  string    `json:"payment_status"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

type OwnerView struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Name     string    `json:"name"`
}

// ResourceFilter narrows catalog listings. Nil fields match everything.
type ResourceFilter struct {
	Type    *string
	OwnerID *uuid.UUID
}
