package request

import (
	"time"

	"github.com/google/uuid"

	"venue-booking-engine/internal/usecase/commands"
)

type CreateBookingRequest struct {
	ResourceID uuid.UUID `json:"resource_id" binding:"required"`
	// Hall bookings send the slot's clock bounds on one date; villa and
	// room bookings send check-in and check-out dates.
	Start time.Time `json:"start" binding:"required"`
	End   time.Time `json:"end" binding:"required"`

	CustomerName           string `json:"customer_name" binding:"required"`
	CustomerPhone          string `json:"customer_phone" binding:"required"`
	CustomerEmail          string `json:"customer_email,omitempty"`
	CustomerIdentityNumber string `json:"customer_identity_number,omitempty"`
}

func (r *CreateBookingRequest) ToParams() commands.CreateBookingParams {
	return commands.CreateBookingParams{
		ResourceID:             r.ResourceID,
		Start:                  r.Start,
		End:                    r.End,
		CustomerName:           r.CustomerName,
		CustomerPhone:          r.CustomerPhone,
		CustomerEmail:          r.CustomerEmail,
		CustomerIdentityNumber: r.CustomerIdentityNumber,
	}
}

type UpdatePaymentRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
}
