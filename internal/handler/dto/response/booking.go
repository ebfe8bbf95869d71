package response

import (
	"time"

	"venue-booking-engine/internal/domain/booking"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID             uuid.UUID `json:"id"`
	ResourceID     uuid.UUID `json:"resource_id"`
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

func FromBooking(b *booking.Booking) *BookingResponse {
	iv := b.Interval()
	return &BookingResponse{
		ID:             b.ID(),
		ResourceID:     b.ResourceID(),
		ResourceType:   b.ResourceType().String(),
		Start:          iv.Start(),
		End:            iv.End(),
		Interval:       iv.String(),
		CustomerName:   b.Customer().Name,
		CustomerPhone:  b.Customer().Phone,
		CustomerEmail:  b.Customer().Email,
		IdentityNumber: b.Customer().IdentityNumber,
		TotalAmount:    b.TotalAmount(),
		PaymentStatus:  b.PaymentStatus().String(),
		Status:         b.Status().String(),
		CreatedAt:      b.CreatedAt(),
	}
}
