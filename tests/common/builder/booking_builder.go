//go:build unit || integration

package builder

import (
	"time"

	"venue-booking-engine/internal/domain/booking"
	"venue-booking-engine/internal/domain/resource"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ResourceID    uuid.UUID
	ResourceType  string
	Start         time.Time
	End           time.Time
	CustomerName  string
	CustomerPhone string
	Email         string
	Identity      string
	Amount        int64
	Now           time.Time
}

// NewBookingBuilder defaults to a hall slot 10:00-14:00 on a fixed date so
// overlap cases stay readable.
func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ResourceID:    uuid.New(),
		ResourceType:  "HALL",
		Start:         time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC),
		End:           time.Date(2026, 2, 1, 14, 0, 0, 0, time.UTC),
		CustomerName:  "Asha Verma",
		CustomerPhone: "+91-98100-12345",
		Amount:        20000,
		Now:           time.Date(2026, 1, 20, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) AsStay(checkIn, checkOut time.Time) *BookingBuilder {
	b.ResourceType = "VILLA"
	b.Start = checkIn
	b.End = checkOut
	return b
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	kind, err := resource.NewType(b.ResourceType)
	if err != nil {
		return nil, err
	}

	var iv booking.Interval
	if kind.UsesTimeSlots() {
		iv, err = booking.NewTimeSlot(b.Start, b.End)
	} else {
		iv, err = booking.NewStayRange(b.Start, b.End)
	}
	if err != nil {
		return nil, err
	}

	customer, err := booking.NewCustomerDetails(b.CustomerName, b.CustomerPhone, b.Email, b.Identity)
	if err != nil {
		return nil, err
	}

	return booking.NewBooking(b.ResourceID, kind, iv, customer, b.Amount, b.Now)
}
