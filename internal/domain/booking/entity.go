package booking

import (
	"errors"
	"strings"
	"time"

	"venue-booking-engine/internal/domain/resource"

	"github.com/google/uuid"
)

var (
	ErrMissingCustomerName  = errors.New("customer name is required")
	ErrMissingCustomerPhone = errors.New("customer phone is required")
	ErrNonPositiveAmount    = errors.New("total amount must be positive")
	ErrAlreadyCancelled     = errors.New("booking is already cancelled")
	ErrPaymentTransition    = errors.New("invalid payment status transition")
)

// CustomerDetails identifies the guest a booking was taken for. Email and
// identity number are optional.
type CustomerDetails struct {
	Name           string
	Phone          string
	Email          string
	IdentityNumber string
}

func NewCustomerDetails(name, phone, email, identityNumber string) (CustomerDetails, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" {
		return CustomerDetails{}, ErrMissingCustomerName
	}
	if phone == "" {
		return CustomerDetails{}, ErrMissingCustomerPhone
	}
	return CustomerDetails{
		Name:           name,
		Phone:          phone,
		Email:          strings.TrimSpace(email),
		IdentityNumber: strings.TrimSpace(identityNumber),
	}, nil
}

// Booking is a committed reservation against one resource. The resource type
// is copied at booking time so interval semantics stay stable even if the
// resource record changes later.
type Booking struct {
	id            uuid.UUID
	resourceID    uuid.UUID
	resourceType  resource.Type
	interval      Interval
	customer      CustomerDetails
	totalAmount   int64
	paymentStatus PaymentStatus
	status        Status
	createdAt     time.Time
}

// NewBooking validates and assembles a CONFIRMED booking. It never persists;
// only the commit protocol may do that.
func NewBooking(
	resourceID uuid.UUID,
	resourceType resource.Type,
	iv Interval,
	customer CustomerDetails,
	amountCents int64,
	now time.Time,
) (*Booking, error) {
	if iv.IsSlot() != resourceType.UsesTimeSlots() {
		return nil, ErrIntervalMismatch
	}
	if amountCents <= 0 {
		return nil, ErrNonPositiveAmount
	}

	return &Booking{
		id:            uuid.New(),
		resourceID:    resourceID,
		resourceType:  resourceType,
		interval:      iv,
		customer:      customer,
		totalAmount:   amountCents,
		paymentStatus: PaymentPending,
		status:        StatusConfirmed,
		createdAt:     now,
	}, nil
}

func ReconstructBooking(
	id, resourceID uuid.UUID,
	resourceType resource.Type,
	iv Interval,
	customer CustomerDetails,
	amountCents int64,
	paymentStatus PaymentStatus,
	status Status,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		resourceID:    resourceID,
		resourceType:  resourceType,
		interval:      iv,
		customer:      customer,
		totalAmount:   amountCents,
		paymentStatus: paymentStatus,
		status:        status,
		createdAt:     createdAt,
	}
}

// Occupies reports whether the booking participates in conflict checks.
// Cancelled bookings free their interval.
func (b *Booking) Occupies() bool {
	return b.status == StatusConfirmed
}

func (b *Booking) Cancel() error {
	if b.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	b.status = StatusCancelled
	return nil
}

func (b *Booking) TransitionPayment(next PaymentStatus) error {
	if !next.IsValid() || !b.paymentStatus.CanTransitionTo(next) {
		return ErrPaymentTransition
	}
	b.paymentStatus = next
	return nil
}

// IsFuture reports whether the booking's window has not finished yet.
func (b *Booking) IsFuture(now time.Time) bool {
	return b.interval.End().After(now)
}

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) ResourceID() uuid.UUID        { return b.resourceID }
func (b *Booking) ResourceType() resource.Type  { return b.resourceType }
func (b *Booking) Interval() Interval           { return b.interval }
func (b *Booking) Customer() CustomerDetails    { return b.customer }
func (b *Booking) TotalAmount() int64           { return b.totalAmount }
func (b *Booking) PaymentStatus() PaymentStatus { return b.paymentStatus }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }

// FindConflict returns the first CONFIRMED booking whose interval overlaps
// the requested one, or nil. Callers pre-filter candidates by coarse date
// range; the exact predicate is applied here.
func FindConflict(existing []*Booking, iv Interval) *Booking {
	for _, b := range existing {
		if !b.Occupies() {
			continue
		}
		if b.interval.Overlaps(iv) {
			return b
		}
	}
	return nil
}
