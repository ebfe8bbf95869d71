package booking

import "errors"

var ErrInvalidPaymentStatus = errors.New("invalid payment status")

type Status string

const (
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentPaid     PaymentStatus = "PAID"
	PaymentRefunded PaymentStatus = "REFUNDED"
)

func (p PaymentStatus) String() string {
	return string(p)
}

func NewPaymentStatus(s string) (PaymentStatus, error) {
	p := PaymentStatus(s)
	if !p.IsValid() {
		return "", ErrInvalidPaymentStatus
	}
	return p, nil
}

func (p PaymentStatus) IsValid() bool {
	switch p {
	case PaymentPending, PaymentPaid, PaymentRefunded:
		return true
	default:
		return false
	}
}

// CanTransitionTo enforces PENDING -> PAID -> REFUNDED. Payment state moves
// independently of the booking status.
func (p PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	switch p {
	case PaymentPending:
		return next == PaymentPaid
	case PaymentPaid:
		return next == PaymentRefunded
	default:
		return false
	}
}
