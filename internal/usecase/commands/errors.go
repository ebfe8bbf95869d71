package commands

import (
	"fmt"

	"venue-booking-engine/internal/domain/booking"
	"venue-booking-engine/internal/pkg/errs"
)

// Sentinel errors returned to callers. None are fatal; handlers map them to
// structured responses.
var (
	ErrResourceNotFound    = errs.New("resource not found")
	ErrBookingNotFound     = errs.New("booking not found")
	ErrOwnerNotFound       = errs.New("owner not found")
	ErrValidation          = errs.New("validation failed")
	ErrUsernameTaken       = errs.New("username already taken")
	ErrBookingConflict     = errs.New("interval overlaps a confirmed booking")
	ErrConcurrencyConflict = errs.New("lost commit race, retry the request")
	ErrResourceInUse       = errs.New("resource has confirmed future bookings")
	ErrInvalidCredentials  = errs.New("invalid credentials")
	ErrStorage             = errs.New("storage operation failed")
)

// ConflictError carries the interval of the booking that blocked a commit,
// so the caller can pick a different window. errors.Is(err,
// ErrBookingConflict) holds for every value returned through it.
type ConflictError struct {
	Conflicting booking.Interval
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("interval overlaps a confirmed booking (%s)", e.Conflicting)
}

func newConflictError(conflicting booking.Interval) error {
	return errs.Mark(&ConflictError{Conflicting: conflicting}, ErrBookingConflict)
}
