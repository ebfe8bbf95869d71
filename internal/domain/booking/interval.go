package booking

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidInterval  = errors.New("invalid interval")
	ErrSlotSpansDates   = errors.New("time slot must stay within one calendar date")
	ErrEmptyStay        = errors.New("check-out must be after check-in")
	ErrIntervalMismatch = errors.New("interval shape does not match resource type")
)

// Interval is a half-open booking window [start, end). Two shapes share the
// representation after normalization: a hall time slot keeps its clock times
// on one calendar date, a villa/room stay spans whole nights with both bounds
// at midnight UTC and the check-out night excluded.
type Interval struct {
	start time.Time
	end   time.Time
	slot  bool
}

// NewTimeSlot builds a single-date slot. The end must be strictly after the
// start; slots on different dates never exist as one interval.
func NewTimeSlot(start, end time.Time) (Interval, error) {
	if !end.After(start) {
		return Interval{}, ErrInvalidInterval
	}
	start, end = start.UTC(), end.UTC()
	if !sameDate(start, end) && !end.Equal(nextMidnight(start)) {
		return Interval{}, ErrSlotSpansDates
	}
	return Interval{start: start, end: end, slot: true}, nil
}

// NewStayRange builds a nightly range [checkIn, checkOut). Clock components
// are discarded; the check-out day is reusable by the next guest.
func NewStayRange(checkIn, checkOut time.Time) (Interval, error) {
	ci := midnight(checkIn)
	co := midnight(checkOut)
	if !co.After(ci) {
		return Interval{}, ErrEmptyStay
	}
	return Interval{start: ci, end: co, slot: false}, nil
}

// ReconstructInterval rebuilds a persisted interval without re-validation.
func ReconstructInterval(start, end time.Time, slot bool) Interval {
	return Interval{start: start.UTC(), end: end.UTC(), slot: slot}
}

func (iv Interval) Start() time.Time { return iv.start }
func (iv Interval) End() time.Time   { return iv.end }
func (iv Interval) IsSlot() bool     { return iv.slot }
func (iv Interval) IsZero() bool     { return iv.start.IsZero() && iv.end.IsZero() }

// Date returns the calendar date a slot occupies, or the check-in date of a
// stay.
func (iv Interval) Date() time.Time {
	return midnight(iv.start)
}

func (iv Interval) Nights() int {
	if iv.slot {
		return 0
	}
	return int(iv.end.Sub(iv.start) / (24 * time.Hour))
}

func (iv Interval) Duration() time.Duration {
	return iv.end.Sub(iv.start)
}

// Overlaps applies the strict half-open predicate shared by both shapes:
// a.start < b.end && b.start < a.end. Adjacent windows do not overlap, so a
// slot ending 14:00 coexists with one starting 14:00 and a check-out day is
// immediately rebookable.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.start.Before(other.end) && other.start.Before(iv.end)
}

func (iv Interval) String() string {
	if iv.slot {
		return fmt.Sprintf("%s %s-%s",
			iv.start.Format("2006-01-02"),
			iv.start.Format("15:04"),
			iv.end.Format("15:04"))
	}
	return fmt.Sprintf("[%s,%s)",
		iv.start.Format("2006-01-02"),
		iv.end.Format("2006-01-02"))
}

func midnight(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func nextMidnight(t time.Time) time.Time {
	return midnight(t).Add(24 * time.Hour)
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
