package resource

type Type string

const (
	TypeHall  Type = "HALL"
	TypeVilla Type = "VILLA"
	TypeRoom  Type = "ROOM"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeHall, TypeVilla, TypeRoom:
		return true
	default:
		return false
	}
}

// UsesTimeSlots reports whether bookings against this type are single-day
// time slots. Villas and rooms are booked per night instead.
func (t Type) UsesTimeSlots() bool {
	return t == TypeHall
}

func NewType(s string) (Type, error) {
	t := Type(s)
	if !t.IsValid() {
		return "", ErrInvalidType
	}
	return t, nil
}
