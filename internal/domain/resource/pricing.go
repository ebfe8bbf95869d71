package resource

// Platform defaults applied when a resource was entered without any usable
// price field for its type. The creation form only collects one field, so
// resolution degrades to a default instead of rejecting the booking.
const (
	DefaultSlotPriceCents  int64 = 10000
	DefaultNightPriceCents int64 = 5000
)

// ResolvePrice derives the single chargeable amount from the resource's price
// shape. The fallback chain is fixed and must be the same at booking time and
// at display time, or quoted and charged totals diverge.
//
// HALL: morning -> evening -> fullDay -> DefaultSlotPriceCents.
// VILLA/ROOM: perNight -> DefaultNightPriceCents.
func ResolvePrice(r *Resource) int64 {
	p := r.PriceShape()
	if r.Kind().UsesTimeSlots() {
		for _, v := range []*int64{p.Morning, p.Evening, p.FullDay} {
			if v != nil {
				return *v
			}
		}
		return DefaultSlotPriceCents
	}
	if p.PerNight != nil {
		return *p.PerNight
	}
	return DefaultNightPriceCents
}
