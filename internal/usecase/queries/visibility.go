package queries

// applyVisibility narrows a catalog filter to what the caller may see. The
// super admin is unrestricted; an owner only ever sees resources they own.
// Every listing operation goes through here; visibility is a property of
// the resource, never a field stored on the booking.
func applyVisibility(caller Caller, filter ResourceFilter) ResourceFilter {
	if caller.SeesEverything() {
		return filter
	}
	ownerID := caller.ID
	filter.OwnerID = &ownerID
	return filter
}
