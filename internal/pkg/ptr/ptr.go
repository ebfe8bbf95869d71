package ptr

// To returns a pointer to v. Handy for optional struct fields in builders
// and tests.
func To[T any](v T) *T {
	return &v
}
