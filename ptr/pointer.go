package ptr

// From returns a pointer to a copy of v.
func From[T any](v T) *T {
	return &v
}

// Or dereferences v, or returns fallback when v is nil.
func Or[T any](v *T, fallback T) T {
	if v != nil {
		return *v
	}
	return fallback
}
