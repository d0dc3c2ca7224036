package pointer

func Ref[T any](t T) *T {
	return &t
}

// SafeDeref dereferences ptr, or returns the zero value when ptr is nil.
func SafeDeref[T any](ptr *T) T {
	if ptr == nil {
		return *new(T)
	}
	return *ptr
}
