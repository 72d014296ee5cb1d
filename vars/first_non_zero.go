package vars

// FirstNonZero returns the first value that is not the zero value of its type
func FirstNonZero[T comparable](values ...T) T {
	var zero T
	for _, value := range values {
		if value != zero {
			return value
		}
	}
	return zero
}

// DerefOr returns the pointed value, or fallback for a nil pointer
func DerefOr[T any](ptr *T, fallback T) T {
	if ptr == nil {
		return fallback
	}
	return *ptr
}
