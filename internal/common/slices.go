package common

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// IsSingle returns true if the slice has exactly one element.
func IsSingle[S ~[]E, E any](s S) bool {
	return len(s) == 1
}

// IsMultiple returns true if the slice has more than one element.
func IsMultiple[S ~[]E, E any](s S) bool {
	return len(s) > 1
}

// Duplicate returns the first element seen twice.
func Duplicate[S ~[]E, E comparable](s S) (E, bool) {
	seen := make(map[E]struct{}, len(s))
	for _, e := range s {
		if _, ok := seen[e]; ok {
			return e, true
		}

		seen[e] = struct{}{}
	}

	var zero E

	return zero, false
}
