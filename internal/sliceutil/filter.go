package sliceutil

// Filter returns a new slice holding the items
// for which keep reports true, in their original order.
//
// Unlike an in-place filter, items is never modified
// and the result never shares its backing array.
// Returns nil if no items were kept.
func Filter[S ~[]E, E any](items S, keep func(E) bool) S {
	var kept S
	for _, item := range items {
		if keep(item) {
			kept = append(kept, item)
		}
	}
	return kept
}

// ContainsFunc reports whether any item in items is equal to v
// according to eq.
// eq is called with v as its first argument.
func ContainsFunc[E any](items []E, v E, eq func(E, E) bool) bool {
	for _, item := range items {
		if eq(v, item) {
			return true
		}
	}
	return false
}
