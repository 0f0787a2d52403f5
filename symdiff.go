// Package symdiff computes the symmetric difference of two slices.
//
// Membership is decided by value presence, not by count:
// a value found anywhere in the other slice removes every one of its
// occurrences from the result, and a value not found keeps every occurrence.
//
//	left, right := symdiff.SymDiff([]int{1, 1, 2}, []int{2, 3})
//	// left == [1 1], right == [3]
//
// Results preserve the relative order of the inputs.
// Inputs are never modified, and results never share memory with them.
package symdiff

import (
	"reflect"

	"go.abhg.dev/symdiff/internal/sliceutil"
)

// SymDiff returns the elements of a that do not appear anywhere in b,
// and the elements of b that do not appear anywhere in a.
// Both results keep the order in which elements appear in their input.
//
// A floating-point or complex NaN is treated as present in the other slice
// if that slice holds any NaN, so SymDiff(x, x) is empty for float slices.
// Other values that are not equal to themselves,
// such as structs with NaN fields, never match.
//
// A side with no surviving elements is returned as nil.
//
// SymDiff runs in O(len(a) + len(b)) time.
func SymDiff[S ~[]E, E comparable](a, b S) (left, right S) {
	inA, inB := newIndex([]E(a)), newIndex([]E(b))
	left = sliceutil.Filter(a, func(e E) bool {
		return !inB.has(e)
	})
	right = sliceutil.Filter(b, func(e E) bool {
		return !inA.has(e)
	})
	return left, right
}

// SymDiffFunc is like SymDiff,
// but it uses eq to decide whether two elements are equal.
// Use it for element types that are not comparable.
//
// eq is called with an element of the slice being filtered
// as its first argument, and an element of the other slice as its second.
// It must be a well-behaved equality:
// results are unspecified if it is not symmetric.
// Unlike SymDiff, NaNs get no special treatment: eq alone decides.
//
// SymDiffFunc runs in O(len(a) * len(b)) time.
func SymDiffFunc[S ~[]E, E any](a, b S, eq func(E, E) bool) (left, right S) {
	left = sliceutil.Filter(a, func(e E) bool {
		return !sliceutil.ContainsFunc([]E(b), e, eq)
	})
	right = sliceutil.Filter(b, func(e E) bool {
		return !sliceutil.ContainsFunc([]E(a), e, eq)
	})
	return left, right
}

// index is a membership set over a slice.
type index[E comparable] struct {
	items map[E]struct{}
	nan   bool // whether any NaN was seen
}

func newIndex[E comparable](items []E) index[E] {
	idx := index[E]{items: make(map[E]struct{}, len(items))}
	for _, item := range items {
		if isNaN(item) {
			// NaN keys can never be looked up.
			idx.nan = true
			continue
		}
		idx.items[item] = struct{}{}
	}
	return idx
}

func (idx index[E]) has(e E) bool {
	if _, ok := idx.items[e]; ok {
		return true
	}
	return idx.nan && isNaN(e)
}

// isNaN reports whether e is a floating-point or complex NaN.
func isNaN[E comparable](e E) bool {
	if e == e {
		return false
	}
	switch reflect.ValueOf(e).Kind() {
	case reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	default:
		return false
	}
}
