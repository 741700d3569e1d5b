// Package ordering sorts slices in place with a caller supplied three-way
// comparator.
//
// Every sort in this package is a stable merge sort: elements the comparator
// does not separate keep their input order. The input slice is reordered in
// place and the same slice is returned. Without a comparator, elements are
// ordered by their text form, which for numbers is not numeric order.
package ordering

import (
	"github.com/metorial/metorial/services/ordering/pkg/util"
)

// Sort orders seq in place and returns it. The first comparator error aborts
// the sort and is returned unchanged; seq then holds the same elements in an
// unspecified order.
func Sort[T any](seq []T, opts ...SortOption[T]) ([]T, error) {
	options := newSortOptions(opts...)

	if len(seq) < 2 {
		return seq, nil
	}

	buf := make([]T, len(seq))
	if err := mergeSort(seq, buf, options.Comparator); err != nil {
		return seq, err
	}

	return seq, nil
}

// SortFunc orders seq in place with cmp. A nil cmp selects the lexicographic
// default.
func SortFunc[T any](seq []T, cmp Comparator[T]) []T {
	// cannot fail: an infallible comparator never returns an error
	sorted, _ := Sort(seq, WithComparator(cmp))
	return sorted
}

func SortFuncErr[T any](seq []T, cmp FallibleComparator[T]) ([]T, error) {
	if cmp == nil {
		return SortDefault(seq), nil
	}

	return Sort(seq, WithFallibleComparator(cmp))
}

func SortDefault[T any](seq []T) []T {
	return SortFunc(seq, nil)
}

// Sorted returns an ordered shallow copy of seq and leaves seq untouched.
func Sorted[T any](seq []T, cmp Comparator[T]) []T {
	if seq == nil {
		return nil
	}

	return SortFunc(util.Copy(seq), cmp)
}

func IsSorted[T any](seq []T, cmp Comparator[T]) bool {
	if cmp == nil {
		cmp = Lexicographic[T]
	}

	for i := 1; i < len(seq); i++ {
		if cmp(seq[i-1], seq[i]) > 0 {
			return false
		}
	}

	return true
}
