package ordering

import "github.com/emirpasic/gods/utils"

type SortOptions[T any] struct {
	Comparator FallibleComparator[T]

	// TextKey renders elements for the default lexicographic policy.
	TextKey func(T) string
}

type SortOption[T any] func(*SortOptions[T])

func WithComparator[T any](cmp Comparator[T]) SortOption[T] {
	return func(opts *SortOptions[T]) {
		if cmp == nil {
			return
		}

		opts.Comparator = Infallible(cmp)
	}
}

func WithFallibleComparator[T any](cmp FallibleComparator[T]) SortOption[T] {
	return func(opts *SortOptions[T]) {
		opts.Comparator = cmp
	}
}

func WithTextKey[T any](key func(T) string) SortOption[T] {
	return func(opts *SortOptions[T]) {
		if key == nil {
			return
		}

		opts.TextKey = key
	}
}

func newSortOptions[T any](opts ...SortOption[T]) *SortOptions[T] {
	options := &SortOptions[T]{
		TextKey: func(v T) string { return utils.ToString(v) },
	}
	for _, opt := range opts {
		opt(options)
	}

	if options.Comparator == nil {
		options.Comparator = Infallible(lexicographicBy(options.TextKey))
	}

	return options
}
