package ordering

import (
	"github.com/emirpasic/gods/utils"
	"golang.org/x/exp/constraints"
)

// Comparator reports how a relates to b:
//
// 1. negative if a sorts before b
//
// 2. zero if a and b are equal
//
// 3. positive if a sorts after b
type Comparator[T any] func(a, b T) int

// FallibleComparator is a Comparator that may fail on a pair.
type FallibleComparator[T any] func(a, b T) (int, error)

// Ascending returns 1 when a > b and -1 otherwise, so equal elements are
// never swapped.
func Ascending[T constraints.Ordered](a, b T) int {
	if a > b {
		return 1
	}

	return -1
}

// Descending returns 1 when a < b and -1 otherwise.
func Descending[T constraints.Ordered](a, b T) int {
	if a < b {
		return 1
	}

	return -1
}

// Lexicographic compares the text form of a and b. Numbers are not compared
// numerically: 10 sorts before 2.
func Lexicographic[T any](a, b T) int {
	return utils.StringComparator(utils.ToString(a), utils.ToString(b))
}

func lexicographicBy[T any](key func(T) string) Comparator[T] {
	return func(a, b T) int {
		return utils.StringComparator(key(a), key(b))
	}
}

func Reverse[T any](cmp Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return cmp(b, a)
	}
}

func Infallible[T any](cmp Comparator[T]) FallibleComparator[T] {
	return func(a, b T) (int, error) {
		return cmp(a, b), nil
	}
}
