package bitonic

import "golang.org/x/exp/constraints"

// A Comparator reports whether a ranks after b by returning a strictly
// positive value. Any other value means that a and b are already in order.
//
// A Comparator must be consistent: it must always return the same result for
// the same two elements.
type Comparator[T any] func(a, b T) int

// An ErrComparator is a Comparator that may fail. A non-nil error stops the
// sort in progress and is returned to the caller.
type ErrComparator[T any] func(a, b T) (int, error)

// Ascending returns a Comparator that orders values from smallest to largest.
// It returns 1 if a > b, and 0 otherwise.
func Ascending[T constraints.Ordered]() Comparator[T] {
	return func(a, b T) int {
		if a > b {
			return 1
		}
		return 0
	}
}

// Descending returns a Comparator that orders values from largest to smallest.
func Descending[T constraints.Ordered]() Comparator[T] {
	return Reverse(Ascending[T]())
}

// Reverse returns a Comparator that ranks a after b whenever cmp ranks b after
// a.
func Reverse[T any](cmp Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return cmp(b, a)
	}
}

// FromLess adapts a less function, as used with sort.Slice, to a Comparator.
func FromLess[T any](less func(a, b T) bool) Comparator[T] {
	return func(a, b T) int {
		if less(b, a) {
			return 1
		}
		return 0
	}
}

// Lift turns a Comparator into an ErrComparator that never fails.
func Lift[T any](cmp Comparator[T]) ErrComparator[T] {
	return func(a, b T) (int, error) {
		return cmp(a, b), nil
	}
}
