package bitonic

import (
	"errors"
	"fmt"
)

var (
	// ErrNotPowerOfTwo is returned when the length of a slice to be sorted is
	// greater than one and not a power of two.
	ErrNotPowerOfTwo = errors.New("bitonic: length is not a power of two")

	// ErrBlockSize is returned by SortBlocks when the block size is not a
	// power of two, or does not evenly divide the length of the slice.
	ErrBlockSize = errors.New("bitonic: invalid block size")
)

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

func checkLength(n int) error {
	if n > 1 && !IsPowerOfTwo(n) {
		return fmt.Errorf("%w: %d", ErrNotPowerOfTwo, n)
	}
	return nil
}

func blockSizeError(blockSize, n int) error {
	return fmt.Errorf("%w: %d for length %d", ErrBlockSize, blockSize, n)
}

// network holds the state of a single sort invocation. It is never shared
// between invocations.
type network[T any] struct {
	data []T
	cmp  ErrComparator[T]
}

// sort sorts data[low:low+n]. n must be a power of two.
func (nw *network[T]) sort(low, n int) error {
	if n > 1 {
		mid := n >> 1
		if err := nw.sort(low, mid); err != nil {
			return err
		}
		if err := nw.sort(low+mid, mid); err != nil {
			return err
		}
		return nw.combine(low, n, 1)
	}
	return nil
}

// combine merges the two sorted halves of data[low:low+n], comparing elements
// that are st positions apart.
func (nw *network[T]) combine(low, n, st int) error {
	m := st << 1
	if m < n {
		if err := nw.combine(low, n, m); err != nil {
			return err
		}
		if err := nw.combine(low+st, n, m); err != nil {
			return err
		}
		for i := low + st; i+st < low+n; i += m {
			if err := nw.compareAndSwap(i, i+st); err != nil {
				return err
			}
		}
		return nil
	}
	return nw.compareAndSwap(low, low+st)
}

func (nw *network[T]) compareAndSwap(i, j int) error {
	c, err := nw.cmp(nw.data[i], nw.data[j])
	if err != nil {
		return err
	}
	if c > 0 {
		nw.swap(i, j)
	}
	return nil
}

func (nw *network[T]) swap(i, j int) {
	nw.data[i], nw.data[j] = nw.data[j], nw.data[i]
}

// Sort sorts data in place in ascending order according to cmp, using the
// sequential strategy.
//
// The length of data must be 0, 1, or a power of two. Otherwise, Sort returns
// an error wrapping ErrNotPowerOfTwo and leaves data unmodified. For lengths 0
// and 1, cmp is never invoked.
func Sort[T any](data []T, cmp Comparator[T]) error {
	return SortErr(data, Lift(cmp))
}

// SortErr is like Sort, but with a comparator that may fail.
//
// If cmp returns a non-nil error, sorting stops immediately and SortErr
// returns that error. In that case, data is a permutation of its original
// contents in an unspecified order.
func SortErr[T any](data []T, cmp ErrComparator[T]) error {
	if err := checkLength(len(data)); err != nil {
		return err
	}
	nw := network[T]{data: data, cmp: cmp}
	return nw.sort(0, len(data))
}

// Comparisons returns the number of compare-and-swap operations the network
// performs for a slice of length n. The number only depends on n.
//
// Comparisons panics if n is negative, or greater than one and not a power of
// two.
func Comparisons(n int) int {
	if n < 0 || checkLength(n) != nil {
		panic(fmt.Sprintf("invalid network size: %v", n))
	}
	return sortComparisons(n)
}

func sortComparisons(n int) int {
	if n <= 1 {
		return 0
	}
	return 2*sortComparisons(n>>1) + combineComparisons(n, 1)
}

// combineComparisons mirrors combine: both recursive halves have the same
// size, and the loop runs n/m - 1 times.
func combineComparisons(n, st int) int {
	m := st << 1
	if m < n {
		return 2*combineComparisons(n, m) + n/m - 1
	}
	return 1
}
