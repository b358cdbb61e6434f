package bitonic

import (
	"context"
	"sync/atomic"

	"github.com/intel/forGoBitonic/parallel"
	"github.com/intel/forGoBitonic/speculative"
)

// Network returns the compare-and-swap operations that Sort performs for a
// slice of length n, in the order in which Sort performs them. Each pair holds
// the positions i < j of the two compared elements; the elements are
// exchanged if the element at i ranks after the element at j.
//
// Network returns an error wrapping ErrNotPowerOfTwo if n is greater than one
// and not a power of two.
func Network(n int) ([][2]int, error) {
	if err := checkLength(n); err != nil {
		return nil, err
	}
	if n <= 1 {
		return nil, nil
	}
	positions := make([]int, n)
	for i := range positions {
		positions[i] = i
	}
	pairs := make([][2]int, 0, Comparisons(n))
	// The recording comparator never asks for a swap, so every element keeps
	// holding its own position.
	nw := network[int]{
		data: positions,
		cmp: func(i, j int) (int, error) {
			pairs = append(pairs, [2]int{i, j})
			return 0, nil
		},
	}
	if err := nw.sort(0, n); err != nil {
		return nil, err
	}
	return pairs, nil
}

const (
	sortedGrainSize = 0x4000
	sortedPollMask  = 0x3ff
)

// IsSorted reports whether data is sorted in ascending order according to cmp,
// that is, whether cmp(data[i], data[i+1]) <= 0 for all adjacent elements.
//
// Large slices are checked in parallel, and IsSorted attempts to terminate
// early when the result is false. No invocation of cmp outlives the call to
// IsSorted, so data may be modified as soon as it returns.
func IsSorted[T any](data []T, cmp Comparator[T]) bool {
	var failed atomic.Bool
	ordered := func(low, high int) bool {
		for i := low; i < high; i++ {
			if (i-low)&sortedPollMask == 0 && failed.Load() {
				return false
			}
			if cmp(data[i-1], data[i]) > 0 {
				failed.Store(true)
				return false
			}
		}
		return true
	}
	if len(data) < sortedGrainSize {
		return ordered(1, len(data))
	}
	return speculative.RangeAnd(1, len(data), 0, ordered)
}

// SortBlocks sorts each consecutive block of blockSize elements of data in
// place, independently of the other blocks, according to cmp.
//
// blockSize must be a power of two that evenly divides len(data). Otherwise,
// SortBlocks returns an error wrapping ErrBlockSize and leaves data
// unmodified.
//
// Each block is sorted with the sequential strategy, and blocks are sorted in
// parallel by at most the configured number of workers, or one at a time if
// the Sequential strategy is selected explicitly. If ctx is done before all
// blocks are sorted, SortBlocks returns ctx.Err() and the remaining blocks are
// left unsorted.
func SortBlocks[T any](ctx context.Context, data []T, blockSize int, cmp Comparator[T], opts ...Option) error {
	if !IsPowerOfTwo(blockSize) || len(data)%blockSize != 0 {
		return blockSizeError(blockSize, len(data))
	}
	c := newConfig(append([]Option{WithStrategy(Parallel)}, opts...))
	workers := c.workers
	if c.strategy == Sequential {
		workers = 1
	}
	lifted := Lift(cmp)
	return parallel.Range(ctx, 0, len(data)/blockSize, 0, workers,
		func(ctx context.Context, low, high int) error {
			for block := low; block < high; block++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				nw := network[T]{
					data: data[block*blockSize : (block+1)*blockSize],
					cmp:  lifted,
				}
				if err := nw.sort(0, blockSize); err != nil {
					return err
				}
			}
			return nil
		},
	)
}
