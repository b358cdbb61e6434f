package bitonic

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/semaphore"

	"github.com/intel/forGoBitonic/parallel"
)

// A Sorter sorts slices of T with a fixed strategy and configuration.
//
// A Sorter does not retain any data between invocations, and is safe for
// concurrent use by multiple goroutines. All concurrent invocations of the
// parallel strategy on the same Sorter share its worker limit.
type Sorter[T any] struct {
	config
	limit *semaphore.Weighted
}

// NewSorter creates a Sorter with the given options.
func NewSorter[T any](opts ...Option) *Sorter[T] {
	return newSorter[T](newConfig(opts))
}

func newSorter[T any](c config) *Sorter[T] {
	// The calling goroutine is one of the workers.
	return &Sorter[T]{
		config: c,
		limit:  semaphore.NewWeighted(int64(c.workers - 1)),
	}
}

// Strategy returns the execution strategy of s.
func (s *Sorter[T]) Strategy() Strategy {
	return s.strategy
}

// Sort sorts data in place in ascending order according to cmp.
//
// The length of data must be 0, 1, or a power of two. Otherwise, Sort returns
// an error wrapping ErrNotPowerOfTwo and leaves data unmodified.
//
// If ctx is done before sorting starts, Sort returns ctx.Err(). With the
// parallel strategy, Sort also returns ctx.Err() if ctx is done while the
// halves of a range are being sorted. The combine network for that range is
// then not run, and data is left in an unspecified order.
func (s *Sorter[T]) Sort(ctx context.Context, data []T, cmp Comparator[T]) error {
	return s.SortErr(ctx, data, Lift(cmp))
}

// SortErr is like Sort, but with a comparator that may fail.
//
// If cmp returns a non-nil error, SortErr returns that error. With the
// parallel strategy, the error is returned only after all goroutines working
// on data have terminated, and the left-most error wins.
//
// If cmp panics, the panic is recovered and SortErr eventually panics with the
// left-most recovered panic value in the calling goroutine.
func (s *Sorter[T]) SortErr(ctx context.Context, data []T, cmp ErrComparator[T]) error {
	if err := checkLength(len(data)); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	nw := network[T]{data: data, cmp: cmp}
	if s.strategy != Parallel {
		return nw.sort(0, len(data))
	}
	fj := &forkJoin[T]{
		network: nw,
		ctx:     ctx,
		limit:   s.limit,
		grain:   s.grain,
	}
	err := fj.sort(0, len(data))
	if err != nil {
		s.logger.Debug("bitonic sort stopped",
			"n", len(data),
			"strategy", s.strategy,
			"forks", fj.forks.Load(),
			"err", err)
	}
	return err
}

// forkJoin runs the parallel strategy for a single sort invocation. Sibling
// forks work on disjoint ranges of data.
type forkJoin[T any] struct {
	network[T]
	ctx   context.Context
	limit *semaphore.Weighted
	grain int
	forks atomic.Int64
}

func (fj *forkJoin[T]) sort(low, n int) error {
	if n <= fj.grain {
		return fj.network.sort(low, n)
	}
	if err := fj.ctx.Err(); err != nil {
		return err
	}
	mid := n >> 1
	fj.forks.Add(1)
	if err := parallel.Fork(fj.limit,
		func() error { return fj.sort(low, mid) },
		func() error { return fj.sort(low+mid, mid) },
	); err != nil {
		return err
	}
	if err := fj.ctx.Err(); err != nil {
		return err
	}
	return fj.combine(low, n, 1)
}

// ParallelSort sorts data in place in ascending order according to cmp, using
// the parallel strategy. See Sorter.Sort for details.
func ParallelSort[T any](ctx context.Context, data []T, cmp Comparator[T], opts ...Option) error {
	return ParallelSortErr(ctx, data, Lift(cmp), opts...)
}

// ParallelSortErr is like ParallelSort, but with a comparator that may fail.
// See Sorter.SortErr for details.
func ParallelSortErr[T any](ctx context.Context, data []T, cmp ErrComparator[T], opts ...Option) error {
	c := newConfig(opts)
	c.strategy = Parallel
	return newSorter[T](c).SortErr(ctx, data, cmp)
}
