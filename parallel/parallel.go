// Package parallel provides fork/join functions for expressing parallel
// divide-and-conquer algorithms with a bounded number of goroutines.
package parallel

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/intel/forGoBitonic/internal"
)

// Fork receives two functions, executes them in parallel if possible, and
// returns only when both of them have terminated.
//
// The right function is invoked in its own goroutine if a token can be
// acquired from limit without blocking, and the token is released when the
// right function terminates. Otherwise, the right function is invoked in the
// current goroutine after the left function has terminated. Fork itself never
// blocks on limit, so nested invocations of Fork cannot deadlock. If limit is
// nil, the right function always gets its own goroutine.
//
// Fork returns the left-most non-nil error value returned by the two
// functions. Both functions always run to completion, even if the other one
// returns an error, so that no goroutine outlives the call to Fork.
//
// If one or both functions panic, the corresponding goroutines recover the
// panics, and Fork eventually panics with the left-most recovered panic value.
func Fork(limit *semaphore.Weighted, left, right func() error) error {
	if limit != nil && !limit.TryAcquire(1) {
		return sequentially(left, right)
	}
	var err0, err1 error
	var p interface{}
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer func() {
			p = internal.WrapPanic(recover())
			if limit != nil {
				limit.Release(1)
			}
			wg.Done()
		}()
		err1 = right()
	}()
	err0 = callLeft(left, &wg)
	wg.Wait()
	if p != nil {
		panic(p)
	}
	if err0 != nil {
		return err0
	}
	return err1
}

func callLeft(left func() error, wg *sync.WaitGroup) (err error) {
	defer func() {
		if p := recover(); p != nil {
			wg.Wait()
			panic(p)
		}
	}()
	return left()
}

func sequentially(left, right func() error) error {
	err0 := left()
	err1 := right()
	if err0 != nil {
		return err0
	}
	return err1
}

// Range receives a range, a batch count n, a concurrency limit, and a range
// function f, divides the range into batches, and invokes the range function
// for each of these batches in parallel, covering the half-open interval from
// low to high, including low but excluding high.
//
// The range is specified by a low and high integer, with low <= high. The
// batches are determined by dividing up the size of the range (high - low) by
// n. If n is 0, a reasonable default is used that takes runtime.NumCPU()
// into account.
//
// At most limit invocations of f run at the same time. If limit is <= 0, the
// number of concurrent invocations is not bounded.
//
// The context passed to f is canceled as soon as one invocation of f returns a
// non-nil error, or when ctx is canceled. Range returns only when all started
// invocations have terminated, with the first non-nil error value, if any.
// Batches that have not been started when ctx is done are skipped, and Range
// then returns ctx.Err().
//
// Range panics if high < low, or if n < 0.
//
// If one or more range function invocations panic, the corresponding
// goroutines recover the panics, and Range eventually panics with one of the
// recovered panic values.
func Range(
	ctx context.Context,
	low, high, n, limit int,
	f func(ctx context.Context, low, high int) error,
) error {
	batches := internal.ComputeNofBatches(low, high, n)
	if high == low {
		return nil
	}
	batchSize := ((high - low - 1) / batches) + 1
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	var once sync.Once
	var p interface{}
	for start := low; start < high; start += batchSize {
		if err := gctx.Err(); err != nil {
			break
		}
		start := start
		end := min(start+batchSize, high)
		g.Go(func() (err error) {
			defer func() {
				if r := internal.WrapPanic(recover()); r != nil {
					once.Do(func() { p = r })
					err = fmt.Errorf("panic in range %v:%v", start, end)
				}
			}()
			if err := gctx.Err(); err != nil {
				return err
			}
			return f(gctx, start, end)
		})
	}
	err := g.Wait()
	if p != nil {
		panic(p)
	}
	if err != nil {
		return err
	}
	return ctx.Err()
}
