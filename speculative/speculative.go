// Package speculative provides functions for expressing parallel algorithms,
// similar to the functions in package parallel, except that the implementations
// here terminate early when they can.
package speculative

import (
	"sync"
	"sync/atomic"

	"github.com/intel/forGoBitonic/internal"
)

// RangeAnd receives a range, a batch count n, and a range predicate function
// f, divides the range into batches, and invokes the range predicate for each
// of these batches in parallel, covering the half-open interval from low to
// high, including low but excluding high.
//
// The range is specified by a low and high integer, with low <= high. The
// batches are determined by dividing up the size of the range (high - low) by
// n. If n is 0, a reasonable default is used that takes runtime.NumCPU()
// into account.
//
// The range predicate is invoked for each batch in its own goroutine, with 0 <=
// low <= high, and RangeAnd returns true if all of them return true; or
// RangeAnd returns false when at least one of them returns false. Once a range
// predicate has returned false, batches that have not started yet are skipped,
// but RangeAnd still waits for the predicates already running, so that no
// invocation of f outlives the call to RangeAnd.
//
// RangeAnd panics if high < low, or if n < 0.
//
// If one or more range predicates panic, the corresponding goroutines recover
// the panics, and RangeAnd may eventually panic with the left-most recovered
// panic value.
func RangeAnd(low, high, n int, f func(low, high int) bool) bool {
	var failed atomic.Bool
	call := func(low, high int) bool {
		if failed.Load() {
			return false
		}
		if !f(low, high) {
			failed.Store(true)
			return false
		}
		return true
	}
	var recur func(int, int, int) bool
	recur = func(low, high, n int) bool {
		if n == 1 {
			return call(low, high)
		}
		batchSize := ((high - low - 1) / n) + 1
		half := n / 2
		mid := low + batchSize*half
		if mid >= high {
			return call(low, high)
		}
		var b1 bool
		var p interface{}
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer func() {
				p = internal.WrapPanic(recover())
				wg.Done()
			}()
			b1 = recur(mid, high, n-half)
		}()
		b0 := recurLeft(recur, low, mid, half, &wg)
		wg.Wait()
		if p != nil {
			panic(p)
		}
		return b0 && b1
	}
	return recur(low, high, internal.ComputeNofBatches(low, high, n))
}

func recurLeft(recur func(int, int, int) bool, low, high, n int, wg *sync.WaitGroup) bool {
	defer func() {
		if p := recover(); p != nil {
			wg.Wait()
			panic(p)
		}
	}()
	return recur(low, high, n)
}
