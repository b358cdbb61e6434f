package internal

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// ComputeNofBatches determines the number of batches for the range from low to
// high. If n > 0, n is used, otherwise the size of the range (high - low) is
// divided by a number that takes runtime.NumCPU() into account. The result
// never exceeds the size of the range, except that an empty range yields one
// batch.
func ComputeNofBatches(low, high, n int) (batches int) {
	if n < 0 {
		panic(fmt.Sprintf("invalid number of batches: %v", n))
	}
	switch size := high - low; {
	case size > 0:
		batches = n
		if batches == 0 {
			batches = 2 * runtime.NumCPU()
		}
		if batches > size {
			batches = size
		}
	case size == 0:
		batches = 1
	default:
		panic(fmt.Sprintf("invalid range: %v:%v", low, high))
	}
	return
}

// WrapPanic adds stack trace information to a recovered panic.
func WrapPanic(p interface{}) interface{} {
	if p != nil {
		if err, isError := p.(error); isError {
			return fmt.Errorf("%w\n%s\nrethrown at", err, debug.Stack())
		}
		return fmt.Sprintf("%v\n%s\nrethrown at", p, debug.Stack())
	}
	return nil
}
