// Package bitonic provides Batcher's bitonic sorting network for slices whose
// length is a power of two.
//
// A sorting network performs a fixed sequence of compare-and-swap operations
// that only depends on the length of the input, never on the values being
// sorted. The network in this package is expressed as a divide-and-conquer
// recursion: each half of a range is sorted, and the two sorted halves are
// then merged by a recursive combine network whose stride doubles at every
// level. Sorting happens in place, and the result is not stable.
//
// Two execution strategies are provided. The sequential strategy runs the
// whole network depth-first in the calling goroutine. The parallel strategy
// sorts the two halves of each range as a fork/join pair, using at most a
// bounded number of goroutines, and runs the combine network for a range only
// after both of its halves are known to be sorted. Both strategies perform
// exactly the same comparisons and produce exactly the same result.
//
// Comparators follow a narrow contract: a strictly positive result means that
// the first argument ranks after the second one, and causes the two elements
// to be exchanged. Zero and negative results are treated the same way, so both
// three-way comparators such as strings.Compare and comparators that only ever
// return 1 or 0 are suitable.
//
// Inputs whose length is neither 0, 1, nor a power of two are rejected with an
// error wrapping ErrNotPowerOfTwo before any element is touched.
package bitonic
