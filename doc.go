// This package provides Batcher's bitonic sorting network together with the
// fork/join functions its parallel execution is built on.
//
// It provides the following subpackages:
//
// forGoBitonic/bitonic provides the sorting network for slices whose length is
// a power of two, with a sequential and a bounded parallel strategy, the
// network's comparator plan, a parallel IsSorted, and independent sorting of
// fixed-size blocks.
//
// forGoBitonic/parallel provides a bounded two-way fork/join with panic and
// error propagation, and a batched parallel range loop with cancelation.
//
// forGoBitonic/speculative provides a parallel range predicate that terminates
// early as soon as the final result is known.
//
// forGoBitonic/cmd/bitonic is a command line tool for sorting values and
// printing sorting networks.
package forGoBitonic
