package bitonic

import (
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"strings"
)

// Strategy selects how a Sorter executes the sorting network.
type Strategy int

const (
	// Sequential runs the network depth-first in the calling goroutine.
	Sequential Strategy = iota

	// Parallel sorts the two halves of each range as a fork/join pair.
	Parallel
)

func (s Strategy) String() string {
	switch s {
	case Sequential:
		return "sequential"
	case Parallel:
		return "parallel"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy returns the Strategy with the given name.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sequential", "seq":
		return Sequential, nil
	case "parallel", "par":
		return Parallel, nil
	}
	return 0, fmt.Errorf("bitonic: unknown strategy %q", name)
}

// DefaultGrainSize is the range size at and below which the parallel strategy
// stops forking and sorts sequentially.
const DefaultGrainSize = 0x800

type config struct {
	strategy Strategy
	workers  int
	grain    int
	logger   *slog.Logger
}

// An Option configures a Sorter, or a call to ParallelSort, ParallelSortErr,
// or SortBlocks.
type Option func(*config)

// WithStrategy selects the execution strategy of a Sorter. The default is
// Sequential. ParallelSort and ParallelSortErr always use Parallel.
func WithStrategy(strategy Strategy) Option {
	return func(c *config) {
		c.strategy = strategy
	}
}

// WithWorkers bounds the number of goroutines that execute parts of a single
// sort at the same time, including the calling goroutine. If n <= 0,
// runtime.GOMAXPROCS(0) is used. If n == 1, no goroutines are spawned.
func WithWorkers(n int) Option {
	return func(c *config) {
		c.workers = n
	}
}

// WithGrainSize sets the range size at and below which the parallel strategy
// sorts sequentially. Values < 1 are treated as 1, which forks at every divide
// step above the base case.
func WithGrainSize(n int) Option {
	return func(c *config) {
		c.grain = n
	}
}

// WithLogger sets the logger that failed or canceled sorts are reported to,
// at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func newConfig(opts []Option) config {
	c := config{
		strategy: Sequential,
		grain:    DefaultGrainSize,
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.workers <= 0 {
		c.workers = runtime.GOMAXPROCS(0)
	}
	if c.grain < 1 {
		c.grain = 1
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c
}
