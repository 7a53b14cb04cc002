// Package harness runs the concurrent counter experiment: N workers,
// each incrementing one shared counter M times under a chosen
// synchronization strategy, then a join and a verdict.
//
// The harness owns the counter's whole lifetime. Every run creates a
// fresh cell, lends it to the workers for the duration of the run, joins
// them, reads the final value once, and discards the cell. Nothing leaks
// between runs, so results of one run can never depend on another.
//
// The harness itself performs no I/O. Reporting is the caller's concern.
package harness

import (
	"sync"
	"time"

	"github.com/kolkov/racelab/internal/counter/cell"
	"github.com/kolkov/racelab/internal/counter/sched"
	"github.com/kolkov/racelab/internal/counter/strategy"
	"github.com/kolkov/racelab/internal/counter/tally"
)

// Config specifies one run. It is copied on entry to Run and never
// mutated afterwards; a started run cannot be reconfigured.
type Config struct {
	// Workers is the number of concurrent workers to launch. Minimum 1.
	Workers int

	// Increments is how many times each worker increments the counter.
	// Minimum 1.
	Increments int

	// Strategy selects the synchronization discipline for the shared
	// counter.
	Strategy strategy.Strategy

	// YieldEvery makes workers surrender their processor slice on every
	// Nth increment, counted globally across workers, to provoke more
	// varied interleavings. Zero disables yielding. Optional.
	YieldEvery int
}

// Expected returns the tally a lossless run must produce:
// Workers × Increments.
func (c Config) Expected() int64 {
	return int64(c.Workers) * int64(c.Increments)
}

// Validate checks the configuration without launching anything.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return newConfigError("workers", int64(c.Workers), "must be at least 1")
	}
	if c.Increments < 1 {
		return newConfigError("increments", int64(c.Increments), "must be at least 1")
	}
	if !c.Strategy.Valid() {
		return newConfigError("strategy", int64(c.Strategy), "is not a known strategy")
	}
	if c.YieldEvery < 0 {
		return newConfigError("yield_every", int64(c.YieldEvery), "must not be negative")
	}
	return nil
}

// Result is the outcome of one run.
type Result struct {
	// Strategy echoes the discipline that produced this result.
	Strategy strategy.Strategy

	// Final is the counter value observed after all workers joined.
	Final int64

	// Expected is Workers × Increments.
	Expected int64

	// Matches is true when Final == Expected. Deterministically true
	// for every safe strategy; for the unsynchronized strategy it is
	// whatever the interleaving left behind.
	Matches bool

	// Applied is the total number of increments the workers actually
	// performed, summed from per-worker completion tallies. On any
	// normal return it equals Expected: when Final comes up short the
	// missing increments were overwritten, not skipped.
	Applied int64

	// Elapsed is the wall time from worker launch to counter finalize.
	Elapsed time.Duration
}

// Lost returns how many increments the interleaving destroyed:
// Expected - Final. Zero for every safe strategy.
func (r Result) Lost() int64 {
	return r.Expected - r.Final
}

// Run executes one counter run to completion.
//
// Flow:
//  1. Validate the config; reject it before any worker is launched.
//  2. Create a fresh zero-valued cell for the strategy.
//  3. Launch exactly cfg.Workers workers. Every worker runs the same
//     loop: increment the cell cfg.Increments times, ticking the
//     yielder between increments, then record its completion count.
//  4. Join all workers. The run never reads the counter early.
//  5. Finalize the cell (the channel cell drains its owner here) and
//     read the final value exactly once.
//
// A panicking worker crashes the process. Run has no partial-failure
// recovery: a crashed worker is a bug in the lab, not a condition to
// handle.
func Run(cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	c, err := cell.New(cfg.Strategy)
	if err != nil {
		return Result{}, newConfigError("strategy", int64(cfg.Strategy), "is not a known strategy")
	}

	yielder := sched.NewYielder(cfg.YieldEvery)
	board := tally.New(cfg.Workers)

	var wg sync.WaitGroup
	start := time.Now()

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := 0; i < cfg.Increments; i++ {
				c.Add()
				yielder.Tick()
			}
			board.Record(id, int64(cfg.Increments))
		}(w)
	}

	// Join-all barrier: no result is read while a worker still runs.
	wg.Wait()

	final := c.Value()
	elapsed := time.Since(start)

	expected := cfg.Expected()
	return Result{
		Strategy: cfg.Strategy,
		Final:    final,
		Expected: expected,
		Matches:  final == expected,
		Applied:  board.Total(),
		Elapsed:  elapsed,
	}, nil
}
