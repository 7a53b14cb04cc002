// Package sched injects cooperative scheduling points into worker loops.
//
// A tight increment loop can run to completion inside a single scheduler
// quantum, which makes unsynchronized runs look deceptively correct:
// the workers barely overlap. The Yielder perturbs that by surrendering
// the processor slice every Nth increment, globally across all workers,
// so runs exhibit more varied interleavings. It changes scheduling only;
// it has no effect on what any synchronized strategy counts.
package sched

import (
	"runtime"
	"sync/atomic"
)

// Yielder decides, once per tick, whether the calling worker should
// yield its processor slice.
//
// The decision uses a single atomic position counter shared by all
// workers with modulo-based selection. This gives:
//   - zero overhead when disabled (single branch)
//   - near-zero overhead when enabled (one atomic increment)
//   - an even spread of yields across the whole run, not per worker
//   - no RNG dependency (deterministic yield count for a given tick count)
//
// Thread Safety: all methods are safe for concurrent calls.
type Yielder struct {
	// every selects the yield frequency: a yield fires on every Nth
	// tick. Zero disables the yielder entirely.
	every uint64

	// pos counts ticks across all workers. The shared counter is what
	// spreads yields over the run instead of clustering them per worker.
	pos uint64

	// yields counts fired yields, for inspection in tests and reports.
	yields uint64
}

// NewYielder creates a Yielder firing on every Nth tick.
// Values below 1 disable it.
func NewYielder(every int) *Yielder {
	if every < 0 {
		every = 0
	}
	return &Yielder{every: uint64(every)}
}

// Tick is called by workers once per increment. This is the hot path:
// when the yielder is disabled it costs one predictable branch.
func (y *Yielder) Tick() {
	// Fast path: yielding disabled.
	if y.every == 0 {
		return
	}

	pos := atomic.AddUint64(&y.pos, 1)
	if pos%y.every == 0 {
		atomic.AddUint64(&y.yields, 1)
		runtime.Gosched()
	}
}

// Enabled reports whether ticks can ever yield.
func (y *Yielder) Enabled() bool {
	return y.every > 0
}

// Yields returns how many ticks actually yielded so far.
//
// Each tick gets a unique position, so after T total ticks the count is
// exactly floor(T / every) regardless of how the ticks interleaved.
func (y *Yielder) Yields() uint64 {
	return atomic.LoadUint64(&y.yields)
}
