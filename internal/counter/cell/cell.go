// Package cell implements the shared counter cells, one per
// synchronization strategy.
//
// A cell is the single integer the workers fight over. Every cell starts
// at zero and supports exactly two operations: Add (one increment under
// the cell's discipline) and Value (the final tally). The harness creates
// a fresh cell per run, hands it to the workers for the duration of the
// run, joins them, then reads the value once. Cells are not reusable
// across runs.
package cell

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/kolkov/racelab/internal/counter/strategy"
)

// Cell is a shared counter mutated by concurrent workers.
//
// Contract:
//   - Add performs exactly one increment under the cell's discipline.
//   - Value returns the final tally. Call it once, only after every
//     Add caller has returned. No Add may follow a Value.
//
// Whether concurrent Add calls are free of data races depends on the
// cell: every implementation except [Racy] is safe for concurrent use.
type Cell interface {
	Add()
	Value() int64
}

// New returns a fresh zero-valued cell for the given strategy.
func New(s strategy.Strategy) (Cell, error) {
	switch s {
	case strategy.None:
		return &Racy{}, nil
	case strategy.Lock:
		return &Locked{}, nil
	case strategy.Atomic:
		return &Atomic{}, nil
	case strategy.CAS:
		return &Spin{}, nil
	case strategy.Channel:
		return NewActor(), nil
	default:
		return nil, fmt.Errorf("no cell for %v", s)
	}
}

// Racy is the unsynchronized cell. Add is a plain read-modify-write:
// the load and the store are separate steps, and concurrent adders can
// interleave between them, overwriting each other's increments. A lost
// update only ever shrinks the tally; the stored value can never exceed
// the number of Adds performed, so Value <= total Adds always holds.
//
// Thread Safety: NOT safe for concurrent use. That is the point.
type Racy struct {
	n int64
}

// Add increments the cell without any coordination.
func (c *Racy) Add() {
	v := c.n // read
	c.n = v + 1
}

// Value returns the tally. Only meaningful after the adders finished
// (the harness establishes that with its join barrier).
func (c *Racy) Value() int64 {
	return c.n
}

// Locked guards the counter with a mutex. The critical section is the
// increment and nothing else: the lock scope is the method body, and the
// deferred unlock releases it on every exit path.
//
// Thread Safety: safe for concurrent use.
type Locked struct {
	mu sync.Mutex
	n  int64
}

// Add increments the cell while holding the mutex.
func (c *Locked) Add() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.n++
}

// Value returns the tally under the same mutex.
func (c *Locked) Value() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n
}

// Atomic increments the counter with a single hardware fetch-and-add.
// The read-modify-write happens as one indivisible operation, so no
// interleaving can lose an update.
//
// Thread Safety: safe for concurrent use.
type Atomic struct {
	n atomic.Int64
}

// Add increments the cell with one fetch-and-add.
func (c *Atomic) Add() {
	c.n.Add(1)
}

// Value returns the tally with an atomic load.
func (c *Atomic) Value() int64 {
	return c.n.Load()
}

// Spin increments the counter with an optimistic compare-and-swap loop:
// load the current value, attempt to swap in value+1, retry if another
// adder won the race. Lock-free; under contention an Add may retry, but
// every Add lands exactly once.
//
// Thread Safety: safe for concurrent use.
type Spin struct {
	n atomic.Int64
}

// Add retries load+CAS until the swap succeeds.
func (c *Spin) Add() {
	for {
		old := c.n.Load()
		if c.n.CompareAndSwap(old, old+1) {
			return
		}
	}
}

// Value returns the tally with an atomic load.
func (c *Spin) Value() int64 {
	return c.n.Load()
}

// actorBuffer is the inlet channel capacity. Buffering batches sends so
// adders rarely block; correctness does not depend on the size.
const actorBuffer = 1024

// Actor confines the counter to a single owner goroutine. Adders never
// touch the integer: they send a message on the inlet channel and the
// owner does the arithmetic. Synchronization comes from the channel
// itself, not from locks or atomics.
//
// Value closes the inlet, lets the owner drain what is buffered, and
// receives the total. After Value the cell is spent: another Add would
// panic on the closed channel, which the Cell contract already forbids.
//
// Thread Safety: Add is safe for concurrent use. Value must be called
// exactly once, after all adders returned.
type Actor struct {
	inc  chan struct{}
	done chan int64
}

// NewActor creates the cell and starts its owner goroutine.
func NewActor() *Actor {
	a := &Actor{
		inc:  make(chan struct{}, actorBuffer),
		done: make(chan int64, 1),
	}
	go a.loop()
	return a
}

// loop is the owner goroutine: it holds the only reference to the count.
func (a *Actor) loop() {
	var n int64
	for range a.inc {
		n++
	}
	a.done <- n
}

// Add sends one increment message to the owner.
func (a *Actor) Add() {
	a.inc <- struct{}{}
}

// Value closes the inlet, waits for the owner to drain it, and returns
// the total.
func (a *Actor) Value() int64 {
	close(a.inc)
	return <-a.done
}
