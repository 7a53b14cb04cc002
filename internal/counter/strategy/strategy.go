// Package strategy defines the synchronization disciplines a counter run
// can use.
//
// A Strategy is a compact tag selecting how concurrent workers mutate the
// shared counter:
//   - None: unsynchronized read-modify-write (loses updates on purpose)
//   - Lock: mutual exclusion scoped to the increment
//   - Atomic: hardware fetch-and-add
//   - CAS: optimistic compare-and-swap retry loop
//   - Channel: counter owned by a single goroutine, fed by messages
//
// The tag is what makes the worker loop polymorphic: one loop, one cell
// per discipline, no per-strategy copies of the launch/join logic.
package strategy

import "fmt"

// Strategy is a tag selecting a synchronization discipline.
type Strategy uint8

const (
	// None performs the increment as a plain read-modify-write with no
	// coordination. Two workers may interleave between the read and the
	// write, so increments can be lost. This is the intentionally broken
	// baseline.
	None Strategy = iota

	// Lock guards the read-modify-write with a mutex held only for the
	// duration of the increment itself.
	Lock

	// Atomic performs the increment as a single hardware fetch-and-add.
	// Go exposes one (sequentially consistent) flavor of atomics; since
	// increments commute, any ordering would produce the same total.
	Atomic

	// CAS performs the increment as an optimistic load + compare-and-swap,
	// retrying until the swap wins. Lock-free, never loses an update.
	CAS

	// Channel gives the counter to a single owner goroutine; workers send
	// increment messages instead of touching shared memory.
	Channel

	count // number of strategies; keep last
)

// Count is the number of defined strategies.
const Count = int(count)

// String returns the lowercase name of the strategy.
//
// Unknown values format as "strategy(N)" so they stay printable in error
// messages without panicking.
func (s Strategy) String() string {
	switch s {
	case None:
		return "none"
	case Lock:
		return "lock"
	case Atomic:
		return "atomic"
	case CAS:
		return "cas"
	case Channel:
		return "channel"
	default:
		return fmt.Sprintf("strategy(%d)", uint8(s))
	}
}

// Valid reports whether s is one of the defined strategies.
func (s Strategy) Valid() bool {
	return s < count
}

// Safe reports whether the strategy is free of lost updates.
// Every discipline except None is safe.
func (s Strategy) Safe() bool {
	return s.Valid() && s != None
}

// Parse converts a strategy name to its tag. Matching is exact and
// lowercase ("none", "lock", "atomic", "cas", "channel").
func Parse(name string) (Strategy, error) {
	for s := None; s < count; s++ {
		if name == s.String() {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown strategy %q", name)
}

// All returns every defined strategy in declaration order.
func All() []Strategy {
	out := make([]Strategy, 0, Count)
	for s := None; s < count; s++ {
		out = append(out, s)
	}
	return out
}
