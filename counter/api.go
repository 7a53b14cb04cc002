// Package counter provides the public API for the concurrent counter lab.
//
// See doc.go for detailed documentation and examples.
package counter

import (
	internal "github.com/kolkov/racelab/internal/counter/harness"
	"github.com/kolkov/racelab/internal/counter/strategy"
)

// Strategy selects how concurrent workers mutate the shared counter.
type Strategy = strategy.Strategy

// The synchronization disciplines, from intentionally broken to
// message passing.
const (
	// None performs unsynchronized read-modify-write increments.
	// Concurrent workers interleave between the read and the write and
	// overwrite each other, so the final value may fall short of the
	// expected total. It can never exceed it.
	None = strategy.None

	// Lock guards each increment with a mutex held for the increment
	// and nothing else.
	Lock = strategy.Lock

	// Atomic performs each increment as one hardware fetch-and-add.
	Atomic = strategy.Atomic

	// CAS performs each increment as an optimistic compare-and-swap
	// retry loop.
	CAS = strategy.CAS

	// Channel confines the counter to one owner goroutine fed by
	// increment messages.
	Channel = strategy.Channel
)

// Config specifies one run of the harness.
//
// Workers and Increments must both be at least 1; Strategy must be one
// of the defined disciplines. The optional YieldEvery perturbs worker
// scheduling; zero leaves it off. A Config is immutable once a run
// starts.
type Config = internal.Config

// Result is the outcome of one run: the observed final value, the
// expected total, whether they match, and supporting detail (applied
// increments, elapsed wall time, the strategy that ran).
type Result = internal.Result

// ConfigError reports the configuration field that made a run
// impossible. Retrieve it with errors.As.
type ConfigError = internal.ConfigError

// ErrInvalidConfig is the sentinel wrapped by every configuration
// error. Match it with errors.Is.
var ErrInvalidConfig = internal.ErrInvalidConfig

// Run executes one counter run: it creates a fresh counter at zero,
// launches cfg.Workers workers that each increment it cfg.Increments
// times under cfg.Strategy, joins them all, and reports the outcome.
//
// The counter's lifetime is owned by the run. Workers borrow it; no
// state survives into a later run, so calling Run twice with the same
// Config yields two independent experiments.
//
// Run returns before launching anything when the configuration is
// invalid:
//
//	res, err := counter.Run(counter.Config{Workers: 0, Increments: 1, Strategy: counter.Lock})
//	errors.Is(err, counter.ErrInvalidConfig) // true
//
// For every strategy except None the returned Result reports
// Matches == true deterministically. For None the result depends on
// the interleaving; only Final <= Expected is guaranteed.
func Run(cfg Config) (Result, error) {
	return internal.Run(cfg)
}

// ParseStrategy converts a strategy name to its tag. Names are the
// lowercase String() forms: "none", "lock", "atomic", "cas", "channel".
func ParseStrategy(name string) (Strategy, error) {
	return strategy.Parse(name)
}

// Strategies returns every discipline in declaration order, None first.
func Strategies() []Strategy {
	return strategy.All()
}
