// Package counter runs concurrent increment experiments on a single
// shared counter and reports whether the chosen synchronization
// discipline kept the count honest.
//
// The lab exists to make one of the oldest concurrency bugs tangible.
// N workers each increment a shared integer M times; a correct run ends
// at exactly N×M. An unsynchronized increment is a read-modify-write,
// and two workers that interleave between the read and the write
// overwrite each other. The counter comes up short, nothing crashes,
// and no error is returned: the updates are simply gone.
//
// # Quick Start
//
//	package main
//
//	import (
//		"fmt"
//
//		"github.com/kolkov/racelab/counter"
//	)
//
//	func main() {
//		res, _ := counter.Run(counter.Config{
//			Workers:    2,
//			Increments: 1_000_000,
//			Strategy:   counter.Atomic,
//		})
//		fmt.Printf("Final counter value: %d\n", res.Final)
//	}
//
// # Strategies
//
// Five disciplines cover the spectrum:
//
//	None     unsynchronized read-modify-write; loses updates on purpose
//	Lock     sync.Mutex held for the increment only
//	Atomic   one hardware fetch-and-add per increment
//	CAS      optimistic load + compare-and-swap retry loop
//	Channel  counter owned by a single goroutine, fed by messages
//
// Every strategy except None guarantees Final == Expected on every run.
// None guarantees only Final <= Expected: a lost update can shrink the
// tally, never grow it. With a single worker there is no interleaving,
// so even None counts exactly.
//
// # Reading a Result
//
// A [Result] carries the observed Final, the Expected total, and the
// Matches verdict, plus the detail that makes a shortfall legible:
// Applied is the number of increments the workers actually performed
// (always Workers×Increments on a normal return). When Final is smaller
// than Applied, the missing increments were executed and then
// overwritten. [Result.Lost] returns the difference.
//
// # Harness contract
//
// The harness owns the counter: each run creates a fresh cell at zero,
// lends it to the workers, joins every worker before reading the final
// value, and discards the cell. Runs are independent; configs are
// validated before anything is launched; a panicking worker crashes the
// run rather than producing a partial result. The harness performs no
// I/O.
//
// # Demos and tooling
//
// Four fixed demo programs print the canonical single line
// ("Final counter value: <n>") for one strategy each: cmd/racecounter,
// cmd/mutexcounter, cmd/atomiccounter, cmd/chancounter. The racelab CLI
// (cmd/racelab) runs, compares, and stress-tests strategies, configured
// entirely through RACELAB_* environment variables.
//
// # Testing note
//
// Tests that drive the None strategy concurrently are deliberate data
// races and are excluded from `go test -race` builds; the rest of the
// module is race-clean. Do not assert exact equality on any single
// unsynchronized run: the race is real, so the outcome is not yours to
// pick.
//
// # Links
//
// Project repository:
// https://github.com/kolkov/racelab
//
// Documentation:
// https://pkg.go.dev/github.com/kolkov/racelab/counter
package counter
