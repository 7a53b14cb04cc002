package counter_test

import (
	"errors"
	"fmt"

	"github.com/kolkov/racelab/counter"
)

// Example demonstrates a basic synchronized run: four workers, a
// thousand increments each, counted with atomic fetch-and-add.
func Example() {
	res, err := counter.Run(counter.Config{
		Workers:    4,
		Increments: 1000,
		Strategy:   counter.Atomic,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("Final counter value: %d\n", res.Final)
	fmt.Println("matches expected:", res.Matches)
	// Output:
	// Final counter value: 4000
	// matches expected: true
}

// Example_lock runs the mutex discipline on the canonical two-worker
// shape. The lock makes the outcome deterministic.
func Example_lock() {
	res, err := counter.Run(counter.Config{
		Workers:    2,
		Increments: 100_000,
		Strategy:   counter.Lock,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("final: %d, expected: %d, lost: %d\n", res.Final, res.Expected, res.Lost())
	// Output:
	// final: 200000, expected: 200000, lost: 0
}

// Example_invalidConfig shows that a bad configuration is rejected
// before any worker is launched.
func Example_invalidConfig() {
	_, err := counter.Run(counter.Config{
		Workers:    0,
		Increments: 1,
		Strategy:   counter.Lock,
	})

	fmt.Println(errors.Is(err, counter.ErrInvalidConfig))
	fmt.Println(err)
	// Output:
	// true
	// invalid run configuration: workers must be at least 1 (got 0)
}

// Example_parseStrategy converts a configuration string to a strategy.
func Example_parseStrategy() {
	s, err := counter.ParseStrategy("channel")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(s)
	// Output:
	// channel
}
