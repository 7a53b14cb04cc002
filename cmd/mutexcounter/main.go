// Command mutexcounter increments a shared counter from two workers
// with a mutex scoped tightly around each increment, then prints the
// final value. The lock serializes the read-modify-writes, so the
// output is exactly 2000000 on every run.
package main

import (
	"fmt"
	"os"

	"github.com/kolkov/racelab/counter"
)

const (
	workers    = 2
	increments = 1_000_000
)

func main() {
	res, err := counter.Run(counter.Config{
		Workers:    workers,
		Increments: increments,
		Strategy:   counter.Lock,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Final counter value: %d\n", res.Final)
}
