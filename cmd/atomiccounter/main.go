// Command atomiccounter increments a shared counter from two workers
// using hardware fetch-and-add, then prints the final value. Each
// increment is a single indivisible operation, so the output is exactly
// 2000000 on every run, without any lock.
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
		Strategy:   counter.Atomic,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Final counter value: %d\n", res.Final)
}
