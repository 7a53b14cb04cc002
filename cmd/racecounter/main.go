// Command racecounter increments a shared counter from two workers with
// no synchronization at all and prints whatever survived.
//
// The increments are plain read-modify-writes, so the workers overwrite
// each other and the final value usually lands short of 2000000. It can
// never land above it. Run it a few times; the number changes.
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
		Strategy:   counter.None,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Final counter value: %d\n", res.Final)
}
