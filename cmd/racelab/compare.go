// compare.go implements the 'racelab compare' command.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/kolkov/racelab/counter"
)

// compareCommand runs every strategy on the same worker/increment shape
// and prints one verdict line per strategy. RACELAB_STRATEGY is ignored
// here; the shape variables still apply.
func compareCommand() {
	settings := mustLoadSettings(counter.Atomic)

	fmt.Printf("=== Strategy Comparison: %d workers × %d increments ===\n",
		settings.Run.Workers, settings.Run.Increments)

	for _, s := range counter.Strategies() {
		cfg := settings.Run
		cfg.Strategy = s

		res, err := counter.Run(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		printCompareLine(os.Stdout, res)
	}
}

// printCompareLine renders one comparison row.
//
// Format: marker, strategy, final value, lost count, elapsed time.
func printCompareLine(w io.Writer, res counter.Result) {
	marker := "✓"
	if !res.Matches {
		marker = "✗"
	}
	fmt.Fprintf(w, "%s %-8v final=%-10d lost=%-8d %v\n",
		marker, res.Strategy, res.Final, res.Lost(), res.Elapsed)
}
