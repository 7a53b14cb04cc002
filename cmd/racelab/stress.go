// stress.go implements the 'racelab stress' command.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/kolkov/racelab/counter"
)

// stressCommand repeats the unsynchronized strategy RACELAB_SAMPLES
// times and reports how often the race destroyed updates. A single racy
// run can land anywhere; the batch is what makes the odds visible.
func stressCommand() {
	settings := mustLoadSettings(counter.None)

	cfg := settings.Run
	cfg.Strategy = counter.None // stress is about the racy baseline

	outcome, err := runStress(cfg, settings.Samples)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	printStressReport(os.Stdout, outcome)
}

// stressOutcome aggregates a batch of runs of one configuration.
type stressOutcome struct {
	runs      int   // runs performed
	lossy     int   // runs that lost at least one update
	expected  int64 // expected value per run
	minFinal  int64 // smallest final value seen
	maxFinal  int64 // largest final value seen
	totalLost int64 // sum of losses across the batch
}

// runStress executes samples runs of cfg and aggregates the outcomes.
func runStress(cfg counter.Config, samples int) (stressOutcome, error) {
	o := stressOutcome{runs: samples}

	for i := 0; i < samples; i++ {
		res, err := counter.Run(cfg)
		if err != nil {
			return stressOutcome{}, err
		}

		if i == 0 || res.Final < o.minFinal {
			o.minFinal = res.Final
		}
		if res.Final > o.maxFinal {
			o.maxFinal = res.Final
		}
		if res.Lost() > 0 {
			o.lossy++
		}
		o.totalLost += res.Lost()
		o.expected = res.Expected
	}

	return o, nil
}

// printStressReport writes the batch summary.
func printStressReport(w io.Writer, o stressOutcome) {
	fmt.Fprintln(w, "=== Unsynchronized Stress Batch ===")
	fmt.Fprintf(w, "Runs:             %d\n", o.runs)
	fmt.Fprintf(w, "Expected value:   %d\n", o.expected)
	fmt.Fprintf(w, "Runs with losses: %d (%.0f%%)\n",
		o.lossy, 100*float64(o.lossy)/float64(o.runs))
	fmt.Fprintf(w, "Final value min:  %d\n", o.minFinal)
	fmt.Fprintf(w, "Final value max:  %d\n", o.maxFinal)
	fmt.Fprintf(w, "Mean lost/run:    %.1f\n", float64(o.totalLost)/float64(o.runs))

	if o.lossy > 0 {
		fmt.Fprintln(w, "The race manifested. Increments were executed and then overwritten.")
	} else {
		fmt.Fprintln(w, "No losses observed. Try more workers, more increments, or more samples.")
	}
}
