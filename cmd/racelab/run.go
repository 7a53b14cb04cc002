// run.go implements the 'racelab run' command.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/kolkov/racelab/counter"
	"github.com/kolkov/racelab/internal/counter/config"
)

// runCommand executes one harness run configured from the environment
// and prints a report ending with the canonical final-value line.
//
// Flow:
//  1. Load settings (environment plus optional .env file)
//  2. Enforce RACELAB_MIN_VERSION when set
//  3. Run the harness
//  4. Print the report
//
// The strategy defaults to atomic when RACELAB_STRATEGY is unset.
func runCommand() {
	settings := mustLoadSettings(counter.Atomic)

	res, err := counter.Run(settings.Run)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	printRunReport(os.Stdout, res)
}

// mustLoadSettings loads the environment configuration and applies the
// minimum-version gate. Any problem is fatal: the commands never run on
// a configuration they could not parse.
func mustLoadSettings(defaultStrategy counter.Strategy) config.Settings {
	settings, err := config.Load(defaultStrategy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if settings.MinVersion != "" && !counter.AtLeast(settings.MinVersion) {
		fmt.Fprintf(os.Stderr, "Error: racelab %s does not satisfy %s=%s\n",
			counter.Version, config.EnvMinVersion, settings.MinVersion)
		os.Exit(1)
	}

	return settings
}

// printRunReport writes the single-run report. The last line is the
// canonical demo output so scripts can scrape it the same way they
// scrape the fixed demo programs.
func printRunReport(w io.Writer, res counter.Result) {
	fmt.Fprintln(w, "=== Concurrent Counter Run ===")
	fmt.Fprintf(w, "Strategy:        %v\n", res.Strategy)
	fmt.Fprintf(w, "Expected value:  %d\n", res.Expected)
	fmt.Fprintf(w, "Applied:         %d\n", res.Applied)
	fmt.Fprintf(w, "Lost updates:    %d\n", res.Lost())
	fmt.Fprintf(w, "Time elapsed:    %v\n", res.Elapsed)
	fmt.Fprintln(w, verdictLine(res))
	fmt.Fprintf(w, "Final counter value: %d\n", res.Final)
}

// verdictLine renders the success or shortfall verdict for one result.
func verdictLine(res counter.Result) string {
	if res.Matches {
		return "✓ SUCCESS: counter matches the expected value"
	}
	return fmt.Sprintf("✗ LOST UPDATES: counter is short by %d", res.Lost())
}
