// Package main implements the racelab CLI tool.
//
// racelab drives the concurrent counter lab from the command line:
// single runs, side-by-side strategy comparisons, and stress batches
// that show how often an unsynchronized counter actually loses updates.
//
// Usage:
//
//	racelab run       # one run, configured from RACELAB_* variables
//	racelab compare   # every strategy on the same shape
//	racelab stress    # repeated unsynchronized runs, loss statistics
//
// The tool takes no flags. All tuning happens through environment
// variables, with an optional .env file in the working directory.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/kolkov/racelab/counter"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "run":
		runCommand()
	case "compare":
		compareCommand()
	case "stress":
		stressCommand()
	case "version", "--version", "-v":
		versionCommand()
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func versionCommand() {
	info := counter.GetInfo()
	fmt.Printf("racelab version %s\n", info.Version)
	fmt.Printf("strategies: %s\n", strings.Join(info.Strategies, ", "))
}

func printUsage() {
	fmt.Print(`racelab - Concurrent Counter Lab

USAGE:
    racelab <command>

COMMANDS:
    run        Run the counter harness once
    compare    Run every strategy on the same shape
    stress     Repeat unsynchronized runs and count the losses
    version    Show version information
    help       Show this help message

CONFIGURATION:
    racelab takes no flags. Runs are configured through the environment;
    a .env file in the working directory is honored:

        RACELAB_WORKERS       workers per run            (default 2)
        RACELAB_INCREMENTS    increments per worker      (default 1000000)
        RACELAB_STRATEGY      none|lock|atomic|cas|channel
        RACELAB_YIELD_EVERY   yield every Nth increment  (default 0 = off)
        RACELAB_SAMPLES       runs per stress batch      (default 20)
        RACELAB_MIN_VERSION   refuse to run on an older library version

EXAMPLES:
    # Two workers, a million increments each, no synchronization
    RACELAB_STRATEGY=none racelab run

    # Compare every strategy on a smaller shape
    RACELAB_WORKERS=8 RACELAB_INCREMENTS=100000 racelab compare

    # How often does the race actually bite?
    RACELAB_SAMPLES=50 racelab stress

ABOUT:
    A shared counter incremented by N workers M times each must end at
    exactly N x M. racelab runs that experiment under five strategies,
    from intentionally broken (none) to message passing (channel), and
    reports which disciplines kept the count honest.

    Lost updates never crash and never error: an unsynchronized counter
    simply comes up short. The point of the lab is to make that visible.

FOR MORE INFORMATION:
    Repository: https://github.com/kolkov/racelab
    Documentation: https://pkg.go.dev/github.com/kolkov/racelab/counter

`)
}
