// Package config loads run settings for the racelab commands from the
// environment.
//
// Tuning happens exclusively through environment variables; the commands
// take no flags. A .env file in the working directory is folded into the
// environment first (via godotenv), real environment variables win over
// file entries.
//
// Variables:
//
//	RACELAB_WORKERS      workers per run          (default 2)
//	RACELAB_INCREMENTS   increments per worker    (default 1000000)
//	RACELAB_STRATEGY     none|lock|atomic|cas|channel
//	RACELAB_YIELD_EVERY  yield every Nth increment, 0 = off (default 0)
//	RACELAB_SAMPLES      runs per stress batch    (default 20)
//	RACELAB_MIN_VERSION  refuse to run on an older library version
//
// Range validation of the run shape is left to the harness, which
// rejects bad values before launching anything; this package only
// rejects values that do not parse at all.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/kolkov/racelab/internal/counter/harness"
	"github.com/kolkov/racelab/internal/counter/strategy"
)

// Environment variable names.
const (
	EnvWorkers    = "RACELAB_WORKERS"
	EnvIncrements = "RACELAB_INCREMENTS"
	EnvStrategy   = "RACELAB_STRATEGY"
	EnvYieldEvery = "RACELAB_YIELD_EVERY"
	EnvSamples    = "RACELAB_SAMPLES"
	EnvMinVersion = "RACELAB_MIN_VERSION"
)

// Defaults mirror the fixed demo programs: two workers, one million
// increments each.
const (
	DefaultWorkers    = 2
	DefaultIncrements = 1_000_000
	DefaultSamples    = 20
)

// Settings is everything the commands read from the environment.
type Settings struct {
	// Run is the harness configuration for a single run.
	Run harness.Config

	// Samples is how many runs a stress batch performs.
	Samples int

	// MinVersion, when non-empty, names the minimum library version the
	// caller insists on. The commands refuse to run when the library is
	// older.
	MinVersion string
}

// Load assembles Settings from the environment.
//
// defaultStrategy fills Settings.Run.Strategy when RACELAB_STRATEGY is
// unset; each command passes the strategy it is about.
//
// envFiles optionally names .env files to fold in explicitly. With no
// names, ./.env is used when present and silently skipped when absent;
// an explicitly named file that cannot be read is an error.
func Load(defaultStrategy strategy.Strategy, envFiles ...string) (Settings, error) {
	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil {
			return Settings{}, fmt.Errorf("loading env file: %w", err)
		}
	} else {
		_ = godotenv.Load() // no .env file is fine
	}

	s := Settings{
		Run: harness.Config{
			Workers:    DefaultWorkers,
			Increments: DefaultIncrements,
			Strategy:   defaultStrategy,
		},
		Samples:    DefaultSamples,
		MinVersion: os.Getenv(EnvMinVersion),
	}

	var err error
	if s.Run.Workers, err = intVar(EnvWorkers, DefaultWorkers); err != nil {
		return Settings{}, err
	}
	if s.Run.Increments, err = intVar(EnvIncrements, DefaultIncrements); err != nil {
		return Settings{}, err
	}
	if s.Run.YieldEvery, err = intVar(EnvYieldEvery, 0); err != nil {
		return Settings{}, err
	}
	if s.Samples, err = intVar(EnvSamples, DefaultSamples); err != nil {
		return Settings{}, err
	}
	if s.Samples < 1 {
		return Settings{}, fmt.Errorf("%s: must be at least 1 (got %d)", EnvSamples, s.Samples)
	}

	if v := os.Getenv(EnvStrategy); v != "" {
		st, err := strategy.Parse(v)
		if err != nil {
			return Settings{}, fmt.Errorf("%s: %w", EnvStrategy, err)
		}
		s.Run.Strategy = st
	}

	return s, nil
}

// intVar reads an integer variable, falling back to def when unset.
func intVar(name string, def int) (int, error) {
	v := os.Getenv(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return n, nil
}
