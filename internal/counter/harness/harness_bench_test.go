package harness

import (
	"testing"

	"github.com/kolkov/racelab/internal/counter/strategy"
)

// BenchmarkRun measures end-to-end run cost per safe strategy on a fixed
// shape: 4 workers × 10,000 increments, launch and join included.
//
// The interesting number is the spread between the disciplines, not the
// absolute cost; expect atomic < cas < lock < channel on the same shape.
func BenchmarkRun(b *testing.B) {
	for _, s := range safeStrategies {
		b.Run(s.String(), func(b *testing.B) {
			cfg := Config{Workers: 4, Increments: 10_000, Strategy: s}

			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				res, err := Run(cfg)
				if err != nil {
					b.Fatal(err)
				}
				if !res.Matches {
					b.Fatalf("lost updates under %v: Final %d, Expected %d",
						s, res.Final, res.Expected)
				}
			}
		})
	}
}

// BenchmarkRunYield measures what yield injection adds to an atomic run.
func BenchmarkRunYield(b *testing.B) {
	benches := []struct {
		name  string
		every int
	}{
		{"Off", 0},
		{"Every100", 100},
		{"Every10", 10},
	}

	for _, bc := range benches {
		b.Run(bc.name, func(b *testing.B) {
			cfg := Config{
				Workers:    4,
				Increments: 10_000,
				Strategy:   strategy.Atomic,
				YieldEvery: bc.every,
			}

			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := Run(cfg); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
