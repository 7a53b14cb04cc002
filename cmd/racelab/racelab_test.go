// racelab_test.go tests the report rendering and the stress aggregation.
package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kolkov/racelab/counter"
)

func TestVerdictLine_Success(t *testing.T) {
	res := counter.Result{Strategy: counter.Lock, Final: 100, Expected: 100, Matches: true}

	got := verdictLine(res)
	if !strings.HasPrefix(got, "✓") {
		t.Errorf("verdictLine() = %q, want success marker", got)
	}
}

func TestVerdictLine_LostUpdates(t *testing.T) {
	res := counter.Result{Strategy: counter.None, Final: 70, Expected: 100, Matches: false}

	got := verdictLine(res)
	if !strings.HasPrefix(got, "✗") {
		t.Errorf("verdictLine() = %q, want shortfall marker", got)
	}
	if !strings.Contains(got, "30") {
		t.Errorf("verdictLine() = %q, want the lost count 30", got)
	}
}

// TestPrintRunReport_CanonicalLastLine checks that the report ends with
// the same line the fixed demo programs print, so both surfaces scrape
// identically.
func TestPrintRunReport_CanonicalLastLine(t *testing.T) {
	res := counter.Result{Strategy: counter.Atomic, Final: 2_000_000, Expected: 2_000_000, Matches: true, Applied: 2_000_000}

	var buf bytes.Buffer
	printRunReport(&buf, res)

	out := strings.TrimRight(buf.String(), "\n")
	lines := strings.Split(out, "\n")
	last := lines[len(lines)-1]
	if last != "Final counter value: 2000000" {
		t.Errorf("last report line = %q, want %q", last, "Final counter value: 2000000")
	}
}

func TestPrintCompareLine_Markers(t *testing.T) {
	var buf bytes.Buffer

	printCompareLine(&buf, counter.Result{Strategy: counter.Atomic, Final: 10, Expected: 10, Matches: true})
	printCompareLine(&buf, counter.Result{Strategy: counter.None, Final: 7, Expected: 10, Matches: false})

	out := buf.String()
	if !strings.Contains(out, "✓ atomic") {
		t.Errorf("compare output missing success row:\n%s", out)
	}
	if !strings.Contains(out, "✗ none") {
		t.Errorf("compare output missing shortfall row:\n%s", out)
	}
}

// TestRunStress_SafeStrategy aggregates a batch of mutex runs: a safe
// strategy must produce a loss-free outcome with min == max == expected.
func TestRunStress_SafeStrategy(t *testing.T) {
	cfg := counter.Config{Workers: 2, Increments: 1000, Strategy: counter.Lock}

	o, err := runStress(cfg, 3)
	if err != nil {
		t.Fatalf("runStress() returned error: %v", err)
	}

	if o.runs != 3 {
		t.Errorf("runs = %d, want 3", o.runs)
	}
	if o.lossy != 0 {
		t.Errorf("lossy = %d, want 0 for a safe strategy", o.lossy)
	}
	if o.expected != 2000 {
		t.Errorf("expected = %d, want 2000", o.expected)
	}
	if o.minFinal != 2000 || o.maxFinal != 2000 {
		t.Errorf("finals = [%d, %d], want [2000, 2000]", o.minFinal, o.maxFinal)
	}
	if o.totalLost != 0 {
		t.Errorf("totalLost = %d, want 0", o.totalLost)
	}
}

func TestRunStress_InvalidConfig(t *testing.T) {
	cfg := counter.Config{Workers: 0, Increments: 1000, Strategy: counter.Lock}

	if _, err := runStress(cfg, 2); err == nil {
		t.Error("runStress() returned nil error for an invalid config")
	}
}

func TestPrintStressReport_Fields(t *testing.T) {
	o := stressOutcome{runs: 20, lossy: 17, expected: 2_000_000, minFinal: 1_204_556, maxFinal: 2_000_000, totalLost: 5_000_000}

	var buf bytes.Buffer
	printStressReport(&buf, o)

	out := buf.String()
	for _, want := range []string{"Runs:             20", "17 (85%)", "1204556", "The race manifested"} {
		if !strings.Contains(out, want) {
			t.Errorf("stress report missing %q:\n%s", want, out)
		}
	}
}
