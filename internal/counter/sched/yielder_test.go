package sched

import (
	"sync"
	"testing"
)

func TestDisabledNeverYields(t *testing.T) {
	tests := []struct {
		name  string
		every int
	}{
		{"zero", 0},
		{"negative", -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y := NewYielder(tt.every)
			if y.Enabled() {
				t.Fatalf("NewYielder(%d).Enabled() = true, want false", tt.every)
			}
			for i := 0; i < 1000; i++ {
				y.Tick()
			}
			if got := y.Yields(); got != 0 {
				t.Errorf("Yields() = %d, want 0", got)
			}
		})
	}
}

// TestYieldCount verifies the exact yield count: every tick consumes a
// unique position, so T ticks produce floor(T/every) yields.
func TestYieldCount(t *testing.T) {
	tests := []struct {
		name  string
		every int
		ticks int
		want  uint64
	}{
		{"every tick", 1, 100, 100},
		{"every third", 3, 100, 33},
		{"every tenth", 10, 100, 10},
		{"fewer ticks than period", 100, 99, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y := NewYielder(tt.every)
			if !y.Enabled() {
				t.Fatalf("NewYielder(%d).Enabled() = false, want true", tt.every)
			}
			for i := 0; i < tt.ticks; i++ {
				y.Tick()
			}
			if got := y.Yields(); got != tt.want {
				t.Errorf("Yields() after %d ticks = %d, want %d", tt.ticks, got, tt.want)
			}
		})
	}
}

// TestYieldCountConcurrent checks that the count stays exact when the
// ticks come from many goroutines at once.
func TestYieldCountConcurrent(t *testing.T) {
	const (
		goroutines = 8
		ticks      = 5000
		every      = 7
	)

	y := NewYielder(every)

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < ticks; i++ {
				y.Tick()
			}
		}()
	}
	wg.Wait()

	want := uint64(goroutines*ticks) / every
	if got := y.Yields(); got != want {
		t.Errorf("Yields() = %d, want %d", got, want)
	}
}
