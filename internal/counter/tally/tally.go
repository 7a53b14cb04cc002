// Package tally records how many increments each worker actually
// performed, independently of the shared counter they performed them on.
//
// The board gives every worker its own slot and each worker writes only
// that slot, so recording needs no locks and no atomics. The sum is read
// after the harness joins the workers; the join is the happens-before
// edge that makes the plain reads safe.
//
// Juxtaposing the board's total with the counter's final value is what
// exposes a lost update for what it is: the work was done, the result
// was overwritten.
package tally

// Board holds one completion slot per worker.
type Board struct {
	slots []int64
}

// New creates a board with one zeroed slot per worker.
func New(workers int) *Board {
	return &Board{slots: make([]int64, workers)}
}

// Record stores the number of increments worker w completed.
// Each worker must record only its own slot.
func (b *Board) Record(w int, n int64) {
	b.slots[w] = n
}

// Total sums every slot. Call only after the writers are joined.
func (b *Board) Total() int64 {
	var sum int64
	for _, n := range b.slots {
		sum += n
	}
	return sum
}

// PerWorker returns a copy of the slots in worker order.
func (b *Board) PerWorker() []int64 {
	out := make([]int64, len(b.slots))
	copy(out, b.slots)
	return out
}
