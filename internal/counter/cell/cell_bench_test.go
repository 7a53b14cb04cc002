package cell

import "testing"

// BenchmarkAdd measures the per-increment cost of each safe cell under
// full contention (every P hammering the same cell).
//
// Expected ordering: atomic < cas < lock < channel. The channel cell
// pays for a send per increment; the cas cell degrades with contention
// because losing adders retry.
func BenchmarkAdd(b *testing.B) {
	benches := []struct {
		name string
		make func() Cell
	}{
		{"Lock", func() Cell { return &Locked{} }},
		{"Atomic", func() Cell { return &Atomic{} }},
		{"CAS", func() Cell { return &Spin{} }},
		{"Channel", func() Cell { return NewActor() }},
	}

	for _, bc := range benches {
		b.Run(bc.name, func(b *testing.B) {
			c := bc.make()
			b.ReportAllocs()
			b.RunParallel(func(pb *testing.PB) {
				for pb.Next() {
					c.Add()
				}
			})
			b.StopTimer()
			_ = c.Value() // let the channel cell retire its owner goroutine
		})
	}
}
