package graphgen

import (
	"fmt"

	"deltastep/core"
)

// Complete returns a Constructor building the directed complete graph K_n:
// every ordered pair (u,v), u != v, gets its own edge with an independently
// sampled weight. Requires n >= 1.
func Complete(n int) Constructor {
	return func(b *core.Builder, cfg Config) error {
		if n < 1 {
			return fmt.Errorf("graphgen.Complete(%d): %w", n, ErrTooFewVertices)
		}
		b.AddVertex(int32(n - 1))

		for u := 0; u < n; u++ {
			for v := 0; v < n; v++ {
				if u == v {
					continue
				}
				w := cfg.weightFn(cfg.rng)
				if err := b.AddEdge(int32(u), int32(v), w); err != nil {
					return fmt.Errorf("graphgen.Complete: %w", err)
				}
			}
		}

		return nil
	}
}
