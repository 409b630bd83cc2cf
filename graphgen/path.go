package graphgen

import (
	"fmt"

	"deltastep/core"
)

// Path returns a Constructor building a directed simple path 0 -> 1 -> ... ->
// n-1, one edge per hop, weighted by cfg.weightFn. Requires n >= 2.
func Path(n int) Constructor {
	return func(b *core.Builder, cfg Config) error {
		if n < 2 {
			return fmt.Errorf("graphgen.Path(%d): %w", n, ErrTooFewVertices)
		}
		b.AddVertex(int32(n - 1))

		for v := 0; v < n-1; v++ {
			w := cfg.weightFn(cfg.rng)
			if err := b.AddEdge(int32(v), int32(v+1), w); err != nil {
				return fmt.Errorf("graphgen.Path: %w", err)
			}
		}

		return nil
	}
}
