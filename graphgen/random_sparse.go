package graphgen

import (
	"fmt"

	"deltastep/core"
)

const (
	probMin = 0.0
	probMax = 1.0
)

// RandomSparse returns a Constructor sampling an Erdős–Rényi-like directed
// graph over n vertices: every ordered pair (u,v), u != v, is an independent
// Bernoulli trial with success probability p. Requires n >= 1 and 0 <= p <=
// 1; requires cfg.rng (via WithSeed/WithRand) when 0 < p < 1.
func RandomSparse(n int, p float64) Constructor {
	return func(b *core.Builder, cfg Config) error {
		if n < 1 {
			return fmt.Errorf("graphgen.RandomSparse(n=%d): %w", n, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("graphgen.RandomSparse(p=%g): %w", p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("graphgen.RandomSparse: %w", ErrNeedRandSource)
		}
		b.AddVertex(int32(n - 1))

		for u := 0; u < n; u++ {
			for v := 0; v < n; v++ {
				if u == v {
					continue
				}

				var include bool
				switch {
				case cfg.rng == nil:
					include = p == 1.0
				default:
					include = cfg.rng.Float64() < p
				}
				if !include {
					continue
				}

				w := cfg.weightFn(cfg.rng)
				if err := b.AddEdge(int32(u), int32(v), w); err != nil {
					return fmt.Errorf("graphgen.RandomSparse: %w", err)
				}
			}
		}

		return nil
	}
}
