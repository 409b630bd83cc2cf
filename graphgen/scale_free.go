package graphgen

import (
	"fmt"

	"deltastep/core"
)

// ScaleFree returns a Constructor building a Barabási–Albert scale-free
// graph: m seed vertices wired into a cycle, then n-m vertices added one at
// a time, each attaching m edges to existing vertices chosen with
// probability proportional to their current degree (preferential
// attachment). Every attachment is emitted as a pair of opposite-direction
// edges, the same "undirected via edge pairs" convention as Grid.
//
// Implements preferential attachment with the standard "repeated nodes"
// trick: a flat list holding one entry per edge endpoint ever assigned, so
// sampling a uniformly random entry from it samples a vertex with
// probability proportional to degree.
//
// Requires n > m >= 1; stochastic, so requires cfg.rng (WithSeed/WithRand).
func ScaleFree(n, m int) Constructor {
	return func(b *core.Builder, cfg Config) error {
		if m < 1 || n <= m {
			return fmt.Errorf("graphgen.ScaleFree(n=%d,m=%d): %w", n, m, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("graphgen.ScaleFree: %w", ErrNeedRandSource)
		}
		rng := cfg.rng
		b.AddVertex(int32(n - 1))

		addPair := func(u, v int32) error {
			w := cfg.weightFn(rng)
			if err := b.AddEdge(u, v, w); err != nil {
				return err
			}
			return b.AddEdge(v, u, w)
		}

		// Seed network: a cycle over the first m vertices so each starts with
		// degree 2 and a nonzero chance of future attachment (m==1 degenerates
		// to a single self-loop-free seed vertex with no edges).
		repeated := make([]int32, 0, 2*m*(n-m))
		if m >= 2 {
			for i := 0; i < m; i++ {
				u, v := int32(i), int32((i+1)%m)
				if err := addPair(u, v); err != nil {
					return fmt.Errorf("graphgen.ScaleFree: %w", err)
				}
				repeated = append(repeated, u, v)
			}
		}

		for source := m; source < n; source++ {
			targets := make(map[int32]struct{}, m)
			if len(repeated) == 0 {
				// No degree signal yet (m==1 seed case): attach uniformly to
				// existing vertices 0..source-1.
				for len(targets) < m && len(targets) < source {
					targets[int32(rng.Intn(source))] = struct{}{}
				}
			} else {
				for len(targets) < m {
					targets[repeated[rng.Intn(len(repeated))]] = struct{}{}
				}
			}

			for t := range targets {
				if err := addPair(int32(source), t); err != nil {
					return fmt.Errorf("graphgen.ScaleFree: %w", err)
				}
				repeated = append(repeated, t, int32(source))
			}
		}

		return nil
	}
}
