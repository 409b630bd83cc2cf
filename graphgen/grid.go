package graphgen

import (
	"fmt"

	"deltastep/core"
)

// Grid returns a Constructor building a rows x cols 4-neighborhood grid.
// Vertex (r,c) is the dense id r*cols+c (row-major), matching lvlath/
// builder's "r,c" grid but with int32 ids instead of string labels. Every
// adjacency is emitted as a pair of opposite-direction edges so the grid
// behaves like an undirected graph under the directed-only core.Graph.
// Requires rows >= 1 and cols >= 1.
func Grid(rows, cols int) Constructor {
	return func(b *core.Builder, cfg Config) error {
		if rows < 1 || cols < 1 {
			return fmt.Errorf("graphgen.Grid(%d,%d): %w", rows, cols, ErrTooFewVertices)
		}
		n := rows * cols
		b.AddVertex(int32(n - 1))

		id := func(r, c int) int32 { return int32(r*cols + c) }

		addPair := func(u, v int32) error {
			w := cfg.weightFn(cfg.rng)
			if err := b.AddEdge(u, v, w); err != nil {
				return err
			}
			return b.AddEdge(v, u, w)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := addPair(id(r, c), id(r, c+1)); err != nil {
						return fmt.Errorf("graphgen.Grid: %w", err)
					}
				}
				if r+1 < rows {
					if err := addPair(id(r, c), id(r+1, c)); err != nil {
						return fmt.Errorf("graphgen.Grid: %w", err)
					}
				}
			}
		}

		return nil
	}
}
