package graphgen

import (
	"fmt"
	"math"

	"deltastep/core"
)

const rmatProbTolerance = 1e-9

// RMAT returns a Constructor building a recursive-matrix (R-MAT) random
// graph over n vertices with e directed edges. Each edge's endpoints are
// chosen by recursively partitioning the n x n adjacency matrix into four
// quadrants with probabilities a, b, c, d (top-left, top-right,
// bottom-left, bottom-right) until a single cell is selected; repeated
// bisection naturally concentrates degree on a small vertex prefix, giving
// the graph its heavy-tailed, self-similar structure.
//
// Requires n >= 1, e >= 0, a,b,c,d all non-negative and summing to 1 within
// tolerance (else ErrInvalidRMATParams). Stochastic, so requires cfg.rng.
func RMAT(n, e int, a, b, c, d float64) Constructor {
	return func(builder *core.Builder, cfg Config) error {
		if n < 1 {
			return fmt.Errorf("graphgen.RMAT(n=%d): %w", n, ErrTooFewVertices)
		}
		if a < 0 || b < 0 || c < 0 || d < 0 || math.Abs(a+b+c+d-1) > rmatProbTolerance {
			return fmt.Errorf("graphgen.RMAT(a=%g,b=%g,c=%g,d=%g): %w", a, b, c, d, ErrInvalidRMATParams)
		}
		if cfg.rng == nil {
			return fmt.Errorf("graphgen.RMAT: %w", ErrNeedRandSource)
		}
		rng := cfg.rng
		builder.AddVertex(int32(n - 1))

		for i := 0; i < e; i++ {
			u, v := rmatPick(rng, n, a, b, c, d)
			w := cfg.weightFn(rng)
			if err := builder.AddEdge(u, v, w); err != nil {
				return fmt.Errorf("graphgen.RMAT: %w", err)
			}
		}

		return nil
	}
}

// rmatPick recursively bisects [0,n)x[0,n) into quadrants weighted a,b,c,d
// (top-left, top-right, bottom-left, bottom-right) until a single (row,col)
// cell remains. Row and column each stop narrowing independently once their
// own range reaches width 1, so n need not be a power of two.
func rmatPick(rng randFloat64Intn, n int, a, b, c, d float64) (int32, int32) {
	rowLo, rowHi := 0, n
	colLo, colHi := 0, n

	for rowHi-rowLo > 1 || colHi-colLo > 1 {
		rowMid := rowLo + (rowHi-rowLo)/2
		colMid := colLo + (colHi-colLo)/2

		r := rng.Float64()
		upperRow := r < a+b
		leftCol := r < a || (r >= a+b && r < a+b+c)

		if rowHi-rowLo > 1 {
			if upperRow {
				rowHi = rowMid
			} else {
				rowLo = rowMid
			}
		}
		if colHi-colLo > 1 {
			if leftCol {
				colHi = colMid
			} else {
				colLo = colMid
			}
		}
	}

	return int32(rowLo), int32(colLo)
}

// randFloat64Intn is the narrow rng surface rmatPick needs, satisfied by
// *rand.Rand.
type randFloat64Intn interface {
	Float64() float64
}
