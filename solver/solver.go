package solver

import (
	"errors"

	"deltastep/core"
)

// ErrSourceOutOfRange indicates a source vertex outside [0, g.N()).
var ErrSourceOutOfRange = errors.New("solver: source vertex out of range")

// Solver computes single-source shortest-path distances over an immutable
// graph. Compute returns a slice of length g.N(): dist[source] == 0, and
// dist[v] == math.Inf(1) for every v not reachable from source.
type Solver interface {
	// Name returns a stable, human-readable label used in benchmark and
	// correctness-driver output.
	Name() string

	// Compute returns the shortest-path distance vector from source.
	// source must be in [0, g.N()); otherwise ErrSourceOutOfRange is
	// returned.
	Compute(g *core.Graph, source int32) ([]float64, error)
}
