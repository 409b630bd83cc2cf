package bench

import (
	"fmt"
	"time"

	"deltastep/core"
	"deltastep/solver"
)

// Timing holds the Min/Avg/Max wall-clock milliseconds collected over
// Timing.Runs repetitions of one solver.Compute call, plus the distance
// vector from the final run (used by callers that also want to check
// correctness against an oracle).
type Timing struct {
	MinMs, AvgMs, MaxMs float64
	Runs                int
	Dist                []float64
}

// Time runs s.Compute(g, source) runs times and returns timing statistics.
// Compute errors abort immediately; a graph that a solver cannot handle
// (invalid source, invalid configuration) is a caller bug, not a benchmark
// outcome worth averaging around.
func Time(s solver.Solver, g *core.Graph, source int32, runs int) (Timing, error) {
	if runs < 1 {
		return Timing{}, fmt.Errorf("bench.Time(%s): runs must be >= 1, got %d", s.Name(), runs)
	}

	var sum float64
	min := time.Duration(0)
	max := time.Duration(0)
	var dist []float64

	for i := 0; i < runs; i++ {
		start := time.Now()
		d, err := s.Compute(g, source)
		elapsed := time.Since(start)
		if err != nil {
			return Timing{}, fmt.Errorf("bench.Time(%s): run %d: %w", s.Name(), i, err)
		}
		dist = d

		if i == 0 || elapsed < min {
			min = elapsed
		}
		if i == 0 || elapsed > max {
			max = elapsed
		}
		sum += elapsed.Seconds() * 1000
	}

	return Timing{
		MinMs: min.Seconds() * 1000,
		AvgMs: sum / float64(runs),
		MaxMs: max.Seconds() * 1000,
		Runs:  runs,
		Dist:  dist,
	}, nil
}
