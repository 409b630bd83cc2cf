package deltastep

import (
	"fmt"
	"math"

	"deltastep/bucket"
	"deltastep/core"
	"deltastep/solver"
)

// Sequential is the single-goroutine Δ-stepping variant: same bucketing,
// light/heavy split, and strictest-request aggregation as Parallel, but no
// atomics, barriers, or workers. It exists to validate the algorithmic
// skeleton independently of the concurrency substrate.
type Sequential struct {
	delta float64
}

// NewSequential returns a Sequential solver with the given bucket width.
func NewSequential(delta float64) *Sequential {
	return &Sequential{delta: delta}
}

// Name returns "Delta-Stepping(sequential)".
func (*Sequential) Name() string { return "Delta-Stepping(sequential)" }

var _ solver.Solver = (*Sequential)(nil)

// Compute runs Δ-stepping on one goroutine.
func (s *Sequential) Compute(g *core.Graph, source int32) ([]float64, error) {
	if s.delta <= 0 {
		return nil, ErrInvalidDelta
	}
	if source < 0 || source >= g.N() {
		return nil, fmt.Errorf("deltastep: source=%d: %w", source, solver.ErrSourceOutOfRange)
	}

	st := newState(g, s.delta)
	st.relax(source, 0, -1)

	n := int(g.N())
	lightReq := newPlainRequests(n)
	heavyReq := newPlainRequests(n)

	h := st.horizon.Size()
	currentGen := 0
	genWithoutWork := 0

	for genWithoutWork < h {
		slot := st.horizon.Slot(currentGen)

		for !slot.Empty() {
			genWithoutWork = 0

			// Phase A: request generation over the bucket snapshot.
			snapshot := slot.Snapshot()
			for _, u := range snapshot {
				if u == bucket.Tombstone {
					continue
				}
				du := st.dist[u]
				for _, e := range g.Edges(u) {
					nd := du + e.Weight
					if nd >= st.dist[e.To] {
						continue
					}
					if e.Weight < s.delta {
						lightReq.AddRequest(e.To, nd)
					} else {
						heavyReq.AddRequest(e.To, nd)
					}
				}
			}
			slot.Clear()

			// Phase B: light relaxation.
			for _, v := range lightReq.Requested() {
				if nd := lightReq.Drain(v); !math.IsInf(nd, 1) {
					st.relax(v, nd, currentGen)
				}
			}
			lightReq.Reset()
		}

		// Phase C: heavy relaxation, once per outer iteration regardless of
		// whether the inner loop ran.
		for _, v := range heavyReq.Requested() {
			if nd := heavyReq.Drain(v); !math.IsInf(nd, 1) {
				st.relax(v, nd, currentGen)
			}
		}
		heavyReq.Reset()

		currentGen = (currentGen + 1) % h
		genWithoutWork++
	}

	return st.dist, nil
}
