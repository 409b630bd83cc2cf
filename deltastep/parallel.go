package deltastep

import (
	"fmt"
	"math"

	"deltastep/bucket"
	"deltastep/core"
	"deltastep/partition"
	"deltastep/request"
	"deltastep/solver"
	"deltastep/workerpool"
)

// partitionThreshold is the bucket-snapshot size at or above which Phase A
// uses partition.BuildPrefixParallel (the two-pass parallel prefix sum)
// instead of partition.BuildPrefixSequential. Below it, the fixed cost of
// fanning a prefix-sum out across the pool exceeds the cost of computing it
// on the controller goroutine.
const partitionThreshold = 1024

// Parallel is the worker-pool-driven Δ-stepping variant: request generation,
// light relaxation, and heavy relaxation are each fanned out across a fixed
// pool of goroutines synchronized by a barrier, with per-vertex request
// aggregation done through atomic CAS-min (package request).
type Parallel struct {
	delta   float64
	threads int
}

// NewParallel returns a Parallel solver with the given bucket width and
// worker count.
func NewParallel(delta float64, threads int) *Parallel {
	return &Parallel{delta: delta, threads: threads}
}

// Name returns "Delta-Stepping(parallel,threads=N)".
func (p *Parallel) Name() string {
	return fmt.Sprintf("Delta-Stepping(parallel,threads=%d)", p.threads)
}

var _ solver.Solver = (*Parallel)(nil)

// Compute runs Δ-stepping across p.threads worker goroutines. Even at
// threads=1 the full pool/barrier machinery runs (no sequential alias),
// exercising the same concurrency substrate at every thread count.
func (p *Parallel) Compute(g *core.Graph, source int32) ([]float64, error) {
	if p.delta <= 0 {
		return nil, ErrInvalidDelta
	}
	if p.threads <= 0 {
		return nil, ErrInvalidThreads
	}
	if source < 0 || source >= g.N() {
		return nil, fmt.Errorf("deltastep: source=%d: %w", source, solver.ErrSourceOutOfRange)
	}

	st := newState(g, p.delta)
	st.relax(source, 0, -1)

	n := int(g.N())
	lightReq := request.NewSlots(n)
	heavyReq := request.NewSlots(n)

	pool := workerpool.New(p.threads)
	defer pool.Shutdown()

	h := st.horizon.Size()
	currentGen := 0
	genWithoutWork := 0

	for genWithoutWork < h {
		slot := st.horizon.Slot(currentGen)

		for !slot.Empty() {
			genWithoutWork = 0

			generatePhase(pool, g, slot, p.delta, st.dist, lightReq, heavyReq)
			slot.Clear()

			relaxPhase(pool, st, lightReq.Requested(), lightReq, currentGen)
			lightReq.Reset()
		}

		relaxPhase(pool, st, heavyReq.Requested(), heavyReq, currentGen)
		heavyReq.Reset()

		currentGen = (currentGen + 1) % h
		genWithoutWork++
	}

	return st.dist, nil
}

// degreeOf returns a partition.DegreeFunc over g that charges tombstoned
// slots zero width, so Locate transparently skips them.
func degreeOf(g *core.Graph) partition.DegreeFunc {
	return func(v int32) int32 {
		if v == bucket.Tombstone {
			return 0
		}
		return g.OutDegree(v)
	}
}

// generatePhase runs Phase A (request generation) over slot's snapshot,
// balancing the work across pool.N() workers by total edge count rather
// than vertex count, since vertex degree in these graphs can vary widely
// enough that a per-vertex split would leave some workers idle.
func generatePhase(pool *workerpool.Pool, g *core.Graph, slot *bucket.Slot, delta float64, dist []float64, lightReq, heavyReq *request.Slots) {
	ids := slot.Snapshot()
	if len(ids) == 0 {
		return
	}
	deg := degreeOf(g)

	var prefix []int64
	if len(ids) >= partitionThreshold {
		prefix = partition.BuildPrefixParallel(pool, ids, deg)
	} else {
		prefix = partition.BuildPrefixSequential(ids, deg)
	}

	total := partition.Total(prefix)
	if total == 0 {
		return
	}
	ranges := partition.Split(total, pool.N())

	tasks := make([]workerpool.Task, pool.N())
	for w := 0; w < pool.N(); w++ {
		w := w
		tasks[w] = func() {
			walkEdgeRange(g, ids, prefix, ranges[w], dist, delta, lightReq, heavyReq)
		}
	}
	pool.Run(tasks)
}

// walkEdgeRange generates requests for the edges in global position range r
// of the flattened (ids, prefix) edge space, locating the starting vertex
// and in-vertex offset for r.Lo via partition.Locate and then walking
// forward vertex by vertex until r.Hi edges have been visited.
func walkEdgeRange(g *core.Graph, ids []int32, prefix []int64, r partition.Range, dist []float64, delta float64, lightReq, heavyReq *request.Slots) {
	if r.Lo >= r.Hi {
		return
	}

	idx, offset := partition.Locate(prefix, r.Lo)
	remaining := r.Hi - r.Lo

	for remaining > 0 && idx < len(ids) {
		u := ids[idx]
		if u == bucket.Tombstone {
			idx++
			offset = 0
			continue
		}

		edges := g.Edges(u)
		du := dist[u]
		for i := int(offset); i < len(edges) && remaining > 0; i++ {
			e := edges[i]
			if nd := du + e.Weight; nd < dist[e.To] {
				if e.Weight < delta {
					lightReq.AddRequest(e.To, nd)
				} else {
					heavyReq.AddRequest(e.To, nd)
				}
			}
			remaining--
		}
		idx++
		offset = 0
	}
}

// relaxPhase drains every vertex in requested and relaxes it, splitting the
// (vertex-count, not edge-count) work evenly across pool.N() workers: relax
// itself is O(1) amortized, so edge-balancing would be overkill here.
func relaxPhase(pool *workerpool.Pool, st *state, requested []int32, req *request.Slots, currentGen int) {
	if len(requested) == 0 {
		return
	}
	ranges := partition.Split(int64(len(requested)), pool.N())

	tasks := make([]workerpool.Task, pool.N())
	for w := 0; w < pool.N(); w++ {
		w := w
		tasks[w] = func() {
			r := ranges[w]
			for i := r.Lo; i < r.Hi; i++ {
				v := requested[i]
				if nd := req.Drain(v); !math.IsInf(nd, 1) {
					st.relax(v, nd, currentGen)
				}
			}
		}
	}
	pool.Run(tasks)
}
