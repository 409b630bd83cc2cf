package deltastep

import (
	"math"

	"deltastep/bucket"
	"deltastep/core"
)

// state holds the mutable working set of one Compute call: the distance
// vector, each vertex's current position within its bucket slot, and the
// bucket horizon itself. It is shared, unmodified in shape, by Sequential
// and Parallel.
type state struct {
	g       *core.Graph
	delta   float64
	dist    []float64
	pos     []int
	horizon *bucket.Horizon
}

func newState(g *core.Graph, delta float64) *state {
	n := int(g.N())
	dist := make([]float64, n)
	for i := range dist {
		dist[i] = math.Inf(1)
	}

	return &state{
		g:       g,
		delta:   delta,
		dist:    dist,
		pos:     make([]int, n),
		horizon: bucket.NewHorizon(n, delta, g.MaxWeight()),
	}
}

// relax applies a drained request value nd to vertex v:
//
//	old = bucket_of(v) (with the old dist[v])
//	dist[v] = nd
//	new = bucket_of(v)
//	if old >= 0 and old != currentGen and old != new: tombstone v's old slot
//	if old == currentGen or old != new: push v into its new slot
//
// currentGen is the generation currently being drained; pass -1 for the
// initial placement of source, which never equals a real generation index.
// A no-op if nd does not improve dist[v].
func (s *state) relax(v int32, nd float64, currentGen int) {
	if nd >= s.dist[v] {
		return
	}

	old := -1
	if !math.IsInf(s.dist[v], 1) {
		old = s.horizon.BucketIndex(s.dist[v])
	}

	s.dist[v] = nd
	newB := s.horizon.BucketIndex(nd)

	if old >= 0 && old != currentGen && old != newB {
		s.horizon.Slot(old).SetTombstone(s.pos[v])
	}
	if old == currentGen || old != newB {
		s.pos[v] = s.horizon.Slot(newB).Push(v)
	}
}
