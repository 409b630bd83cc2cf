package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"deltastep/core"
	"deltastep/solver"
)

// Oracle is the sequential Dijkstra solver.Solver. It never mutates g and is
// safe to reuse across many Compute calls, including concurrently (each call
// allocates its own heap and distance vector).
type Oracle struct{}

// NewOracle returns an Oracle.
func NewOracle() *Oracle { return &Oracle{} }

// Name returns "Dijkstra".
func (*Oracle) Name() string { return "Dijkstra" }

// Compute returns the shortest-path distance vector from source, computed
// with a standard lazy-decrease-key binary heap.
func (*Oracle) Compute(g *core.Graph, source int32) ([]float64, error) {
	if source < 0 || source >= g.N() {
		return nil, fmt.Errorf("dijkstra: source=%d: %w", source, solver.ErrSourceOutOfRange)
	}

	n := int(g.N())
	dist := make([]float64, n)
	visited := make([]bool, n)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[source] = 0

	pq := make(nodePQ, 0, n)
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{id: source, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u := item.id
		if visited[u] {
			continue
		}
		visited[u] = true

		du := dist[u]
		for _, e := range g.Edges(u) {
			nd := du + e.Weight
			if nd < dist[e.To] {
				dist[e.To] = nd
				heap.Push(&pq, &nodeItem{id: e.To, dist: nd})
			}
		}
	}

	return dist, nil
}

type nodeItem struct {
	id   int32
	dist float64
}

type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
