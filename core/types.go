package core

import "errors"

// Sentinel errors for core graph construction.
var (
	// ErrNegativeWeight indicates an edge was added with a weight < 0.
	ErrNegativeWeight = errors.New("core: edge weight must be non-negative")

	// ErrVertexOutOfRange indicates a negative edge endpoint. Endpoints at
	// or beyond the current vertex count are not an error: Builder grows to
	// cover them.
	ErrVertexOutOfRange = errors.New("core: vertex id out of range")

	// ErrEmptyGraph indicates a Builder was asked to Build with n <= 0.
	ErrEmptyGraph = errors.New("core: graph must have at least one vertex")
)

// Edge is a single outgoing edge: destination vertex and non-negative weight.
type Edge struct {
	To     int32
	Weight float64
}

// Graph is an immutable, directed, weighted adjacency structure in CSR form.
//
// Vertices are the integers [0,n). For vertex v, its outgoing edges are
// edges[offsets[v]:offsets[v+1]]. maxWeight is the largest weight over every
// edge in the graph (0 for an edge-free graph), cached once at construction
// so the Δ-stepping horizon (bucket.Horizon) never has to rescan the edge
// list.
//
// Graph has no mutex: every field is written exactly once, by Builder.Build,
// before the Graph is handed to any caller. Concurrent reads from many
// goroutines are therefore always safe.
type Graph struct {
	n         int32
	offsets   []int32
	edges     []Edge
	maxWeight float64
}

// N returns the number of vertices.
func (g *Graph) N() int32 { return g.n }

// EdgeCount returns the total number of directed edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// OutDegree returns the number of outgoing edges from v.
func (g *Graph) OutDegree(v int32) int32 {
	return g.offsets[v+1] - g.offsets[v]
}

// Edges returns a slice view of v's outgoing edges. The slice aliases the
// Graph's internal storage; callers must not mutate it.
func (g *Graph) Edges(v int32) []Edge {
	return g.edges[g.offsets[v]:g.offsets[v+1]]
}

// MaxWeight returns the maximum weight of any edge in the graph, or 0 if the
// graph has no edges.
func (g *Graph) MaxWeight() float64 { return g.maxWeight }
