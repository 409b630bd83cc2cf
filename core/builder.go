package core

import "fmt"

// Builder accumulates vertices and edges before finalizing an immutable
// Graph. A Builder grows its vertex count on demand (AddEdge extends the
// adjacency lists if an endpoint is not yet covered), which lets graphio and
// graphgen construct graphs without knowing the final vertex count upfront.
//
// Builder is not safe for concurrent use; construction of a single Graph is
// always single-threaded (parsing a file or running one generator), a
// one-time setup step that happens before any solver touches the graph.
type Builder struct {
	adj [][]Edge
}

// NewBuilder creates a Builder with n pre-allocated vertices (0..n-1 each
// starting with no outgoing edges). n may be 0; AddVertex/AddEdge grow the
// builder as needed.
func NewBuilder(n int) *Builder {
	return &Builder{adj: make([][]Edge, n)}
}

// AddVertex ensures vertex v exists, growing the builder if necessary.
// Complexity: amortized O(1).
func (b *Builder) AddVertex(v int32) {
	if int(v) >= len(b.adj) {
		b.adj = append(b.adj, make([][]Edge, int(v)+1-len(b.adj))...)
	}
}

// NumVertices reports the number of vertices currently tracked.
func (b *Builder) NumVertices() int32 { return int32(len(b.adj)) }

// AddEdge appends a directed edge u->v with weight w, growing the builder to
// cover max(u,v) if needed. Negative weights are rejected with
// ErrNegativeWeight; negative vertex ids are rejected with
// ErrVertexOutOfRange.
//
// Parallel edges and self-loops are both permitted: each AddEdge call simply
// appends another CSR entry, so the resulting Graph naturally supports
// "result uses min(w1,w2)" for parallel edges (relaxation picks the smaller
// offer) and correctly renders self-loops (relaxation of dist[v]+w >= dist[v]
// never improves anything).
// Complexity: amortized O(1).
func (b *Builder) AddEdge(u, v int32, w float64) error {
	if u < 0 || v < 0 {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrVertexOutOfRange)
	}
	if w < 0 {
		return fmt.Errorf("AddEdge(%d,%d,w=%g): %w", u, v, w, ErrNegativeWeight)
	}
	m := u
	if v > m {
		m = v
	}
	b.AddVertex(m)
	b.adj[u] = append(b.adj[u], Edge{To: v, Weight: w})

	return nil
}

// Build finalizes the Builder into an immutable Graph in CSR form.
// Complexity: O(V + E).
func (b *Builder) Build() (*Graph, error) {
	n := len(b.adj)
	if n <= 0 {
		return nil, ErrEmptyGraph
	}

	offsets := make([]int32, n+1)
	for i := 0; i < n; i++ {
		offsets[i+1] = offsets[i] + int32(len(b.adj[i]))
	}

	edges := make([]Edge, offsets[n])
	var maxWeight float64
	for i := 0; i < n; i++ {
		copy(edges[offsets[i]:offsets[i+1]], b.adj[i])
		for _, e := range b.adj[i] {
			if e.Weight > maxWeight {
				maxWeight = e.Weight
			}
		}
	}

	return &Graph{
		n:         int32(n),
		offsets:   offsets,
		edges:     edges,
		maxWeight: maxWeight,
	}, nil
}
