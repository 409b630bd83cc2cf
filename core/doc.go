// Package core defines the immutable graph representation shared by every
// solver in this repository: a CSR-style (compressed sparse row) adjacency
// structure over integer vertex IDs in [0,n), with non-negative float64 edge
// weights.
//
// A Graph is built once via Builder and never mutated afterward. Accessors
// are non-blocking and allocation-free (Edges returns a slice view into the
// underlying storage, not a copy), which lets many goroutines read the same
// Graph concurrently during a Compute call without any locking.
//
// Complexity:
//
//   - Builder.AddEdge: amortized O(1).
//   - Builder.Build:   O(V + E) to compute CSR offsets and the maximum edge
//     weight.
//   - Graph.Edges(v):  O(1) to obtain the slice view; iterating it is
//     O(out-degree(v)).
package core
