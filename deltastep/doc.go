// Package deltastep implements C5 (the parallel Δ-stepping orchestrator) and
// C9's sequential variant, built on top of bucket, request, workerpool, and
// partition.
//
// Both Sequential and Parallel share the same bucketing, light/heavy edge
// split, and strictest-request aggregation; Sequential runs them on one
// goroutine with plain slices, Parallel fans each phase out across a
// workerpool.Pool using atomic request slots and a prefix-balanced edge
// partition.
//
// dist is an ordinary []float64 in both variants, not an atomic array: the
// bucket/barrier structure guarantees at most one writer touches dist[v]
// during any phase (the vertex's single request-slot drain), so concurrent
// writes to distinct elements of the same slice need no synchronization
// beyond the phase barriers already in place.
package deltastep
