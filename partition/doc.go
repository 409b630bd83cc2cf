// Package partition implements a prefix-balanced edge partitioner: given a
// snapshot of vertex IDs (as pushed into a bucket.Slot, including
// tombstones) it produces N contiguous ranges over the *edges* of that
// snapshot, each range covering close to total-edges/N regardless of how
// skewed the individual vertices' out-degrees are.
//
// Two algorithms are provided:
//
//   - BuildPrefixParallel: the two-pass algorithm (local prefix sums per
//     worker slice, an exclusive scan over per-worker totals, then a second
//     pass that adds each slice's offset to its local sums) — used for large
//     bucket snapshots.
//   - BuildPrefixSequential: a single-threaded prefix sum — used for small
//     bucket snapshots, where the fixed cost of fanning out to the pool
//     would dominate.
//
// Both feed the same Split/Locate helpers, so callers (package deltastep)
// don't need to know which one produced a given prefix array.
package partition
