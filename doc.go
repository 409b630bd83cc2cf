// Package deltastep is a parallel single-source shortest-path engine for
// directed graphs with non-negative real edge weights, built around the
// Δ-stepping algorithm.
//
// The engine is organized into the following subpackages:
//
//	core/      — immutable CSR graph representation shared by every solver
//	bucket/    — cyclic bucket horizon with lazy (tombstoned) deletion
//	request/   — per-vertex atomic strictest-request aggregation
//	partition/ — prefix-balanced edge partitioning across worker goroutines
//	workerpool/— fixed-size barrier-synchronized goroutine pool
//	deltastep/ — the Sequential and Parallel Δ-stepping solvers
//	dijkstra/  — sequential Dijkstra oracle, used to validate the solvers
//	solver/    — the Solver interface shared by every implementation
//	graphgen/  — synthetic graph generators for testing and benchmarking
//	graphio/   — load/save the text adjacency-list file format
//	bench/     — benchmark timing, CSV, and console-table reporting
//	cmd/       — the ssspcheck correctness driver and ssspbench CLI
//
// The hard part of this repository is the concurrency substrate in bucket,
// request, partition, and workerpool: a lock-free per-vertex relaxation
// protocol synchronized by barriers rather than a global lock, balanced
// across worker goroutines by edge count rather than vertex count.
package deltastep
