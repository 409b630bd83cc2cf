// Package solver defines the common contract every shortest-path
// implementation in this repository satisfies: a name for reporting
// purposes and a Compute method that turns a graph and a source vertex into
// a distance vector.
//
// dijkstra.Oracle, deltastep.Sequential, and deltastep.Parallel all
// implement Solver, which lets cmd/ssspcheck and cmd/ssspbench drive every
// registered solver through one loop instead of one per algorithm.
package solver
