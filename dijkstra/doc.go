// Package dijkstra implements C8, the sequential priority-queue Dijkstra
// algorithm used throughout this repository as the correctness oracle for
// every Δ-stepping variant.
//
// Complexity:
//
//   - Time:  O((V + E) log V), using a binary heap with lazy decrease-key
//     (stale heap entries are dropped on pop rather than removed in place).
//   - Space: O(V + E) worst case for heap entries.
package dijkstra
