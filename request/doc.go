// Package request implements C2, the atomic request slot array: a per-vertex
// lock-free "best pending tentative distance" used to aggregate relaxation
// requests before they reach the bucket structure.
//
// Go has no atomic<double>, so each slot is stored as an atomic.Uint64
// holding the IEEE-754 bit pattern of a float64. CompareAndSwap on the bit
// pattern is equivalent to CompareAndSwap on the float64 for any two
// non-NaN values, since IEEE-754 bit patterns of non-negative finite floats
// (and +Inf) preserve numeric ordering under unsigned integer comparison.
// Distances in this engine are never negative and never NaN, so this holds
// throughout.
package request
