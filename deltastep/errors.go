package deltastep

import "errors"

// Sentinel errors returned by Compute before any allocation, per the
// "reject before allocation" rule for invalid input.
var (
	// ErrInvalidDelta indicates a non-positive bucket width.
	ErrInvalidDelta = errors.New("deltastep: delta must be positive")

	// ErrInvalidThreads indicates a non-positive worker count (parallel
	// variant only).
	ErrInvalidThreads = errors.New("deltastep: threads must be positive")
)
