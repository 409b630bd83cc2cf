package graphgen

import "errors"

// Sentinel errors returned by Constructor implementations. Callers branch on
// these with errors.Is; messages are never matched by string.
var (
	// ErrTooFewVertices indicates a size parameter below the constructor's
	// documented minimum.
	ErrTooFewVertices = errors.New("graphgen: parameter too small")

	// ErrInvalidProbability indicates a probability parameter outside [0,1].
	ErrInvalidProbability = errors.New("graphgen: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor was run without
	// an RNG configured via WithSeed or WithRand.
	ErrNeedRandSource = errors.New("graphgen: rng is required")

	// ErrInvalidRMATParams indicates RMAT quadrant probabilities that are
	// negative or do not sum to 1 (within tolerance).
	ErrInvalidRMATParams = errors.New("graphgen: RMAT quadrant probabilities must be non-negative and sum to 1")
)
