package graphgen

import "math/rand"

// Config aggregates the knobs shared by every Constructor: an RNG for
// stochastic builders and a WeightFn for edge weights. It is passed by
// value, so constructors never mutate a caller's configuration.
type Config struct {
	rng      *rand.Rand
	weightFn WeightFn
}

// Option customizes a Config before a graph is built.
type Option func(*Config)

// newConfig resolves deterministic defaults and applies opts in order
// (later options win).
func newConfig(opts ...Option) Config {
	cfg := Config{
		rng:      nil,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRand installs an explicit RNG for stochastic constructors. Panics on
// nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("graphgen: WithRand(nil)")
	}
	return func(c *Config) { c.rng = r }
}

// WithSeed seeds a fresh *rand.Rand, giving deterministic output across
// runs for a fixed seed.
func WithSeed(seed int64) Option {
	return func(c *Config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("graphgen: WithWeightFn(nil)")
	}
	return func(c *Config) { c.weightFn = fn }
}

// WithWeightDist selects one of the two weight distributions (uniform,
// power-law), parameterized by [min,max].
func WithWeightDist(dist WeightDist, min, max float64) Option {
	switch dist {
	case WeightDistPowerLaw:
		return WithWeightFn(PowerLawWeightFn(min, max, DefaultPowerLawExponent))
	default:
		return WithWeightFn(UniformWeightFn(min, max))
	}
}
