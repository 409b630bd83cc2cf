package graphgen

import (
	"fmt"

	"deltastep/core"
)

// Constructor applies a deterministic topology to a *core.Builder using the
// resolved Config. Constructors MUST validate their own parameters and
// return sentinel errors; they never panic on bad input (functional Options
// panic instead, since those are programmer errors caught at call sites).
//
// Rationale: isolates topology logic behind a uniform function type, the
// way lvlath/builder isolates its own Constructor closures.
type Constructor func(b *core.Builder, cfg Config) error

// Build creates a *core.Builder pre-sized for n vertices, resolves opts into
// a Config, and applies every constructor in order before finalizing the
// graph. Constructor errors are wrapped with their index for context; no
// partial cleanup is attempted.
//
// n is the vertex count constructors should treat as authoritative; most
// constructors also receive their own size parameter (Path(n), Grid(r,c))
// and Build does not reconcile it against n beyond what AddEdge already does
// by growing the builder on demand.
func Build(n int, opts []Option, cons ...Constructor) (*core.Graph, error) {
	b := core.NewBuilder(n)
	cfg := newConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("graphgen.Build: nil constructor at index %d", i)
		}
		if err := fn(b, cfg); err != nil {
			return nil, fmt.Errorf("graphgen.Build: constructor %d: %w", i, err)
		}
	}

	return b.Build()
}
