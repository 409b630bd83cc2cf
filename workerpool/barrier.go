package workerpool

import "sync"

// Barrier is a reusable (cyclic) rendezvous point for a fixed number of
// parties. Wait blocks until every party has called Wait, then releases all
// of them simultaneously and resets for the next round. No ecosystem
// dependency examined in this repository's corpus provides a reusable
// multi-party barrier (the corpus uses sync.WaitGroup for one-shot
// fan-out/fan-in — see DESIGN.md) so this is built directly on sync.Cond,
// the standard library's own rendezvous primitive.
type Barrier struct {
	mu      sync.Mutex
	cond    *sync.Cond
	parties int
	count   int
	gen     uint64
}

// NewBarrier creates a Barrier for the given number of parties.
func NewBarrier(parties int) *Barrier {
	b := &Barrier{parties: parties}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// Wait blocks the calling goroutine until `parties` goroutines (across all
// callers) have called Wait since the barrier last released.
func (b *Barrier) Wait() {
	b.mu.Lock()
	gen := b.gen
	b.count++
	if b.count == b.parties {
		b.count = 0
		b.gen++
		b.cond.Broadcast()
		b.mu.Unlock()
		return
	}
	for gen == b.gen {
		b.cond.Wait()
	}
	b.mu.Unlock()
}
