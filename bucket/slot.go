package bucket

import "sync/atomic"

// Tombstone is the sentinel value written into a Slot entry to mark that the
// vertex it once held has migrated to another bucket.
const Tombstone int32 = -1

// Slot is an append-only, fixed-capacity array of vertex IDs with an atomic
// tail counter. Push is safe under unbounded concurrent calls. At(i) is only
// safe when no concurrent Push or Clear is in flight; the orchestrator
// enforces this with barriers between phases. SetTombstone(i) writes only
// entry i, which lies below the tail, so it may run alongside Push (which
// writes only at the tail), as it does during relaxation, but never
// alongside Clear or a reader.
//
// Capacity is fixed at n (no bucket can ever hold more than every vertex in
// the graph), and storage is allocated once up front with make([]int32, n) —
// the nearest Go equivalent of "placement-new capacity without
// default-constructing it", since a zero int32 carries no meaning until a
// Push writes into it and the tail advances past it.
type Slot struct {
	data []int32
	tail atomic.Int64
}

// NewSlot allocates a Slot with the given capacity.
func NewSlot(capacity int) *Slot {
	return &Slot{data: make([]int32, capacity)}
}

// Push appends v and returns the index it was written to. Safe for any
// number of concurrent callers.
func (s *Slot) Push(v int32) int {
	idx := s.tail.Add(1) - 1
	s.data[idx] = v
	return int(idx)
}

// At returns the entry at index i, which may be Tombstone.
func (s *Slot) At(i int) int32 { return s.data[i] }

// SetTombstone marks the entry at index i as migrated. i must be an index
// already returned by Push since the last Clear. Safe alongside Push on this
// Slot; not safe concurrently with Clear, At, or Snapshot readers.
func (s *Slot) SetTombstone(i int) { s.data[i] = Tombstone }

// Size returns the number of entries pushed since the last Clear, including
// tombstoned ones.
func (s *Slot) Size() int { return int(s.tail.Load()) }

// Snapshot returns a slice view of every entry pushed since the last Clear,
// tombstones included. Like Graph.Edges, the slice aliases internal storage;
// it is only safe to read while no concurrent Push or Clear is in flight
// (i.e. across a phase barrier, never during one).
func (s *Slot) Snapshot() []int32 { return s.data[:s.tail.Load()] }

// Empty reports whether Size() == 0.
func (s *Slot) Empty() bool { return s.Size() == 0 }

// Clear resets the tail to 0. Not safe concurrently with Push or any reader;
// callers must hold the appropriate phase barrier.
func (s *Slot) Clear() { s.tail.Store(0) }
