package bucket

import "math"

// SafetyMargin is the extra slack added to the theoretical minimum horizon
// size, guarding against off-by-one bucket rewrites at the wraparound
// boundary. There is no formula that derives it; it just needs to be >= 2,
// and this repository fixes it at 5.
const SafetyMargin = 5

// Horizon is the cyclic array of H bucket Slots used by the Δ-stepping
// orchestrator, where H = ceil(L/Δ) + SafetyMargin (L = max edge weight, Δ =
// bucket width). BucketIndex maps a tentative distance to a slot index
// modulo H; the cyclic wraparound is always safe because adding any edge
// weight w <= L to a tentative distance bumps the bucket index by at most
// ceil(L/Δ) < H slots.
type Horizon struct {
	slots []*Slot
	delta float64
}

// NewHorizon builds a Horizon sized for n vertices, bucket width delta, and
// maximum edge weight maxWeight. H is always at least 2.
func NewHorizon(n int, delta, maxWeight float64) *Horizon {
	h := int(math.Ceil(maxWeight/delta)) + SafetyMargin
	if h < 2 {
		h = 2
	}

	slots := make([]*Slot, h)
	for i := range slots {
		slots[i] = NewSlot(n)
	}

	return &Horizon{slots: slots, delta: delta}
}

// Size returns H, the number of slots in the horizon.
func (hz *Horizon) Size() int { return len(hz.slots) }

// Delta returns the bucket width Δ the horizon was built with.
func (hz *Horizon) Delta() float64 { return hz.delta }

// BucketIndex maps a finite tentative distance to its slot index,
// floor(dist/Δ) mod H. Behavior for dist == +Inf is undefined; callers must
// only invoke this for finite distances.
func (hz *Horizon) BucketIndex(dist float64) int {
	return int(math.Floor(dist/hz.delta)) % len(hz.slots)
}

// Slot returns the slot at cyclic index i (i must already be reduced mod H).
func (hz *Horizon) Slot(i int) *Slot { return hz.slots[i] }
