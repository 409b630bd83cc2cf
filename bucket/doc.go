// Package bucket implements the two leaf data structures of the Δ-stepping
// engine: Slot, an append-only, lazily-deletable, concurrently-pushable
// sequence of vertex IDs, and Horizon, the cyclic array of Slots that bounds
// memory by reusing slots modulo a computed horizon.
//
// A Slot is pushed to concurrently by many goroutines during relaxation and
// read, through a Snapshot, during request generation; the orchestrator's
// barriers guarantee these two modes never
// overlap in time, so Slot itself needs no locks beyond the single atomic
// tail counter.
package bucket
