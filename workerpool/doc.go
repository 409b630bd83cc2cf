// Package workerpool implements a fixed-task worker pool: N goroutines
// created once per Compute call, each assigned one task closure per epoch
// and rendezvoused through a barrier before the controller proceeds to the
// next phase.
//
// Edge work is chunked deterministically per worker by package partition, so
// a slot-per-worker model (rather than a shared work queue) eliminates queue
// contention between phases and avoids the synchronization overhead of a
// lock-free or blocking MPMC queue.
package workerpool
