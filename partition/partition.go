package partition

import (
	"sort"

	"deltastep/workerpool"
)

// DegreeFunc reports the out-degree to charge vertex id v for partitioning
// purposes. Implementations must return 0 for bucket.Tombstone (-1) so that
// tombstoned slots contribute no edges and are transparently skipped by
// Locate.
type DegreeFunc func(v int32) int32

// Range is a contiguous half-open range [Lo,Hi) over the flattened edge
// space of a bucket snapshot (not over the graph's own edge indices).
type Range struct {
	Lo, Hi int64
}

// BuildPrefixSequential computes the inclusive prefix sum of degree(ids[i])
// over the whole snapshot in a single pass. prefix[i] is the total edge
// count of ids[0..i]. A plain sequential prefix-sum; Split/Locate do the
// rest.
func BuildPrefixSequential(ids []int32, degree DegreeFunc) []int64 {
	prefix := make([]int64, len(ids))
	var sum int64
	for i, v := range ids {
		sum += int64(degree(v))
		prefix[i] = sum
	}
	return prefix
}

// BuildPrefixParallel computes the same inclusive prefix sum as
// BuildPrefixSequential but in two passes over pool.N() workers:
//
//   - Pass 1: each worker computes a local prefix sum over its own
//     contiguous slice of ids, recording its slice total.
//   - Reduction: an exclusive scan over the N slice totals (done by the
//     calling goroutine; O(N), negligible next to pass 1/2's O(len(ids))).
//   - Pass 2: each worker adds its exclusive-scan offset onto its local
//     prefix sums, turning them into the final global prefix sum.
func BuildPrefixParallel(pool *workerpool.Pool, ids []int32, degree DegreeFunc) []int64 {
	n := pool.N()
	prefix := make([]int64, len(ids))
	bounds := sliceBounds(len(ids), n)
	totals := make([]int64, n)

	pass1 := make([]workerpool.Task, n)
	for w := 0; w < n; w++ {
		w := w
		pass1[w] = func() {
			lo, hi := bounds[w].Lo, bounds[w].Hi
			var sum int64
			for i := lo; i < hi; i++ {
				sum += int64(degree(ids[i]))
				prefix[i] = sum
			}
			totals[w] = sum
		}
	}
	pool.Run(pass1)

	// Exclusive scan over per-worker totals.
	offsets := make([]int64, n)
	var running int64
	for w := 0; w < n; w++ {
		offsets[w] = running
		running += totals[w]
	}

	pass2 := make([]workerpool.Task, n)
	for w := 0; w < n; w++ {
		w := w
		pass2[w] = func() {
			if offsets[w] == 0 {
				return
			}
			lo, hi := bounds[w].Lo, bounds[w].Hi
			for i := lo; i < hi; i++ {
				prefix[i] += offsets[w]
			}
		}
	}
	pool.Run(pass2)

	return prefix
}

// Total returns the total edge count represented by a prefix array (0 for
// an empty snapshot).
func Total(prefix []int64) int64 {
	if len(prefix) == 0 {
		return 0
	}
	return prefix[len(prefix)-1]
}

// Split divides [0,total) into n contiguous ranges of size ceil(total/n);
// the trailing ranges may be shorter, and more than one of them may be empty
// when total doesn't fill n full chunks.
func Split(total int64, n int) []Range {
	ranges := make([]Range, n)
	if total == 0 {
		return ranges
	}
	chunk := (total + int64(n) - 1) / int64(n)
	for w := 0; w < n; w++ {
		lo := int64(w) * chunk
		hi := lo + chunk
		if lo > total {
			lo = total
		}
		if hi > total {
			hi = total
		}
		ranges[w] = Range{Lo: lo, Hi: hi}
	}
	return ranges
}

// Locate finds, for a global edge position pos in [0,Total(prefix)), the
// index into ids whose out-edges contain pos, and the number of that
// vertex's edges already consumed by earlier positions (an upper-bound
// search over the prefix array).
func Locate(prefix []int64, pos int64) (idx int, offset int64) {
	idx = sort.Search(len(prefix), func(i int) bool { return prefix[i] > pos })
	if idx == 0 {
		return idx, pos
	}
	return idx, pos - prefix[idx-1]
}

// sliceBounds divides [0,total) into n contiguous index ranges as evenly as
// possible (used to assign ids to workers in Pass 1/Pass 2, as distinct from
// Split which divides the *edge* space).
func sliceBounds(total, n int) []Range {
	bounds := make([]Range, n)
	base := total / n
	rem := total % n
	var cur int64
	for w := 0; w < n; w++ {
		size := int64(base)
		if w < rem {
			size++
		}
		bounds[w] = Range{Lo: cur, Hi: cur + size}
		cur += size
	}
	return bounds
}
