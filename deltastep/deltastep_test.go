package deltastep_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"deltastep/core"
	"deltastep/deltastep"
	"deltastep/dijkstra"
	"deltastep/solver"
)

func buildGraph(t *testing.T, n int, edges [][3]float64) *core.Graph {
	t.Helper()
	b := core.NewBuilder(n)
	for _, e := range edges {
		require.NoError(t, b.AddEdge(int32(e[0]), int32(e[1]), e[2]))
	}
	g, err := b.Build()
	require.NoError(t, err)

	return g
}

// solvers returns every solver under test for a given delta, covering the
// sequential baseline plus a representative spread of thread counts.
func solvers(delta float64) []solver.Solver {
	return []solver.Solver{
		deltastep.NewSequential(delta),
		deltastep.NewParallel(delta, 1),
		deltastep.NewParallel(delta, 2),
		deltastep.NewParallel(delta, 4),
	}
}

func requireDistEqual(t *testing.T, want, got []float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		if math.IsInf(want[i], 1) {
			require.True(t, math.IsInf(got[i], 1), "vertex %d: want +Inf, got %v", i, got[i])
			continue
		}
		require.InDelta(t, want[i], got[i], 1e-9, "vertex %d", i)
	}
}

func TestScenario_PathGraph(t *testing.T) {
	g := buildGraph(t, 4, [][3]float64{{0, 1, 0.3}, {1, 2, 0.7}, {2, 3, 0.2}})
	want := []float64{0, 0.3, 1.0, 1.2}

	for _, s := range solvers(0.1) {
		dist, err := s.Compute(g, 0)
		require.NoError(t, err, s.Name())
		requireDistEqual(t, want, dist)
	}
}

func TestScenario_CompleteGraph(t *testing.T) {
	g := buildGraph(t, 3, [][3]float64{
		{0, 1, 0.2}, {0, 2, 0.9},
		{1, 0, 0.2}, {1, 2, 0.3},
		{2, 0, 0.9}, {2, 1, 0.3},
	})
	want := []float64{0, 0.2, 0.5}

	for _, s := range solvers(0.25) {
		dist, err := s.Compute(g, 0)
		require.NoError(t, err, s.Name())
		requireDistEqual(t, want, dist)
	}
}

func TestScenario_Disconnected(t *testing.T) {
	g := buildGraph(t, 2, nil)
	want := []float64{0, math.Inf(1)}

	for _, s := range solvers(0.5) {
		dist, err := s.Compute(g, 0)
		require.NoError(t, err, s.Name())
		requireDistEqual(t, want, dist)
	}
}

func TestScenario_TriangleWithTies(t *testing.T) {
	g := buildGraph(t, 3, [][3]float64{{0, 1, 1.0}, {0, 2, 1.0}, {1, 2, 1.0}})
	want := []float64{0, 1.0, 1.0}

	for _, s := range solvers(0.5) {
		dist, err := s.Compute(g, 0)
		require.NoError(t, err, s.Name())
		requireDistEqual(t, want, dist)
	}
}

func TestScenario_BucketCyclingStress(t *testing.T) {
	// Path of length H+10 with unit weights and delta=1.0, chosen so the
	// horizon wraps at least once (H = ceil(L/delta)+5 = 1+5 = 6).
	const length = 16 // H(=6) + 10
	edges := make([][3]float64, length)
	for i := 0; i < length; i++ {
		edges[i] = [3]float64{float64(i), float64(i + 1), 1.0}
	}
	g := buildGraph(t, length+1, edges)

	want := make([]float64, length+1)
	for i := range want {
		want[i] = float64(i)
	}

	for _, s := range solvers(1.0) {
		dist, err := s.Compute(g, 0)
		require.NoError(t, err, s.Name())
		requireDistEqual(t, want, dist)
	}
}

func TestScenario_HeavyTailInDegree(t *testing.T) {
	const leaves = 50
	edges := make([][3]float64, leaves)
	for i := 0; i < leaves; i++ {
		edges[i] = [3]float64{0, float64(i + 1), 0.9}
	}
	g := buildGraph(t, leaves+1, edges)

	want := make([]float64, leaves+1)
	for i := 1; i <= leaves; i++ {
		want[i] = 0.9
	}

	for _, s := range solvers(0.1) {
		dist, err := s.Compute(g, 0)
		require.NoError(t, err, s.Name())
		requireDistEqual(t, want, dist)
	}
}

func TestBoundary_SingleVertexNoEdges(t *testing.T) {
	g := buildGraph(t, 1, nil)
	for _, s := range solvers(0.5) {
		dist, err := s.Compute(g, 0)
		require.NoError(t, err, s.Name())
		require.Equal(t, []float64{0}, dist)
	}
}

func TestBoundary_TwoVerticesNoEdges(t *testing.T) {
	g := buildGraph(t, 2, nil)
	for _, s := range solvers(0.5) {
		dist, err := s.Compute(g, 0)
		require.NoError(t, err, s.Name())
		require.Equal(t, 0.0, dist[0])
		require.True(t, math.IsInf(dist[1], 1))
	}
}

func TestBoundary_DeltaLargerThanDiameter(t *testing.T) {
	g := buildGraph(t, 4, [][3]float64{{0, 1, 0.3}, {1, 2, 0.7}, {2, 3, 0.2}})
	want := []float64{0, 0.3, 1.0, 1.2}

	for _, s := range solvers(100.0) {
		dist, err := s.Compute(g, 0)
		require.NoError(t, err, s.Name())
		requireDistEqual(t, want, dist)
	}
}

func TestBoundary_DeltaSmallerThanSmallestEdge(t *testing.T) {
	g := buildGraph(t, 4, [][3]float64{{0, 1, 0.3}, {1, 2, 0.7}, {2, 3, 0.2}})
	want := []float64{0, 0.3, 1.0, 1.2}

	for _, s := range solvers(0.001) {
		dist, err := s.Compute(g, 0)
		require.NoError(t, err, s.Name())
		requireDistEqual(t, want, dist)
	}
}

func TestBoundary_SelfLoopNeverImproves(t *testing.T) {
	g := buildGraph(t, 1, [][3]float64{{0, 0, 1.0}})
	for _, s := range solvers(0.5) {
		dist, err := s.Compute(g, 0)
		require.NoError(t, err, s.Name())
		require.Equal(t, 0.0, dist[0])
	}
}

func TestBoundary_ParallelEdgesTakeMinimum(t *testing.T) {
	g := buildGraph(t, 2, [][3]float64{{0, 1, 0.9}, {0, 1, 0.2}})
	for _, s := range solvers(0.5) {
		dist, err := s.Compute(g, 0)
		require.NoError(t, err, s.Name())
		require.InDelta(t, 0.2, dist[1], 1e-9, s.Name())
	}
}

func TestRejectsInvalidDelta(t *testing.T) {
	g := buildGraph(t, 1, nil)

	_, err := deltastep.NewSequential(0).Compute(g, 0)
	require.ErrorIs(t, err, deltastep.ErrInvalidDelta)

	_, err = deltastep.NewParallel(0, 2).Compute(g, 0)
	require.ErrorIs(t, err, deltastep.ErrInvalidDelta)
}

func TestRejectsInvalidThreads(t *testing.T) {
	g := buildGraph(t, 1, nil)

	_, err := deltastep.NewParallel(1.0, 0).Compute(g, 0)
	require.ErrorIs(t, err, deltastep.ErrInvalidThreads)
}

func TestRejectsOutOfRangeSource(t *testing.T) {
	g := buildGraph(t, 2, nil)
	for _, s := range solvers(0.5) {
		_, err := s.Compute(g, 5)
		require.ErrorIs(t, err, solver.ErrSourceOutOfRange, s.Name())
	}
}

func TestMatchesOracleOnRandomishGraph(t *testing.T) {
	edges := [][3]float64{
		{0, 1, 0.4}, {0, 2, 1.1}, {1, 3, 0.9}, {2, 3, 0.3},
		{3, 4, 0.6}, {1, 4, 1.5}, {4, 0, 2.0}, {2, 1, 0.2},
	}
	g := buildGraph(t, 5, edges)

	want, err := dijkstra.NewOracle().Compute(g, 0)
	require.NoError(t, err)

	for _, delta := range []float64{0.05, 0.15, 0.37, 0.6, 1.5} {
		for _, s := range solvers(delta) {
			dist, err := s.Compute(g, 0)
			require.NoError(t, err, s.Name())
			requireDistEqual(t, want, dist)
		}
	}
}
