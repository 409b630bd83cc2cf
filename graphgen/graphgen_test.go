package graphgen_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"deltastep/graphgen"
)

func TestPath(t *testing.T) {
	g, err := graphgen.Build(0, nil, graphgen.Path(5))
	require.NoError(t, err)
	require.EqualValues(t, 5, g.N())
	require.Equal(t, 4, g.EdgeCount())
	require.EqualValues(t, 1, g.OutDegree(0))
	require.EqualValues(t, 0, g.OutDegree(4))
}

func TestPath_RejectsTooFewVertices(t *testing.T) {
	_, err := graphgen.Build(0, nil, graphgen.Path(1))
	require.ErrorIs(t, err, graphgen.ErrTooFewVertices)
}

func TestComplete(t *testing.T) {
	g, err := graphgen.Build(0, nil, graphgen.Complete(4))
	require.NoError(t, err)
	require.EqualValues(t, 4, g.N())
	require.Equal(t, 4*3, g.EdgeCount())
	for v := int32(0); v < g.N(); v++ {
		require.EqualValues(t, 3, g.OutDegree(v))
	}
}

func TestGrid(t *testing.T) {
	g, err := graphgen.Build(0, nil, graphgen.Grid(2, 3))
	require.NoError(t, err)
	require.EqualValues(t, 6, g.N())
	// Corners have degree 2, edges have degree 3, interior none in a 2x3 grid
	// (no interior cell). Total directed edges = 2 * undirected adjacencies.
	// Undirected adjacencies: horizontal (3-1)*2=4, vertical (2-1)*3=3 -> 7.
	require.Equal(t, 14, g.EdgeCount())
}

func TestGrid_RejectsNonPositiveDims(t *testing.T) {
	_, err := graphgen.Build(0, nil, graphgen.Grid(0, 3))
	require.ErrorIs(t, err, graphgen.ErrTooFewVertices)
}

func TestRandomSparse_Deterministic(t *testing.T) {
	opts := []graphgen.Option{graphgen.WithSeed(42)}
	g1, err := graphgen.Build(0, opts, graphgen.RandomSparse(20, 0.3))
	require.NoError(t, err)

	opts2 := []graphgen.Option{graphgen.WithSeed(42)}
	g2, err := graphgen.Build(0, opts2, graphgen.RandomSparse(20, 0.3))
	require.NoError(t, err)

	require.Equal(t, g1.EdgeCount(), g2.EdgeCount())
}

func TestRandomSparse_PZeroNoEdges(t *testing.T) {
	g, err := graphgen.Build(0, nil, graphgen.RandomSparse(10, 0))
	require.NoError(t, err)
	require.Equal(t, 0, g.EdgeCount())
}

func TestRandomSparse_POneCompleteGraph(t *testing.T) {
	g, err := graphgen.Build(0, nil, graphgen.RandomSparse(5, 1))
	require.NoError(t, err)
	require.Equal(t, 5*4, g.EdgeCount())
}

func TestRandomSparse_RejectsInvalidProbability(t *testing.T) {
	_, err := graphgen.Build(0, nil, graphgen.RandomSparse(5, 1.5))
	require.ErrorIs(t, err, graphgen.ErrInvalidProbability)
}

func TestRandomSparse_RequiresRngForFractionalP(t *testing.T) {
	_, err := graphgen.Build(0, nil, graphgen.RandomSparse(5, 0.5))
	require.ErrorIs(t, err, graphgen.ErrNeedRandSource)
}

func TestScaleFree(t *testing.T) {
	opts := []graphgen.Option{graphgen.WithSeed(7)}
	g, err := graphgen.Build(0, opts, graphgen.ScaleFree(50, 3))
	require.NoError(t, err)
	require.EqualValues(t, 50, g.N())
	require.Greater(t, g.EdgeCount(), 0)
}

func TestScaleFree_RequiresRng(t *testing.T) {
	_, err := graphgen.Build(0, nil, graphgen.ScaleFree(10, 2))
	require.ErrorIs(t, err, graphgen.ErrNeedRandSource)
}

func TestScaleFree_RejectsBadParams(t *testing.T) {
	opts := []graphgen.Option{graphgen.WithSeed(1)}
	_, err := graphgen.Build(0, opts, graphgen.ScaleFree(3, 5))
	require.ErrorIs(t, err, graphgen.ErrTooFewVertices)
}

func TestRMAT(t *testing.T) {
	opts := []graphgen.Option{graphgen.WithSeed(3)}
	g, err := graphgen.Build(0, opts, graphgen.RMAT(64, 200, 0.57, 0.19, 0.19, 0.05))
	require.NoError(t, err)
	require.EqualValues(t, 64, g.N())
	require.Equal(t, 200, g.EdgeCount())
}

func TestRMAT_RejectsBadProbabilities(t *testing.T) {
	opts := []graphgen.Option{graphgen.WithSeed(3)}
	_, err := graphgen.Build(0, opts, graphgen.RMAT(8, 10, 0.5, 0.5, 0.5, 0.5))
	require.ErrorIs(t, err, graphgen.ErrInvalidRMATParams)
}

func TestRMAT_RequiresRng(t *testing.T) {
	_, err := graphgen.Build(0, nil, graphgen.RMAT(8, 10, 0.25, 0.25, 0.25, 0.25))
	require.ErrorIs(t, err, graphgen.ErrNeedRandSource)
}

func TestBuild_WrapsConstructorError(t *testing.T) {
	_, err := graphgen.Build(0, nil, graphgen.Path(1))
	require.Error(t, err)
	require.ErrorIs(t, err, graphgen.ErrTooFewVertices)
}

func TestBuild_ComposesMultipleConstructors(t *testing.T) {
	g, err := graphgen.Build(0, nil, graphgen.Path(3), graphgen.Complete(3))
	require.NoError(t, err)
	require.EqualValues(t, 3, g.N())
	require.Equal(t, 2+6, g.EdgeCount())
}
