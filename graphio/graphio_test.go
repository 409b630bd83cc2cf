package graphio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"deltastep/core"
	"deltastep/graphio"
)

func TestLoadFrom_Basic(t *testing.T) {
	src := "0 1 0.5\n1 2 1.25\n2 0 2\n"
	g, err := graphio.LoadFrom(strings.NewReader(src))
	require.NoError(t, err)
	require.EqualValues(t, 3, g.N())
	require.Equal(t, 3, g.EdgeCount())
}

func TestLoadFrom_RemapsExternalIDsInInsertionOrder(t *testing.T) {
	src := "100 200 1\n200 300 2\n"
	g, err := graphio.LoadFrom(strings.NewReader(src))
	require.NoError(t, err)
	require.EqualValues(t, 3, g.N())
	require.EqualValues(t, 1, g.Edges(0)[0].To)
	require.EqualValues(t, 2, g.Edges(1)[0].To)
}

func TestLoadFrom_SkipsMalformedAndEmptyLines(t *testing.T) {
	src := "0 1 0.5\n\nnot a line\n1 2\n1 2 3 4\n2 0 1.0\n"
	g, err := graphio.LoadFrom(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 2, g.EdgeCount())
}

func TestLoadFrom_SkipsNegativeWeight(t *testing.T) {
	src := "0 1 -1.0\n0 2 1.0\n"
	g, err := graphio.LoadFrom(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 1, g.EdgeCount())
}

func TestSaveTo_RoundTrips(t *testing.T) {
	b := core.NewBuilder(3)
	require.NoError(t, b.AddEdge(0, 1, 0.5))
	require.NoError(t, b.AddEdge(1, 2, 1.25))
	require.NoError(t, b.AddEdge(2, 0, 2))
	g, err := b.Build()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, graphio.SaveTo(&buf, g))

	g2, err := graphio.LoadFrom(&buf)
	require.NoError(t, err)
	require.EqualValues(t, g.N(), g2.N())
	require.Equal(t, g.EdgeCount(), g2.EdgeCount())
	for v := int32(0); v < g.N(); v++ {
		require.Equal(t, g.Edges(v), g2.Edges(v))
	}
}

func TestLoadFrom_EmptyInputRejected(t *testing.T) {
	_, err := graphio.LoadFrom(strings.NewReader(""))
	require.ErrorIs(t, err, core.ErrEmptyGraph)
}
