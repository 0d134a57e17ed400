// SPDX-License-Identifier: MIT

package collapse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/lvtopo/collapse"
	"github.com/katalvlaran/lvtopo/simplex"
)

func TestToTree(t *testing.T) {
	fc, err := collapse.FromEdges([]collapse.Edge{
		{U: 0, V: 1, Weight: 1}, {U: 1, V: 2, Weight: 2}, {U: 0, V: 2, Weight: 3}, {U: 2, V: 3, Weight: 4},
	})
	require.NoError(t, err)

	tr, err := fc.ToTree(2)
	require.NoError(t, err)
	assert.Equal(t, 9, tr.NumSimplices())
	h, err := tr.Find([]simplex.Vertex{0, 1, 2})
	require.NoError(t, err)
	f, _ := tr.Filtration(h)
	assert.Equal(t, 3.0, f)
	_, err = tr.FilteredSimplices()
	assert.NoError(t, err)

	tr, err = fc.ToTree(0)
	require.NoError(t, err)
	assert.Equal(t, 4, tr.NumSimplices())

	_, err = fc.ToTree(-1)
	assert.ErrorIs(t, err, simplex.ErrNegativeDimension)
}

func TestToTree_AfterCollapse(t *testing.T) {
	fc := build(t, 0, 1, 1, 2, 2, 3, 3, 0, 0, 4)
	_, err := fc.StrongCollapse()
	require.NoError(t, err)
	tr, err := fc.ToTree(2)
	require.NoError(t, err)
	assert.Equal(t, 8, tr.NumSimplices(), "hollow square")
	assert.Equal(t, 1, tr.Dimension())
}

func TestFromGraph(t *testing.T) {
	g := simple.NewWeightedUndirectedGraph(0, 0)
	for _, e := range []struct {
		u, v int64
		w    float64
	}{{0, 1, 0.5}, {1, 2, 0.25}, {2, 0, 0.75}} {
		g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(e.u), simple.Node(e.v), e.w))
	}
	g.AddNode(simple.Node(5))

	fc, err := collapse.FromGraph(g)
	require.NoError(t, err)
	assert.Equal(t, []simplex.Vertex{0, 1, 2, 5}, fc.Vertices())
	assert.Equal(t, 3, fc.NumEdges())
	w, err := fc.Weight(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.25, w)

	res, err := fc.StrongCollapse()
	require.NoError(t, err)
	assert.Equal(t, 2, res.VerticesAfter, "triangle to a point, isolated vertex stays")
}

func TestFromGraph_Unweighted(t *testing.T) {
	g := simple.NewUndirectedGraph()
	g.SetEdge(g.NewEdge(simple.Node(3), simple.Node(4)))
	fc, err := collapse.FromGraph(g)
	require.NoError(t, err)
	w, err := fc.Weight(3, 4)
	require.NoError(t, err)
	assert.Equal(t, 1.0, w)

	_, err = collapse.FromGraph(nil)
	assert.ErrorIs(t, err, collapse.ErrNilGraph)
}
