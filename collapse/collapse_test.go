// SPDX-License-Identifier: MIT

package collapse_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtopo/collapse"
	"github.com/katalvlaran/lvtopo/simplex"
	"github.com/katalvlaran/lvtopo/topoerr"
)

type vmap = map[simplex.Vertex]simplex.Vertex

func build(t *testing.T, pairs ...simplex.Vertex) *collapse.FlagComplex {
	t.Helper()
	edges := make([]collapse.Edge, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		edges = append(edges, collapse.Edge{U: pairs[i], V: pairs[i+1], Weight: 1})
	}
	fc, err := collapse.FromEdges(edges)
	require.NoError(t, err)

	return fc
}

// assertFixedPoint checks that no active vertex is dominated by a neighbor.
func assertFixedPoint(t *testing.T, fc *collapse.FlagComplex) {
	t.Helper()
	closed := func(v simplex.Vertex) []simplex.Vertex {
		n, err := fc.Neighbors(v)
		require.NoError(t, err)
		n = append(n, v)
		slices.Sort(n)
		return n
	}
	for _, v := range fc.Vertices() {
		nv := closed(v)
		ns, _ := fc.Neighbors(v)
		for _, w := range ns {
			nw := closed(w)
			sub := true
			for _, x := range nv {
				if _, ok := slices.BinarySearch(nw, x); !ok {
					sub = false
					break
				}
			}
			assert.False(t, sub, "N[%d] ⊆ N[%d] after collapse", v, w)
		}
	}
}

func TestStrongCollapse_TrianglePlusPendantCollapsesToPoint(t *testing.T) {
	fc := build(t, 0, 1, 0, 2, 1, 2, 0, 3)
	res, err := fc.StrongCollapse()
	require.NoError(t, err)

	assert.Equal(t, []simplex.Vertex{0}, fc.Vertices())
	assert.Empty(t, fc.Edges())
	assert.Equal(t, vmap{1: 0, 2: 0, 3: 0}, fc.ReductionMap())
	assert.Equal(t, 4, res.VerticesBefore)
	assert.Equal(t, 1, res.VerticesAfter)
	assert.Equal(t, 3, res.Removed())
	assert.Equal(t, 4, res.EdgesBefore)
	assert.Equal(t, 0, res.EdgesAfter)
}

func TestStrongCollapse_PendantOnHollowSquare(t *testing.T) {
	fc := build(t, 0, 1, 1, 2, 2, 3, 3, 0, 0, 4)
	_, err := fc.StrongCollapse()
	require.NoError(t, err)

	assert.Equal(t, []simplex.Vertex{0, 1, 2, 3}, fc.Vertices())
	assert.Equal(t, []collapse.Edge{
		{U: 0, V: 1, Weight: 1}, {U: 0, V: 3, Weight: 1},
		{U: 1, V: 2, Weight: 1}, {U: 2, V: 3, Weight: 1},
	}, fc.Edges())
	assert.Equal(t, vmap{4: 0}, fc.ReductionMap())

	r, err := fc.Representative(4)
	require.NoError(t, err)
	assert.Equal(t, simplex.Vertex(0), r)
	r, err = fc.Representative(2)
	require.NoError(t, err)
	assert.Equal(t, simplex.Vertex(2), r)
	assertFixedPoint(t, fc)
}

func TestStrongCollapse_CompactsChains(t *testing.T) {
	// Path 0-1-2-3: 0 goes to 1, then 1 goes to 2.
	fc := build(t, 0, 1, 1, 2, 2, 3)
	_, err := fc.StrongCollapse()
	require.NoError(t, err)

	assert.Equal(t, []simplex.Vertex{2}, fc.Vertices())
	assert.Equal(t, vmap{0: 2, 1: 2, 3: 2}, fc.ReductionMap())
	for v, r := range fc.ReductionMap() {
		assert.True(t, fc.HasVertex(r), "representative of %d is active", v)
	}
}

func TestStrongCollapse_OctahedronSurvives(t *testing.T) {
	var pairs []simplex.Vertex
	for u := simplex.Vertex(0); u < 6; u++ {
		for v := u + 1; v < 6; v++ {
			if v != u+3 || u >= 3 {
				pairs = append(pairs, u, v)
			}
		}
	}
	fc := build(t, pairs...)
	require.Equal(t, 12, fc.NumEdges())

	res, err := fc.StrongCollapse()
	require.NoError(t, err)
	assert.Equal(t, 0, res.Removed())
	assert.Len(t, fc.Edges(), 12)
	assert.Empty(t, fc.ReductionMap())
	assertFixedPoint(t, fc)
}

func TestStrongCollapse_FixedPointOnMixedGraph(t *testing.T) {
	// Two hollow squares sharing vertex 0, a filled triangle and a tail.
	fc := build(t,
		0, 1, 1, 2, 2, 3, 3, 0,
		0, 4, 4, 5, 5, 6, 6, 0,
		2, 7, 2, 8, 7, 8, 8, 9, 9, 10,
	)
	_, err := fc.StrongCollapse()
	require.NoError(t, err)
	assertFixedPoint(t, fc)
	assert.Equal(t, []simplex.Vertex{0, 1, 2, 3, 4, 5, 6}, fc.Vertices())
}

func TestStrongCollapse_Twice(t *testing.T) {
	fc := build(t, 0, 1)
	_, err := fc.StrongCollapse()
	require.NoError(t, err)
	before := fc.Vertices()

	_, err = fc.StrongCollapse()
	assert.ErrorIs(t, err, collapse.ErrAlreadyCollapsed)
	assert.ErrorIs(t, err, topoerr.ErrPrecondition)
	assert.Equal(t, before, fc.Vertices())
	assert.True(t, fc.Collapsed())

	assert.ErrorIs(t, fc.AddEdge(3, 4, 1), collapse.ErrAlreadyCollapsed)
	assert.ErrorIs(t, fc.AddVertex(5), collapse.ErrAlreadyCollapsed)
}

func TestFromEdges(t *testing.T) {
	fc, err := collapse.FromEdges([]collapse.Edge{
		{U: 0, V: 1, Weight: 0.5},
		{U: 1, V: 0, Weight: 9},
		{U: 7, V: 7},
	})
	require.NoError(t, err)
	assert.Equal(t, []simplex.Vertex{0, 1, 7}, fc.Vertices())
	assert.Equal(t, 1, fc.NumEdges())
	w, err := fc.Weight(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.5, w, "first weight wins")
	assert.True(t, fc.HasEdge(1, 0))
	assert.False(t, fc.HasEdge(0, 7))
	assert.False(t, fc.HasEdge(7, 7))

	_, err = collapse.FromEdges([]collapse.Edge{{U: -1, V: 2}})
	assert.ErrorIs(t, err, collapse.ErrNegativeVertex)
	assert.ErrorIs(t, err, topoerr.ErrInvalidArgument)
}

func TestQueries_UnknownVertex(t *testing.T) {
	fc := build(t, 0, 1)
	_, err := fc.Neighbors(5)
	assert.ErrorIs(t, err, collapse.ErrUnknownVertex)
	assert.ErrorIs(t, err, topoerr.ErrNotFound)
	_, err = fc.Representative(5)
	assert.ErrorIs(t, err, collapse.ErrUnknownVertex)
	_, err = fc.Weight(0, 5)
	assert.ErrorIs(t, err, collapse.ErrUnknownVertex)
	assert.False(t, fc.HasVertex(5))
}
