// SPDX-License-Identifier: MIT

package simplex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtopo/simplex"
)

func TestExpand_FillsCliques(t *testing.T) {
	tr := simplex.New()
	// K4 on {0,1,2,3} with distinct edge values, plus a hanging edge.
	edges := map[[2]simplex.Vertex]float64{
		{0, 1}: 1, {0, 2}: 2, {0, 3}: 3, {1, 2}: 4, {1, 3}: 5, {2, 3}: 6, {3, 4}: 7,
	}
	for e, w := range edges {
		_, _, err := tr.InsertWithSubfaces(e[:], w)
		require.NoError(t, err)
	}

	require.NoError(t, tr.Expand(3))
	assert.Equal(t, 3, tr.Dimension())
	// 5 vertices + 7 edges + 4 triangles + 1 tetrahedron.
	assert.Equal(t, 17, tr.NumSimplices())

	h, err := tr.Find([]simplex.Vertex{0, 1, 2})
	require.NoError(t, err)
	f, _ := tr.Filtration(h)
	assert.Equal(t, 4.0, f)

	h, err = tr.Find([]simplex.Vertex{0, 1, 2, 3})
	require.NoError(t, err)
	f, _ = tr.Filtration(h)
	assert.Equal(t, 6.0, f)

	assert.False(t, tr.Contains([]simplex.Vertex{2, 3, 4}))
}

func TestExpand_RespectsLimit(t *testing.T) {
	tr := simplex.New()
	for _, e := range [][]simplex.Vertex{{0, 1}, {0, 2}, {1, 2}, {0, 3}, {1, 3}, {2, 3}} {
		_, _, err := tr.InsertWithSubfaces(e, 0)
		require.NoError(t, err)
	}
	require.NoError(t, tr.Expand(1))
	assert.Equal(t, 1, tr.Dimension())

	require.NoError(t, tr.Expand(2))
	assert.Equal(t, 2, tr.Dimension())
	s2, _ := tr.Skeleton(2)
	assert.Len(t, s2, 4)

	assert.ErrorIs(t, tr.Expand(-1), simplex.ErrNegativeDimension)
}
