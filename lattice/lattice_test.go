// SPDX-License-Identifier: MIT

package lattice_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtopo/alpha"
	"github.com/katalvlaran/lvtopo/geometry"
	"github.com/katalvlaran/lvtopo/lattice"
	"github.com/katalvlaran/lvtopo/simplex"
	"github.com/katalvlaran/lvtopo/topoerr"
)

func TestTriangulate_UnitSquare(t *testing.T) {
	m, err := lattice.Triangulate(lattice.A, []int{1, 1}, 2)
	require.NoError(t, err)

	assert.Equal(t, 4, m.NumPoints())
	assert.Equal(t, 2, m.Dimension())
	assert.Equal(t, [][]alpha.Key{{0, 1, 3}, {0, 2, 3}}, m.Cells())

	p, err := m.Point(3)
	require.NoError(t, err)
	assert.Equal(t, geometry.Point{2, 2}, p)
	p, err = m.Point(1)
	require.NoError(t, err)
	assert.Equal(t, geometry.Point{2, 0}, p)
}

func TestTriangulate_FactorialCellsPerCube(t *testing.T) {
	cases := []struct {
		shape  []int
		points int
		cells  int
	}{
		{[]int{5}, 6, 5},
		{[]int{2, 3}, 12, 12},
		{[]int{1, 1, 1}, 8, 6},
		{[]int{2, 2, 2}, 27, 48},
		{[]int{1, 1, 1, 1}, 16, 24},
	}
	for _, tc := range cases {
		m, err := lattice.Triangulate(lattice.A, tc.shape, 1)
		require.NoError(t, err, "%v", tc.shape)
		assert.Equal(t, tc.points, m.NumPoints(), "%v", tc.shape)
		assert.Len(t, m.Cells(), tc.cells, "%v", tc.shape)
		assert.Equal(t, len(tc.shape), m.Dimension())
	}
}

func TestTriangulate_CubeSharesDiagonal(t *testing.T) {
	m, err := lattice.Triangulate(lattice.A, []int{1, 1, 1}, 1)
	require.NoError(t, err)
	for _, c := range m.Cells() {
		require.Len(t, c, 4)
		assert.Equal(t, alpha.Key(0), c[0])
		assert.Equal(t, alpha.Key(7), c[3])
	}
}

func TestTriangulate_AlphaBuild(t *testing.T) {
	m, err := lattice.Triangulate(lattice.A, []int{2, 2}, 1)
	require.NoError(t, err)

	tree := simplex.New()
	c, err := alpha.Build(m, tree)
	require.NoError(t, err)
	assert.Equal(t, 8, c.Stats().Cells)
	assert.Equal(t, []int{9, 16, 8}, c.Stats().PerDimension)

	top := math.Inf(-1)
	for h := range tree.Simplices() {
		f, _ := tree.Filtration(h)
		top = math.Max(top, f)
	}
	assert.InDelta(t, 0.5, top, 1e-12)
}

func TestTriangulate_Errors(t *testing.T) {
	_, err := lattice.Triangulate(lattice.B, []int{1, 1}, 1)
	assert.ErrorIs(t, err, lattice.ErrFamilyUnsupported)
	assert.ErrorIs(t, err, topoerr.ErrFamilyUnsupported)
	assert.EqualError(t, err, "Triangulate(B): lattice: family not supported")

	_, err = lattice.Triangulate('Z', []int{1}, 1)
	assert.ErrorIs(t, err, lattice.ErrUnknownFamily)

	for _, shape := range [][]int{nil, {0}, {2, -1}, make([]int, lattice.MaxDimension+1)} {
		_, err = lattice.Triangulate(lattice.A, shape, 1)
		assert.ErrorIs(t, err, lattice.ErrBadShape, "%v", shape)
	}
	for _, s := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err = lattice.Triangulate(lattice.A, []int{1}, s)
		assert.ErrorIs(t, err, lattice.ErrBadSpacing, "%v", s)
	}
}
