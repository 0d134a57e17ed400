// SPDX-License-Identifier: MIT

package offio_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtopo/alpha"
	"github.com/katalvlaran/lvtopo/collapse"
	"github.com/katalvlaran/lvtopo/geometry"
	"github.com/katalvlaran/lvtopo/offio"
	"github.com/katalvlaran/lvtopo/simplex"
	"github.com/katalvlaran/lvtopo/topoerr"
)

const tetra = `OFF
# a tetrahedron surface
4 4 6
0 0 0
1 0 0
0 1 0
0 0 1   # apex

3 0 1 2
3 0 1 3
3 0 2 3
3 1 2 3 255 0 0
`

func TestReadOFF(t *testing.T) {
	m, err := offio.ReadOFF(strings.NewReader(tetra))
	require.NoError(t, err)
	assert.Equal(t, 3, m.Dimension)
	require.Len(t, m.Points, 4)
	assert.Equal(t, geometry.Point{0, 0, 1}, m.Points[3])
	assert.Equal(t, [][]int{{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3}}, m.Faces)

	tri, err := m.Triangulation()
	require.NoError(t, err)
	assert.Equal(t, 2, tri.Dimension())
	assert.Equal(t, 4, tri.NumPoints())
}

func TestReadOFF_nOFF(t *testing.T) {
	for name, src := range map[string]string{
		"inline":   "nOFF 2\n3 1 0\n0 0\n2 0\n0 2\n3 0 1 2\n",
		"own line": "nOFF\n2\n3 1 0\n0 0\n2 0\n0 2\n3 0 1 2\n",
		"counts":   "nOFF 2 3 1 0\n0 0\n2 0\n0 2\n3 0 1 2\n",
	} {
		t.Run(name, func(t *testing.T) {
			m, err := offio.ReadOFF(strings.NewReader(src))
			require.NoError(t, err)
			assert.Equal(t, 2, m.Dimension)
			assert.Len(t, m.Points, 3)

			tri, err := m.Triangulation()
			require.NoError(t, err)
			c, err := alpha.Build(tri, simplex.New())
			require.NoError(t, err)
			assert.Equal(t, 7, c.Tree().NumSimplices())
		})
	}
}

func TestReadOFF_PointCloud(t *testing.T) {
	m, err := offio.ReadOFF(strings.NewReader("nOFF 1\n2 0 0\n0.5\n-1e2\n"))
	require.NoError(t, err)
	assert.Equal(t, []geometry.Point{{0.5}, {-100}}, m.Points)
	assert.Empty(t, m.Faces)
}

func TestReadOFF_Malformed(t *testing.T) {
	cases := map[string]string{
		"empty":          "",
		"comments only":  "# nothing\n\n",
		"header":         "PLY\n",
		"bad dimension":  "nOFF x\n",
		"missing counts": "OFF\n",
		"bad counts":     "OFF\n3 a 0\n",
		"negative":       "OFF\n-1 0 0\n",
		"short vertex":   "OFF\n1 0 0\n0 0\n",
		"bad coordinate": "OFF\n1 0 0\n0 0 z\n",
		"truncated":      "OFF\n2 0 0\n0 0 0\n",
		"face count":     "OFF\n3 1 0\n0 0 0\n1 0 0\n0 1 0\n4 0 1 2\n",
		"face range":     "OFF\n3 1 0\n0 0 0\n1 0 0\n0 1 0\n3 0 1 3\n",
		"missing face":   "OFF\n3 1 0\n0 0 0\n1 0 0\n0 1 0\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := offio.ReadOFF(strings.NewReader(src))
			assert.ErrorIs(t, err, offio.ErrMalformed)
			assert.ErrorIs(t, err, topoerr.ErrInvalidArgument)
		})
	}
}

func TestReadOFF_LineNumber(t *testing.T) {
	_, err := offio.ReadOFF(strings.NewReader("OFF\n# c\n1 0 0\n0 0 q\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 4")
}

func TestReadEdgeList(t *testing.T) {
	src := `# u v w
0 1 0.5
1 2
2 0 1.25 # closing edge
`
	edges, err := offio.ReadEdgeList(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []collapse.Edge{
		{U: 0, V: 1, Weight: 0.5},
		{U: 1, V: 2, Weight: 0},
		{U: 2, V: 0, Weight: 1.25},
	}, edges)

	edges, err = offio.ReadEdgeList(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, edges)
}

func TestReadEdgeList_Malformed(t *testing.T) {
	for _, src := range []string{"0\n", "0 1 2 3\n", "a 1\n", "0 -1\n", "0 1 w\n"} {
		_, err := offio.ReadEdgeList(strings.NewReader(src))
		assert.ErrorIs(t, err, offio.ErrMalformed, "%q", src)
	}
}
