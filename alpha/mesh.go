// SPDX-License-Identifier: MIT

package alpha

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvtopo/geometry"
)

// Mesh is an in-memory Triangulation. Vertex keys are point indices.
type Mesh struct {
	points []geometry.Point
	cells  [][]Key
	dim    int
}

// NewMesh validates and stores a point set with its maximal cells.
// Every point must share one ambient dimension n, and every cell must hold
// between 1 and n+1 distinct in-range keys. The mesh dimension is the
// largest cell dimension.
func NewMesh(points []geometry.Point, cells [][]Key) (*Mesh, error) {
	m := &Mesh{points: points, dim: -1}
	n := 0
	if len(points) > 0 {
		n = len(points[0])
	}
	for i, p := range points {
		if len(p) != n {
			return nil, fmt.Errorf("NewMesh: point %d: %w", i, geometry.ErrDimensionMismatch)
		}
	}

	m.cells = make([][]Key, 0, len(cells))
	for i, c := range cells {
		if len(c) == 0 || len(c) > n+1 {
			return nil, fmt.Errorf("NewMesh: cell %d has %d vertices: %w", i, len(c), ErrBadCell)
		}
		cell := slices.Clone(c)
		slices.Sort(cell)
		if len(slices.Compact(cell)) != len(c) {
			return nil, fmt.Errorf("NewMesh: cell %d repeats a vertex: %w", i, ErrBadCell)
		}
		for _, k := range cell {
			if k < 0 || int(k) >= len(points) {
				return nil, fmt.Errorf("NewMesh: cell %d: key %d: %w", i, k, ErrUnknownKey)
			}
		}
		m.cells = append(m.cells, cell)
		m.dim = max(m.dim, len(cell)-1)
	}

	return m, nil
}

// Dimension implements Triangulation.
func (m *Mesh) Dimension() int { return m.dim }

// Keys implements Triangulation.
func (m *Mesh) Keys() []Key {
	out := make([]Key, len(m.points))
	for i := range out {
		out[i] = Key(i)
	}

	return out
}

// Cells implements Triangulation.
func (m *Mesh) Cells() [][]Key { return m.cells }

// Point implements Triangulation.
func (m *Mesh) Point(k Key) (geometry.Point, error) {
	if k < 0 || int(k) >= len(m.points) {
		return nil, fmt.Errorf("Point(%d): %w", k, ErrUnknownKey)
	}

	return m.points[k], nil
}

// NumPoints reports the number of vertices.
func (m *Mesh) NumPoints() int { return len(m.points) }
