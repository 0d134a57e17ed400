// SPDX-License-Identifier: MIT

package alpha

import (
	"github.com/katalvlaran/lvtopo/geometry"
	"github.com/katalvlaran/lvtopo/topoerr"
)

// Key identifies a vertex inside a Triangulation.
type Key int

// Triangulation is the read-only cell source consumed by Build.
type Triangulation interface {
	// Dimension is the maximal cell dimension.
	Dimension() int
	// Keys lists every vertex key; the order fixes the simplex vertex ids.
	Keys() []Key
	// Cells lists the finite maximal cells by vertex key.
	Cells() [][]Key
	// Point returns the coordinates of a vertex.
	Point(k Key) (geometry.Point, error)
}

// Sentinel errors for the alpha package.
var (
	// ErrNilTriangulation indicates a nil Triangulation.
	ErrNilTriangulation = topoerr.New(topoerr.ErrInvalidArgument, "alpha: triangulation is nil")

	// ErrNilTree indicates a nil target tree.
	ErrNilTree = topoerr.New(topoerr.ErrInvalidArgument, "alpha: target tree is nil")

	// ErrInvalidMaxAlpha indicates a NaN or negative alpha limit.
	ErrInvalidMaxAlpha = topoerr.New(topoerr.ErrInvalidArgument, "alpha: max alpha square must be a non-negative number")

	// ErrNoVertices indicates a triangulation without vertices.
	ErrNoVertices = topoerr.New(topoerr.ErrPrecondition, "alpha: triangulation has no vertices")

	// ErrLowDimension indicates a triangulation of dimension below 1.
	ErrLowDimension = topoerr.New(topoerr.ErrPrecondition, "alpha: triangulation dimension < 1")

	// ErrTreeNotEmpty indicates a target tree that already holds simplices.
	ErrTreeNotEmpty = topoerr.New(topoerr.ErrPrecondition, "alpha: target tree is not empty")

	// ErrUnknownKey indicates a key outside the triangulation.
	ErrUnknownKey = topoerr.New(topoerr.ErrNotFound, "alpha: unknown vertex key")

	// ErrUnknownVertex indicates a simplex vertex outside the arena.
	ErrUnknownVertex = topoerr.New(topoerr.ErrNotFound, "alpha: unknown vertex")

	// ErrBadCell indicates an empty cell or a cell larger than the ambient space allows.
	ErrBadCell = topoerr.New(topoerr.ErrInvalidArgument, "alpha: malformed cell")
)
