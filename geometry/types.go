// SPDX-License-Identifier: MIT

package geometry

import (
	"github.com/katalvlaran/lvtopo/topoerr"
)

// Point is a coordinate vector. All points handed to one call must share
// the same length.
type Point []float64

// Dim reports the ambient dimension of p.
func (p Point) Dim() int { return len(p) }

// Kernel is the geometric oracle used by the Alpha builder.
type Kernel interface {
	// SquaredCircumradius returns the squared radius of the smallest sphere
	// through every point. A single point has radius 0.
	SquaredCircumradius(points []Point) (float64, error)

	// InsideOpenSphere reports whether q lies strictly inside the smallest
	// circumsphere of face.
	InsideOpenSphere(face []Point, q Point) (bool, error)
}

// Sentinel errors for geometric predicates.
var (
	// ErrNoPoints indicates an empty point set.
	ErrNoPoints = topoerr.New(topoerr.ErrInvalidArgument, "geometry: no points")

	// ErrDimensionMismatch indicates points of different ambient dimension.
	ErrDimensionMismatch = topoerr.New(topoerr.ErrInvalidArgument, "geometry: dimension mismatch")

	// ErrDegenerate indicates affinely dependent points (no unique circumsphere).
	ErrDegenerate = topoerr.New(topoerr.ErrPrecondition, "geometry: degenerate point set")
)

// DefaultEpsilon is the relative tolerance of the Euclidean kernel.
const DefaultEpsilon = 1e-12

const panicEpsilonInvalid = "geometry: WithEpsilon: eps must be finite, non-negative"
