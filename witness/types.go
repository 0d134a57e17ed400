// SPDX-License-Identifier: MIT

package witness

import (
	"github.com/katalvlaran/lvtopo/topoerr"
)

// Sentinel errors for the witness package.
var (
	// ErrEmptyTable indicates a table (or witness set) with no witness.
	ErrEmptyTable = topoerr.New(topoerr.ErrInvalidArgument, "witness: empty witness table")

	// ErrNoLandmarks indicates an empty landmark set.
	ErrNoLandmarks = topoerr.New(topoerr.ErrInvalidArgument, "witness: no landmarks")

	// ErrNegativeRelaxation indicates α² < 0 (or NaN).
	ErrNegativeRelaxation = topoerr.New(topoerr.ErrInvalidArgument, "witness: relaxation must be non-negative")

	// ErrNegativeDimension indicates a negative dimension limit.
	ErrNegativeDimension = topoerr.New(topoerr.ErrInvalidArgument, "witness: max dimension must be non-negative")

	// ErrUnsortedRow indicates a row not sorted by ascending distance.
	ErrUnsortedRow = topoerr.New(topoerr.ErrInvalidArgument, "witness: landmark row is not sorted")

	// ErrDuplicateLandmark indicates a row that lists one landmark twice.
	ErrDuplicateLandmark = topoerr.New(topoerr.ErrInvalidArgument, "witness: landmark repeated in a row")

	// ErrNegativeLandmark indicates a landmark id below zero.
	ErrNegativeLandmark = topoerr.New(topoerr.ErrInvalidArgument, "witness: negative landmark id")

	// ErrLandmarkOutOfRange indicates a landmark id at or above the landmark count.
	ErrLandmarkOutOfRange = topoerr.New(topoerr.ErrInvalidArgument, "witness: landmark id out of range")

	// ErrNilTree indicates a nil target tree.
	ErrNilTree = topoerr.New(topoerr.ErrInvalidArgument, "witness: target tree is nil")

	// ErrTreeNotEmpty indicates a target tree that already holds simplices.
	ErrTreeNotEmpty = topoerr.New(topoerr.ErrPrecondition, "witness: target tree is not empty")
)
