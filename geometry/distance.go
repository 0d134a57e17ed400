// SPDX-License-Identifier: MIT

package geometry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// SquaredDistance returns |a−b|². Both points must share their dimension.
func SquaredDistance(a, b Point) (float64, error) {
	if len(a) != len(b) {
		return math.NaN(), fmt.Errorf("SquaredDistance: %w", ErrDimensionMismatch)
	}

	return squared(a, b), nil
}

// squared assumes equal lengths.
func squared(a, b []float64) float64 {
	d := floats.Distance(a, b, 2)

	return d * d
}

// Edge is a pair of point indices I < J with their Euclidean distance.
type Edge struct {
	I, J   int
	Length float64
}

// RipsEdges returns every pair of points at distance at most maxLength,
// ordered by (I, J). It is the 1-skeleton of the Rips complex.
// Complexity: O(N²·n)
func RipsEdges(points []Point, maxLength float64) ([]Edge, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("RipsEdges: %w", ErrNoPoints)
	}
	n := len(points[0])
	for _, p := range points {
		if len(p) != n {
			return nil, fmt.Errorf("RipsEdges: %w", ErrDimensionMismatch)
		}
	}

	var out []Edge
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			if d := floats.Distance(points[i], points[j], 2); d <= maxLength {
				out = append(out, Edge{I: i, J: j, Length: d})
			}
		}
	}

	return out, nil
}
