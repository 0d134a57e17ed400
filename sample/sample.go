// SPDX-License-Identifier: MIT

package sample

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvtopo/geometry"
	"github.com/katalvlaran/lvtopo/topoerr"
)

// Sentinel errors for the sample package.
var (
	// ErrBadCount indicates a non-positive point or landmark count.
	ErrBadCount = topoerr.New(topoerr.ErrInvalidArgument, "sample: count must be positive")

	// ErrBadDimension indicates an unusable ambient dimension.
	ErrBadDimension = topoerr.New(topoerr.ErrInvalidArgument, "sample: bad dimension")

	// ErrTooMany indicates a request for more landmarks than points.
	ErrTooMany = topoerr.New(topoerr.ErrInvalidArgument, "sample: more landmarks than points")

	// ErrBadStart indicates a FarthestPoints start index out of range.
	ErrBadStart = topoerr.New(topoerr.ErrInvalidArgument, "sample: start index out of range")
)

// Circle places n points evenly on a circle centered at the origin.
func Circle(n int, opts ...Option) ([]geometry.Point, error) {
	if n < 1 {
		return nil, fmt.Errorf("Circle(%d): %w", n, ErrBadCount)
	}
	c := newConfig(opts)
	out := make([]geometry.Point, n)
	for i := range out {
		a := 2 * math.Pi * float64(i) / float64(n)
		p := geometry.Point{c.radius * math.Cos(a), c.radius * math.Sin(a)}
		c.jitter(p)
		out[i] = p
	}

	return out, nil
}

// Sphere draws n points uniformly from the (dim-1)-sphere in R^dim.
func Sphere(n, dim int, opts ...Option) ([]geometry.Point, error) {
	if n < 1 {
		return nil, fmt.Errorf("Sphere(%d, %d): %w", n, dim, ErrBadCount)
	}
	if dim < 2 {
		return nil, fmt.Errorf("Sphere(%d, %d): %w", n, dim, ErrBadDimension)
	}
	c := newConfig(opts)
	out := make([]geometry.Point, n)
	for i := range out {
		p := make(geometry.Point, dim)
		norm := 0.0
		for norm == 0 {
			for j := range p {
				p[j] = c.rng.NormFloat64()
			}
			norm = floats.Norm(p, 2)
		}
		floats.Scale(c.radius/norm, p)
		c.jitter(p)
		out[i] = p
	}

	return out, nil
}

// UniformCube draws n points uniformly from [-r, r]^dim.
func UniformCube(n, dim int, opts ...Option) ([]geometry.Point, error) {
	if n < 1 {
		return nil, fmt.Errorf("UniformCube(%d, %d): %w", n, dim, ErrBadCount)
	}
	if dim < 1 {
		return nil, fmt.Errorf("UniformCube(%d, %d): %w", n, dim, ErrBadDimension)
	}
	c := newConfig(opts)
	out := make([]geometry.Point, n)
	for i := range out {
		p := make(geometry.Point, dim)
		for j := range p {
			p[j] = c.radius * (2*c.rng.Float64() - 1)
		}
		c.jitter(p)
		out[i] = p
	}

	return out, nil
}

// Grid returns the points of a regular grid with shape[i] points along
// axis i and the given spacing, axis 0 varying fastest.
func Grid(shape []int, spacing float64, opts ...Option) ([]geometry.Point, error) {
	if len(shape) == 0 {
		return nil, fmt.Errorf("Grid(%v): %w", shape, ErrBadDimension)
	}
	total := 1
	for _, s := range shape {
		if s < 1 {
			return nil, fmt.Errorf("Grid(%v): %w", shape, ErrBadCount)
		}
		total *= s
	}
	if !(spacing > 0) || math.IsInf(spacing, 0) {
		return nil, fmt.Errorf("Grid(%v): spacing %v: %w", shape, spacing, topoerr.ErrInvalidArgument)
	}
	c := newConfig(opts)
	out := make([]geometry.Point, total)
	idx := make([]int, len(shape))
	for k := range out {
		p := make(geometry.Point, len(shape))
		for i, x := range idx {
			p[i] = float64(x) * spacing
		}
		c.jitter(p)
		out[k] = p
		for i := range idx {
			if idx[i]++; idx[i] < shape[i] {
				break
			}
			idx[i] = 0
		}
	}

	return out, nil
}

// RandomSubset picks k distinct indices of points, returned sorted.
func RandomSubset(points []geometry.Point, k int, opts ...Option) ([]int, error) {
	if err := checkLandmarks(points, k); err != nil {
		return nil, fmt.Errorf("RandomSubset(%d): %w", k, err)
	}
	c := newConfig(opts)
	out := c.rng.Perm(len(points))[:k]
	slices.Sort(out)

	return out, nil
}

// FarthestPoints picks k landmarks greedily: start first, then repeatedly
// the point farthest from those already chosen (lowest index on ties).
// The result is in selection order.
// Complexity: O(k · N · n)
func FarthestPoints(points []geometry.Point, k, start int) ([]int, error) {
	if err := checkLandmarks(points, k); err != nil {
		return nil, fmt.Errorf("FarthestPoints(%d): %w", k, err)
	}
	if start < 0 || start >= len(points) {
		return nil, fmt.Errorf("FarthestPoints(%d): start %d: %w", k, start, ErrBadStart)
	}
	n := len(points[0])
	for _, p := range points {
		if len(p) != n {
			return nil, fmt.Errorf("FarthestPoints(%d): %w", k, geometry.ErrDimensionMismatch)
		}
	}

	gap := make([]float64, len(points))
	for i := range gap {
		gap[i] = math.Inf(1)
	}
	taken := make([]bool, len(points))
	out := make([]int, 0, k)
	for next := start; len(out) < k; {
		chosen := next
		out = append(out, chosen)
		taken[chosen] = true
		best := -1.0
		for i, p := range points {
			gap[i] = math.Min(gap[i], floats.Distance(p, points[chosen], 2))
			if !taken[i] && gap[i] > best {
				best = gap[i]
				next = i
			}
		}
	}

	return out, nil
}

func checkLandmarks(points []geometry.Point, k int) error {
	switch {
	case len(points) == 0:
		return geometry.ErrNoPoints
	case k < 1:
		return ErrBadCount
	case k > len(points):
		return ErrTooMany
	}

	return nil
}
