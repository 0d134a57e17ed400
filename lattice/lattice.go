// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/lvtopo/alpha"
	"github.com/katalvlaran/lvtopo/geometry"
	"github.com/katalvlaran/lvtopo/topoerr"
)

// Family names a Coxeter root-system family.
type Family byte

// Known families. Only A is triangulated.
const (
	A Family = 'A'
	B Family = 'B'
	C Family = 'C'
	D Family = 'D'
	E Family = 'E'
	F Family = 'F'
	G Family = 'G'
)

// String returns the family letter.
func (f Family) String() string { return string(rune(f)) }

// MaxDimension bounds the grid dimension; d! cells per cube grows quickly.
const MaxDimension = 8

// Sentinel errors for the lattice package.
var (
	// ErrFamilyUnsupported indicates a family other than A.
	ErrFamilyUnsupported = topoerr.New(topoerr.ErrFamilyUnsupported, "lattice: family not supported")

	// ErrUnknownFamily indicates a byte that names no Coxeter family.
	ErrUnknownFamily = topoerr.New(topoerr.ErrInvalidArgument, "lattice: unknown family")

	// ErrBadShape indicates an empty shape, a non-positive extent or more
	// than MaxDimension axes.
	ErrBadShape = topoerr.New(topoerr.ErrInvalidArgument, "lattice: shape must hold 1..8 positive extents")

	// ErrBadSpacing indicates a non-positive or non-finite spacing.
	ErrBadSpacing = topoerr.New(topoerr.ErrInvalidArgument, "lattice: spacing must be positive and finite")
)

// Triangulate returns the type-A triangulation of a grid of shape cubes
// with the given edge length.
func Triangulate(family Family, shape []int, spacing float64) (*alpha.Mesh, error) {
	// 1. Validate.
	switch family {
	case A:
	case B, C, D, E, F, G:
		return nil, fmt.Errorf("Triangulate(%s): %w", family, ErrFamilyUnsupported)
	default:
		return nil, fmt.Errorf("Triangulate(%q): %w", byte(family), ErrUnknownFamily)
	}
	d := len(shape)
	if d == 0 || d > MaxDimension || slices.ContainsFunc(shape, func(n int) bool { return n < 1 }) {
		return nil, fmt.Errorf("Triangulate(%v): %w", shape, ErrBadShape)
	}
	if !(spacing > 0) || math.IsInf(spacing, 0) {
		return nil, fmt.Errorf("Triangulate(%v): %w", spacing, ErrBadSpacing)
	}

	// 2. Grid points, axis 0 fastest.
	side := make([]int, d)
	stride := make([]int, d)
	total := 1
	for i, n := range shape {
		side[i] = n + 1
		stride[i] = total
		total *= side[i]
	}
	points := make([]geometry.Point, total)
	idx := make([]int, d)
	for k := range points {
		p := make(geometry.Point, d)
		for i := range idx {
			p[i] = float64(idx[i]) * spacing
		}
		points[k] = p
		increment(idx, side)
	}

	// 3. d! simplices per cube.
	perms := permutations(d)
	cubes := 1
	for _, n := range shape {
		cubes *= n
	}
	cells := make([][]alpha.Key, 0, cubes*len(perms))
	corner := make([]int, d)
	for c := 0; c < cubes; c++ {
		base := 0
		for i, x := range corner {
			base += x * stride[i]
		}
		for _, perm := range perms {
			cell := make([]alpha.Key, 0, d+1)
			k := base
			cell = append(cell, alpha.Key(k))
			for _, axis := range perm {
				k += stride[axis]
				cell = append(cell, alpha.Key(k))
			}
			cells = append(cells, cell)
		}
		increment(corner, shape)
	}

	return alpha.NewMesh(points, cells)
}

// increment advances idx as a mixed-radix counter with the given bases.
func increment(idx, base []int) {
	for i := range idx {
		idx[i]++
		if idx[i] < base[i] {
			return
		}
		idx[i] = 0
	}
}

// permutations lists the permutations of 0..d-1 in lexicographic order.
func permutations(d int) [][]int {
	p := make([]int, d)
	for i := range p {
		p[i] = i
	}
	var out [][]int
	for {
		out = append(out, slices.Clone(p))
		i := d - 2
		for i >= 0 && p[i] >= p[i+1] {
			i--
		}
		if i < 0 {
			return out
		}
		j := d - 1
		for p[j] <= p[i] {
			j--
		}
		p[i], p[j] = p[j], p[i]
		slices.Reverse(p[i+1:])
	}
}
