// SPDX-License-Identifier: MIT

// Package lattice triangulates regular grids for the alpha builder.
//
// Triangulate covers a box of shape[0]×…×shape[d-1] unit cubes, scaled by
// spacing, with the Freudenthal–Kuhn triangulation (the Coxeter
// triangulation of type A). Every cube with base corner c is split into d!
// simplices, one per permutation π of the axes:
//
//	c, c+e[π0], c+e[π0]+e[π1], …, c+e[π0]+…+e[πd-1]
//
// All simplices share the main diagonal of their cube, so neighboring cubes
// agree on their shared facets and the result is a proper triangulation.
//
// Grid points are numbered row-major with axis 0 varying fastest; the point
// index is the alpha.Key.
//
// Complexity: O(C · d! · d) for C cubes.
//
// Other Coxeter families (B, C, D, E, F, G) are recognized but fail with
// ErrFamilyUnsupported.
package lattice
