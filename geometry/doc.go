// SPDX-License-Identifier: MIT

// Package geometry provides the Euclidean predicates needed by the lvtopo
// builders.
//
// What:
//
//   - Point: a coordinate vector in R^n.
//   - Kernel: the two predicates the Alpha builder consumes,
//     SquaredCircumradius and InsideOpenSphere.
//   - Euclidean: a floating-point Kernel with an explicit tolerance
//     (WithEpsilon); there is no global precision state.
//   - SquaredDistance and RipsEdges for distance-based constructions.
//
// How:
//
//	For points p0..pk with v_i = p_i − p0 the smallest circumsphere has
//	center c = p0 + Vᵀλ where (2·V·Vᵀ)·λ = b, b_i = |v_i|², and squared
//	radius |Vᵀλ|². The Gram system is solved with a Cholesky factorization
//	(gonum/mat); a failed factorization means the points are affinely
//	dependent.
//
// Errors:
//
//   - ErrNoPoints, ErrDimensionMismatch (invalid argument)
//   - ErrDegenerate (precondition: affinely dependent points)
package geometry
