// SPDX-License-Identifier: MIT

// Package alpha builds the Alpha filtration of a triangulated point set.
//
// Build inserts every finite maximal cell of a Triangulation into a
// simplex.Tree and assigns each simplex its alpha value (squared radius):
//
//  1. Cells are inserted with all faces, every value undefined.
//  2. Dimensions are processed from the top down. An undefined simplex σ
//     takes its squared circumradius (0 for vertices). Then, for every
//     boundary face τ of σ:
//     - a defined τ is lowered to min(τ, σ);
//     - an undefined τ inherits σ when σ has dimension ≥ 2 and the vertex of
//     σ opposite τ lies strictly inside τ's smallest circumsphere (τ is not
//     Gabriel);
//     - otherwise τ waits for its own dimension.
//  3. Monotonicity is enforced, simplices above the alpha limit are pruned
//     and the filtration order is finalized.
//
// Triangulation keys are mapped to dense simplex vertices 0..n-1 in the
// order the triangulation lists its vertices; Complex resolves both
// directions.
//
// Mesh is an in-memory Triangulation for point sets whose cells are already
// known (lattice triangulations, OFF meshes, tests). Delaunay construction
// itself is out of scope.
package alpha
