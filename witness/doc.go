// SPDX-License-Identifier: MIT

// Package witness builds the relaxed (weak) Witness filtration.
//
// Landmarks become the vertices of the complex; witnesses are sample points
// whose sorted landmark distances justify the simplices. A simplex σ of
// dimension k enters the complex through a witness w only when every
// (k−1)-face of σ is already present, so the search never explores a vertex
// set whose boundary was never witnessed.
//
// For each witness, Build walks the sorted landmark list with a cursor and a
// non-relaxed threshold t (initially +Inf). A landmark at squared distance d
// is eligible while d − α² ≤ t; once it has been considered, t becomes
// min(t, d). The value of a new simplex is max(0, d − t) raised to the
// largest value among its faces. When several witnesses produce the same
// simplex the smallest value is kept.
//
// NewEuclideanTable computes the sorted table for Euclidean point clouds,
// one goroutine per witness batch, with output identical to a sequential run.
package witness
