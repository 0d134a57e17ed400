// SPDX-License-Identifier: MIT

// Package offio reads point clouds, meshes and edge lists from text.
//
// ReadOFF accepts the Object File Format:
//
//	OFF                 # or "nOFF d", or "nOFF" followed by a line "d"
//	nv nf ne
//	x y z               # nv vertex lines of d coordinates (d = 3 for OFF)
//	k i1 … ik           # nf face lines
//
// Text after '#' is a comment and blank lines are skipped. The edge count
// ne is read and ignored; faces may be absent (nf = 0) for point clouds.
//
// ReadEdgeList accepts one edge per line, "u v" or "u v w", with the same
// comment rules. A missing weight is 0.
//
// Every failure wraps ErrMalformed together with the offending line number.
package offio
