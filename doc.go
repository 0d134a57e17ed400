// SPDX-License-Identifier: MIT

// Package lvtopo builds and reduces filtered simplicial complexes in memory:
// from point clouds and triangulations to a persistence-ready filtration.
//
// What is inside?
//
//	A pure-Go toolkit for computational topology:
//		• simplex/     filtered simplex tree: insertion with faces, faces/cofaces,
//		               skeletons, filtration order, monotonicity repair, pruning, expansion
//		• alpha/       Alpha filtration from a triangulation (Gabriel propagation)
//		• witness/     Witness and relaxed Witness filtrations from landmark tables
//		• collapse/    strong collapse of flag complexes with a reduction map
//		• contraction/ edge contraction under the link condition
//		• geometry/    Euclidean kernel: circumspheres, squared distances, Rips edges
//		• lattice/     Freudenthal–Kuhn (type A) grid triangulations
//		• offio/       OFF meshes and edge lists
//		• sample/      deterministic point clouds and landmark selection
//		• topoerr/     error kinds shared by every package
//
// Every builder fills a caller-owned *simplex.Tree and is single-threaded;
// none of the structures lock. Only witness.NewEuclideanTable fans out work.
//
// Quick ASCII example:
//
//	(0,1)───(1,1)
//	  │     ╱  │
//	  │   ╱    │
//	(0,0)───(1,0)
//
// squared radii: vertices 0, sides 0.25, diagonal and both triangles 0.5.
//
// The lvtopo command (cmd/lvtopo) wraps the builders:
//
//	go install github.com/katalvlaran/lvtopo/cmd/lvtopo@latest
//	lvtopo alpha --grid 4x4 --dump
package lvtopo
