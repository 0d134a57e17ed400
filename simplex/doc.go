// SPDX-License-Identifier: MIT

// Package simplex implements the filtered simplicial complex used by every
// lvtopo builder: a simplex tree (trie of sorted vertex lists) with one
// filtration value per simplex.
//
// What:
//
//   - InsertWithSubfaces: insert a simplex and every missing face; new faces
//     start with the undefined filtration (NaN).
//   - Find / Contains / Vertices / Filtration / AssignFiltration.
//   - Faces (codimension-1 boundary) and Cofaces (all, or of a given codimension).
//   - Skeleton(d) and Simplices(): deterministic depth-first enumeration driven
//     by an explicit stack, restartable and free of shared cursors.
//   - FinalizeOrder / FilteredSimplices: order by (filtration, dimension).
//   - EnforceMonotonicity: lower faces to the value of their cofaces.
//   - PruneAbove / Remove: drop simplices together with all their cofaces.
//   - Expand: flag (clique) expansion of the 1-skeleton.
//
// Representation:
//
//	Every simplex [v0 < v1 < … < vk] is the path root→v0→v1→…→vk in a trie.
//	Nodes live in a dense arena indexed by Handle; children are kept in an
//	ordered B-tree keyed by vertex, so traversal order is lexicographic.
//	A label index (vertex → nodes ending in that vertex) drives coface search:
//	each coface of σ has exactly one ancestor-or-self labelled max(σ).
//
//	    {0,1,2} inserted with subfaces:
//
//	    root ─ 0 ─ 1 ─ 2
//	         │   └ 2
//	         ├ 1 ─ 2
//	         └ 2
//
// Handles are stable: removing a simplex invalidates its handle for good and
// handles are never reused.
//
// Complexity (n = simplices, k = simplex size, c = child fan-out):
//
//   - Find:               O(k log c)
//   - InsertWithSubfaces: O(2^k · k log c)
//   - Faces:              O(k² log c)
//   - Cofaces:            O(L·k + |cofaces|), L = nodes labelled max(σ)
//   - FinalizeOrder:      O(n log n)
//   - EnforceMonotonicity, PruneAbove: O(n · k² log c)
//
// Errors:
//
//   - ErrEmptySimplex, ErrNegativeVertex, ErrNegativeDimension (invalid argument)
//   - ErrSimplexNotFound (not found)
//   - ErrOrderStale (precondition: FinalizeOrder not run since the last change)
//
// A Tree is not safe for concurrent use; builders must not share one.
package simplex
