// SPDX-License-Identifier: MIT

// Package collapse reduces flag complexes by strong collapse.
//
// A FlagComplex stores a symmetric adjacency relation: one row per vertex,
// rows numbered in insertion order, each row a sorted list of neighbor rows.
// The closed neighborhood N[v] of a vertex contains v itself.
//
// A vertex v is dominated by a neighbor w when N[v] ⊆ N[w]; removing a
// dominated vertex is a strong collapse and preserves the homotopy type of
// the flag complex. StrongCollapse runs a FIFO work queue seeded with every
// row:
//
//	pop v; skip when dominated
//	for each active neighbor w of v:
//	    |N[w]| ≤ |N[v]| and N[w] ⊆ N[v]  →  w dominated by v
//	    else N[v] ⊆ N[w]                →  v dominated by w, stop scanning v
//	every newly dominated vertex re-queues its active neighbors
//
// With identical neighborhoods the popped vertex is kept. Inclusion is a
// merge over the two sorted lists, linear in the smaller one. When the queue
// is empty the reduction map (eliminated vertex → representative) is
// compacted transitively and the adjacency is rebuilt over the survivors.
//
// Contract merges one vertex into another and ToTree re-expands the
// (reduced) flag complex into a simplex.Tree.
//
// A FlagComplex is not safe for concurrent use.
package collapse
