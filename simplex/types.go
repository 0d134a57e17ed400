// SPDX-License-Identifier: MIT

package simplex

import (
	"github.com/tidwall/btree"

	"github.com/katalvlaran/lvtopo/topoerr"
)

// Vertex identifies a 0-simplex. Valid vertices are non-negative.
type Vertex int

// Handle is a stable reference to a simplex stored in a Tree.
type Handle int

// NullHandle is returned alongside errors and for absent simplices.
const NullHandle Handle = -1

// Sentinel errors for simplex-tree operations.
var (
	// ErrEmptySimplex indicates an insertion or lookup with no vertices.
	ErrEmptySimplex = topoerr.New(topoerr.ErrInvalidArgument, "simplex: empty vertex set")

	// ErrNegativeVertex indicates a vertex id below zero.
	ErrNegativeVertex = topoerr.New(topoerr.ErrInvalidArgument, "simplex: negative vertex id")

	// ErrNegativeDimension indicates a negative dimension or codimension request.
	ErrNegativeDimension = topoerr.New(topoerr.ErrInvalidArgument, "simplex: negative dimension")

	// ErrSimplexNotFound indicates an absent vertex set or a removed/unknown handle.
	ErrSimplexNotFound = topoerr.New(topoerr.ErrNotFound, "simplex: simplex not found")

	// ErrOrderStale indicates FilteredSimplices was called after a mutation
	// without a new FinalizeOrder.
	ErrOrderStale = topoerr.New(topoerr.ErrPrecondition, "simplex: filtration order is stale")

	// ErrBrokenClosure indicates a stored simplex whose face is absent.
	ErrBrokenClosure = topoerr.New(topoerr.ErrPrecondition, "simplex: face missing, downward closure broken")
)

// Method tags used as error context.
const (
	methodInsert   = "InsertWithSubfaces"
	methodFind     = "Find"
	methodAssign   = "AssignFiltration"
	methodFaces    = "Faces"
	methodCofaces  = "Cofaces"
	methodSkeleton = "Skeleton"
	methodRemove   = "Remove"
	methodExpand   = "Expand"
)

// node is one trie node; the simplex it represents is the label path from
// the root down to it.
type node struct {
	label      Vertex
	parent     Handle // NullHandle for vertices
	dim        int    // depth in the trie minus one
	filtration float64
	children   *btree.BTreeG[child] // nil until the first child is attached
	alive      bool
}

// child is a B-tree entry: ordered by label, carrying the child's handle.
type child struct {
	label  Vertex
	handle Handle
}

func childLess(a, b child) bool { return a.label < b.label }

func newChildren() *btree.BTreeG[child] {
	return btree.NewBTreeGOptions(childLess, btree.Options{NoLocks: true})
}
