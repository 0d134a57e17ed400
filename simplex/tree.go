// SPDX-License-Identifier: MIT

package simplex

import (
	"fmt"
	"math"
	"slices"

	"github.com/tidwall/btree"
)

// Tree is a filtered simplicial complex stored as a simplex tree.
//
// The zero value is not usable; construct with New.
type Tree struct {
	nodes   []node               // arena; index = Handle
	roots   *btree.BTreeG[child] // 0-simplices
	byLabel map[Vertex][]Handle  // nodes whose last vertex is the key
	perDim  []int                // live simplices per dimension
	live    int                  // live simplices in total

	order   []Handle // last FinalizeOrder result
	ordered bool     // order reflects the current contents
}

// New returns an empty Tree.
// Complexity: O(1)
func New() *Tree {
	return &Tree{
		roots:   newChildren(),
		byLabel: make(map[Vertex][]Handle),
	}
}

// NumSimplices reports the number of simplices in the complex.
func (t *Tree) NumSimplices() int { return t.live }

// NumVertices reports the number of 0-simplices.
func (t *Tree) NumVertices() int {
	if len(t.perDim) == 0 {
		return 0
	}

	return t.perDim[0]
}

// IsEmpty reports whether the complex holds no simplex at all.
func (t *Tree) IsEmpty() bool { return t.live == 0 }

// Dimension reports the dimension of the largest simplex, or -1 when empty.
func (t *Tree) Dimension() int {
	for d := len(t.perDim) - 1; d >= 0; d-- {
		if t.perDim[d] > 0 {
			return d
		}
	}

	return -1
}

// InsertWithSubfaces inserts the simplex spanned by vertices together with
// every missing face.
//
// Faces created by this call get the undefined filtration (NaN); simplices
// that already exist keep their value. The simplex itself receives f when it
// is new, or when it exists with an undefined value. inserted is false when
// the simplex already existed with a defined value (nothing changes then).
//
// vertices may be given in any order and may repeat; they are normalized.
// Complexity: O(2^k · k log c) for a simplex with k vertices.
func (t *Tree) InsertWithSubfaces(vertices []Vertex, f float64) (Handle, bool, error) {
	sorted, err := normalize(vertices)
	if err != nil {
		return NullHandle, false, fmt.Errorf("%s(%v): %w", methodInsert, vertices, err)
	}

	// 1. Existing simplex: first defined writer wins.
	if h, ok := t.find(sorted); ok {
		n := &t.nodes[h]
		if !math.IsNaN(n.filtration) || math.IsNaN(f) {
			return h, false, nil
		}
		n.filtration = f
		t.ordered = false

		return h, true, nil
	}

	// 2. Create every missing subset; parents are always created first.
	t.insertSubsets(NullHandle, sorted)

	// 3. The top simplex now exists; stamp its value.
	h, _ := t.find(sorted)
	t.nodes[h].filtration = f

	return h, true, nil
}

// insertSubsets creates every subset of rest under parent, in trie order.
func (t *Tree) insertSubsets(parent Handle, rest []Vertex) {
	for i, v := range rest {
		h, _ := t.getOrCreate(parent, v)
		t.insertSubsets(h, rest[i+1:])
	}
}

// getOrCreate returns the child of parent labelled v, creating it with an
// undefined filtration when absent.
func (t *Tree) getOrCreate(parent Handle, v Vertex) (Handle, bool) {
	if h, ok := t.lookupChild(parent, v); ok {
		return h, false
	}

	dim := 0
	if parent != NullHandle {
		dim = t.nodes[parent].dim + 1
	}
	h := Handle(len(t.nodes))
	t.nodes = append(t.nodes, node{
		label:      v,
		parent:     parent,
		dim:        dim,
		filtration: math.NaN(),
		alive:      true,
	})

	if parent == NullHandle {
		t.roots.Set(child{label: v, handle: h})
	} else {
		p := &t.nodes[parent]
		if p.children == nil {
			p.children = newChildren()
		}
		p.children.Set(child{label: v, handle: h})
	}
	t.byLabel[v] = append(t.byLabel[v], h)

	for len(t.perDim) <= dim {
		t.perDim = append(t.perDim, 0)
	}
	t.perDim[dim]++
	t.live++
	t.ordered = false

	return h, true
}

// lookupChild finds the child of parent labelled v.
func (t *Tree) lookupChild(parent Handle, v Vertex) (Handle, bool) {
	kids := t.roots
	if parent != NullHandle {
		kids = t.nodes[parent].children
	}
	if kids == nil {
		return NullHandle, false
	}
	c, ok := kids.Get(child{label: v})
	if !ok {
		return NullHandle, false
	}

	return c.handle, true
}

// find walks the trie along a normalized vertex list.
func (t *Tree) find(sorted []Vertex) (Handle, bool) {
	h := NullHandle
	for _, v := range sorted {
		next, ok := t.lookupChild(h, v)
		if !ok {
			return NullHandle, false
		}
		h = next
	}

	return h, h != NullHandle
}

// Find returns the handle of the simplex spanned by vertices.
// Complexity: O(k log c)
func (t *Tree) Find(vertices []Vertex) (Handle, error) {
	sorted, err := normalize(vertices)
	if err != nil {
		return NullHandle, fmt.Errorf("%s(%v): %w", methodFind, vertices, err)
	}
	h, ok := t.find(sorted)
	if !ok {
		return NullHandle, fmt.Errorf("%s(%v): %w", methodFind, vertices, ErrSimplexNotFound)
	}

	return h, nil
}

// Contains reports whether the simplex spanned by vertices is present.
// Invalid vertex lists are reported as absent.
func (t *Tree) Contains(vertices []Vertex) bool {
	_, err := t.Find(vertices)

	return err == nil
}

// Filtration returns the filtration value of h (NaN while undefined).
func (t *Tree) Filtration(h Handle) (float64, error) {
	if !t.valid(h) {
		return math.NaN(), fmt.Errorf("Filtration(%d): %w", h, ErrSimplexNotFound)
	}

	return t.nodes[h].filtration, nil
}

// AssignFiltration overwrites the filtration value of h. No ordering check
// is made; see EnforceMonotonicity.
func (t *Tree) AssignFiltration(h Handle, f float64) error {
	if !t.valid(h) {
		return fmt.Errorf("%s(%d): %w", methodAssign, h, ErrSimplexNotFound)
	}
	t.nodes[h].filtration = f
	t.ordered = false

	return nil
}

// Vertices returns the sorted vertex list of h.
// Complexity: O(k)
func (t *Tree) Vertices(h Handle) ([]Vertex, error) {
	if !t.valid(h) {
		return nil, fmt.Errorf("Vertices(%d): %w", h, ErrSimplexNotFound)
	}

	return t.vertices(h), nil
}

// SimplexDimension returns the dimension (vertex count minus one) of h.
func (t *Tree) SimplexDimension(h Handle) (int, error) {
	if !t.valid(h) {
		return -1, fmt.Errorf("SimplexDimension(%d): %w", h, ErrSimplexNotFound)
	}

	return t.nodes[h].dim, nil
}

// vertices assumes h is valid.
func (t *Tree) vertices(h Handle) []Vertex {
	out := make([]Vertex, t.nodes[h].dim+1)
	for i := len(out) - 1; h != NullHandle; i-- {
		out[i] = t.nodes[h].label
		h = t.nodes[h].parent
	}

	return out
}

func (t *Tree) valid(h Handle) bool {
	return h >= 0 && int(h) < len(t.nodes) && t.nodes[h].alive
}

// normalize copies, sorts and deduplicates a vertex list and validates it.
func normalize(vertices []Vertex) ([]Vertex, error) {
	if len(vertices) == 0 {
		return nil, ErrEmptySimplex
	}
	out := slices.Clone(vertices)
	slices.Sort(out)
	out = slices.Compact(out)
	if out[0] < 0 {
		return nil, ErrNegativeVertex
	}

	return out, nil
}
