// SPDX-License-Identifier: MIT

package simplex

import (
	"fmt"
	"iter"
	"slices"

	"github.com/tidwall/btree"
)

// frame is one level of the explicit DFS stack: a snapshot of a child list
// and the position of the next child to visit.
type frame struct {
	items []child
	pos   int
}

func snapshot(kids *btree.BTreeG[child]) []child {
	if kids == nil || kids.Len() == 0 {
		return nil
	}

	return kids.Items()
}

// Simplices returns every simplex in depth-first lexicographic order
// (a face always comes before the simplices it prefixes).
//
// The sequence owns its stack, so it may be ranged over repeatedly and
// several sequences may be alive at once. The tree must not be mutated
// while a sequence is being consumed.
func (t *Tree) Simplices() iter.Seq[Handle] {
	return func(yield func(Handle) bool) {
		t.walk(t.roots, yield)
	}
}

// walk drives a DFS below kids, stopping early when yield returns false.
func (t *Tree) walk(kids *btree.BTreeG[child], yield func(Handle) bool) bool {
	stack := []frame{{items: snapshot(kids)}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.pos == len(top.items) {
			stack = stack[:len(stack)-1]
			continue
		}
		c := top.items[top.pos]
		top.pos++
		if !yield(c.handle) {
			return false
		}
		if sub := snapshot(t.nodes[c.handle].children); sub != nil {
			stack = append(stack, frame{items: sub})
		}
	}

	return true
}

// Skeleton returns the simplices of dimension exactly dim, in trie order.
// Complexity: O(n) in the worst case; subtrees deeper than dim are skipped.
func (t *Tree) Skeleton(dim int) ([]Handle, error) {
	if dim < 0 {
		return nil, fmt.Errorf("%s(%d): %w", methodSkeleton, dim, ErrNegativeDimension)
	}
	if dim >= len(t.perDim) || t.perDim[dim] == 0 {
		return nil, nil
	}

	out := make([]Handle, 0, t.perDim[dim])
	stack := []frame{{items: snapshot(t.roots)}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.pos == len(top.items) {
			stack = stack[:len(stack)-1]
			continue
		}
		c := top.items[top.pos]
		top.pos++
		n := &t.nodes[c.handle]
		if n.dim == dim {
			out = append(out, c.handle)
			continue
		}
		if sub := snapshot(n.children); sub != nil {
			stack = append(stack, frame{items: sub})
		}
	}

	return out, nil
}

// Faces returns the codimension-1 faces of h, ordered by the index of the
// dropped vertex (last vertex dropped first). A vertex has no faces.
// A missing face yields ErrBrokenClosure.
// Complexity: O(k² log c)
func (t *Tree) Faces(h Handle) ([]Handle, error) {
	if !t.valid(h) {
		return nil, fmt.Errorf("%s(%d): %w", methodFaces, h, ErrSimplexNotFound)
	}
	vs := t.vertices(h)
	if len(vs) == 1 {
		return nil, nil
	}

	out := make([]Handle, 0, len(vs))
	buf := make([]Vertex, 0, len(vs)-1)
	for drop := len(vs) - 1; drop >= 0; drop-- {
		buf = append(buf[:0], vs[:drop]...)
		buf = append(buf, vs[drop+1:]...)
		f, ok := t.find(buf)
		if !ok {
			return nil, fmt.Errorf("%s(%d): face %v of %v: %w", methodFaces, h, buf, vs, ErrBrokenClosure)
		}
		out = append(out, f)
	}

	return out, nil
}

// Cofaces returns the proper cofaces of h. With codim == 0 every proper
// coface is returned; otherwise only those of dimension dim(h)+codim.
// The result is sorted by Handle.
//
// Every coface τ ⊇ σ has exactly one node on its trie path labelled max(σ);
// the search therefore starts from the label index of max(σ), keeps the
// nodes whose ancestors contain the rest of σ, and collects their subtrees.
// Complexity: O(L·k + |cofaces|), L = nodes labelled max(σ).
func (t *Tree) Cofaces(h Handle, codim int) ([]Handle, error) {
	if codim < 0 {
		return nil, fmt.Errorf("%s(%d, %d): %w", methodCofaces, h, codim, ErrNegativeDimension)
	}
	if !t.valid(h) {
		return nil, fmt.Errorf("%s(%d, %d): %w", methodCofaces, h, codim, ErrSimplexNotFound)
	}
	vs := t.vertices(h)
	dim := len(vs) - 1
	target := dim + codim

	var out []Handle
	for _, anchor := range t.byLabel[vs[dim]] {
		a := &t.nodes[anchor]
		if !a.alive || a.dim < dim || !t.pathContains(a.parent, vs[:dim]) {
			continue
		}
		if anchor != h && (codim == 0 || a.dim == target) {
			out = append(out, anchor)
		}
		if codim != 0 && a.dim >= target {
			continue
		}
		t.walk(a.children, func(d Handle) bool {
			if codim == 0 || t.nodes[d].dim == target {
				out = append(out, d)
			}
			return true
		})
	}
	slices.Sort(out)

	return out, nil
}

// pathContains reports whether the path from h up to the root carries every
// vertex of want (sorted ascending).
func (t *Tree) pathContains(h Handle, want []Vertex) bool {
	i := len(want) - 1
	for ; h != NullHandle && i >= 0; h = t.nodes[h].parent {
		switch l := t.nodes[h].label; {
		case l == want[i]:
			i--
		case l < want[i]:
			return false
		}
	}

	return i < 0
}
