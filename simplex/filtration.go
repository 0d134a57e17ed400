// SPDX-License-Identifier: MIT

package simplex

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// FinalizeOrder computes the filtration order: ascending filtration value,
// then ascending dimension, then trie order. Undefined values sort last.
//
// When the filtration is monotone every face precedes its cofaces.
// Complexity: O(n log n)
func (t *Tree) FinalizeOrder() {
	order := make([]Handle, 0, t.live)
	for h := range t.Simplices() {
		order = append(order, h)
	}
	slices.SortStableFunc(order, func(a, b Handle) int {
		na, nb := &t.nodes[a], &t.nodes[b]
		if c := compareFiltration(na.filtration, nb.filtration); c != 0 {
			return c
		}

		return cmp.Compare(na.dim, nb.dim)
	})
	t.order = order
	t.ordered = true
}

// compareFiltration orders defined values ascending and NaN after all of them.
func compareFiltration(a, b float64) int {
	an, bn := math.IsNaN(a), math.IsNaN(b)
	switch {
	case an && bn:
		return 0
	case an:
		return 1
	case bn:
		return -1
	}

	return cmp.Compare(a, b)
}

// FilteredSimplices returns a copy of the order computed by the last
// FinalizeOrder. It fails with ErrOrderStale when the complex changed since.
func (t *Tree) FilteredSimplices() ([]Handle, error) {
	if !t.ordered {
		return nil, fmt.Errorf("FilteredSimplices: %w", ErrOrderStale)
	}

	return slices.Clone(t.order), nil
}

// EnforceMonotonicity lowers every face to the smallest value among its
// cofaces, so that filtration(τ) <= filtration(σ) whenever τ ⊂ σ.
//
// Simplices are processed by decreasing dimension, hence a value travels
// down the whole face lattice in one call. An undefined face takes the value
// of its coface; undefined simplices propagate nothing.
// Reports whether any value changed.
// Complexity: O(n · k² log c)
func (t *Tree) EnforceMonotonicity() bool {
	changed := false
	for d := t.Dimension(); d >= 1; d-- {
		level, _ := t.Skeleton(d)
		for _, h := range level {
			f := t.nodes[h].filtration
			if math.IsNaN(f) {
				continue
			}
			faces, _ := t.Faces(h)
			for _, fh := range faces {
				n := &t.nodes[fh]
				if math.IsNaN(n.filtration) || f < n.filtration {
					n.filtration = f
					changed = true
				}
			}
		}
	}
	if changed {
		t.ordered = false
	}

	return changed
}

// PruneAbove removes every simplex whose filtration is greater than limit,
// together with all of its cofaces. Undefined values are kept.
// Reports whether anything was removed; a second call with the same limit
// is a no-op.
func (t *Tree) PruneAbove(limit float64) bool {
	var doomed []Handle
	for h := range t.Simplices() {
		if t.nodes[h].filtration > limit {
			doomed = append(doomed, h)
		}
	}
	for _, h := range doomed {
		if t.nodes[h].alive {
			_ = t.Remove(h)
		}
	}

	return len(doomed) > 0
}

// Remove deletes h and every coface of h. Their handles become invalid.
// Complexity: O(|cofaces| · log c + L) for the affected labels.
func (t *Tree) Remove(h Handle) error {
	if !t.valid(h) {
		return fmt.Errorf("%s(%d): %w", methodRemove, h, ErrSimplexNotFound)
	}
	victims, err := t.Cofaces(h, 0)
	if err != nil {
		return fmt.Errorf("%s(%d): %w", methodRemove, h, err)
	}
	victims = append(victims, h)

	labels := make(map[Vertex]struct{}, len(victims))
	for _, v := range victims {
		n := &t.nodes[v]
		if n.parent == NullHandle {
			t.roots.Delete(child{label: n.label})
		} else if p := &t.nodes[n.parent]; p.alive && p.children != nil {
			p.children.Delete(child{label: n.label})
		}
		n.alive = false
		n.children = nil
		labels[n.label] = struct{}{}
		t.perDim[n.dim]--
		t.live--
	}
	for l := range labels {
		t.compactLabel(l)
	}
	t.ordered = false

	return nil
}

// compactLabel drops dead handles from the label index of l.
func (t *Tree) compactLabel(l Vertex) {
	hs := slices.DeleteFunc(t.byLabel[l], func(h Handle) bool { return !t.nodes[h].alive })
	if len(hs) == 0 {
		delete(t.byLabel, l)
		return
	}
	t.byLabel[l] = hs
}
