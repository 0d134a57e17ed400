// SPDX-License-Identifier: MIT

package collapse

import (
	"fmt"
	"time"

	"github.com/katalvlaran/lvtopo/simplex"
)

// StrongCollapse removes dominated vertices until none is left, compacts
// the reduction map and rebuilds the adjacency over the survivors.
// A second call fails with ErrAlreadyCollapsed and changes nothing.
//
// Domination of w by v is tested as N[w] ⊆ N[v] on sorted closed
// neighborhoods; a vertex returns to the queue whenever a neighbor is removed.
// Complexity: O(Q·Δ²), Q queue pops and Δ the largest degree; O(n+m) memory.
func (fc *FlagComplex) StrongCollapse() (Result, error) {
	if fc.collapsed {
		fc.logger.Warn("precondition failed", "err", ErrAlreadyCollapsed)
		return Result{}, fmt.Errorf("StrongCollapse: %w", ErrAlreadyCollapsed)
	}
	start := time.Now()
	res := Result{VerticesBefore: fc.NumVertices(), EdgesBefore: fc.NumEdges()}

	// 1. Seed every active row, in insertion order.
	queue := make([]int, 0, len(fc.vertexOf))
	queued := make([]bool, len(fc.vertexOf))
	for r := range fc.vertexOf {
		if fc.active(r) {
			queue = append(queue, r)
			queued[r] = true
		}
	}
	// Marking x dominated re-queues its active neighbors, whose closed
	// neighborhoods just shrank.
	dominate := func(x, by int) {
		fc.dominated[x] = true
		fc.reduction[fc.vertexOf[x]] = fc.vertexOf[by]
		for _, y := range fc.nbrs[x] {
			if fc.active(y) && !queued[y] {
				queue = append(queue, y)
				queued[y] = true
			}
		}
	}

	// 2. Drain the queue.
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		queued[v] = false
		if fc.dominated[v] {
			continue
		}
		nv := fc.closed(v)
		for _, w := range fc.nbrs[v] {
			if !fc.active(w) {
				continue
			}
			nw := fc.closed(w)
			res.Checks++
			// w dominated by v: drop w and keep scanning with the smaller N[v].
			if len(nw) <= len(nv) && includes(nv, nw) {
				dominate(w, v)
				nv = fc.closed(v)
				continue
			}
			// v dominated by w: v is gone, stop scanning its neighbors.
			if includes(nw, nv) {
				dominate(v, w)
				break
			}
		}
	}

	// 3. Compact chains x -> y -> z into x -> z, then detach dominated rows.
	fc.compact()
	for r := range fc.vertexOf {
		if fc.alive[r] && fc.dominated[r] {
			fc.unlink(r)
		}
	}
	fc.collapsed = true

	res.VerticesAfter = fc.NumVertices()
	res.EdgesAfter = fc.NumEdges()
	res.Duration = time.Since(start)
	fc.logger.Debug("strong collapse done",
		"vertices_before", res.VerticesBefore,
		"vertices_after", res.VerticesAfter,
		"checks", res.Checks,
		"duration", res.Duration)

	return res, nil
}

// closed returns N[r] over active rows, sorted.
func (fc *FlagComplex) closed(r int) []int {
	out := make([]int, 0, len(fc.nbrs[r])+1)
	placed := false
	for _, y := range fc.nbrs[r] {
		if !placed && y > r {
			out = append(out, r)
			placed = true
		}
		if fc.active(y) {
			out = append(out, y)
		}
	}
	if !placed {
		out = append(out, r)
	}

	return out
}

// includes reports whether sub ⊆ super, both sorted ascending.
func includes(super, sub []int) bool {
	if len(sub) > len(super) {
		return false
	}
	i := 0
	for _, x := range sub {
		for i < len(super) && super[i] < x {
			i++
		}
		if i == len(super) || super[i] != x {
			return false
		}
		i++
	}

	return true
}

// compact resolves every chain x→y→z of the reduction map to x→z.
func (fc *FlagComplex) compact() {
	for x := range fc.reduction {
		fc.reduction[x] = fc.resolve(x)
	}
}

// resolve follows the reduction chain of x to its final representative.
func (fc *FlagComplex) resolve(x simplex.Vertex) simplex.Vertex {
	seen := 0
	y := fc.reduction[x]
	for {
		next, ok := fc.reduction[y]
		if !ok || next == y || seen > len(fc.reduction) {
			return y
		}
		y = next
		seen++
	}
}
