// SPDX-License-Identifier: MIT

package simplex

import (
	"fmt"
	"math"
	"slices"
)

// clique is a frontier entry of the flag expansion.
type clique struct {
	vs []Vertex
	f  float64
}

// Expand inserts every clique of the 1-skeleton up to dimension maxDim.
// A new simplex takes the largest filtration value among its edges
// (undefined edges are ignored). Existing simplices keep their value.
//
// Cliques are grown one dimension at a time by appending a common upper
// neighbor of all their vertices, so each clique is produced exactly once.
// Complexity: O(Σ_d |cliques_d| · Δ · d + |cliques| · d² log c), Δ the
// largest upper degree.
func (t *Tree) Expand(maxDim int) error {
	if maxDim < 0 {
		return fmt.Errorf("%s(%d): %w", methodExpand, maxDim, ErrNegativeDimension)
	}
	if maxDim < 2 {
		return nil
	}
	edges, _ := t.Skeleton(1)
	if len(edges) == 0 {
		return nil
	}

	// Upper adjacency: u -> {w > u : uw is an edge}, and the edge values.
	upper := make(map[Vertex][]Vertex)
	weight := make(map[[2]Vertex]float64, len(edges))
	frontier := make([]clique, 0, len(edges))
	for _, e := range edges {
		vs := t.vertices(e)
		f := t.nodes[e].filtration
		upper[vs[0]] = append(upper[vs[0]], vs[1])
		weight[[2]Vertex{vs[0], vs[1]}] = f
		frontier = append(frontier, clique{vs: vs, f: f})
	}
	for v := range upper {
		slices.Sort(upper[v])
	}

	// Dimension d cliques extend dimension d-1 ones by a vertex above their last.
	for d := 2; d <= maxDim && len(frontier) > 0; d++ {
		var next []clique
		for _, c := range frontier {
			last := c.vs[len(c.vs)-1]
		candidates:
			for _, w := range upper[last] {
				f := c.f
				for _, v := range c.vs {
					ew, ok := weight[[2]Vertex{v, w}]
					if !ok {
						continue candidates
					}
					f = maxDefined(f, ew)
				}
				vs := append(slices.Clone(c.vs), w)
				// Faces already exist, so only vs itself is new.
				if _, _, err := t.InsertWithSubfaces(vs, f); err != nil {
					return fmt.Errorf("%s(%d): %w", methodExpand, maxDim, err)
				}
				next = append(next, clique{vs: vs, f: f})
			}
		}
		frontier = next
	}

	return nil
}

// maxDefined is math.Max that ignores NaN operands.
func maxDefined(a, b float64) float64 {
	switch {
	case math.IsNaN(a):
		return b
	case math.IsNaN(b):
		return a
	}

	return math.Max(a, b)
}
