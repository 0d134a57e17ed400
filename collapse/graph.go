// SPDX-License-Identifier: MIT

package collapse

import (
	"cmp"
	"fmt"
	"slices"

	"gonum.org/v1/gonum/graph"

	"github.com/katalvlaran/lvtopo/simplex"
)

// FromGraph builds a FlagComplex from any gonum graph. Node IDs become
// vertices; nodes are registered in ascending ID order. Edge weights are
// read through graph.Weighted when g implements it and are 1 otherwise.
// Edge direction is ignored.
func FromGraph(g graph.Graph, opts ...Option) (*FlagComplex, error) {
	if g == nil {
		return nil, fmt.Errorf("FromGraph: %w", ErrNilGraph)
	}
	nodes := graph.NodesOf(g.Nodes())
	slices.SortFunc(nodes, func(a, b graph.Node) int { return cmp.Compare(a.ID(), b.ID()) })

	fc := New(opts...)
	for _, n := range nodes {
		if err := fc.AddVertex(simplex.Vertex(n.ID())); err != nil {
			return nil, fmt.Errorf("FromGraph: %w", err)
		}
	}
	wg, weighted := g.(graph.Weighted)
	for _, n := range nodes {
		to := graph.NodesOf(g.From(n.ID()))
		slices.SortFunc(to, func(a, b graph.Node) int { return cmp.Compare(a.ID(), b.ID()) })
		for _, m := range to {
			w := 1.0
			if weighted {
				if x, ok := wg.Weight(n.ID(), m.ID()); ok {
					w = x
				}
			}
			if err := fc.AddEdge(simplex.Vertex(n.ID()), simplex.Vertex(m.ID()), w); err != nil {
				return nil, fmt.Errorf("FromGraph: %w", err)
			}
		}
	}

	return fc, nil
}
