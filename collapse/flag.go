// SPDX-License-Identifier: MIT

package collapse

import (
	"cmp"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"

	"github.com/katalvlaran/lvtopo/simplex"
)

// FlagComplex is a sparse symmetric adjacency structure over vertices.
// The zero value is not usable; construct with New or FromEdges.
type FlagComplex struct {
	rowOf    map[simplex.Vertex]int
	vertexOf []simplex.Vertex // row → vertex
	alive    []bool           // row still holds a vertex
	nbrs     [][]int          // row → sorted neighbor rows
	weight   map[[2]int]float64

	dominated []bool
	reduction map[simplex.Vertex]simplex.Vertex
	collapsed bool
	logger    *slog.Logger
}

// Option configures a FlagComplex.
type Option func(*FlagComplex)

// WithLogger routes collapse diagnostics to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("collapse: WithLogger(nil)")
	}

	return func(fc *FlagComplex) { fc.logger = l }
}

// New returns an empty FlagComplex.
func New(opts ...Option) *FlagComplex {
	fc := &FlagComplex{
		rowOf:     make(map[simplex.Vertex]int),
		weight:    make(map[[2]int]float64),
		reduction: make(map[simplex.Vertex]simplex.Vertex),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, o := range opts {
		o(fc)
	}

	return fc
}

// FromEdges builds a FlagComplex from an edge list. Duplicate edges keep the
// first weight; U == V registers an isolated vertex.
func FromEdges(edges []Edge, opts ...Option) (*FlagComplex, error) {
	fc := New(opts...)
	for i, e := range edges {
		if err := fc.AddEdge(e.U, e.V, e.Weight); err != nil {
			return nil, fmt.Errorf("FromEdges: edge %d: %w", i, err)
		}
	}

	return fc, nil
}

// AddVertex registers v as a row; existing vertices are left alone.
func (fc *FlagComplex) AddVertex(v simplex.Vertex) error {
	if fc.collapsed {
		return fmt.Errorf("AddVertex(%d): %w", v, ErrAlreadyCollapsed)
	}
	if v < 0 {
		return fmt.Errorf("AddVertex(%d): %w", v, ErrNegativeVertex)
	}
	fc.row(v)

	return nil
}

// AddEdge inserts the edge uv with weight w. A repeated edge keeps its first
// weight; u == v only registers the vertex.
func (fc *FlagComplex) AddEdge(u, v simplex.Vertex, w float64) error {
	if fc.collapsed {
		return fmt.Errorf("AddEdge(%d, %d): %w", u, v, ErrAlreadyCollapsed)
	}
	if u < 0 || v < 0 {
		return fmt.Errorf("AddEdge(%d, %d): %w", u, v, ErrNegativeVertex)
	}
	ru, rv := fc.row(u), fc.row(v)
	if ru != rv {
		fc.link(ru, rv, w)
	}

	return nil
}

// row returns the row of v, appending one when v is new.
func (fc *FlagComplex) row(v simplex.Vertex) int {
	if r, ok := fc.rowOf[v]; ok {
		return r
	}
	r := len(fc.vertexOf)
	fc.rowOf[v] = r
	fc.vertexOf = append(fc.vertexOf, v)
	fc.alive = append(fc.alive, true)
	fc.nbrs = append(fc.nbrs, nil)
	fc.dominated = append(fc.dominated, false)

	return r
}

func edgeKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}

	return [2]int{a, b}
}

// link adds the symmetric entry a–b unless it is present.
func (fc *FlagComplex) link(a, b int, w float64) {
	k := edgeKey(a, b)
	if _, ok := fc.weight[k]; ok {
		return
	}
	fc.weight[k] = w
	fc.nbrs[a] = insertSorted(fc.nbrs[a], b)
	fc.nbrs[b] = insertSorted(fc.nbrs[b], a)
}

// unlink drops every entry of row r and marks it dead.
func (fc *FlagComplex) unlink(r int) {
	for _, y := range fc.nbrs[r] {
		if i, ok := slices.BinarySearch(fc.nbrs[y], r); ok {
			fc.nbrs[y] = slices.Delete(fc.nbrs[y], i, i+1)
		}
		delete(fc.weight, edgeKey(r, y))
	}
	fc.nbrs[r] = nil
	fc.alive[r] = false
	delete(fc.rowOf, fc.vertexOf[r])
}

func insertSorted(s []int, x int) []int {
	i, ok := slices.BinarySearch(s, x)
	if ok {
		return s
	}

	return slices.Insert(s, i, x)
}

// active reports whether row r takes part in the collapse.
func (fc *FlagComplex) active(r int) bool { return fc.alive[r] && !fc.dominated[r] }

// lookup resolves a vertex to its active row.
func (fc *FlagComplex) lookup(v simplex.Vertex) (int, bool) {
	r, ok := fc.rowOf[v]
	if !ok || !fc.active(r) {
		return -1, false
	}

	return r, true
}

// NumVertices reports the number of active vertices.
func (fc *FlagComplex) NumVertices() int {
	n := 0
	for r := range fc.vertexOf {
		if fc.active(r) {
			n++
		}
	}

	return n
}

// NumEdges reports the number of edges between active vertices.
func (fc *FlagComplex) NumEdges() int {
	n := 0
	for k := range fc.weight {
		if fc.active(k[0]) && fc.active(k[1]) {
			n++
		}
	}

	return n
}

// HasVertex reports whether v is an active vertex.
func (fc *FlagComplex) HasVertex(v simplex.Vertex) bool {
	_, ok := fc.lookup(v)

	return ok
}

// HasEdge reports whether uv is an edge between active vertices.
func (fc *FlagComplex) HasEdge(u, v simplex.Vertex) bool {
	ru, ok := fc.lookup(u)
	if !ok {
		return false
	}
	rv, ok := fc.lookup(v)
	if !ok || ru == rv {
		return false
	}
	_, ok = fc.weight[edgeKey(ru, rv)]

	return ok
}

// Weight returns the weight of the edge uv.
func (fc *FlagComplex) Weight(u, v simplex.Vertex) (float64, error) {
	if !fc.HasEdge(u, v) {
		return 0, fmt.Errorf("Weight(%d, %d): %w", u, v, ErrUnknownVertex)
	}

	return fc.weight[edgeKey(fc.rowOf[u], fc.rowOf[v])], nil
}

// Neighbors returns the active neighbors of v in ascending order.
func (fc *FlagComplex) Neighbors(v simplex.Vertex) ([]simplex.Vertex, error) {
	r, ok := fc.lookup(v)
	if !ok {
		return nil, fmt.Errorf("Neighbors(%d): %w", v, ErrUnknownVertex)
	}
	out := make([]simplex.Vertex, 0, len(fc.nbrs[r]))
	for _, y := range fc.nbrs[r] {
		if fc.active(y) {
			out = append(out, fc.vertexOf[y])
		}
	}
	slices.Sort(out)

	return out, nil
}

// Vertices returns the active vertices in ascending order.
func (fc *FlagComplex) Vertices() []simplex.Vertex {
	out := make([]simplex.Vertex, 0, len(fc.rowOf))
	for r, v := range fc.vertexOf {
		if fc.active(r) {
			out = append(out, v)
		}
	}
	slices.Sort(out)

	return out
}

// Edges returns the edges between active vertices ordered by (U, V), U < V.
func (fc *FlagComplex) Edges() []Edge {
	out := make([]Edge, 0, len(fc.weight))
	for k, w := range fc.weight {
		if !fc.active(k[0]) || !fc.active(k[1]) {
			continue
		}
		u, v := fc.vertexOf[k[0]], fc.vertexOf[k[1]]
		if u > v {
			u, v = v, u
		}
		out = append(out, Edge{U: u, V: v, Weight: w})
	}
	slices.SortFunc(out, func(a, b Edge) int {
		if c := cmp.Compare(a.U, b.U); c != 0 {
			return c
		}

		return cmp.Compare(a.V, b.V)
	})

	return out
}

// ReductionMap returns a copy of the map from eliminated vertices to their
// representatives. After StrongCollapse every representative is active.
func (fc *FlagComplex) ReductionMap() map[simplex.Vertex]simplex.Vertex {
	return maps.Clone(fc.reduction)
}

// Representative returns v itself for an active vertex, or the vertex v was
// reduced to.
func (fc *FlagComplex) Representative(v simplex.Vertex) (simplex.Vertex, error) {
	if fc.HasVertex(v) {
		return v, nil
	}
	if r, ok := fc.reduction[v]; ok {
		return r, nil
	}

	return -1, fmt.Errorf("Representative(%d): %w", v, ErrUnknownVertex)
}

// Collapsed reports whether StrongCollapse has run.
func (fc *FlagComplex) Collapsed() bool { return fc.collapsed }
