// SPDX-License-Identifier: MIT

package contraction

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/lvtopo/simplex"
	"github.com/katalvlaran/lvtopo/topoerr"
)

// Sentinel errors for the contraction package.
var (
	// ErrNilTree indicates a nil tree.
	ErrNilTree = topoerr.New(topoerr.ErrInvalidArgument, "contraction: tree is nil")

	// ErrBadPlacement indicates a placement that is not an endpoint of the edge.
	ErrBadPlacement = topoerr.New(topoerr.ErrInvalidArgument, "contraction: placement is not an edge endpoint")

	// ErrNegativeLimit indicates a negative contraction budget.
	ErrNegativeLimit = topoerr.New(topoerr.ErrInvalidArgument, "contraction: negative contraction limit")
)

// EdgeProfile describes one candidate edge U < V of a tree.
type EdgeProfile struct {
	Tree        *simplex.Tree
	Edge        simplex.Handle
	U, V        simplex.Vertex
	Filtration  float64 // of the edge
	FiltrationU float64
	FiltrationV float64
}

// Placement chooses the endpoint that survives a contraction.
type Placement interface {
	ComputePlacement(p EdgeProfile) (simplex.Vertex, error)
}

// Validity decides whether the contraction of p onto placement is allowed.
type Validity interface {
	IsValid(p EdgeProfile, placement simplex.Vertex) (bool, error)
}

// Cost ranks candidate edges; Simplify contracts cheaper edges first.
type Cost interface {
	EdgeCost(p EdgeProfile) float64
}

// FirstVertex keeps U.
type FirstVertex struct{}

// ComputePlacement implements Placement.
func (FirstVertex) ComputePlacement(p EdgeProfile) (simplex.Vertex, error) { return p.U, nil }

// LowerFiltrationVertex keeps the endpoint with the smaller value, U on ties.
type LowerFiltrationVertex struct{}

// ComputePlacement implements Placement.
func (LowerFiltrationVertex) ComputePlacement(p EdgeProfile) (simplex.Vertex, error) {
	if p.FiltrationV < p.FiltrationU {
		return p.V, nil
	}

	return p.U, nil
}

// AlwaysValid accepts every contraction.
type AlwaysValid struct{}

// IsValid implements Validity.
func (AlwaysValid) IsValid(EdgeProfile, simplex.Vertex) (bool, error) { return true, nil }

// FiltrationCost ranks edges by their filtration value.
type FiltrationCost struct{}

// EdgeCost implements Cost.
func (FiltrationCost) EdgeCost(p EdgeProfile) float64 { return p.Filtration }

// LinkCondition accepts uv when lk(u) ∩ lk(v) = lk(uv).
type LinkCondition struct{}

// IsValid implements Validity.
func (LinkCondition) IsValid(p EdgeProfile, _ simplex.Vertex) (bool, error) {
	if p.Tree == nil {
		return false, ErrNilTree
	}
	lu, err := link(p.Tree, []simplex.Vertex{p.U})
	if err != nil {
		return false, err
	}
	lv, err := link(p.Tree, []simplex.Vertex{p.V})
	if err != nil {
		return false, err
	}
	luv, err := link(p.Tree, []simplex.Vertex{p.U, p.V})
	if err != nil {
		return false, err
	}
	for k := range lu {
		if _, both := lv[k]; !both {
			continue
		}
		if _, ok := luv[k]; !ok {
			return false, nil
		}
	}

	return true, nil
}

// link returns lk(σ) as a set of vertex-list keys.
func link(tr *simplex.Tree, sigma []simplex.Vertex) (map[string]struct{}, error) {
	h, err := tr.Find(sigma)
	if err != nil {
		return nil, err
	}
	cos, err := tr.Cofaces(h, 0)
	if err != nil {
		return nil, err
	}
	out := make(map[string]struct{}, len(cos))
	for _, c := range cos {
		vs, _ := tr.Vertices(c)
		rest := slices.DeleteFunc(vs, func(v simplex.Vertex) bool { return slices.Contains(sigma, v) })
		out[key(rest)] = struct{}{}
	}

	return out, nil
}

func key(vs []simplex.Vertex) string {
	var b strings.Builder
	for i, v := range vs {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprint(&b, int(v))
	}

	return b.String()
}
