// SPDX-License-Identifier: MIT

package contraction

import (
	"cmp"
	"fmt"
	"io"
	"log/slog"
	"math"
	"slices"

	"github.com/katalvlaran/lvtopo/simplex"
)

// Option configures a Contractor.
type Option func(*Contractor)

// WithPlacement sets the placement policy (default FirstVertex). Panics on nil.
func WithPlacement(p Placement) Option {
	if p == nil {
		panic("contraction: WithPlacement(nil)")
	}

	return func(c *Contractor) { c.placement = p }
}

// WithValidity sets the validity policy (default LinkCondition). Panics on nil.
func WithValidity(v Validity) Option {
	if v == nil {
		panic("contraction: WithValidity(nil)")
	}

	return func(c *Contractor) { c.validity = v }
}

// WithCost sets the cost policy (default FiltrationCost). Panics on nil.
func WithCost(k Cost) Option {
	if k == nil {
		panic("contraction: WithCost(nil)")
	}

	return func(c *Contractor) { c.cost = k }
}

// WithLogger routes diagnostics to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("contraction: WithLogger(nil)")
	}

	return func(c *Contractor) { c.logger = l }
}

// Contractor contracts edges of a simplex.Tree under its policies.
type Contractor struct {
	placement Placement
	validity  Validity
	cost      Cost
	logger    *slog.Logger
}

// NewContractor returns a Contractor with FirstVertex placement, the link
// condition and filtration cost unless overridden.
func NewContractor(opts ...Option) *Contractor {
	c := &Contractor{
		placement: FirstVertex{},
		validity:  LinkCondition{},
		cost:      FiltrationCost{},
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, o := range opts {
		o(c)
	}

	return c
}

// Profile builds the EdgeProfile of the edge uv.
func Profile(tr *simplex.Tree, u, v simplex.Vertex) (EdgeProfile, error) {
	if tr == nil {
		return EdgeProfile{}, ErrNilTree
	}
	if u > v {
		u, v = v, u
	}
	e, err := tr.Find([]simplex.Vertex{u, v})
	if err != nil {
		return EdgeProfile{}, err
	}
	p := EdgeProfile{Tree: tr, Edge: e, U: u, V: v}
	p.Filtration, _ = tr.Filtration(e)
	hu, _ := tr.Find([]simplex.Vertex{u})
	hv, _ := tr.Find([]simplex.Vertex{v})
	p.FiltrationU, _ = tr.Filtration(hu)
	p.FiltrationV, _ = tr.Filtration(hv)

	return p, nil
}

// ContractEdge contracts uv when the validity policy accepts it and
// reports whether it did. A missing edge is a Not-Found error.
func (c *Contractor) ContractEdge(tr *simplex.Tree, u, v simplex.Vertex) (bool, error) {
	p, err := Profile(tr, u, v)
	if err != nil {
		return false, fmt.Errorf("ContractEdge(%d, %d): %w", u, v, err)
	}

	return c.contract(p)
}

func (c *Contractor) contract(p EdgeProfile) (bool, error) {
	keep, err := c.placement.ComputePlacement(p)
	if err != nil {
		return false, fmt.Errorf("ContractEdge(%d, %d): %w", p.U, p.V, err)
	}
	if keep != p.U && keep != p.V {
		return false, fmt.Errorf("ContractEdge(%d, %d): placement %d: %w", p.U, p.V, keep, ErrBadPlacement)
	}
	ok, err := c.validity.IsValid(p, keep)
	if err != nil {
		return false, fmt.Errorf("ContractEdge(%d, %d): %w", p.U, p.V, err)
	}
	if !ok {
		c.logger.Debug("contraction rejected", "u", p.U, "v", p.V)
		return false, nil
	}
	gone := p.U
	if keep == p.U {
		gone = p.V
	}
	if err := merge(p.Tree, gone, keep); err != nil {
		return false, fmt.Errorf("ContractEdge(%d, %d): %w", p.U, p.V, err)
	}
	c.logger.Debug("edge contracted", "kept", keep, "removed", gone)

	return true, nil
}

// merge rewrites every coface of gone onto keep and removes gone.
func merge(tr *simplex.Tree, gone, keep simplex.Vertex) error {
	hg, err := tr.Find([]simplex.Vertex{gone})
	if err != nil {
		return err
	}
	cos, err := tr.Cofaces(hg, 0)
	if err != nil {
		return err
	}

	type image struct {
		vs []simplex.Vertex
		f  float64
	}
	images := make([]image, 0, len(cos))
	for _, h := range cos {
		vs, _ := tr.Vertices(h)
		f, _ := tr.Filtration(h)
		for i, x := range vs {
			if x == gone {
				vs[i] = keep
			}
		}
		images = append(images, image{vs: vs, f: f})
	}
	if err := tr.Remove(hg); err != nil {
		return err
	}
	for _, im := range images {
		h, inserted, err := tr.InsertWithSubfaces(im.vs, im.f)
		if err != nil {
			return err
		}
		if !inserted {
			if old, _ := tr.Filtration(h); im.f < old {
				_ = tr.AssignFiltration(h, im.f)
			}
		}
	}
	tr.EnforceMonotonicity()
	tr.FinalizeOrder()

	return nil
}

// Simplify contracts valid edges in increasing cost order, re-ranking after
// every contraction, until none is valid or limit contractions were made
// (limit 0 means no limit). It returns the number of contractions.
func (c *Contractor) Simplify(tr *simplex.Tree, limit int) (int, error) {
	if tr == nil {
		return 0, fmt.Errorf("Simplify: %w", ErrNilTree)
	}
	if limit < 0 {
		return 0, fmt.Errorf("Simplify(%d): %w", limit, ErrNegativeLimit)
	}
	if limit == 0 {
		limit = math.MaxInt
	}

	done := 0
	for done < limit {
		edges, _ := tr.Skeleton(1)
		cands := make([]EdgeProfile, 0, len(edges))
		for _, e := range edges {
			vs, _ := tr.Vertices(e)
			p, err := Profile(tr, vs[0], vs[1])
			if err != nil {
				return done, fmt.Errorf("Simplify: %w", err)
			}
			cands = append(cands, p)
		}
		slices.SortStableFunc(cands, func(a, b EdgeProfile) int {
			return cmp.Compare(c.cost.EdgeCost(a), c.cost.EdgeCost(b))
		})

		progressed := false
		for _, p := range cands {
			ok, err := c.contract(p)
			if err != nil {
				return done, fmt.Errorf("Simplify: %w", err)
			}
			if ok {
				done++
				progressed = true
				break
			}
		}
		if !progressed {
			break
		}
	}
	c.logger.Debug("simplification done", "contractions", done, "simplices", tr.NumSimplices())

	return done, nil
}
