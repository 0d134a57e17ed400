// SPDX-License-Identifier: MIT

package witness

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"time"

	"github.com/katalvlaran/lvtopo/simplex"
)

// Option configures Build.
type Option func(*config)

type config struct {
	relaxation float64
	maxDim     int
	landmarks  int // 0: max landmark id + 1
	logger     *slog.Logger
}

// WithRelaxation sets α² (default 0). Negative values are rejected by Build.
func WithRelaxation(alpha2 float64) Option {
	return func(c *config) { c.relaxation = alpha2 }
}

// WithMaxDimension bounds the dimension of inserted simplices (default:
// unbounded). Negative values are rejected by Build.
func WithMaxDimension(k int) Option {
	return func(c *config) { c.maxDim = k }
}

// WithLandmarkCount fixes the number of landmarks n, so that landmarks
// 0..n-1 are seeded even when no witness sees them. Panics when n < 1.
func WithLandmarkCount(n int) Option {
	if n < 1 {
		panic("witness: WithLandmarkCount(n<1)")
	}

	return func(c *config) { c.landmarks = n }
}

// WithLogger routes build diagnostics to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("witness: WithLogger(nil)")
	}

	return func(c *config) { c.logger = l }
}

// Stats summarizes one Build run.
type Stats struct {
	Landmarks    int
	Witnesses    int
	Rounds       int   // dimensions attempted above 0
	Active       []int // active witnesses at the start of each round
	Simplices    int
	PerDimension []int
	Duration     time.Duration
}

// builder carries the per-run state of the face search.
type builder struct {
	tree  *simplex.Tree
	alpha float64
	buf   []simplex.Vertex
	faces []simplex.Vertex
}

// Build fills the empty tree with the Witness filtration of table.
//
// Errors: invalid table, negative relaxation or dimension (invalid
// argument); non-empty tree (precondition). Nothing is written on error.
//
// Round k extends every active witness by one dimension; a witness that
// contributes no k-simplex is retired and never visited again.
// Complexity: O(W · C(L, k+1) · k log c) in the worst case, W witnesses,
// L entries per row, k the reached dimension; O(n + W) extra memory.
func Build(table Table, tree *simplex.Tree, opts ...Option) (Stats, error) {
	start := time.Now()
	cfg := config{maxDim: math.MaxInt, logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, o := range opts {
		o(&cfg)
	}
	log := cfg.logger.With("builder", "witness")

	// 1. Validate.
	if tree == nil {
		return Stats{}, fmt.Errorf("Build: %w", ErrNilTree)
	}
	if math.IsNaN(cfg.relaxation) || cfg.relaxation < 0 {
		return Stats{}, fmt.Errorf("Build: %v: %w", cfg.relaxation, ErrNegativeRelaxation)
	}
	if cfg.maxDim < 0 {
		return Stats{}, fmt.Errorf("Build: %d: %w", cfg.maxDim, ErrNegativeDimension)
	}
	top, err := table.Validate()
	if err != nil {
		return Stats{}, fmt.Errorf("Build: %w", err)
	}
	n := int(top) + 1
	if cfg.landmarks > 0 {
		if n > cfg.landmarks {
			return Stats{}, fmt.Errorf("Build: landmark %d with count %d: %w", top, cfg.landmarks, ErrLandmarkOutOfRange)
		}
		n = cfg.landmarks
	}
	if !tree.IsEmpty() {
		log.Warn("precondition failed", "err", ErrTreeNotEmpty, "simplices", tree.NumSimplices())
		return Stats{}, fmt.Errorf("Build: %w", ErrTreeNotEmpty)
	}

	// 2. Seed landmarks; a vertex is witnessed at value 0 by definition.
	for v := 0; v < n; v++ {
		_, _, _ = tree.InsertWithSubfaces([]simplex.Vertex{simplex.Vertex(v)}, 0)
	}

	// 3. Grow one dimension per round; rows that stay empty never start.
	st := Stats{Landmarks: n, Witnesses: len(table)}
	b := &builder{tree: tree, alpha: cfg.relaxation}
	active := make([]int, 0, len(table))
	for w, row := range table {
		if len(row) > 0 {
			active = append(active, w)
		}
	}
	for k := 1; len(active) > 0 && k <= cfg.maxDim && k < n; k++ {
		st.Rounds++
		st.Active = append(st.Active, len(active))
		// Filter in place; the slice is only read ahead of the write index.
		kept := active[:0]
		for _, w := range active {
			b.buf = b.buf[:0]
			if b.addFaces(k, table[w], math.Inf(1)) {
				kept = append(kept, w)
			}
		}
		log.Debug("round done", "dimension", k, "active", len(active), "kept", len(kept), "simplices", tree.NumSimplices())
		active = kept
	}

	// 4. Freeze the order and collect statistics.
	tree.FinalizeOrder()
	st.Simplices = tree.NumSimplices()
	for d := 0; d <= tree.Dimension(); d++ {
		s, _ := tree.Skeleton(d)
		st.PerDimension = append(st.PerDimension, len(s))
	}
	st.Duration = time.Since(start)
	log.Debug("witness complex built", "simplices", st.Simplices, "rounds", st.Rounds, "duration", st.Duration)

	return st, nil
}

// addFaces extends b.buf with dim+1 more landmarks taken from row and
// inserts the resulting simplices. norelax is the non-relaxed threshold.
// Reports whether at least one simplex was inserted or confirmed.
func (b *builder) addFaces(dim int, row []LandmarkDistance, norelax float64) bool {
	found := false
	for i, e := range row {
		if e.SquaredDistance-b.alpha > norelax {
			break
		}
		b.buf = append(b.buf, e.Landmark)
		if dim == 0 {
			f := 0.0
			if e.SquaredDistance > norelax {
				f = e.SquaredDistance - norelax
			}
			if b.insertIfClosed(f) {
				found = true
			}
		} else if b.tree.Contains(b.buf) && b.addFaces(dim-1, row[i+1:], norelax) {
			found = true
		}
		b.buf = b.buf[:len(b.buf)-1]
		if e.SquaredDistance < norelax {
			norelax = e.SquaredDistance
		}
	}

	return found
}

// insertIfClosed inserts b.buf at value f when all its codimension-1 faces
// exist. f is raised to the largest face value; an existing simplex keeps
// the smaller of its value and f.
func (b *builder) insertIfClosed(f float64) bool {
	vs := b.buf
	if len(vs) == 1 {
		return b.tree.Contains(vs)
	}
	for drop := range vs {
		b.faces = append(b.faces[:0], vs[:drop]...)
		b.faces = append(b.faces, vs[drop+1:]...)
		h, err := b.tree.Find(b.faces)
		if err != nil {
			return false
		}
		if ff, _ := b.tree.Filtration(h); ff > f {
			f = ff
		}
	}

	if h, err := b.tree.Find(vs); err == nil {
		if old, _ := b.tree.Filtration(h); f < old {
			_ = b.tree.AssignFiltration(h, f)
		}

		return true
	}
	_, _, _ = b.tree.InsertWithSubfaces(vs, f)

	return true
}
