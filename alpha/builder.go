// SPDX-License-Identifier: MIT

package alpha

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/lvtopo/geometry"
	"github.com/katalvlaran/lvtopo/simplex"
)

// Stats summarizes one Build run.
type Stats struct {
	Cells        int           // maximal cells inserted
	Simplices    int           // simplices left after pruning
	PerDimension []int         // simplices per dimension after pruning
	Reordered    bool          // EnforceMonotonicity changed a value
	Pruned       bool          // PruneAbove removed something
	Duration     time.Duration // wall time of Build
}

// Complex is the result of Build: the filled tree plus the vertex arena
// linking simplex vertices to triangulation keys and points.
type Complex struct {
	tree   *simplex.Tree
	keys   []Key
	points []geometry.Point
	index  map[Key]simplex.Vertex
	stats  Stats
}

// Tree returns the filtered complex.
func (c *Complex) Tree() *simplex.Tree { return c.tree }

// Stats returns the run summary.
func (c *Complex) Stats() Stats { return c.stats }

// NumVertices reports the arena size.
func (c *Complex) NumVertices() int { return len(c.keys) }

// Key returns the triangulation key of v.
func (c *Complex) Key(v simplex.Vertex) (Key, error) {
	if v < 0 || int(v) >= len(c.keys) {
		return 0, fmt.Errorf("Key(%d): %w", v, ErrUnknownVertex)
	}

	return c.keys[v], nil
}

// Point returns the coordinates of v.
func (c *Complex) Point(v simplex.Vertex) (geometry.Point, error) {
	if v < 0 || int(v) >= len(c.points) {
		return nil, fmt.Errorf("Point(%d): %w", v, ErrUnknownVertex)
	}

	return c.points[v], nil
}

// Vertex returns the simplex vertex assigned to key k.
func (c *Complex) Vertex(k Key) (simplex.Vertex, error) {
	v, ok := c.index[k]
	if !ok {
		return -1, fmt.Errorf("Vertex(%d): %w", k, ErrUnknownKey)
	}

	return v, nil
}

// Build fills the empty tree with the Alpha filtration of tri.
//
// Preconditions are checked before tree is touched; a failing precondition
// leaves it unchanged. Kernel failures on degenerate cells abort the build.
// Complexity: O(S · k³) kernel work for S simplices of size ≤ k, plus the
// tree operations listed in package simplex.
func Build(tri Triangulation, tree *simplex.Tree, opts ...Option) (*Complex, error) {
	start := time.Now()
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	log := cfg.logger.With("builder", "alpha")

	// 1. Validate.
	switch {
	case tri == nil:
		return nil, fmt.Errorf("Build: %w", ErrNilTriangulation)
	case tree == nil:
		return nil, fmt.Errorf("Build: %w", ErrNilTree)
	case math.IsNaN(cfg.maxAlpha) || cfg.maxAlpha < 0:
		return nil, fmt.Errorf("Build: %v: %w", cfg.maxAlpha, ErrInvalidMaxAlpha)
	}
	keys := tri.Keys()
	if err := precondition(tri, keys, tree); err != nil {
		log.Warn("precondition failed", "err", err)
		return nil, fmt.Errorf("Build: %w", err)
	}

	// 2. Vertex arena.
	c := &Complex{
		tree:   tree,
		keys:   keys,
		points: make([]geometry.Point, len(keys)),
		index:  make(map[Key]simplex.Vertex, len(keys)),
	}
	for i, k := range keys {
		p, err := tri.Point(k)
		if err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
		c.points[i] = p
		c.index[k] = simplex.Vertex(i)
	}
	cells := tri.Cells()
	verts := make([][]simplex.Vertex, len(cells))
	for i, cell := range cells {
		vs := make([]simplex.Vertex, len(cell))
		for j, k := range cell {
			v, ok := c.index[k]
			if !ok {
				return nil, fmt.Errorf("Build: cell %d: key %d: %w", i, k, ErrUnknownKey)
			}
			vs[j] = v
		}
		verts[i] = vs
	}

	// 3. Insert cells with undefined values.
	for i, vs := range verts {
		if _, _, err := tree.InsertWithSubfaces(vs, math.NaN()); err != nil {
			discard(tree)
			return nil, fmt.Errorf("Build: cell %d: %w", i, err)
		}
	}
	log.Debug("cells inserted", "cells", len(cells), "simplices", tree.NumSimplices())

	// 4. Assign values from the top dimension down; a kernel failure
	// empties the tree again.
	for d := tree.Dimension(); d >= 0; d-- {
		if err := c.processDimension(d, cfg.kernel); err != nil {
			discard(tree)
			log.Warn("build aborted", "dimension", d, "err", err)
			return nil, fmt.Errorf("Build: dimension %d: %w", d, err)
		}
	}

	// 5. Repair, prune, order.
	c.stats.Reordered = tree.EnforceMonotonicity()
	c.stats.Pruned = tree.PruneAbove(cfg.maxAlpha)
	tree.FinalizeOrder()

	c.stats.Cells = len(cells)
	c.stats.Simplices = tree.NumSimplices()
	for d := 0; d <= tree.Dimension(); d++ {
		s, _ := tree.Skeleton(d)
		c.stats.PerDimension = append(c.stats.PerDimension, len(s))
	}
	c.stats.Duration = time.Since(start)
	log.Debug("alpha complex built",
		"simplices", c.stats.Simplices,
		"reordered", c.stats.Reordered,
		"pruned", c.stats.Pruned,
		"duration", c.stats.Duration)

	return c, nil
}

// discard removes every vertex, and with it every simplex, from tree.
// Complexity: O(n log c)
func discard(tree *simplex.Tree) {
	roots, _ := tree.Skeleton(0)
	for _, h := range roots {
		_ = tree.Remove(h)
	}
}

func precondition(tri Triangulation, keys []Key, tree *simplex.Tree) error {
	switch {
	case len(keys) == 0:
		return ErrNoVertices
	case tri.Dimension() < 1:
		return ErrLowDimension
	case !tree.IsEmpty():
		return ErrTreeNotEmpty
	}

	return nil
}

// processDimension assigns values to the d-simplices and propagates them to
// their boundary faces.
func (c *Complex) processDimension(d int, k geometry.Kernel) error {
	level, err := c.tree.Skeleton(d)
	if err != nil {
		return err
	}
	for _, h := range level {
		vs, _ := c.tree.Vertices(h)
		f, _ := c.tree.Filtration(h)
		if math.IsNaN(f) {
			f = 0
			if d > 0 {
				if f, err = k.SquaredCircumradius(c.pointsOf(vs)); err != nil {
					return fmt.Errorf("simplex %v: %w", vs, err)
				}
			}
			_ = c.tree.AssignFiltration(h, f)
		}
		if d == 0 {
			continue
		}

		faces, err := c.tree.Faces(h)
		if err != nil {
			return err
		}
		for i, fh := range faces {
			// Faces drops the last vertex first.
			opposite := vs[len(vs)-1-i]
			ff, _ := c.tree.Filtration(fh)
			switch {
			case !math.IsNaN(ff):
				if f < ff {
					_ = c.tree.AssignFiltration(fh, f)
				}
			case d >= 2:
				face, _ := c.tree.Vertices(fh)
				inside, err := k.InsideOpenSphere(c.pointsOf(face), c.points[opposite])
				if err != nil {
					return fmt.Errorf("face %v: %w", face, err)
				}
				if inside {
					_ = c.tree.AssignFiltration(fh, f)
				}
			}
		}
	}

	return nil
}

func (c *Complex) pointsOf(vs []simplex.Vertex) []geometry.Point {
	out := make([]geometry.Point, len(vs))
	for i, v := range vs {
		out[i] = c.points[v]
	}

	return out
}
