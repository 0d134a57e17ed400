// SPDX-License-Identifier: MIT

package witness

import (
	"cmp"
	"context"
	"fmt"
	"math"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvtopo/geometry"
	"github.com/katalvlaran/lvtopo/simplex"
)

// LandmarkDistance is one entry of a witness row.
type LandmarkDistance struct {
	Landmark        simplex.Vertex
	SquaredDistance float64
}

// Table holds, per witness, its landmarks sorted by ascending squared
// distance.
type Table [][]LandmarkDistance

// Validate checks that the table is non-empty, that landmark ids are
// non-negative and distinct within a row, and that every row is sorted.
// It also returns the largest landmark id seen (-1 when every row is empty).
// Complexity: O(total entries)
func (t Table) Validate() (simplex.Vertex, error) {
	if len(t) == 0 {
		return -1, ErrEmptyTable
	}
	top := simplex.Vertex(-1)
	seen := make(map[simplex.Vertex]struct{})
	for w, row := range t {
		clear(seen)
		for i, e := range row {
			if e.Landmark < 0 {
				return -1, fmt.Errorf("witness %d: entry %d: %w", w, i, ErrNegativeLandmark)
			}
			if _, dup := seen[e.Landmark]; dup {
				return -1, fmt.Errorf("witness %d: entry %d: landmark %d: %w", w, i, e.Landmark, ErrDuplicateLandmark)
			}
			seen[e.Landmark] = struct{}{}
			if math.IsNaN(e.SquaredDistance) || (i > 0 && e.SquaredDistance < row[i-1].SquaredDistance) {
				return -1, fmt.Errorf("witness %d: entry %d: %w", w, i, ErrUnsortedRow)
			}
			top = max(top, e.Landmark)
		}
	}

	return top, nil
}

// TableOption configures NewEuclideanTable.
type TableOption func(*tableConfig)

type tableConfig struct {
	nearest int
	workers int
}

// WithNearest keeps only the k nearest landmarks per witness (default: all).
// Panics when k < 1.
func WithNearest(k int) TableOption {
	if k < 1 {
		panic("witness: WithNearest(k<1)")
	}

	return func(c *tableConfig) { c.nearest = k }
}

// WithWorkers bounds the number of concurrent goroutines (default GOMAXPROCS).
// Panics when n < 1.
func WithWorkers(n int) TableOption {
	if n < 1 {
		panic("witness: WithWorkers(n<1)")
	}

	return func(c *tableConfig) { c.workers = n }
}

// NewEuclideanTable computes the nearest-landmark table of witnesses against
// landmarks. Row i belongs to witnesses[i]; landmark ids are indices into
// landmarks. Equal distances are ordered by landmark id.
//
// Rows are computed concurrently; cancelling ctx aborts the remaining work.
// Complexity: O(W·L·(n + log L)) for W witnesses, L landmarks in R^n.
func NewEuclideanTable(ctx context.Context, witnesses, landmarks []geometry.Point, opts ...TableOption) (Table, error) {
	cfg := tableConfig{workers: runtime.GOMAXPROCS(0)}
	for _, o := range opts {
		o(&cfg)
	}
	if len(witnesses) == 0 {
		return nil, fmt.Errorf("NewEuclideanTable: %w", ErrEmptyTable)
	}
	if len(landmarks) == 0 {
		return nil, fmt.Errorf("NewEuclideanTable: %w", ErrNoLandmarks)
	}

	table := make(Table, len(witnesses))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)
	for i, w := range witnesses {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			row, err := nearestRow(w, landmarks, cfg.nearest)
			if err != nil {
				return fmt.Errorf("witness %d: %w", i, err)
			}
			table[i] = row

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("NewEuclideanTable: %w", err)
	}

	return table, nil
}

func nearestRow(w geometry.Point, landmarks []geometry.Point, nearest int) ([]LandmarkDistance, error) {
	row := make([]LandmarkDistance, len(landmarks))
	for j, l := range landmarks {
		d, err := geometry.SquaredDistance(w, l)
		if err != nil {
			return nil, err
		}
		row[j] = LandmarkDistance{Landmark: simplex.Vertex(j), SquaredDistance: d}
	}
	slices.SortFunc(row, func(a, b LandmarkDistance) int {
		if c := cmp.Compare(a.SquaredDistance, b.SquaredDistance); c != 0 {
			return c
		}

		return cmp.Compare(a.Landmark, b.Landmark)
	})
	if nearest > 0 && nearest < len(row) {
		row = row[:nearest:nearest]
	}

	return row, nil
}
