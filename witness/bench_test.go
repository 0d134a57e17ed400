// SPDX-License-Identifier: MIT

package witness_test

import (
	"context"
	"math"
	"testing"

	"github.com/katalvlaran/lvtopo/geometry"
	"github.com/katalvlaran/lvtopo/simplex"
	"github.com/katalvlaran/lvtopo/witness"
)

func circle(n int) []geometry.Point {
	out := make([]geometry.Point, n)
	for i := range out {
		a := 2 * math.Pi * float64(i) / float64(n)
		out[i] = geometry.Point{math.Cos(a), math.Sin(a)}
	}

	return out
}

// BenchmarkNewEuclideanTable_2000x50 measures table construction.
func BenchmarkNewEuclideanTable_2000x50(b *testing.B) {
	ws, ls := circle(2000), circle(50)
	for i := 0; i < b.N; i++ {
		_, _ = witness.NewEuclideanTable(context.Background(), ws, ls)
	}
}

// BenchmarkBuild_Circle measures a 2-dimensional relaxed witness complex.
func BenchmarkBuild_Circle(b *testing.B) {
	table, _ := witness.NewEuclideanTable(context.Background(), circle(2000), circle(50), witness.WithNearest(8))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = witness.Build(table, simplex.New(), witness.WithRelaxation(0.01), witness.WithMaxDimension(2))
	}
}
