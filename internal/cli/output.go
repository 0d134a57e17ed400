// SPDX-License-Identifier: MIT

package cli

import (
	"cmp"
	"fmt"
	"io"
	"maps"
	"math"
	"slices"

	"github.com/katalvlaran/lvtopo/simplex"
)

func vertex(i int) simplex.Vertex { return simplex.Vertex(i) }

// perDimension counts the simplices of tr by dimension.
func perDimension(tr *simplex.Tree) []int {
	out := make([]int, tr.Dimension()+1)
	for d := range out {
		s, _ := tr.Skeleton(d)
		out[d] = len(s)
	}

	return out
}

// writeSummary prints the counts and filtration range of tr.
func writeSummary(w io.Writer, name string, tr *simplex.Tree) {
	fmt.Fprintf(w, "complex: %s\n", name)
	fmt.Fprintf(w, "simplices: %d\n", tr.NumSimplices())
	for d, n := range perDimension(tr) {
		fmt.Fprintf(w, "dimension %d: %d\n", d, n)
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for h := range tr.Simplices() {
		f, _ := tr.Filtration(h)
		lo, hi = math.Min(lo, f), math.Max(hi, f)
	}
	if tr.NumSimplices() > 0 {
		fmt.Fprintf(w, "filtration: [%g, %g]\n", lo, hi)
	}
}

// writeDump prints every simplex of tr in filtration order.
func writeDump(w io.Writer, tr *simplex.Tree) error {
	order, err := tr.FilteredSimplices()
	if err != nil {
		return err
	}
	for _, h := range order {
		vs, _ := tr.Vertices(h)
		f, _ := tr.Filtration(h)
		fmt.Fprintf(w, "%v %g\n", vs, f)
	}

	return nil
}

// writeReduction prints the reduction map ordered by eliminated vertex.
func writeReduction(w io.Writer, m map[simplex.Vertex]simplex.Vertex) {
	keys := slices.SortedFunc(maps.Keys(m), cmp.Compare[simplex.Vertex])
	for _, k := range keys {
		fmt.Fprintf(w, "%d -> %d\n", k, m[k])
	}
}
