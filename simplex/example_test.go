// SPDX-License-Identifier: MIT

package simplex_test

import (
	"fmt"

	"github.com/katalvlaran/lvtopo/simplex"
)

// ExampleTree_InsertWithSubfaces inserts a filled triangle and lists what
// the tree stores, in trie order.
//
//	  2
//	 / \
//	0 - 1
func ExampleTree_InsertWithSubfaces() {
	tr := simplex.New()
	_, _, _ = tr.InsertWithSubfaces([]simplex.Vertex{2, 0, 1}, 1)

	for h := range tr.Simplices() {
		vs, _ := tr.Vertices(h)
		fmt.Print(vs, " ")
	}
	fmt.Println()
	fmt.Println("simplices:", tr.NumSimplices(), "dimension:", tr.Dimension())

	// Output:
	// [0] [0 1] [0 1 2] [0 2] [1] [1 2] [2]
	// simplices: 7 dimension: 2
}

// ExampleTree_FinalizeOrder shows the filtration order after faces have been
// lowered to their cofaces' values.
func ExampleTree_FinalizeOrder() {
	tr := simplex.New()
	_, _, _ = tr.InsertWithSubfaces([]simplex.Vertex{0, 1}, 0.5)
	_, _, _ = tr.InsertWithSubfaces([]simplex.Vertex{1, 2}, 0.25)
	tr.EnforceMonotonicity()
	tr.FinalizeOrder()

	order, _ := tr.FilteredSimplices()
	for _, h := range order {
		vs, _ := tr.Vertices(h)
		f, _ := tr.Filtration(h)
		fmt.Println(vs, f)
	}

	// Output:
	// [1] 0.25
	// [2] 0.25
	// [1 2] 0.25
	// [0] 0.5
	// [0 1] 0.5
}
