// SPDX-License-Identifier: MIT

package collapse_test

import (
	"fmt"

	"github.com/katalvlaran/lvtopo/collapse"
)

// ExampleFlagComplex_StrongCollapse collapses a hollow square with a pendant
// vertex. The pendant goes away; the square has no dominated vertex.
//
//	3 - 2
//	|   |
//	0 - 1
//	|
//	4
func ExampleFlagComplex_StrongCollapse() {
	fc, _ := collapse.FromEdges([]collapse.Edge{
		{U: 0, V: 1, Weight: 1}, {U: 1, V: 2, Weight: 1},
		{U: 2, V: 3, Weight: 1}, {U: 3, V: 0, Weight: 1},
		{U: 0, V: 4, Weight: 1},
	})
	res, err := fc.StrongCollapse()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("vertices:", fc.Vertices())
	fmt.Println("removed:", res.Removed())
	fmt.Println("reduction:", fc.ReductionMap())

	// Output:
	// vertices: [0 1 2 3]
	// removed: 1
	// reduction: map[4:0]
}
