// SPDX-License-Identifier: MIT

package offio_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvtopo/offio"
)

// ExampleReadOFF reads a single triangle in the plane.
func ExampleReadOFF() {
	m, err := offio.ReadOFF(strings.NewReader("nOFF 2\n3 1 0\n0 0\n1 0\n0 1\n3 0 1 2\n"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(m.Dimension, m.Points, m.Faces)

	// Output:
	// 2 [[0 0] [1 0] [0 1]] [[0 1 2]]
}
