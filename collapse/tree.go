// SPDX-License-Identifier: MIT

package collapse

import (
	"fmt"

	"github.com/katalvlaran/lvtopo/simplex"
)

// ToTree expands the flag complex of the active vertices into a simplex
// tree up to dimension maxDim. Vertices get value 0, edges their weight and
// higher simplices the largest weight among their edges.
func (fc *FlagComplex) ToTree(maxDim int) (*simplex.Tree, error) {
	tr := simplex.New()
	if maxDim < 0 {
		return nil, fmt.Errorf("ToTree(%d): %w", maxDim, simplex.ErrNegativeDimension)
	}
	for _, v := range fc.Vertices() {
		if _, _, err := tr.InsertWithSubfaces([]simplex.Vertex{v}, 0); err != nil {
			return nil, fmt.Errorf("ToTree(%d): %w", maxDim, err)
		}
	}
	if maxDim == 0 {
		tr.FinalizeOrder()
		return tr, nil
	}
	for _, e := range fc.Edges() {
		if _, _, err := tr.InsertWithSubfaces([]simplex.Vertex{e.U, e.V}, e.Weight); err != nil {
			return nil, fmt.Errorf("ToTree(%d): %w", maxDim, err)
		}
	}
	if err := tr.Expand(maxDim); err != nil {
		return nil, fmt.Errorf("ToTree(%d): %w", maxDim, err)
	}
	tr.FinalizeOrder()

	return tr, nil
}
