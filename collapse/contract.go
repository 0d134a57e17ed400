// SPDX-License-Identifier: MIT

package collapse

import (
	"fmt"

	"github.com/katalvlaran/lvtopo/simplex"
)

// Contract merges del into keep: every neighbor of del becomes a neighbor
// of keep (new edges carry the weight of the edge to del) and del is
// removed, with reduction[del] = keep. When keep is not a vertex, del is
// simply renamed to keep. Contracting a vertex into itself is a no-op.
//
// Existing reduction entries that pointed at del are redirected to keep.
// Complexity: O(deg(del) + |reduction|)
func (fc *FlagComplex) Contract(del, keep simplex.Vertex) error {
	if del == keep {
		return nil
	}
	if keep < 0 {
		return fmt.Errorf("Contract(%d, %d): %w", del, keep, ErrNegativeVertex)
	}
	rd, ok := fc.lookup(del)
	if !ok {
		return fmt.Errorf("Contract(%d, %d): %w", del, keep, ErrUnknownVertex)
	}

	// keep exists: move del's edges onto it, then drop del.
	if rk, ok := fc.lookup(keep); ok {
		for _, y := range fc.nbrs[rd] {
			if y != rk && fc.active(y) {
				fc.link(rk, y, fc.weight[edgeKey(rd, y)])
			}
		}
		fc.unlink(rd)
	} else {
		// keep is new: relabel del's row in place.
		if _, taken := fc.rowOf[keep]; taken {
			return fmt.Errorf("Contract(%d, %d): %w", del, keep, ErrUnknownVertex)
		}
		delete(fc.rowOf, del)
		fc.rowOf[keep] = rd
		fc.vertexOf[rd] = keep
		delete(fc.reduction, keep)
	}

	// Record the merge and redirect older entries so the map stays flat.
	fc.reduction[del] = keep
	for x, r := range fc.reduction {
		if r == del {
			fc.reduction[x] = keep
		}
	}

	return nil
}
