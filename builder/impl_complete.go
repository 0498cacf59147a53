// SPDX-License-Identifier: MIT
// Package: chromatic/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Canonical model:
//   • K_n: every unordered pair of distinct nodes is adjacent; χ(K_n) = n.
//   • IDs via cfg.idFn(0..n-1); edges emitted for (i<j) in lexicographic index order.
//
// Complexity:
//   • Time O(n²), Space O(n²) for adjacency.

package builder

import (
	"fmt"

	"github.com/katalvlaran/chromatic/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
// n=1 yields a single isolated node.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		ids, err := addIndexedNodes(g, methodComplete, cfg, n)
		if err != nil {
			return err
		}

		return addCompleteEdges(g, methodComplete, ids)
	}
}
