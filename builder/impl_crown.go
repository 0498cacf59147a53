// SPDX-License-Identifier: MIT
// Package: chromatic/builder
//
// impl_crown.go - implementation of Crown(n) constructor.
//
// Canonical model:
//   • Crown graph S_n^0: K_{n,n} minus a perfect matching.
//   • Left node i has ID idFn(2i), right node i has ID idFn(2i+1); left i is
//     adjacent to right j iff i ≠ j. Edges = n(n-1); χ = 2.
//
// Ordering:
//   • Under ID order the sequence is L0,R0,L1,R1,… and first-fit assigns
//     color i+1 to both L_i and R_i, using n colors on a bipartite graph.
//     With DefaultIDFn this holds while 2n ≤ 10; use PaddedIDFn beyond that.
//
// Complexity:
//   • Time O(n²), Space O(n²).

package builder

import (
	"fmt"

	"github.com/katalvlaran/chromatic/core"
)

const (
	methodCrown  = "Crown"
	minCrownSide = 2
)

// Crown returns a Constructor that builds the crown graph on 2n nodes.
func Crown(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCrownSide {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCrown, n, minCrownSide, ErrTooFewVertices)
		}
		ids, err := addIndexedNodes(g, methodCrown, cfg, 2*n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if err = addEdge(g, methodCrown, ids[2*i], ids[2*j+1]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
