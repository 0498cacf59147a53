// SPDX-License-Identifier: MIT
// Package: chromatic/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Canonical model:
//   • Simple path P_n with n ≥ 2: idFn(0)–idFn(1)–…–idFn(n-1).
//
// Complexity:
//   • Time O(n), Space O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/chromatic/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds the n-node path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		ids, err := addIndexedNodes(g, methodPath, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err = addEdge(g, methodPath, ids[i], ids[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}
