// SPDX-License-Identifier: MIT
// Package: chromatic/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Canonical model:
//   • Simple cycle C_n with n ≥ 3; edges idFn(i)–idFn((i+1) mod n).
//   • χ(C_n) = 2 for even n and 3 for odd n.
//
// Complexity:
//   • Time O(n), Space O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/chromatic/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds the n-node cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		ids, err := addIndexedNodes(g, methodCycle, cfg, n)
		if err != nil {
			return err
		}

		return addRing(g, methodCycle, ids)
	}
}
