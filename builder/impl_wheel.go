// SPDX-License-Identifier: MIT
// Package: chromatic/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Canonical model:
//   • W_n = C_{n-1} rim (IDs idFn(0..n-2)) plus hub "Center" joined to every rim node.
//   • Total nodes = n; edges = 2(n-1).
//   • χ(W_n) = 3 when the rim is even and 4 when it is odd.
//
// Complexity:
//   • Time O(n), Space O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/chromatic/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4 // rim C_{n-1} needs at least 3 nodes
)

// Wheel returns a Constructor that builds the wheel graph with n nodes.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodWheel, err)
		}
		if err := addNodes(g, methodWheel, centerNodeID); err != nil {
			return err
		}
		for i := 0; i < n-1; i++ {
			if err := addEdge(g, methodWheel, centerNodeID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
