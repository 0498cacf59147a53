// SPDX-License-Identifier: MIT
// Package: chromatic/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Canonical model:
//   • Hub "Center" plus n-1 leaves idFn(1..n-1); one spoke per leaf.
//   • Total nodes = n; edges = n-1; χ = 2.
//
// Contract:
//   • n ≥ 2, else ErrTooFewVertices.
//   • The hub ID is fixed; leaf IDs use indices 1..n-1.
//
// Complexity:
//   • Time O(n), Space O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/chromatic/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with n nodes in total.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := addNodes(g, methodStar, centerNodeID); err != nil {
			return err
		}

		var leafID string
		for i := 1; i < n; i++ {
			leafID = cfg.idFn(i)
			if err := addNodes(g, methodStar, leafID); err != nil {
				return err
			}
			if err := addEdge(g, methodStar, centerNodeID, leafID); err != nil {
				return err
			}
		}

		return nil
	}
}
