// SPDX-License-Identifier: MIT
// Package: chromatic/builder
//
// helpers.go - shared node/edge emission used by the impl_*.go constructors.
// Every helper wraps core errors with the calling constructor's name.

package builder

import (
	"fmt"

	"github.com/katalvlaran/chromatic/core"
)

// centerNodeID is the fixed hub ID used by Star and Wheel.
const centerNodeID = "Center"

// addNodes inserts the given IDs in order.
func addNodes(g *core.Graph, method string, ids ...string) error {
	for _, id := range ids {
		if err := g.AddNode(core.Node{ID: id}); err != nil {
			return fmt.Errorf("%s: AddNode(%s): %w", method, id, err)
		}
	}

	return nil
}

// addIndexedNodes inserts idFn(0..n-1) and returns the IDs in index order.
func addIndexedNodes(g *core.Graph, method string, cfg builderConfig, n int) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
	}
	if err := addNodes(g, method, ids...); err != nil {
		return nil, err
	}

	return ids, nil
}

// addEdge connects u and v, tagging failures with method.
func addEdge(g *core.Graph, method, u, v string) error {
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%s–%s): %w", method, u, v, err)
	}

	return nil
}

// addRing connects ids[i]–ids[(i+1)%len] for every i.
func addRing(g *core.Graph, method string, ids []string) error {
	n := len(ids)
	for i := 0; i < n; i++ {
		if err := addEdge(g, method, ids[i], ids[(i+1)%n]); err != nil {
			return err
		}
	}

	return nil
}

// addCompleteEdges connects every unordered pair of ids in (i<j) order.
// Complexity: O(m²) for m = len(ids).
func addCompleteEdges(g *core.Graph, method string, ids []string) error {
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if err := addEdge(g, method, ids[i], ids[j]); err != nil {
				return err
			}
		}
	}

	return nil
}
