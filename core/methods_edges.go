// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge lifecycle & queries.
//
// Determinism:
//   - Edges() returns canonical (U < V) edges sorted by (U, V).
//
// Policy:
//   - Strict by default: unknown endpoints → ErrNodeNotFound.
//   - WithAutoAddNodes(): unknown endpoints are inserted with nil Data.
package core

import (
	"fmt"
	"sort"
)

// AddEdge connects u and v with an undirected edge.
//
// Implementation:
//   - Stage 1: Validate non-empty IDs and reject u == v (ErrLoopNotAllowed).
//   - Stage 2: Resolve both handles; under WithAutoAddNodes insert missing ones,
//     otherwise fail with ErrNodeNotFound.
//   - Stage 3: If v ∉ N(u), register v in N(u) and u in N(v) and bump the edge count.
//
// Behavior highlights:
//   - Symmetric by construction: both neighbor sets change together.
//   - Idempotent: AddEdge(u,v) after AddEdge(v,u) is a no-op.
//   - On error the graph is unchanged.
//
// Errors:
//   - ErrEmptyNodeID: if u or v is "".
//   - ErrLoopNotAllowed: if u == v.
//   - ErrNodeNotFound: if an endpoint is missing and auto-add is disabled.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddEdge(u, v string) error {
	if u == "" || v == "" {
		return ErrEmptyNodeID
	}
	if u == v {
		return fmt.Errorf("%w: %q", ErrLoopNotAllowed, u)
	}

	hu, okU := g.index[u]
	hv, okV := g.index[v]
	if !g.autoAdd {
		if !okU {
			return fmt.Errorf("AddEdge(%s,%s): %w: %q", u, v, ErrNodeNotFound, u)
		}
		if !okV {
			return fmt.Errorf("AddEdge(%s,%s): %w: %q", u, v, ErrNodeNotFound, v)
		}
	}
	if !okU {
		hu = g.insert(Node{ID: u})
	}
	if !okV {
		hv = g.insert(Node{ID: v})
	}

	if _, exists := g.adj[hu][hv]; exists {
		return nil
	}
	g.adj[hu][hv] = struct{}{}
	g.adj[hv][hu] = struct{}{}
	g.edges++

	return nil
}

// HasEdge reports whether u and v are adjacent.
//
// Errors:
//   - ErrEmptyNodeID, ErrNodeNotFound for either endpoint.
//
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) (bool, error) {
	hu, err := g.handle(u)
	if err != nil {
		return false, err
	}
	hv, err := g.handle(v)
	if err != nil {
		return false, err
	}
	_, ok := g.adj[hu][hv]

	return ok, nil
}

// Edges returns every undirected edge exactly once, as Edge{U, V} with U < V,
// sorted by U then V.
// Complexity: O(E log E) time, O(E) space.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edges)
	for h, nbrs := range g.adj {
		for nb := range nbrs {
			// Emit each pair once, from the endpoint with the smaller handle.
			if h < nb {
				out = append(out, newEdge(g.nodes[h].ID, g.nodes[nb].ID))
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}
		return out[i].V < out[j].V
	})

	return out
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int { return g.edges }
