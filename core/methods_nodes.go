// SPDX-License-Identifier: MIT
// File: methods_nodes.go
// Role: Node lifecycle, neighborhood and degree queries.
//
// Determinism:
//   - Nodes()/NodeIDs()/Neighbors() return results sorted by ID ascending.
//
// Concurrency:
//   - None. See doc.go for the ownership model.
package core

import (
	"fmt"
	"sort"
)

// AddNode inserts n if no node with the same ID exists (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyNodeID).
//   - Stage 2: If the ID is already present, return nil without touching the stored Node.
//   - Stage 3: Allocate the next handle, store n, and bootstrap an empty neighbor set.
//
// Behavior highlights:
//   - Re-adding an existing ID keeps the first payload; identity is ID equality.
//
// Errors:
//   - ErrEmptyNodeID: if n.ID == "".
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddNode(n Node) error {
	if n.ID == "" {
		return ErrEmptyNodeID
	}
	if _, exists := g.index[n.ID]; exists {
		return nil // no-op for existing node
	}
	g.insert(n)

	return nil
}

// insert registers n under a fresh handle and returns it.
// Callers guarantee that n.ID is non-empty and absent.
func (g *Graph) insert(n Node) int {
	h := len(g.nodes)
	g.index[n.ID] = h
	g.nodes = append(g.nodes, n)
	g.adj = append(g.adj, make(map[int]struct{}))

	return h
}

// HasNode reports whether the node ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	if id == "" {
		return false
	}
	_, ok := g.index[id]

	return ok
}

// Node returns the stored Node for id.
//
// Errors:
//   - ErrEmptyNodeID: if id == "".
//   - ErrNodeNotFound: if id is absent.
func (g *Graph) Node(id string) (Node, error) {
	h, err := g.handle(id)
	if err != nil {
		return Node{}, err
	}

	return g.nodes[h], nil
}

// handle resolves id to its arena handle with sentinel errors.
func (g *Graph) handle(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyNodeID
	}
	h, ok := g.index[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}

	return h, nil
}

// Nodes returns every Node sorted by ID ascending.
// Complexity: O(V log V) time, O(V) space.
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// NodeIDs returns every node ID sorted ascending.
// Use it for reproducible iteration and stable test assertions.
// Complexity: O(V log V) time, O(V) space.
func (g *Graph) NodeIDs() []string {
	ids := make([]string, len(g.nodes))
	for h, n := range g.nodes {
		ids[h] = n.ID
	}
	sort.Strings(ids)

	return ids
}

// NodeCount returns |V|.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// Neighbors returns the IDs adjacent to id, sorted ascending.
//
// Errors:
//   - ErrEmptyNodeID: if id == "".
//   - ErrNodeNotFound: if id is absent.
//
// Complexity:
//   - Time O(d log d), Space O(d), where d = deg(id).
func (g *Graph) Neighbors(id string) ([]string, error) {
	h, err := g.handle(id)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(g.adj[h]))
	for nb := range g.adj[h] {
		out = append(out, g.nodes[nb].ID)
	}
	sort.Strings(out)

	return out, nil
}

// Degree returns |N(id)|. Degree is derived, never stored.
//
// Errors:
//   - ErrEmptyNodeID, ErrNodeNotFound.
//
// Complexity: O(1).
func (g *Graph) Degree(id string) (int, error) {
	h, err := g.handle(id)
	if err != nil {
		return 0, err
	}

	return len(g.adj[h]), nil
}

// MaxDegree returns Δ(G), or 0 for a graph without nodes.
// Complexity: O(V).
func (g *Graph) MaxDegree() int {
	maxDeg := 0
	for _, nbrs := range g.adj {
		if len(nbrs) > maxDeg {
			maxDeg = len(nbrs)
		}
	}

	return maxDeg
}
