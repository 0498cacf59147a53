// SPDX-License-Identifier: MIT
// File: methods_clone.go
// Role: Cloning and textual summary.

package core

import "fmt"

// Clone returns a deep copy of the Graph: options, nodes, handles and adjacency.
// Node.Data is copied by value (shared if it is a reference type).
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	clone := &Graph{
		autoAdd: g.autoAdd,
		index:   make(map[string]int, len(g.index)),
		nodes:   make([]Node, len(g.nodes)),
		adj:     make([]map[int]struct{}, len(g.adj)),
		edges:   g.edges,
	}
	for id, h := range g.index {
		clone.index[id] = h
	}
	copy(clone.nodes, g.nodes)
	for h, nbrs := range g.adj {
		set := make(map[int]struct{}, len(nbrs))
		for nb := range nbrs {
			set[nb] = struct{}{}
		}
		clone.adj[h] = set
	}

	return clone
}

// String renders a short summary, e.g. "Graph(nodes=5, edges=5)".
func (g *Graph) String() string {
	return fmt.Sprintf("Graph(nodes=%d, edges=%d)", len(g.nodes), g.edges)
}
