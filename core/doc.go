// Package core provides the undirected, simple Graph consumed by every
// coloring algorithm in chromatic.
//
// The Graph G = (V,E) is deliberately small:
//
//   - Undirected edges only; adding u–v registers v in N(u) and u in N(v).
//   - No self-loops (AddEdge(v,v) → ErrLoopNotAllowed).
//   - No parallel edges; repeating AddEdge(u,v) is a no-op.
//   - No removal: nodes and edges are only ever added.
//   - Index-based arena storage: node ID → integer handle, neighbor sets keyed
//     by handle, so adjacency lookups avoid pointer identity entirely.
//
// Why use core.Graph?
//
//   - Deterministic iteration - Nodes(), NodeIDs(), Neighbors(), Edges() all
//     return results sorted by node ID, the total order used for every
//     tie-break in the coloring package.
//   - Explicit edge policy - AddEdge is strict by default and fails with
//     ErrNodeNotFound for unknown endpoints; WithAutoAddNodes() switches to
//     auto-insertion for quick fixtures.
//   - Read-only sharing - algorithms never mutate the Graph they receive;
//     Clone() gives callers a cheap way to prove it in tests.
//
// Configuration Options (GraphOption):
//
//	– WithAutoAddNodes()
//	    AddEdge inserts missing endpoints (with nil Data) instead of
//	    returning ErrNodeNotFound.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(n Node) error               // O(1), idempotent
//	HasNode(id string) bool             // O(1)
//	Node(id string) (Node, error)       // O(1)
//
//	// Edge lifecycle
//	AddEdge(u, v string) error          // O(1), idempotent
//	HasEdge(u, v string) (bool, error)  // O(1)
//
//	// Query
//	Nodes() []Node                      // O(V·log V)
//	NodeIDs() []string                  // O(V·log V)
//	Neighbors(id string) ([]string, error) // O(d·log d)
//	Edges() []Edge                      // O(E·log E), canonical U < V
//
//	// Counts & degrees
//	Degree(id string) (int, error)      // O(1)
//	MaxDegree() int                     // O(V)
//	NodeCount() int                     // O(1)
//	EdgeCount() int                     // O(1)
//
//	// Cloning
//	Clone() *Graph                      // O(V+E)
//
// Errors:
//
//	ErrNilGraph       – operation on a nil *Graph
//	ErrEmptyNodeID    – zero-length node ID
//	ErrNodeNotFound   – missing node (strict AddEdge, Neighbors, Degree, ...)
//	ErrLoopNotAllowed – AddEdge(v, v)
//
// Concurrency:
//
//	Graph holds no locks. It is built by its owner on one goroutine and then
//	handed, read-only, to algorithms. Concurrent readers are safe once
//	mutation has stopped; concurrent mutation is not.
package core
