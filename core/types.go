// SPDX-License-Identifier: MIT
// Package core defines the central Graph, Node, and Edge types.
//
// This file declares Node, Edge, Graph, GraphOption, sentinel errors,
// and the NewGraph constructor.
//
// Errors:
//
//	ErrNilGraph       - graph pointer is nil.
//	ErrEmptyNodeID    - node ID is the empty string.
//	ErrNodeNotFound   - requested node does not exist.
//	ErrLoopNotAllowed - self-loop requested.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrNilGraph indicates an operation received a nil *Graph.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrEmptyNodeID indicates that the provided Node has an empty ID.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Node represents a vertex in the graph.
//
// ID uniquely identifies this Node within its Graph and defines the total
// order (lexicographic) used for deterministic tie-breaks.
// Data is an optional opaque payload; it plays no part in identity.
type Node struct {
	// ID is the unique identifier for this Node.
	ID string

	// Data stores arbitrary user data. It is not deep-copied by Clone.
	Data any
}

// Edge is an undirected edge in canonical form: U < V.
type Edge struct {
	U string
	V string
}

// newEdge orders the endpoints so that U < V.
func newEdge(a, b string) Edge {
	if b < a {
		a, b = b, a
	}

	return Edge{U: a, V: b}
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithAutoAddNodes lets AddEdge insert missing endpoints instead of
// failing with ErrNodeNotFound.
func WithAutoAddNodes() GraphOption {
	return func(g *Graph) { g.autoAdd = true }
}

// Graph is an undirected simple graph stored as an index-based arena.
//
// index maps a node ID to its handle; nodes[h] is the Node and adj[h] the
// set of neighbor handles. Handles are dense, assigned in insertion order,
// and never reused (there is no removal).
type Graph struct {
	autoAdd bool // AddEdge inserts unknown endpoints

	index map[string]int     // node ID → handle
	nodes []Node             // handle → Node
	adj   []map[int]struct{} // handle → neighbor handles
	edges int                // undirected edge count
}

// NewGraph creates an empty Graph with the given options.
// By default AddEdge is strict: both endpoints must already exist.
// Complexity: O(len(opts))
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		index: make(map[string]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// AutoAddNodes reports whether AddEdge inserts missing endpoints.
func (g *Graph) AutoAddNodes() bool { return g.autoAdd }
