// Package coloring assigns colors to the nodes of a core.Graph so that no two
// adjacent nodes share a color, and checks such assignments.
//
// What
//
//   - Exhaustive: exact search. For k = 1, 2, …, |V| it enumerates every one
//     of the k^n assignments in lexicographic order and returns the first
//     proper one, so the number of colors used is the chromatic number χ(G).
//   - Greedy: first-fit. Nodes are visited in a configurable Order (natural
//     ID order or descending degree) and each takes the smallest positive
//     color not used by an already-colored neighbor. At most Δ(G)+1 colors.
//   - WelshPowell: Greedy fixed to OrderDegree, kept as its own entry point
//     under the heuristic's historical name.
//   - Validate / IsValid / Violations: the shared oracle. A Coloring is proper
//     iff every node has a positive color and every edge joins two different colors.
//
// Why
//
//	The three strategies trace the classic trade-off: exhaustive search is
//	optimal but exponential (practical up to about a dozen nodes), first-fit
//	is fast but order-sensitive, and ordering by degree usually closes much
//	of the gap on dense graphs at almost no cost.
//
// Determinism
//
//	Nodes are always processed in core.Graph.NodeIDs() order (or a stable
//	sort of it), and exhaustive enumeration order is fixed, so the same graph
//	and configuration always yield the same Coloring.
//
// Colors
//
//	Every Coloring maps node ID → color in 1..k. Exhaustive search counts
//	from 0 internally and normalizes on output, so its ChromaticNumber equals
//	both the largest color and 1 + the largest internal color.
//
// Complexity (n = |V|, m = |E|, Δ = max degree)
//
//   - Exhaustive:  O(Σ_{i=1..χ} i^n · m) time, O(n) extra space.
//   - Greedy:      O(n log n + n·Δ) time, O(n + Δ) extra space.
//   - Validate:    O(n + m).
//
// Usage
//
//	g := core.NewGraph(core.WithAutoAddNodes())
//	_ = g.AddEdge("A", "B")
//	_ = g.AddEdge("B", "C")
//	_ = g.AddEdge("C", "A")
//
//	ex, err := coloring.NewExhaustive(g)
//	if err != nil {
//		// ErrInvalidArgument: nil or empty graph
//	}
//	c, err := ex.Color()          // map[A:1 B:2 C:3]
//	chi := ex.ChromaticNumber()   // 3
//
//	gr, _ := coloring.NewGreedy(g, coloring.OrderNatural)
//	c, _ = gr.Color()
//	fmt.Println(gr.NumColors(), coloring.IsValid(g, c))
//
// Concurrency
//
//	Algorithms are synchronous and single-threaded. An algorithm instance
//	holds its last result and must not be shared across goroutines while
//	Color runs; the Graph is only read.
package coloring
