// Package builder constructs the canonical small graphs used to exercise and
// compare coloring algorithms: complete graphs, cycles, paths, stars, wheels,
// complete bipartite graphs, grids, the Petersen graph, crown graphs and
// seeded random graphs.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – Constructor:  func(g *core.Graph, cfg builderConfig) error.
//     – BuildGraph:   creates a core.Graph and applies constructors in order.
//   - Configuration primitives:
//     – BuilderOption: a function that mutates builderConfig before use.
//     – builderConfig: holds the ID scheme, RNG and bipartite prefixes.
//   - Node-ID schemes (IDFn implementations):
//     – DefaultIDFn:      decimal strings ("0","1",…).
//     – SymbolIDFn:       single letters ("A","B",…).
//     – ExcelColumnIDFn:  Excel-style columns ("A","Z","AA",…).
//     – SymbolNumberIDFn: prefix + decimal ("v0","v1",…).
//     – PaddedIDFn:       zero-padded decimal ("00","01",…) so that ID order
//       matches index order beyond ten nodes.
//
// Known chromatic numbers of the built families (used as test oracles):
//
//	Complete(n)            χ = n
//	Cycle(n)               χ = 2 if n even, 3 if n odd
//	Path(n), Star(n)       χ = 2
//	Wheel(n)               χ = 3 if n-1 even, 4 if n-1 odd
//	CompleteBipartite      χ = 2
//	Grid(r,c), r·c ≥ 2     χ = 2
//	Petersen()             χ = 3
//	Crown(n)               χ = 2, yet first-fit in interleaved order uses n
//
// Guarantees:
//
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Idempotent re-application: core.Graph ignores repeated nodes and edges.
//   - Constructors never panic; they return sentinel errors wrapped with the
//     constructor name. Option constructors panic on nil arguments.
package builder
