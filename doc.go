// Package chromatic is an in-memory toolkit for vertex coloring of simple
// undirected graphs: an exact exhaustive solver, first-fit greedy coloring
// in natural or degree order, the Welsh-Powell heuristic and a validator.
//
// 🚀 What is chromatic?
//
//	A small, deterministic library that brings together:
//		• Core primitives: string-keyed nodes, undirected edges, neighbor and degree queries
//		• Exact coloring: exhaustive search for the chromatic number of small graphs
//		• Heuristics: greedy first-fit (natural / degree order) and Welsh-Powell
//		• Validation: every uncolored node, non-positive color and conflicting edge, as errors
//		• Builders: K_n, C_n, paths, stars, wheels, K_{m,n}, grids, Petersen, crowns, G(n,p)
//
// ✨ Why choose chromatic?
//
//   - Deterministic: node IDs define every processing order, so results never
//     depend on insertion order
//   - Honest errors: sentinel errors wrapped with context, usable with errors.Is / errors.As
//   - Observable: optional log/slog logger and injectable clock on every algorithm
//
// Under the hood, everything is organized under these subpackages:
//
//	core/             - Graph, Node, Edge and the adjacency arena
//	coloring/         - Exhaustive, Greedy, WelshPowell, Validate
//	builder/          - deterministic constructors for canonical test graphs
//	internal/compare/ - side-by-side runs and size sweeps with text, YAML and CSV reports
//	cmd/colorbench/   - CLI over internal/compare
//
// Quick ASCII example:
//
//	    A───B
//	     \ /
//	      C
//
//	represents a triangle; every algorithm colors it A=1, B=2, C=3.
//
//	go get github.com/katalvlaran/chromatic
package chromatic
