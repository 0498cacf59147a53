// Package compare runs every coloring algorithm over a set of named graphs and
// reports color counts, elapsed time, validity and optimality side by side.
//
// A Runner colors each Case with the exhaustive search (only when the graph is
// small enough), greedy in natural order and Welsh-Powell. The best known
// chromatic number is the exhaustive result when it ran, otherwise the Case's
// Known value. Reports render as an aligned text table or as YAML.
package compare
