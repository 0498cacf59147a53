package coloring_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chromatic/builder"
	"github.com/katalvlaran/chromatic/core"
)

// graphOf builds a strict graph from an explicit node list and edge pairs.
func graphOf(t testing.TB, nodes []string, edges ...[2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range nodes {
		require.NoError(t, g.AddNode(core.Node{ID: id}))
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

// built runs a single builder constructor and fails the test on error.
func built(t testing.TB, con builder.Constructor, opts ...builder.BuilderOption) *core.Graph {
	t.Helper()
	g, err := builder.Build(con, opts...)
	require.NoError(t, err)

	return g
}

func triangle(t testing.TB) *core.Graph {
	return graphOf(t, []string{"A", "B", "C"}, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "A"})
}

// pathACDB is the path A–C–D–B: natural order needs 3 colors, degree order 2.
func pathACDB(t testing.TB) *core.Graph {
	return graphOf(t, []string{"A", "B", "C", "D"}, [2]string{"A", "C"}, [2]string{"C", "D"}, [2]string{"D", "B"})
}
