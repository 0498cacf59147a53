package coloring_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chromatic/builder"
	"github.com/katalvlaran/chromatic/coloring"
	"github.com/katalvlaran/chromatic/core"
)

// colorers returns a fresh instance of every algorithm over g.
func colorers(t *testing.T, g *core.Graph, opts ...coloring.Option) []coloring.Colorer {
	t.Helper()
	ex, err := coloring.NewExhaustive(g, opts...)
	require.NoError(t, err)
	nat, err := coloring.NewGreedy(g, coloring.OrderNatural, opts...)
	require.NoError(t, err)
	deg, err := coloring.NewGreedy(g, coloring.OrderDegree, opts...)
	require.NoError(t, err)
	wp, err := coloring.NewWelshPowell(g, opts...)
	require.NoError(t, err)

	return []coloring.Colorer{ex, nat, deg, wp}
}

// TestDeterminism checks that repeated runs and graphs built with a different
// insertion order produce identical colorings.
func TestDeterminism(t *testing.T) {
	forward := built(t, builder.Petersen())

	// Same Petersen graph, nodes and edges inserted in reverse order.
	reverse := core.NewGraph()
	ids := forward.NodeIDs()
	for i := len(ids) - 1; i >= 0; i-- {
		require.NoError(t, reverse.AddNode(core.Node{ID: ids[i]}))
	}
	edges := forward.Edges()
	for i := len(edges) - 1; i >= 0; i-- {
		require.NoError(t, reverse.AddEdge(edges[i].V, edges[i].U))
	}

	a := colorers(t, forward)
	b := colorers(t, reverse)
	for i := range a {
		first, err := a[i].Color()
		require.NoError(t, err)
		again, err := a[i].Color()
		require.NoError(t, err)
		other, err := b[i].Color()
		require.NoError(t, err)

		if diff := cmp.Diff(first, again); diff != "" {
			t.Errorf("%s: repeated run differs (-first +again):\n%s", a[i].Name(), diff)
		}
		if diff := cmp.Diff(first, other); diff != "" {
			t.Errorf("%s: insertion order changed result (-forward +reverse):\n%s", a[i].Name(), diff)
		}
		if diff := cmp.Diff(a[i].ColorClasses(), b[i].ColorClasses()); diff != "" {
			t.Errorf("%s: color classes differ:\n%s", a[i].Name(), diff)
		}
	}
}

// TestNoMutation checks that coloring leaves the input graph untouched.
func TestNoMutation(t *testing.T) {
	g := built(t, builder.Wheel(7))
	before := g.Clone()

	for _, c := range colorers(t, g) {
		_, err := c.Color()
		require.NoError(t, err)
	}

	if diff := cmp.Diff(before.Edges(), g.Edges()); diff != "" {
		t.Errorf("edges mutated:\n%s", diff)
	}
	if diff := cmp.Diff(before.Nodes(), g.Nodes()); diff != "" {
		t.Errorf("nodes mutated:\n%s", diff)
	}
}

// TestAllAlgorithms_OddCycle requires exactly three colors from every
// algorithm on C5, never two.
func TestAllAlgorithms_OddCycle(t *testing.T) {
	g := built(t, builder.Cycle(5), builder.WithSymbNumb("v"))
	for _, c := range colorers(t, g) {
		col, err := c.Color()
		require.NoError(t, err)
		if col.NumColors() != 3 {
			t.Errorf("%s: got %d colors on C5, want 3", c.Name(), col.NumColors())
		}
	}
}
