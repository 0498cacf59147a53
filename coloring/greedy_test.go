package coloring_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chromatic/builder"
	"github.com/katalvlaran/chromatic/coloring"
	"github.com/katalvlaran/chromatic/core"
)

func colorGreedy(t *testing.T, g *core.Graph, o coloring.Order) coloring.Coloring {
	t.Helper()
	gr, err := coloring.NewGreedy(g, o)
	require.NoError(t, err)
	c, err := gr.Color()
	require.NoError(t, err)

	return c
}

func TestGreedy_TriangleNatural(t *testing.T) {
	gr, err := coloring.NewGreedy(triangle(t), coloring.OrderNatural)
	require.NoError(t, err)

	c, err := gr.Color()
	require.NoError(t, err)
	assert.Equal(t, coloring.Coloring{"A": 1, "B": 2, "C": 3}, c)
	assert.Equal(t, "greedy-natural", gr.Name())
	assert.Equal(t, coloring.OrderNatural, gr.Order())
	assert.Equal(t, map[int][]string{1: {"A"}, 2: {"B"}, 3: {"C"}}, gr.ColorClasses())
}

func TestGreedy_OrderMatters(t *testing.T) {
	g := pathACDB(t)

	natural := colorGreedy(t, g, coloring.OrderNatural)
	assert.Equal(t, coloring.Coloring{"A": 1, "B": 1, "C": 2, "D": 3}, natural)

	degree := colorGreedy(t, g, coloring.OrderDegree)
	assert.Equal(t, coloring.Coloring{"A": 2, "B": 1, "C": 1, "D": 2}, degree)
}

func TestGreedy_CrownWorstCase(t *testing.T) {
	for n := 2; n <= 5; n++ {
		g := built(t, builder.Crown(n))
		c := colorGreedy(t, g, coloring.OrderNatural)
		assert.Equal(t, n, c.NumColors(), "Crown(%d)", n)
	}
}

func TestGreedy_CompleteGraph(t *testing.T) {
	g := built(t, builder.Complete(5))
	for _, o := range []coloring.Order{coloring.OrderNatural, coloring.OrderDegree} {
		assert.Equal(t, 5, colorGreedy(t, g, o).NumColors(), o)
	}
}

func TestGreedy_OddCycleNeedsThree(t *testing.T) {
	g := graphOf(t, []string{"v1", "v2", "v3", "v4", "v5"},
		[2]string{"v1", "v2"}, [2]string{"v2", "v3"}, [2]string{"v3", "v4"},
		[2]string{"v4", "v5"}, [2]string{"v5", "v1"})
	for _, o := range []coloring.Order{coloring.OrderNatural, coloring.OrderDegree} {
		assert.Equal(t, 3, colorGreedy(t, g, o).NumColors(), o)
	}
}

func TestGreedy_DeltaPlusOneBound(t *testing.T) {
	t.Parallel()

	for seed := int64(1); seed <= 20; seed++ {
		seed := seed
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			t.Parallel()
			g := built(t, builder.RandomSparse(40, 0.15), builder.WithSeed(seed))
			for _, o := range []coloring.Order{coloring.OrderNatural, coloring.OrderDegree} {
				c := colorGreedy(t, g, o)
				require.True(t, coloring.IsValid(g, c))
				assert.LessOrEqual(t, c.MaxColor(), g.MaxDegree()+1)
				assert.Equal(t, c.MaxColor(), c.NumColors(), "first-fit uses a contiguous palette")
			}
		})
	}
}

func TestGreedy_InvalidArgument(t *testing.T) {
	_, err := coloring.NewGreedy(nil, coloring.OrderNatural)
	assert.ErrorIs(t, err, coloring.ErrInvalidArgument)

	_, err = coloring.NewGreedy(core.NewGraph(), coloring.OrderNatural)
	assert.ErrorIs(t, err, coloring.ErrInvalidArgument)

	_, err = coloring.NewGreedy(triangle(t), coloring.Order("random"))
	assert.ErrorIs(t, err, coloring.ErrInvalidArgument)
}

func TestSortNodes(t *testing.T) {
	g := graphOf(t, []string{"center", "leaf3", "leaf1", "leaf2"},
		[2]string{"center", "leaf1"}, [2]string{"center", "leaf2"}, [2]string{"center", "leaf3"})

	ids, err := coloring.SortNodes(g, coloring.OrderDegree)
	require.NoError(t, err)
	assert.Equal(t, []string{"center", "leaf1", "leaf2", "leaf3"}, ids)

	// Equal degrees fall back to ID order regardless of insertion order.
	iso := graphOf(t, []string{"c", "a", "b"})
	ids, err = coloring.SortNodes(iso, coloring.OrderDegree)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, ids)

	ids, err = coloring.SortNodes(pathACDB(t), coloring.OrderDegree)
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "D", "A", "B"}, ids)

	ids, err = coloring.SortNodes(pathACDB(t), coloring.OrderNatural)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, ids)

	_, err = coloring.SortNodes(nil, coloring.OrderDegree)
	assert.ErrorIs(t, err, coloring.ErrInvalidArgument)
	_, err = coloring.SortNodes(g, "bogus")
	assert.ErrorIs(t, err, coloring.ErrInvalidArgument)

	ids, err = coloring.SortNodes(core.NewGraph(), coloring.OrderNatural)
	require.NoError(t, err)
	assert.Empty(t, ids)
}
