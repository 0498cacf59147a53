package coloring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chromatic/coloring"
)

func TestColoring_Accessors(t *testing.T) {
	c := coloring.Coloring{"A": 1, "B": 3, "C": 1, "D": 3}
	assert.Equal(t, 2, c.NumColors())
	assert.Equal(t, 3, c.MaxColor())
	assert.Equal(t, map[int][]string{1: {"A", "C"}, 3: {"B", "D"}}, c.ColorClasses())

	cp := c.Clone()
	cp["A"] = 9
	assert.Equal(t, 1, c["A"])

	var empty coloring.Coloring
	assert.Nil(t, empty.Clone())
	assert.Zero(t, empty.NumColors())
	assert.Zero(t, empty.MaxColor())
	assert.Empty(t, empty.ColorClasses())
}

func TestParseOrder(t *testing.T) {
	o, err := coloring.ParseOrder("natural")
	require.NoError(t, err)
	assert.Equal(t, coloring.OrderNatural, o)

	o, err = coloring.ParseOrder("degree")
	require.NoError(t, err)
	assert.Equal(t, coloring.OrderDegree, o)

	_, err = coloring.ParseOrder("random")
	assert.ErrorIs(t, err, coloring.ErrInvalidArgument)
	assert.Contains(t, err.Error(), `"random"`)

	assert.False(t, coloring.Order("").Valid())
}

func TestFirstAvailableColor(t *testing.T) {
	set := func(cols ...int) map[int]struct{} {
		m := make(map[int]struct{}, len(cols))
		for _, c := range cols {
			m[c] = struct{}{}
		}
		return m
	}

	assert.Equal(t, 1, coloring.FirstAvailableColor(nil))
	assert.Equal(t, 1, coloring.FirstAvailableColor(set()))
	assert.Equal(t, 3, coloring.FirstAvailableColor(set(1, 2, 4)))
	assert.Equal(t, 1, coloring.FirstAvailableColor(set(2, 3, 4)))
	assert.Equal(t, 4, coloring.FirstAvailableColor(set(1, 2, 3)))
}
