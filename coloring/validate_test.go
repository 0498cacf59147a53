package coloring_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chromatic/coloring"
	"github.com/katalvlaran/chromatic/core"
)

func TestValidate_Valid(t *testing.T) {
	g := graphOf(t, []string{"A", "B"}, [2]string{"A", "B"})
	require.NoError(t, coloring.Validate(g, coloring.Coloring{"A": 1, "B": 2}))
	assert.True(t, coloring.IsValid(g, coloring.Coloring{"A": 1, "B": 2}))
	assert.Empty(t, coloring.Violations(g, coloring.Coloring{"A": 1, "B": 2}))
}

func TestValidate_Conflict(t *testing.T) {
	g := graphOf(t, []string{"A", "B"}, [2]string{"A", "B"})
	err := coloring.Validate(g, coloring.Coloring{"A": 1, "B": 1})
	require.ErrorIs(t, err, coloring.ErrInvalidColoring)
	assert.Contains(t, err.Error(), "both have color 1")

	var v *coloring.Violation
	require.True(t, errors.As(err, &v))
	assert.Equal(t, coloring.Conflict, v.Kind)
	assert.Equal(t, "A", v.Node)
	assert.Equal(t, "B", v.Other)
	assert.Equal(t, 1, v.Color)
}

func TestValidate_Uncolored(t *testing.T) {
	g := graphOf(t, []string{"A", "B"}, [2]string{"A", "B"})
	err := coloring.Validate(g, coloring.Coloring{"A": 1})
	require.ErrorIs(t, err, coloring.ErrInvalidColoring)
	assert.Contains(t, err.Error(), `node "B" has no color assigned`)
	assert.False(t, coloring.IsValid(g, nil))
}

func TestViolations_Order(t *testing.T) {
	g := graphOf(t, []string{"A", "B", "C", "D"},
		[2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "D"})
	vs := coloring.Violations(g, coloring.Coloring{"B": 1, "C": 1, "D": 1})

	require.Len(t, vs, 3)
	assert.Equal(t, coloring.Violation{Kind: coloring.Uncolored, Node: "A"}, vs[0])
	assert.Equal(t, coloring.Violation{Kind: coloring.Conflict, Node: "B", Other: "C", Color: 1}, vs[1])
	assert.Equal(t, coloring.Violation{Kind: coloring.Conflict, Node: "C", Other: "D", Color: 1}, vs[2])
	assert.Equal(t, "uncolored", vs[0].Kind.String())
	assert.Equal(t, "conflict", vs[1].Kind.String())
	assert.Equal(t, "ViolationKind(7)", coloring.ViolationKind(7).String())
}

func TestValidate_ExtraEntriesIgnored(t *testing.T) {
	g := graphOf(t, []string{"A"})
	assert.NoError(t, coloring.Validate(g, coloring.Coloring{"A": 1, "ghost": 1}))
}

func TestValidate_NilGraph(t *testing.T) {
	err := coloring.Validate(nil, coloring.Coloring{})
	assert.ErrorIs(t, err, coloring.ErrInvalidArgument)
	assert.ErrorIs(t, err, core.ErrNilGraph)
	assert.Nil(t, coloring.Violations(nil, nil))
	assert.False(t, coloring.IsValid(nil, nil))
}

func TestValidate_EmptyGraph(t *testing.T) {
	assert.NoError(t, coloring.Validate(core.NewGraph(), nil))
}

func TestValidate_NonPositive(t *testing.T) {
	g := graphOf(t, []string{"A", "B", "C"}, [2]string{"A", "B"}, [2]string{"B", "C"})

	err := coloring.Validate(g, coloring.Coloring{"A": 0, "B": -1, "C": 1})
	require.ErrorIs(t, err, coloring.ErrInvalidColoring)
	assert.Contains(t, err.Error(), `node "A" has non-positive color 0`)
	assert.Contains(t, err.Error(), `node "B" has non-positive color -1`)

	vs := coloring.Violations(g, coloring.Coloring{"A": 0, "B": 0, "C": 1})
	assert.Equal(t, []coloring.Violation{
		{Kind: coloring.NonPositive, Node: "A", Color: 0},
		{Kind: coloring.NonPositive, Node: "B", Color: 0},
		{Kind: coloring.Conflict, Node: "A", Other: "B", Color: 0},
	}, vs)
	assert.Equal(t, "non-positive", vs[0].Kind.String())
}
