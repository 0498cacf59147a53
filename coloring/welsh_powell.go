package coloring

import (
	"fmt"

	"github.com/katalvlaran/chromatic/core"
)

const nameWelshPowell = "welsh-powell"

// WelshPowell is first-fit coloring after sorting nodes by descending degree
// (ties by ID). High-degree nodes have the fewest options, so they are
// colored while most colors are still free.
//
// It is Greedy with OrderDegree under its historical name.
type WelshPowell struct {
	*Greedy
}

// NewWelshPowell binds a Welsh-Powell coloring to g.
// Returns ErrInvalidArgument for a nil or empty graph.
func NewWelshPowell(g *core.Graph, opts ...Option) (*WelshPowell, error) {
	if err := checkGraph(g); err != nil {
		return nil, fmt.Errorf("NewWelshPowell: %w", err)
	}
	gr, err := NewGreedy(g, OrderDegree, opts...)
	if err != nil {
		return nil, fmt.Errorf("NewWelshPowell: %w", err)
	}

	return &WelshPowell{Greedy: gr}, nil
}

// Name returns "welsh-powell".
func (wp *WelshPowell) Name() string { return nameWelshPowell }

// Color runs first-fit in descending-degree order.
func (wp *WelshPowell) Color() (Coloring, error) {
	return wp.color(nameWelshPowell)
}
