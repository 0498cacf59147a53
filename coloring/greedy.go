package coloring

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/chromatic/core"
)

// Greedy colors nodes first-fit in a fixed Order: each node takes the
// smallest positive color not used by its already-colored neighbors.
// The result is proper and uses at most Δ(G)+1 colors, but need not be optimal.
type Greedy struct {
	result
	order Order
}

// NewGreedy binds a first-fit coloring with the given order to g.
// Returns ErrInvalidArgument for a nil or empty graph or an unknown order.
func NewGreedy(g *core.Graph, order Order, opts ...Option) (*Greedy, error) {
	if err := checkGraph(g); err != nil {
		return nil, fmt.Errorf("NewGreedy: %w", err)
	}
	if !order.Valid() {
		return nil, fmt.Errorf("NewGreedy: %w: order %q", ErrInvalidArgument, order)
	}

	return &Greedy{result: result{graph: g, cfg: newConfig(opts...)}, order: order}, nil
}

// Name returns "greedy-natural" or "greedy-degree".
func (gr *Greedy) Name() string { return "greedy-" + string(gr.order) }

// Order returns the configured processing order.
func (gr *Greedy) Order() Order { return gr.order }

// Color runs first-fit over the bound graph.
func (gr *Greedy) Color() (Coloring, error) {
	return gr.color(gr.Name())
}

// color is shared with WelshPowell so logs and errors carry the caller's name.
func (gr *Greedy) color(name string) (Coloring, error) {
	start := gr.cfg.now()

	s, err := newSnapshot(gr.graph)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	seq := s.order(gr.order)
	gr.cfg.logger.Debug("greedy: processing order resolved", "algorithm", name, "order", string(gr.order), "nodes", len(seq))

	colors := make([]int, len(s.ids)) // 0 = not yet colored
	forbidden := make(map[int]struct{})
	for _, v := range seq {
		clear(forbidden)
		for _, nb := range s.adj[v] {
			if colors[nb] > 0 {
				forbidden[colors[nb]] = struct{}{}
			}
		}
		colors[v] = FirstAvailableColor(forbidden)
	}

	return gr.finish(name, s.toColoring(colors, 0), start)
}

// FirstAvailableColor returns the smallest positive integer not in forbidden.
// The scan is linear from 1; first-fit never needs more than Δ+1 steps.
func FirstAvailableColor(forbidden map[int]struct{}) int {
	col := 1
	for {
		if _, used := forbidden[col]; !used {
			return col
		}
		col++
	}
}

// SortNodes returns the node IDs of g in the processing order of o:
// OrderNatural is ID ascending; OrderDegree is degree descending, ties by ID.
func SortNodes(g *core.Graph, o Order) ([]string, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, core.ErrNilGraph)
	}
	if !o.Valid() {
		return nil, fmt.Errorf("%w: order %q", ErrInvalidArgument, o)
	}
	s, err := newSnapshot(g)
	if err != nil {
		return nil, err
	}
	seq := s.order(o)
	ids := make([]string, len(seq))
	for i, h := range seq {
		ids[i] = s.ids[h]
	}

	return ids, nil
}

// order returns node handles in the processing order of o.
// Handles already follow ID order, so the natural order is the identity and
// the degree order only needs a stable sort by degree.
func (s *snapshot) order(o Order) []int {
	seq := make([]int, len(s.ids))
	for i := range seq {
		seq[i] = i
	}
	if o == OrderDegree {
		sort.SliceStable(seq, func(a, b int) bool {
			return s.degree(seq[a]) > s.degree(seq[b])
		})
	}

	return seq
}
