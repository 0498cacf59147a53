package coloring

import (
	"fmt"
	"time"

	"github.com/katalvlaran/chromatic/core"
)

// Colorer is the surface shared by every coloring algorithm.
//
// Color computes a fresh Coloring and replaces the instance's previous
// result; the accessors report on that last result.
type Colorer interface {
	// Name identifies the algorithm in reports and logs.
	Name() string
	// Color runs the algorithm on the bound graph.
	Color() (Coloring, error)
	// Coloring returns a copy of the last result (nil before Color).
	Coloring() Coloring
	// NumColors returns the number of distinct colors in the last result.
	NumColors() int
	// ColorClasses groups the last result by color.
	ColorClasses() map[int][]string
	// IsValid re-checks the last result against the graph.
	IsValid() bool
	// Elapsed is the duration of the last Color call.
	Elapsed() time.Duration
}

// Compile-time checks.
var (
	_ Colorer = (*Exhaustive)(nil)
	_ Colorer = (*Greedy)(nil)
	_ Colorer = (*WelshPowell)(nil)
)

// result holds the graph binding and last outcome shared by all algorithms.
type result struct {
	graph    *core.Graph
	cfg      config
	coloring Coloring
	elapsed  time.Duration
}

// checkGraph rejects nil and empty graphs.
func checkGraph(g *core.Graph) error {
	if g == nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, core.ErrNilGraph)
	}
	if g.NodeCount() == 0 {
		return fmt.Errorf("%w: graph has no nodes", ErrInvalidArgument)
	}

	return nil
}

// Coloring returns a copy of the last result, or nil before the first Color.
func (r *result) Coloring() Coloring { return r.coloring.Clone() }

// NumColors returns the number of distinct colors in the last result.
func (r *result) NumColors() int { return r.coloring.NumColors() }

// ColorClasses maps each color of the last result to its sorted node IDs.
func (r *result) ColorClasses() map[int][]string { return r.coloring.ColorClasses() }

// IsValid re-verifies the last result independently of how it was built.
// It is false before the first Color.
func (r *result) IsValid() bool {
	if r.coloring == nil {
		return false
	}

	return IsValid(r.graph, r.coloring)
}

// Elapsed returns the duration of the last Color call.
func (r *result) Elapsed() time.Duration { return r.elapsed }

// finish stores c with its timing after re-checking it against the graph.
func (r *result) finish(name string, c Coloring, start time.Time) (Coloring, error) {
	r.elapsed = r.cfg.now().Sub(start)
	if err := Validate(r.graph, c); err != nil {
		r.coloring = nil
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	r.coloring = c
	r.cfg.logger.Debug("coloring complete",
		"algorithm", name,
		"nodes", r.graph.NodeCount(),
		"colors", c.NumColors(),
		"elapsed", r.elapsed)

	return c.Clone(), nil
}

// snapshot is a handle-indexed, read-only copy of the graph's adjacency:
// ids[i] is the i-th node in ID order and adj[i] lists the handles of its
// neighbors. Algorithms work on handles and translate back at the end.
type snapshot struct {
	ids   []string
	adj   [][]int
	edges [][2]int // i < j
}

// newSnapshot copies g into a snapshot.
// Complexity: O(V log V + E log E).
func newSnapshot(g *core.Graph) (*snapshot, error) {
	ids := g.NodeIDs()
	pos := make(map[string]int, len(ids))
	for i, id := range ids {
		pos[id] = i
	}

	s := &snapshot{ids: ids, adj: make([][]int, len(ids))}
	for i, id := range ids {
		nbrs, err := g.Neighbors(id)
		if err != nil {
			return nil, fmt.Errorf("snapshot: neighbors of %q: %w", id, err)
		}
		s.adj[i] = make([]int, len(nbrs))
		for k, nb := range nbrs {
			j := pos[nb]
			s.adj[i][k] = j
			if i < j {
				s.edges = append(s.edges, [2]int{i, j})
			}
		}
	}

	return s, nil
}

// degree returns |N(i)|.
func (s *snapshot) degree(i int) int { return len(s.adj[i]) }

// toColoring maps per-handle colors onto node IDs, adding offset to each.
func (s *snapshot) toColoring(colors []int, offset int) Coloring {
	c := make(Coloring, len(colors))
	for i, col := range colors {
		c[s.ids[i]] = col + offset
	}

	return c
}
