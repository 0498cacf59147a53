package coloring

import (
	"fmt"

	"github.com/katalvlaran/chromatic/core"
)

const nameExhaustive = "exhaustive"

// Exhaustive finds a minimum coloring by trying k = 1, 2, … colors and
// enumerating all k^n assignments for each k.
//
// Enumeration is an odometer over the nodes in ID order: the first node is
// the most significant digit, so assignments appear in lexicographic order of
// the cartesian product {0..k-1}^n and the first proper one found is always
// the same for a given graph. There is no pruning; the cost is the point.
type Exhaustive struct {
	result
	attempts uint64
}

// NewExhaustive binds an exhaustive search to g.
// Returns ErrInvalidArgument for a nil or empty graph.
func NewExhaustive(g *core.Graph, opts ...Option) (*Exhaustive, error) {
	if err := checkGraph(g); err != nil {
		return nil, fmt.Errorf("NewExhaustive: %w", err)
	}

	return &Exhaustive{result: result{graph: g, cfg: newConfig(opts...)}}, nil
}

// Name returns "exhaustive".
func (e *Exhaustive) Name() string { return nameExhaustive }

// Color runs the search. The result uses exactly χ(G) colors, numbered 1..χ.
// k = |V| always succeeds (all colors distinct), so ErrNoColoring signals a
// broken graph invariant rather than a hard instance.
func (e *Exhaustive) Color() (Coloring, error) {
	start := e.cfg.now()
	e.attempts = 0

	s, err := newSnapshot(e.graph)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", nameExhaustive, err)
	}
	n := len(s.ids)
	digits := make([]int, n)

	for k := 1; k <= n; k++ {
		e.cfg.logger.Debug("exhaustive: trying color count", "k", k, "nodes", n)
		tried, ok := firstProper(s, digits, k)
		e.attempts += tried
		if ok {
			e.cfg.logger.Debug("exhaustive: proper coloring found", "k", k, "attempts", e.attempts)
			return e.finish(nameExhaustive, s.toColoring(digits, 1), start)
		}
	}

	e.coloring = nil
	e.elapsed = e.cfg.now().Sub(start)

	return nil, fmt.Errorf("%s: %w after %d attempts", nameExhaustive, ErrNoColoring, e.attempts)
}

// ChromaticNumber returns χ(G) as found by the last Color call
// (the largest color used), or 0 before the first call.
func (e *Exhaustive) ChromaticNumber() int { return e.coloring.MaxColor() }

// Attempts returns how many complete assignments the last Color call tested.
func (e *Exhaustive) Attempts() uint64 { return e.attempts }

// firstProper enumerates {0..k-1}^n in lexicographic order, leaving the first
// proper assignment in digits. It returns the number of assignments tested.
func firstProper(s *snapshot, digits []int, k int) (uint64, bool) {
	for i := range digits {
		digits[i] = 0
	}

	var tried uint64
	for {
		tried++
		if proper(s, digits) {
			return tried, true
		}
		// Advance the odometer; the last node is the least significant digit.
		i := len(digits) - 1
		for ; i >= 0; i-- {
			digits[i]++
			if digits[i] < k {
				break
			}
			digits[i] = 0
		}
		if i < 0 {
			return tried, false
		}
	}
}

// proper reports whether no edge joins two equal digits.
func proper(s *snapshot, digits []int) bool {
	for _, e := range s.edges {
		if digits[e[0]] == digits[e[1]] {
			return false
		}
	}

	return true
}
