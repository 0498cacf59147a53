package coloring

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/chromatic/core"
)

// ViolationKind classifies a Violation.
type ViolationKind int

const (
	// Uncolored: a node of the graph has no entry in the Coloring.
	Uncolored ViolationKind = iota + 1
	// Conflict: both endpoints of an edge carry the same color.
	Conflict
	// NonPositive: a node's color is below 1.
	NonPositive
)

// String returns a lowercase name for k.
func (k ViolationKind) String() string {
	switch k {
	case Uncolored:
		return "uncolored"
	case Conflict:
		return "conflict"
	case NonPositive:
		return "non-positive"
	default:
		return fmt.Sprintf("ViolationKind(%d)", int(k))
	}
}

// Violation describes one reason a Coloring is not proper.
// For Uncolored only Node is set; for NonPositive, Color is the offending
// value; for Conflict, Node < Other and Color is shared.
type Violation struct {
	Kind  ViolationKind
	Node  string
	Other string
	Color int
}

func (v *Violation) Error() string {
	switch v.Kind {
	case Conflict:
		return fmt.Sprintf("adjacent nodes %q and %q both have color %d", v.Node, v.Other, v.Color)
	case NonPositive:
		return fmt.Sprintf("node %q has non-positive color %d", v.Node, v.Color)
	default:
		return fmt.Sprintf("node %q has no color assigned", v.Node)
	}
}

// Violations lists every problem with c on g: per-node problems first, in ID
// order (a missing or non-positive color), then conflicting edges in Edges()
// order. A nil graph yields nil.
// Complexity: O(V log V + E log E).
func Violations(g *core.Graph, c Coloring) []Violation {
	if g == nil {
		return nil
	}
	var out []Violation
	for _, id := range g.NodeIDs() {
		col, ok := c[id]
		switch {
		case !ok:
			out = append(out, Violation{Kind: Uncolored, Node: id})
		case col < 1:
			out = append(out, Violation{Kind: NonPositive, Node: id, Color: col})
		}
	}
	for _, e := range g.Edges() {
		cu, okU := c[e.U]
		cv, okV := c[e.V]
		if okU && okV && cu == cv {
			out = append(out, Violation{Kind: Conflict, Node: e.U, Other: e.V, Color: cu})
		}
	}

	return out
}

// Validate returns nil iff every node of g has a positive color and no edge
// joins two nodes of the same color. Otherwise it returns ErrInvalidColoring joined with
// one *Violation per problem, so callers can use errors.Is and errors.As.
func Validate(g *core.Graph, c Coloring) error {
	if g == nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, core.ErrNilGraph)
	}
	vs := Violations(g, c)
	if len(vs) == 0 {
		return nil
	}
	errs := make([]error, 0, len(vs)+1)
	errs = append(errs, ErrInvalidColoring)
	for i := range vs {
		errs = append(errs, &vs[i])
	}

	return errors.Join(errs...)
}

// IsValid is the boolean form of Validate.
func IsValid(g *core.Graph, c Coloring) bool {
	return Validate(g, c) == nil
}
