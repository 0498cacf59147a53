package compare

import (
	"fmt"

	"github.com/katalvlaran/chromatic/builder"
)

type canonical struct {
	name  string
	con   builder.Constructor
	known int
}

var canonicalCases = []canonical{
	{"C5", builder.Cycle(5), 3},
	{"C6", builder.Cycle(6), 2},
	{"K5", builder.Complete(5), 5},
	{"Star(7)", builder.Star(7), 2},
	{"K4,4", builder.CompleteBipartite(4, 4), 2},
	{"Petersen", builder.Petersen(), 3},
	{"Crown(4)", builder.Crown(4), 2},
	{"C15", builder.Cycle(15), 3},
	{"K12", builder.Complete(12), 12},
}

// Canonical builds the standard comparison set. Every case carries its
// known chromatic number.
func Canonical() ([]Case, error) {
	cases := make([]Case, 0, len(canonicalCases))
	for _, cc := range canonicalCases {
		g, err := builder.Build(cc.con)
		if err != nil {
			return nil, fmt.Errorf("Canonical: %s: %w", cc.name, err)
		}
		cases = append(cases, Case{Name: cc.name, Graph: g, Known: cc.known})
	}

	return cases, nil
}
