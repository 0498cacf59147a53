package compare

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/chromatic/builder"
)

// ErrInvalidSweep is returned for a sweep without a constructor or sizes.
var ErrInvalidSweep = errors.New("compare: invalid sweep")

// Family is a graph family parameterised by a single size n.
type Family struct {
	Name  string
	Build func(n int) builder.Constructor
	Sizes []int
}

// DefaultFamilies is the size sweep run by colorbench -sweep. Complete
// graphs stop at n=7: the exhaustive search tries every k^n assignment up
// to k=n, and K8 already costs tens of millions of candidates.
func DefaultFamilies() []Family {
	return []Family{
		{"cycle", builder.Cycle, sizes(3, 10)},
		{"complete", builder.Complete, sizes(1, 7)},
		{"star", builder.Star, sizes(2, 10)},
		{"path", builder.Path, sizes(2, 10)},
		{"bipartite K(n,n)", func(n int) builder.Constructor { return builder.CompleteBipartite(n, n) }, sizes(1, 10)},
		{"wheel (rim n)", func(n int) builder.Constructor { return builder.Wheel(n + 1) }, sizes(3, 10)},
		{"grid n×n", func(n int) builder.Constructor { return builder.Grid(n, n) }, sizes(2, 5)},
		{"crown", builder.Crown, sizes(2, 5)},
	}
}

// sizes returns lo..hi inclusive.
func sizes(lo, hi int) []int {
	out := make([]int, 0, hi-lo+1)
	for n := lo; n <= hi; n++ {
		out = append(out, n)
	}

	return out
}

// Sweep builds con(n) for every n in ns, in order, and runs the comparison on
// each graph. Reports carry family and n; the chromatic number is known only
// where the exhaustive search ran.
func (r Runner) Sweep(family string, con func(n int) builder.Constructor, ns []int) ([]Report, error) {
	if con == nil || len(ns) == 0 {
		return nil, fmt.Errorf("%s: %w: need a constructor and at least one size", family, ErrInvalidSweep)
	}

	reports := make([]Report, 0, len(ns))
	for _, n := range ns {
		g, err := builder.Build(con(n))
		if err != nil {
			return reports, fmt.Errorf("%s n=%d: %w", family, n, err)
		}
		rep, err := r.Run(Case{Name: fmt.Sprintf("%s/n=%d", family, n), Graph: g})
		if err != nil {
			return reports, err
		}
		rep.Family, rep.N = family, n
		reports = append(reports, rep)
	}

	return reports, nil
}

// SweepAll runs Sweep for every family and concatenates the reports.
func (r Runner) SweepAll(families []Family) ([]Report, error) {
	var reports []Report
	for _, f := range families {
		reps, err := r.Sweep(f.Name, f.Build, f.Sizes)
		reports = append(reports, reps...)
		if err != nil {
			return reports, err
		}
	}

	return reports, nil
}
