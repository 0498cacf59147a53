package compare

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/chromatic/coloring"
	"github.com/katalvlaran/chromatic/core"
)

// DefaultExhaustiveLimit is the largest node count the exhaustive search is
// run on when Runner.ExhaustiveLimit is not positive.
const DefaultExhaustiveLimit = 10

var (
	// ErrNoGraph is returned for a Case whose Graph is nil or has no nodes.
	ErrNoGraph = errors.New("compare: case has no graph")

	// ErrKnownMismatch is returned when the exhaustive search disagrees with
	// the chromatic number recorded on the Case.
	ErrKnownMismatch = errors.New("compare: exhaustive result disagrees with known chromatic number")
)

// Case is a named input graph. Known is its chromatic number, 0 if unknown.
type Case struct {
	Name  string
	Graph *core.Graph
	Known int
}

// Result is one algorithm's outcome on one Case.
type Result struct {
	Algorithm string        `yaml:"algorithm"`
	Colors    int           `yaml:"colors"`
	Elapsed   time.Duration `yaml:"elapsed"`
	Valid     bool          `yaml:"valid"`
	Optimal   bool          `yaml:"optimal"`
	Skipped   string        `yaml:"skipped,omitempty"`
}

// Report collects all Results for a Case.
// Family and N are set only for reports produced by a size sweep.
type Report struct {
	Case      string   `yaml:"case"`
	Family    string   `yaml:"family,omitempty"`
	N         int      `yaml:"n,omitempty"`
	Nodes     int      `yaml:"nodes"`
	Edges     int      `yaml:"edges"`
	MaxDegree int      `yaml:"max_degree"`
	Chromatic int      `yaml:"chromatic,omitempty"`
	Results   []Result `yaml:"results"`
}

// Runner executes the comparison. The zero value is ready to use.
type Runner struct {
	// ExhaustiveLimit caps the node count for the exhaustive search.
	// Non-positive means DefaultExhaustiveLimit.
	ExhaustiveLimit int
	// Logger receives Debug events from the runner and the algorithms.
	// Nil discards them.
	Logger *slog.Logger
	// Clock overrides time.Now for elapsed measurements.
	Clock func() time.Time
}

func (r Runner) limit() int {
	if r.ExhaustiveLimit <= 0 {
		return DefaultExhaustiveLimit
	}

	return r.ExhaustiveLimit
}

func (r Runner) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}

	return r.Logger
}

// Run colors c.Graph with every algorithm and returns the Report.
func (r Runner) Run(c Case) (Report, error) {
	if c.Graph == nil || c.Graph.NodeCount() == 0 {
		return Report{}, fmt.Errorf("%s: %w", c.Name, ErrNoGraph)
	}
	log := r.logger().With("case", c.Name)
	opts := []coloring.Option{coloring.WithLogger(log), coloring.WithClock(r.Clock)}

	rep := Report{
		Case:      c.Name,
		Nodes:     c.Graph.NodeCount(),
		Edges:     c.Graph.EdgeCount(),
		MaxDegree: c.Graph.MaxDegree(),
		Chromatic: c.Known,
	}

	exhaustive := Result{Algorithm: "exhaustive"}
	if rep.Nodes > r.limit() {
		exhaustive.Skipped = fmt.Sprintf("nodes %d > limit %d", rep.Nodes, r.limit())
		log.Debug("compare: exhaustive skipped", "nodes", rep.Nodes, "limit", r.limit())
	} else {
		ex, err := coloring.NewExhaustive(c.Graph, opts...)
		if err != nil {
			return Report{}, fmt.Errorf("%s: %w", c.Name, err)
		}
		if err = run(ex, &exhaustive); err != nil {
			return Report{}, fmt.Errorf("%s: %w", c.Name, err)
		}
		if c.Known > 0 && c.Known != exhaustive.Colors {
			return Report{}, fmt.Errorf("%s: %w: exhaustive=%d known=%d",
				c.Name, ErrKnownMismatch, exhaustive.Colors, c.Known)
		}
		rep.Chromatic = exhaustive.Colors
	}

	gr, err := coloring.NewGreedy(c.Graph, coloring.OrderNatural, opts...)
	if err != nil {
		return Report{}, fmt.Errorf("%s: %w", c.Name, err)
	}
	wp, err := coloring.NewWelshPowell(c.Graph, opts...)
	if err != nil {
		return Report{}, fmt.Errorf("%s: %w", c.Name, err)
	}

	rep.Results = append(rep.Results, exhaustive)
	for _, alg := range []coloring.Colorer{gr, wp} {
		res := Result{Algorithm: alg.Name()}
		if err = run(alg, &res); err != nil {
			return Report{}, fmt.Errorf("%s: %w", c.Name, err)
		}
		rep.Results = append(rep.Results, res)
	}

	for i := range rep.Results {
		res := &rep.Results[i]
		res.Optimal = res.Skipped == "" && rep.Chromatic > 0 && res.Colors == rep.Chromatic
		log.Debug("compare: result",
			"algorithm", res.Algorithm,
			"colors", res.Colors,
			"optimal", res.Optimal,
			"elapsed", res.Elapsed)
	}

	return rep, nil
}

// RunAll runs every case in order and stops at the first error.
func (r Runner) RunAll(cases []Case) ([]Report, error) {
	reports := make([]Report, 0, len(cases))
	for _, c := range cases {
		rep, err := r.Run(c)
		if err != nil {
			return reports, err
		}
		reports = append(reports, rep)
	}

	return reports, nil
}

func run(alg coloring.Colorer, res *Result) error {
	if _, err := alg.Color(); err != nil {
		return err
	}
	res.Colors = alg.NumColors()
	res.Elapsed = alg.Elapsed()
	res.Valid = alg.IsValid()

	return nil
}
