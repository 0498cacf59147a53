package coloring

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"
)

// Sentinel errors for coloring.
var (
	// ErrInvalidArgument is returned for a nil or empty graph and for an
	// unrecognized Order.
	ErrInvalidArgument = errors.New("coloring: invalid argument")

	// ErrInvalidColoring is returned by Validate when an assignment leaves a
	// node uncolored or gives two adjacent nodes the same color.
	ErrInvalidColoring = errors.New("coloring: invalid coloring")

	// ErrNoColoring is returned when no proper coloring was produced.
	ErrNoColoring = errors.New("coloring: no coloring found")
)

// Coloring maps node ID → color. Colors are positive (1-indexed).
type Coloring map[string]int

// NumColors returns the number of distinct colors used.
func (c Coloring) NumColors() int {
	seen := make(map[int]struct{}, len(c))
	for _, col := range c {
		seen[col] = struct{}{}
	}

	return len(seen)
}

// MaxColor returns the largest color used, or 0 for an empty Coloring.
func (c Coloring) MaxColor() int {
	maxCol := 0
	for _, col := range c {
		if col > maxCol {
			maxCol = col
		}
	}

	return maxCol
}

// ColorClasses groups node IDs by color. Each class is sorted ascending.
func (c Coloring) ColorClasses() map[int][]string {
	classes := make(map[int][]string)
	for id, col := range c {
		classes[col] = append(classes[col], id)
	}
	for _, ids := range classes {
		sort.Strings(ids)
	}

	return classes
}

// Clone returns an independent copy; nil stays nil.
func (c Coloring) Clone() Coloring {
	if c == nil {
		return nil
	}
	out := make(Coloring, len(c))
	for id, col := range c {
		out[id] = col
	}

	return out
}

// Order selects the node processing order of Greedy.
type Order string

const (
	// OrderNatural processes nodes by ID ascending.
	OrderNatural Order = "natural"

	// OrderDegree processes nodes by degree descending, ties by ID ascending.
	OrderDegree Order = "degree"
)

// Valid reports whether o is a recognized Order.
func (o Order) Valid() bool {
	return o == OrderNatural || o == OrderDegree
}

// ParseOrder converts a strategy name into an Order.
func ParseOrder(s string) (Order, error) {
	o := Order(s)
	if !o.Valid() {
		return "", fmt.Errorf("%w: order %q (want %q or %q)", ErrInvalidArgument, s, OrderNatural, OrderDegree)
	}

	return o, nil
}

// Option configures an algorithm instance via functional arguments.
type Option func(*config)

// config holds the resolved options of an algorithm instance.
type config struct {
	logger *slog.Logger
	now    func() time.Time
}

// defaultConfig returns a config with a discarding logger and the wall clock.
func defaultConfig() config {
	return config{
		logger: slog.New(slog.DiscardHandler),
		now:    time.Now,
	}
}

// newConfig applies opts in order over the defaults.
func newConfig(opts ...Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLogger routes the algorithm's debug records to l. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithClock replaces the clock used to measure Elapsed. Nil is ignored.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		if now != nil {
			c.now = now
		}
	}
}
