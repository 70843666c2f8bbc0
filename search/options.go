package search

import (
	"log/slog"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/metrics"
)

// Option configures a strategy invocation via functional arguments.
type Option func(*Options)

// Options holds the collaborators injected into every strategy.
type Options struct {
	// Meter samples time and memory around the search body.
	Meter metrics.Meter

	// Logger receives Debug records at start and finish.
	Logger *slog.Logger
}

// DefaultOptions returns Options with:
//   - metrics.Runtime() sampling
//   - slog.Default() logging
func DefaultOptions() Options {
	return Options{
		Meter:  metrics.Runtime(),
		Logger: slog.Default(),
	}
}

// WithMeter replaces the meter; nil is ignored.
func WithMeter(m metrics.Meter) Option {
	return func(o *Options) {
		if m != nil {
			o.Meter = m
		}
	}
}

// WithLogger replaces the logger; nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Prepare validates g, start and goal and resolves opts. Strategies call it
// first; an error here means the caller skipped its own validation.
func Prepare(g *core.Graph, start, goal string, opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := Validate(g, start, goal); err != nil {
		return o, err
	}

	return o, nil
}

// Begin logs the start of a run and opens its collector.
func (o Options) Begin(r *Report) *Collector {
	o.Logger.Debug("search started", "strategy", r.Strategy, "start", r.Start, "goal", r.Goal)
	c := NewCollector(o.Meter)
	c.Begin()

	return c
}

// End finishes the collector into r and logs the summary.
func (o Options) End(c *Collector, r *Report) {
	c.Finish(r)
	o.Logger.Debug("search finished",
		"strategy", r.Strategy,
		"outcome", r.Outcome.String(),
		"path_cost", r.PathCost,
		"nodes_expanded", r.NodesExpanded,
		"nodes_generated", r.NodesGenerated,
		"elapsed", r.Elapsed,
	)
}
