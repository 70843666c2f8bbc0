package search

import "github.com/katalvlaran/lvsearch/metrics"

// Collector accumulates the metrics of one search invocation.
//
// Usage:
//
//	c := NewCollector(meter)
//	c.Begin()
//	defer c.Finish(report)
type Collector struct {
	meter metrics.Meter
	span  metrics.Span

	peak      uint64
	expanded  []string
	generated []string
	nExpanded int
	nGenerate int
}

// NewCollector returns a Collector sampling with m; nil means metrics.Nop().
func NewCollector(m metrics.Meter) *Collector {
	if m == nil {
		m = metrics.Nop()
	}

	return &Collector{
		meter:     m,
		expanded:  make([]string, 0, 32),
		generated: make([]string, 0, 64),
	}
}

// Begin opens the measurement span.
func (c *Collector) Begin() {
	c.span = c.meter.Start()
}

// Meter returns the meter used by this collector, for nested spans.
func (c *Collector) Meter() metrics.Meter { return c.meter }

// Expanded appends state to the expansion log.
func (c *Collector) Expanded(state string) {
	c.expanded = append(c.expanded, state)
}

// CountExpansion increments nodes_expanded.
func (c *Collector) CountExpansion() {
	c.nExpanded++
}

// Generated appends state to the generation log and increments nodes_generated.
func (c *Collector) Generated(state string) {
	c.generated = append(c.generated, state)
	c.nGenerate++
}

// ObservePeak folds a nested span's peak into the run's peak.
func (c *Collector) ObservePeak(bytes uint64) {
	c.peak = max(c.peak, bytes)
}

// Counts returns the current expanded and generated counters.
func (c *Collector) Counts() (expanded, generated int) {
	return c.nExpanded, c.nGenerate
}

// Finish stops the span and copies counters, logs and timing into r. When r
// has a goal node and no explicit path, the path and its cost are derived
// from the goal node. Finish must run on every exit path.
func (c *Collector) Finish(r *Report) {
	var s metrics.Sample
	if c.span != nil {
		s = c.span.Stop()
		c.span = nil
	}

	r.Elapsed = s.Elapsed
	r.PeakMemory = max(c.peak, s.PeakMemory)
	r.NodesExpanded = c.nExpanded
	r.NodesGenerated = c.nGenerate
	r.ExpandedList = c.expanded
	r.GeneratedList = c.generated

	if r.Found() {
		r.Outcome = Found
		if r.Path == nil {
			r.Path = ExtractPath(r.Tree, r.GoalNode)
			r.PathCost = r.Tree.Node(r.GoalNode).PathCost
		}
	}
}
