package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/search"
	"github.com/katalvlaran/lvsearch/strategy"
)

// View is the JSON shape of a report: the report fields plus its cost
// expression.
type View struct {
	*search.Report
	Title          string `json:"title"`
	CostExpression string `json:"cost_expression,omitempty"`
}

// NewView wraps r for rendering.
func NewView(g *core.Graph, r *search.Report) View {
	expr, _ := search.PathCostExpression(g, r.Path)

	return View{Report: r, Title: strategy.Title(r.Strategy), CostExpression: expr}
}

// WriteText prints r as a log block:
//
//	=== A* ===
//	Path: [Arad Sibiu Rimnicu Pitesti Bucharest]
//	Path Cost = 140 + 80 + 97 + 101 = 418
//	...metrics
func WriteText(w io.Writer, g *core.Graph, r *search.Report) error {
	v := NewView(g, r)
	ew := &errWriter{w: w}

	ew.printf("\n=== %s ===\n", v.Title)
	if r.Found() {
		ew.printf("Path: %v\n", r.Path)
		if v.CostExpression != "" {
			ew.printf("%s\n", v.CostExpression)
		}
	} else {
		ew.printf("Path: none\n")
	}
	ew.printf("outcome: %s\n", r.Outcome)
	ew.printf("time: %s\n", r.Elapsed)
	ew.printf("memory: %d bytes\n", r.PeakMemory)
	ew.printf("nodes_expanded: %d\n", r.NodesExpanded)
	ew.printf("nodes_generated: %d\n", r.NodesGenerated)
	switch r.Strategy {
	case "dls":
		ew.printf("limit: %d\n", r.Limit)
	case "ids":
		ew.printf("max_limit: %d\n", r.Limit)
		if r.FoundLimit != search.NoLimit {
			ew.printf("found_limit: %d\n", r.FoundLimit)
		}
		ew.printf("iterations: %d\n", r.Iterations)
	case "idastar":
		ew.printf("iterations: %d\n", r.Iterations)
		ew.printf("threshold: %d\n", r.Threshold)
	}
	ew.printf("expanded_list: %v\n", r.ExpandedList)
	ew.printf("generated_list: %v\n", r.GeneratedList)

	return ew.err
}

// WriteTable prints one row per report for side-by-side comparison.
func WriteTable(w io.Writer, reports []*search.Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	ew := &errWriter{w: tw}

	ew.printf("ALGORITHM\tOUTCOME\tCOST\tDEPTH\tEXPANDED\tGENERATED\tTIME\tMEMORY\n")
	for _, r := range reports {
		cost, depth := "-", "-"
		if r.Found() {
			cost = fmt.Sprint(r.PathCost)
			depth = fmt.Sprint(len(r.Path) - 1)
		}
		ew.printf("%s\t%s\t%s\t%s\t%d\t%d\t%s\t%d\n",
			strategy.Title(r.Strategy), r.Outcome, cost, depth,
			r.NodesExpanded, r.NodesGenerated, r.Elapsed, r.PeakMemory)
	}
	if ew.err != nil {
		return ew.err
	}

	return tw.Flush()
}

// errWriter keeps the first write error.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
