package informed

import (
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/search"
)

// idaWalker runs one threshold round.
type idaWalker struct {
	graph *core.Graph
	heur  core.Heuristic
	tree  *search.Tree
	col   *search.Collector
	goal  string
	bound int64
	found search.Handle
}

// visit returns the smallest f that exceeded the bound below h, or infinity
// when the subtree holds no such node. w.found is set when the goal is
// reached; the return value is then meaningless.
func (w *idaWalker) visit(h search.Handle) int64 {
	node := w.tree.Node(h)
	f := node.PathCost + w.heur.Estimate(node.State)
	if f > w.bound {
		return f
	}

	w.col.Expanded(node.State)
	if node.State == w.goal {
		w.found = h
		return f
	}

	w.col.CountExpansion()
	next := infinity
	for _, child := range search.Expand(w.graph, w.tree, h) {
		s := w.tree.Node(child).State
		w.col.Generated(s)
		if w.tree.OnPath(h, s) {
			continue
		}

		t := w.visit(child)
		if w.found != search.NoHandle {
			return t
		}
		next = min(next, t)
	}

	return next
}

// IDAStar runs depth-first rounds bounded by f = g + h. The first bound is
// h(start); each later round uses the smallest f that exceeded the previous
// bound. The search stops at the goal or when no node exceeded the bound,
// which means the goal is unreachable. States already on the current path
// are not revisited.
//
// report.Iterations counts rounds and report.Threshold holds the bound of
// the last one. Counters and logs accumulate across rounds; report.Tree is
// the tree of the last round.
func IDAStar(g *core.Graph, h core.Heuristic, start, goal string, opts ...search.Option) (*search.Report, error) {
	o, err := prepare(g, h, start, goal, opts)
	if err != nil {
		return nil, err
	}

	r := search.NewReport(NameIDAStar, start, goal)
	c := o.Begin(r)
	defer o.End(c, r)

	bound := h.Estimate(start)
	for {
		r.Tree = search.NewTree()
		r.Iterations++
		r.Threshold = bound

		span := c.Meter().Start()
		w := &idaWalker{graph: g, heur: h, tree: r.Tree, col: c, goal: goal, bound: bound, found: search.NoHandle}
		next := w.visit(r.Tree.Root(start))
		c.ObservePeak(span.Stop().PeakMemory)

		if w.found != search.NoHandle {
			r.GoalNode = w.found
			return r, nil
		}
		if next == infinity {
			return r, nil
		}
		bound = next
	}
}
