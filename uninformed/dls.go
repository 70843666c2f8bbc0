package uninformed

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/search"
)

// dlsWalker holds the mutable state of one depth-limited round.
type dlsWalker struct {
	graph   *core.Graph
	tree    *search.Tree
	col     *search.Collector
	goal    string
	limit   int
	visited map[string]bool // states on the current branch
	found   search.Handle
}

func newDLSWalker(g *core.Graph, t *search.Tree, c *search.Collector, start, goal string, limit int) *dlsWalker {
	return &dlsWalker{
		graph:   g,
		tree:    t,
		col:     c,
		goal:    goal,
		limit:   limit,
		visited: map[string]bool{start: true},
		found:   search.NoHandle,
	}
}

// visit tests h against the goal, then, below the bound, recurses into every
// child whose state is not on the current branch. A child's state is added
// to visited before the recursive call and removed right after it, on every
// return path.
func (w *dlsWalker) visit(h search.Handle) search.Outcome {
	node := w.tree.Node(h)
	w.col.Expanded(node.State)

	if node.State == w.goal {
		w.found = h
		return search.Found
	}
	if node.Depth >= w.limit {
		return search.Cutoff
	}

	w.col.CountExpansion()
	cutoff := false
	for _, child := range search.Expand(w.graph, w.tree, h) {
		s := w.tree.Node(child).State
		w.col.Generated(s)
		if w.visited[s] {
			continue
		}

		w.visited[s] = true
		res := w.visit(child)
		delete(w.visited, s)

		switch res {
		case search.Found:
			return search.Found
		case search.Cutoff:
			cutoff = true
		}
	}
	if cutoff {
		return search.Cutoff
	}

	return search.Fail
}

// DepthLimited runs a recursive depth-first search that does not expand
// nodes at depth limit. The goal test runs on visit, before the bound check,
// so limit 0 tests only the root. report.Outcome is FOUND, CUTOFF (the bound
// stopped at least one branch) or FAIL (the reachable space was exhausted).
func DepthLimited(g *core.Graph, start, goal string, limit int, opts ...search.Option) (*search.Report, error) {
	if limit < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeLimit, limit)
	}
	o, err := search.Prepare(g, start, goal, opts)
	if err != nil {
		return nil, err
	}

	r := search.NewReport(NameDepthLimited, start, goal)
	r.Limit = limit
	c := o.Begin(r)
	defer o.End(c, r)

	w := newDLSWalker(g, r.Tree, c, start, goal, limit)
	r.Outcome = w.visit(r.Tree.Root(start))
	r.GoalNode = w.found

	return r, nil
}

// IterativeDeepening runs DepthLimited rounds for limit = 0, 1, …, maxLimit
// and stops at the first FOUND. Counters and logs accumulate across rounds;
// the peak memory is the largest seen by any round or by the whole run.
// report.FoundLimit is the successful bound, which equals the depth of the
// returned path, or search.NoLimit when every round failed. report.Tree is
// the tree of the last round.
func IterativeDeepening(g *core.Graph, start, goal string, maxLimit int, opts ...search.Option) (*search.Report, error) {
	if maxLimit < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeLimit, maxLimit)
	}
	o, err := search.Prepare(g, start, goal, opts)
	if err != nil {
		return nil, err
	}

	r := search.NewReport(NameIterativeDeepening, start, goal)
	r.Limit = maxLimit
	c := o.Begin(r)
	defer o.End(c, r)

	for limit := 0; limit <= maxLimit; limit++ {
		r.Tree = search.NewTree()
		r.Iterations++

		span := c.Meter().Start()
		w := newDLSWalker(g, r.Tree, c, start, goal, limit)
		outcome := w.visit(r.Tree.Root(start))
		c.ObservePeak(span.Stop().PeakMemory)

		r.Outcome = outcome
		if outcome == search.Found {
			r.GoalNode = w.found
			r.FoundLimit = limit
			break
		}
	}

	return r, nil
}
