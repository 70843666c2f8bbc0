package informed

import (
	"slices"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/search"
)

// successor pairs a child with its backed-up f-value.
type successor struct {
	handle search.Handle
	f      int64
}

type rbfsWalker struct {
	graph *core.Graph
	heur  core.Heuristic
	tree  *search.Tree
	col   *search.Collector
	goal  string
}

// visit explores h, whose current f-value is f, without exceeding limit. It
// returns the goal handle (or NoHandle) and the backed-up f-value of h: the
// best f among its successors when the limit was exceeded.
func (w *rbfsWalker) visit(h search.Handle, f, limit int64) (search.Handle, int64) {
	node := w.tree.Node(h)
	w.col.Expanded(node.State)
	if node.State == w.goal {
		return h, f
	}

	w.col.CountExpansion()
	var succ []successor
	for _, child := range search.Expand(w.graph, w.tree, h) {
		cn := w.tree.Node(child)
		w.col.Generated(cn.State)
		if w.tree.OnPath(h, cn.State) {
			continue
		}
		succ = append(succ, successor{
			handle: child,
			f:      max(cn.PathCost+w.heur.Estimate(cn.State), f),
		})
	}
	if len(succ) == 0 {
		return search.NoHandle, infinity
	}

	for {
		slices.SortStableFunc(succ, func(a, b successor) int {
			switch {
			case a.f < b.f:
				return -1
			case a.f > b.f:
				return 1
			}
			return 0
		})

		best := &succ[0]
		if best.f > limit || best.f == infinity {
			return search.NoHandle, best.f
		}
		alternative := infinity
		if len(succ) > 1 {
			alternative = succ[1].f
		}

		var found search.Handle
		found, best.f = w.visit(best.handle, best.f, min(limit, alternative))
		if found != search.NoHandle {
			return found, best.f
		}
	}
}

// RBFS is recursive best-first search. It descends into the successor with
// the lowest f = max(g+h, parent f) while that value stays under the f of
// the best alternative anywhere above. When a subtree exceeds its limit,
// the subtree's best f is backed up into its root so the search can return
// to it later. States already on the current path are not revisited.
//
// Memory is linear in the depth of the search; subtrees may be expanded
// several times, and every expansion is counted.
func RBFS(g *core.Graph, h core.Heuristic, start, goal string, opts ...search.Option) (*search.Report, error) {
	o, err := prepare(g, h, start, goal, opts)
	if err != nil {
		return nil, err
	}

	r := search.NewReport(NameRBFS, start, goal)
	c := o.Begin(r)
	defer o.End(c, r)

	w := &rbfsWalker{graph: g, heur: h, tree: r.Tree, col: c, goal: goal}
	r.GoalNode, _ = w.visit(r.Tree.Root(start), h.Estimate(start), infinity)

	return r, nil
}
