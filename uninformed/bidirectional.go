package uninformed

import (
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/search"
)

// half is one direction of a bidirectional search.
type half struct {
	queue []search.Handle
	seen  map[string]search.Handle // state → first node reaching it from this side
}

// meeting records the two nodes standing for the shared state.
type meeting struct {
	forward  search.Handle
	backward search.Handle
}

type biWalker struct {
	graph *core.Graph
	tree  *search.Tree
	col   *search.Collector
}

// step dequeues one node of side and generates its children. It reports a
// meeting as soon as a newly seen child's state is already in other.seen.
func (w *biWalker) step(side, other *half, forward bool) (meeting, bool) {
	if len(side.queue) == 0 {
		return meeting{}, false
	}
	h := side.queue[0]
	side.queue = side.queue[1:]

	w.col.Expanded(w.tree.Node(h).State)
	w.col.CountExpansion()

	for _, child := range search.Expand(w.graph, w.tree, h) {
		s := w.tree.Node(child).State
		w.col.Generated(s)
		if _, ok := side.seen[s]; ok {
			continue
		}
		side.seen[s] = child
		side.queue = append(side.queue, child)

		if o, ok := other.seen[s]; ok {
			if forward {
				return meeting{forward: child, backward: o}, true
			}
			return meeting{forward: o, backward: child}, true
		}
	}

	return meeting{}, false
}

// Bidirectional runs two breadth-first searches, one from start and one from
// goal, advancing them alternately by one expansion each. The frontiers meet
// when a newly generated child's state has already been seen by the other
// direction.
//
// The path is the forward chain root→meeting state followed by the backward
// chain from the meeting node's parent to goal. Its cost is re-summed edge
// by edge over the full path, so the meeting edge is counted once. The
// stitched path is appended to report.Tree as a single chain, so
// search.ExtractPath on report.GoalNode returns the full path.
//
// start == goal returns the one-state path immediately with cost 0.
func Bidirectional(g *core.Graph, start, goal string, opts ...search.Option) (*search.Report, error) {
	o, err := search.Prepare(g, start, goal, opts)
	if err != nil {
		return nil, err
	}

	r := search.NewReport(NameBidirectional, start, goal)
	c := o.Begin(r)
	defer o.End(c, r)

	if start == goal {
		r.GoalNode = r.Tree.Root(start)
		r.Path = []string{start}
		r.PathCost = 0
		c.Expanded(start)
		return r, nil
	}

	fRoot := r.Tree.Root(start)
	bRoot := r.Tree.Root(goal)
	fwd := &half{queue: []search.Handle{fRoot}, seen: map[string]search.Handle{start: fRoot}}
	bwd := &half{queue: []search.Handle{bRoot}, seen: map[string]search.Handle{goal: bRoot}}
	w := &biWalker{graph: g, tree: r.Tree, col: c}

	var (
		meet meeting
		met  bool
	)
	for len(fwd.queue) > 0 && len(bwd.queue) > 0 {
		if meet, met = w.step(fwd, bwd, true); met {
			break
		}
		if meet, met = w.step(bwd, fwd, false); met {
			break
		}
	}
	if !met {
		return r, nil
	}

	path := search.ExtractPath(r.Tree, meet.forward)
	joined := len(path)
	for cur := r.Tree.Node(meet.backward).Parent; cur != search.NoHandle; cur = r.Tree.Node(cur).Parent {
		path = append(path, r.Tree.Node(cur).State)
	}

	// Materialise the backward half as descendants of the forward meeting node.
	tail := meet.forward
	for i := joined; i < len(path); i++ {
		wgt, _ := g.Weight(path[i-1], path[i])
		tail = r.Tree.Child(tail, path[i], wgt)
	}

	r.GoalNode = tail
	r.Path = path
	r.PathCost = search.PathCost(g, path)

	return r, nil
}
