package uninformed

import (
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/search"
)

// BreadthFirst searches level by level from start. The goal test runs when a
// node is dequeued. A child is enqueued only if its state is neither explored
// nor already waiting in the queue, so the returned path has the fewest
// edges.
func BreadthFirst(g *core.Graph, start, goal string, opts ...search.Option) (*search.Report, error) {
	o, err := search.Prepare(g, start, goal, opts)
	if err != nil {
		return nil, err
	}

	r := search.NewReport(NameBreadthFirst, start, goal)
	c := o.Begin(r)
	defer o.End(c, r)

	root := r.Tree.Root(start)
	queue := []search.Handle{root}
	queued := map[string]bool{start: true}
	explored := make(map[string]bool, g.VertexCount())

	for len(queue) > 0 {
		h := queue[0]
		queue = queue[1:]
		state := r.Tree.Node(h).State
		delete(queued, state)

		c.Expanded(state)
		if state == goal {
			r.GoalNode = h
			return r, nil
		}

		explored[state] = true
		c.CountExpansion()

		for _, child := range search.Expand(g, r.Tree, h) {
			s := r.Tree.Node(child).State
			c.Generated(s)
			if explored[s] || queued[s] {
				continue
			}
			queue = append(queue, child)
			queued[s] = true
		}
	}

	return r, nil
}
