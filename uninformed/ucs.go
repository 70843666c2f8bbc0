package uninformed

import (
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/search"
)

// UniformCost expands nodes in increasing path cost. Equal costs pop in
// insertion order. A state may sit in the heap several times; entries for an
// already explored state are dropped when popped, before any logging. The
// goal test runs on pop, which makes the returned path cost-optimal.
func UniformCost(g *core.Graph, start, goal string, opts ...search.Option) (*search.Report, error) {
	o, err := search.Prepare(g, start, goal, opts)
	if err != nil {
		return nil, err
	}

	r := search.NewReport(NameUniformCost, start, goal)
	c := o.Begin(r)
	defer o.End(c, r)

	var pq search.PriorityQueue
	pq.Push(r.Tree.Root(start), 0)
	explored := make(map[string]bool, g.VertexCount())

	for pq.Len() > 0 {
		h, _ := pq.Pop()
		node := r.Tree.Node(h)

		// stale entry
		if explored[node.State] {
			continue
		}

		c.Expanded(node.State)
		if node.State == goal {
			r.GoalNode = h
			return r, nil
		}

		explored[node.State] = true
		c.CountExpansion()

		for _, child := range search.Expand(g, r.Tree, h) {
			cn := r.Tree.Node(child)
			c.Generated(cn.State)
			if !explored[cn.State] {
				pq.Push(child, cn.PathCost)
			}
		}
	}

	return r, nil
}
