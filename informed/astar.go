package informed

import (
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/search"
)

// AStar expands nodes in increasing f = g + h, where g is the path cost so
// far. With lazy deletion and the goal test on pop, the returned path is
// cost-optimal for a consistent heuristic. Equal f-values pop in insertion
// order.
func AStar(g *core.Graph, h core.Heuristic, start, goal string, opts ...search.Option) (*search.Report, error) {
	o, err := prepare(g, h, start, goal, opts)
	if err != nil {
		return nil, err
	}

	r := search.NewReport(NameAStar, start, goal)
	c := o.Begin(r)
	defer o.End(c, r)

	bestFirst(g, r, c, func(n search.Node) int64 {
		return n.PathCost + h.Estimate(n.State)
	})

	return r, nil
}
