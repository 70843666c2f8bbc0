package informed

import (
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/search"
)

// Greedy expands the node with the lowest heuristic estimate first, ignoring
// the cost already paid. It finds a path whenever one exists but the path
// need not be the cheapest. Equal estimates pop in insertion order.
func Greedy(g *core.Graph, h core.Heuristic, start, goal string, opts ...search.Option) (*search.Report, error) {
	o, err := prepare(g, h, start, goal, opts)
	if err != nil {
		return nil, err
	}

	r := search.NewReport(NameGreedy, start, goal)
	c := o.Begin(r)
	defer o.End(c, r)

	bestFirst(g, r, c, func(n search.Node) int64 {
		return h.Estimate(n.State)
	})

	return r, nil
}
