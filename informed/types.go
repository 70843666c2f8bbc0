package informed

import (
	"math"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/search"
)

// Strategy names, as reported in search.Report.Strategy.
const (
	NameGreedy  = "greedy"
	NameAStar   = "astar"
	NameIDAStar = "idastar"
	NameRBFS    = "rbfs"
)

// infinity is the f-value of a dead end.
const infinity int64 = math.MaxInt64

// prepare validates the input like search.Prepare and warns when h was
// computed for another goal. Such a heuristic is still used.
func prepare(g *core.Graph, h core.Heuristic, start, goal string, opts []search.Option) (search.Options, error) {
	o, err := search.Prepare(g, start, goal, opts)
	if err != nil {
		return o, err
	}
	if h.Goal() != goal {
		o.Logger.Warn("heuristic goal differs from search goal",
			"heuristic_goal", h.Goal(), "goal", goal)
	}

	return o, nil
}

// bestFirst is the shared loop of Greedy and AStar. priority computes the
// heap key of a node; stale entries for explored states are dropped on pop
// before any logging.
func bestFirst(g *core.Graph, r *search.Report, c *search.Collector, priority func(search.Node) int64) {
	var pq search.PriorityQueue
	root := r.Tree.Root(r.Start)
	pq.Push(root, priority(r.Tree.Node(root)))
	explored := make(map[string]bool, g.VertexCount())

	for pq.Len() > 0 {
		h, _ := pq.Pop()
		node := r.Tree.Node(h)
		if explored[node.State] {
			continue
		}

		c.Expanded(node.State)
		if node.State == r.Goal {
			r.GoalNode = h
			return
		}

		explored[node.State] = true
		c.CountExpansion()

		for _, child := range search.Expand(g, r.Tree, h) {
			cn := r.Tree.Node(child)
			c.Generated(cn.State)
			if !explored[cn.State] {
				pq.Push(child, priority(cn))
			}
		}
	}
}
