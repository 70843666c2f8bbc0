package uninformed

import (
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/search"
)

type backtracker struct {
	graph   *core.Graph
	tree    *search.Tree
	col     *search.Collector
	goal    string
	visited map[string]bool
	found   search.Handle
}

func (b *backtracker) try(h search.Handle) bool {
	node := b.tree.Node(h)
	b.col.Expanded(node.State)
	if node.State == b.goal {
		b.found = h
		return true
	}

	b.col.CountExpansion()
	for _, child := range search.Expand(b.graph, b.tree, h) {
		s := b.tree.Node(child).State
		b.col.Generated(s)
		if b.visited[s] {
			continue
		}

		b.visited[s] = true
		ok := b.try(child)
		delete(b.visited, s)
		if ok {
			return true
		}
	}

	return false
}

// Backtracking is an unbounded recursive depth-first search that keeps one
// visited set for the active branch: a state is marked before descending and
// unmarked when the call returns. It returns the first path found in
// adjacency order, which need not be the cheapest or shortest.
//
// There is no depth bound: on an unreachable goal it enumerates every simple
// path from start before failing.
func Backtracking(g *core.Graph, start, goal string, opts ...search.Option) (*search.Report, error) {
	o, err := search.Prepare(g, start, goal, opts)
	if err != nil {
		return nil, err
	}

	r := search.NewReport(NameBacktracking, start, goal)
	c := o.Begin(r)
	defer o.End(c, r)

	b := &backtracker{
		graph:   g,
		tree:    r.Tree,
		col:     c,
		goal:    goal,
		visited: map[string]bool{start: true},
		found:   search.NoHandle,
	}
	b.try(r.Tree.Root(start))
	r.GoalNode = b.found

	return r, nil
}
