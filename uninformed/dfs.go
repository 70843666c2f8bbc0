package uninformed

import (
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/search"
)

// DepthFirst searches with an explicit LIFO stack. Children are generated and
// pushed in reverse adjacency order so the first neighbor is popped first,
// giving a left-to-right expansion order. Duplicate suppression matches
// BreadthFirst: explored states and states already on the stack are skipped.
func DepthFirst(g *core.Graph, start, goal string, opts ...search.Option) (*search.Report, error) {
	o, err := search.Prepare(g, start, goal, opts)
	if err != nil {
		return nil, err
	}

	r := search.NewReport(NameDepthFirst, start, goal)
	c := o.Begin(r)
	defer o.End(c, r)

	stack := []search.Handle{r.Tree.Root(start)}
	stacked := map[string]bool{start: true}
	explored := make(map[string]bool, g.VertexCount())

	for len(stack) > 0 {
		h := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		state := r.Tree.Node(h).State
		delete(stacked, state)

		c.Expanded(state)
		if state == goal {
			r.GoalNode = h
			return r, nil
		}

		explored[state] = true
		c.CountExpansion()

		children := search.Expand(g, r.Tree, h)
		for i := len(children) - 1; i >= 0; i-- {
			s := r.Tree.Node(children[i]).State
			c.Generated(s)
			if explored[s] || stacked[s] {
				continue
			}
			stack = append(stack, children[i])
			stacked[s] = true
		}
	}

	return r, nil
}
