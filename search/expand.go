package search

import "github.com/katalvlaran/lvsearch/core"

// Expand creates the children of h in g's adjacency order and returns their
// handles. A neighbor without a weight in either orientation is skipped; a
// validated graph never has one. An unknown state has no children.
func Expand(g *core.Graph, t *Tree, h Handle) []Handle {
	state := t.Node(h).State
	nbrs, err := g.NeighborIDs(state)
	if err != nil {
		return nil
	}

	children := make([]Handle, 0, len(nbrs))
	for _, nbr := range nbrs {
		w, ok := g.Weight(state, nbr)
		if !ok {
			continue
		}
		children = append(children, t.Child(h, nbr, w))
	}

	return children
}
