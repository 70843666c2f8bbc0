package search

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvsearch/core"
)

// ExtractPath walks parent handles from h to its root and returns the states
// in root→h order. It returns nil for NoHandle or a nil tree.
func ExtractPath(t *Tree, h Handle) []string {
	if t == nil || h == NoHandle {
		return nil
	}

	var path []string
	for cur := h; cur != NoHandle; cur = t.Node(cur).Parent {
		path = append(path, t.Node(cur).State)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// PathCost sums the edge weights along path, looking each edge up in either
// orientation. Missing edges contribute 0.
func PathCost(g *core.Graph, path []string) int64 {
	var total int64
	for i := 0; i+1 < len(path); i++ {
		w, _ := g.Weight(path[i], path[i+1])
		total += w
	}

	return total
}

// PathCostExpression renders "Path Cost = w1 + w2 + … = total" for a path of
// at least two states. Shorter paths have no expression and return false.
func PathCostExpression(g *core.Graph, path []string) (string, bool) {
	if len(path) < 2 {
		return "", false
	}

	terms := make([]string, 0, len(path)-1)
	var total int64
	for i := 0; i+1 < len(path); i++ {
		w, _ := g.Weight(path[i], path[i+1])
		total += w
		terms = append(terms, strconv.FormatInt(w, 10))
	}

	return fmt.Sprintf("Path Cost = %s = %d", strings.Join(terms, " + "), total), true
}
