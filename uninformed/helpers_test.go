package uninformed_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/builder"
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/metrics"
	"github.com/katalvlaran/lvsearch/search"
)

// quiet keeps test runs deterministic: no sampling, default logger.
var quiet = []search.Option{search.WithMeter(metrics.Nop())}

func romania(t testing.TB) *core.Graph {
	t.Helper()
	g, err := builder.RomaniaGraph()
	require.NoError(t, err)

	return g
}

// romaniaWithIsland adds a vertex no road reaches.
func romaniaWithIsland(t testing.TB) *core.Graph {
	t.Helper()
	g := romania(t)
	require.NoError(t, g.AddVertex("Atlantis"))
	require.NoError(t, g.Validate())

	return g
}

// bruteForce enumerates every simple path from start to goal and returns the
// minimum summed weight and the minimum edge count.
func bruteForce(g *core.Graph, start, goal string) (minCost int64, minEdges int) {
	minCost, minEdges = math.MaxInt64, math.MaxInt
	onPath := map[string]bool{start: true}

	var walk func(u string, cost int64, edges int)
	walk = func(u string, cost int64, edges int) {
		if u == goal {
			minCost = min(minCost, cost)
			minEdges = min(minEdges, edges)
			return
		}
		nbrs, _ := g.NeighborIDs(u)
		for _, v := range nbrs {
			if onPath[v] {
				continue
			}
			w, _ := g.Weight(u, v)
			onPath[v] = true
			walk(v, cost+w, edges+1)
			delete(onPath, v)
		}
	}
	walk(start, 0, 0)

	return minCost, minEdges
}
