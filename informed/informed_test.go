package informed_test

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/builder"
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/informed"
	"github.com/katalvlaran/lvsearch/metrics"
	"github.com/katalvlaran/lvsearch/search"
)

var quiet = []search.Option{search.WithMeter(metrics.Nop())}

type runner func(g *core.Graph, h core.Heuristic, start, goal string, opts ...search.Option) (*search.Report, error)

var strategies = map[string]runner{
	informed.NameGreedy:  informed.Greedy,
	informed.NameAStar:   informed.AStar,
	informed.NameIDAStar: informed.IDAStar,
	informed.NameRBFS:    informed.RBFS,
}

// optimal lists the strategies that return cheapest paths under an
// admissible heuristic.
var optimal = []string{informed.NameAStar, informed.NameIDAStar, informed.NameRBFS}

func romania(t testing.TB) builder.Dataset {
	t.Helper()
	ds := builder.Romania()
	require.NoError(t, ds.Validate())

	return ds
}

// cheapest enumerates every simple path from start to goal.
func cheapest(g *core.Graph, start, goal string) int64 {
	best := int64(math.MaxInt64)
	onPath := map[string]bool{start: true}

	var walk func(u string, cost int64)
	walk = func(u string, cost int64) {
		if u == goal {
			best = min(best, cost)
			return
		}
		nbrs, _ := g.NeighborIDs(u)
		for _, v := range nbrs {
			if onPath[v] {
				continue
			}
			w, _ := g.Weight(u, v)
			onPath[v] = true
			walk(v, cost+w)
			delete(onPath, v)
		}
	}
	walk(start, 0)

	return best
}

func TestInformed_InvalidInput(t *testing.T) {
	ds := romania(t)
	for name, run := range strategies {
		t.Run(name, func(t *testing.T) {
			_, err := run(nil, ds.Heuristic, "Arad", "Bucharest", quiet...)
			assert.ErrorIs(t, err, search.ErrGraphNil)

			_, err = run(ds.Graph, ds.Heuristic, "Arad", "Paris", quiet...)
			assert.ErrorIs(t, err, search.ErrInvalidState)
		})
	}
}

func TestInformed_ReachesGoalFromEveryCity(t *testing.T) {
	ds := romania(t)
	for name, run := range strategies {
		for _, start := range ds.Graph.Vertices() {
			r, err := run(ds.Graph, ds.Heuristic, start, builder.RomaniaGoal, quiet...)
			require.NoError(t, err)
			require.True(t, r.Found(), "%s from %s", name, start)

			assert.Equal(t, start, r.Path[0])
			assert.Equal(t, builder.RomaniaGoal, r.Path[len(r.Path)-1])
			assert.Equal(t, search.PathCost(ds.Graph, r.Path), r.PathCost)
			assert.Equal(t, r.Path, search.ExtractPath(r.Tree, r.GoalNode))
			assert.GreaterOrEqual(t, r.NodesGenerated, r.NodesExpanded)
			assert.Equal(t, search.Found, r.Outcome)
		}
	}
}

func TestInformed_OptimalWithAdmissibleHeuristic(t *testing.T) {
	ds := romania(t)
	for _, name := range optimal {
		for _, start := range ds.Graph.Vertices() {
			r, err := strategies[name](ds.Graph, ds.Heuristic, start, builder.RomaniaGoal, quiet...)
			require.NoError(t, err)
			assert.Equal(t, cheapest(ds.Graph, start, builder.RomaniaGoal), r.PathCost, "%s from %s", name, start)
		}
	}
}

func TestInformed_ZeroHeuristicAnyGoal(t *testing.T) {
	ds := romania(t)
	zero := core.NewHeuristic("Eforie", nil)
	for _, name := range optimal {
		r, err := strategies[name](ds.Graph, zero, "Arad", "Eforie", quiet...)
		require.NoError(t, err)
		assert.Equal(t, int64(687), r.PathCost, name)
		assert.Equal(t, []string{
			"Arad", "Sibiu", "Rimnicu", "Pitesti", "Bucharest", "Urziceni", "Hirsova", "Eforie",
		}, r.Path, name)
	}
}

func TestInformed_UnreachableGoal(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(5), builder.Isolated("Z"))
	require.NoError(t, err)
	h := core.NewHeuristic("Z", nil)

	for name, run := range strategies {
		t.Run(name, func(t *testing.T) {
			r, err := run(g, h, "0", "Z", quiet...)
			require.NoError(t, err)
			assert.False(t, r.Found())
			assert.Nil(t, r.Path)
			assert.Equal(t, search.Fail, r.Outcome)
			assert.NotEmpty(t, r.ExpandedList)
		})
	}
}

func TestInformed_StartIsGoal(t *testing.T) {
	ds := romania(t)
	for name, run := range strategies {
		r, err := run(ds.Graph, ds.Heuristic, "Bucharest", "Bucharest", quiet...)
		require.NoError(t, err)
		assert.Equal(t, []string{"Bucharest"}, r.Path, name)
		assert.Zero(t, r.PathCost, name)
		assert.Zero(t, r.NodesExpanded, name)
	}
}

func TestGreedy_Romania(t *testing.T) {
	ds := romania(t)
	r, err := informed.Greedy(ds.Graph, ds.Heuristic, "Arad", "Bucharest", quiet...)
	require.NoError(t, err)

	// not the cheapest route
	assert.Equal(t, []string{"Arad", "Sibiu", "Fagaras", "Bucharest"}, r.Path)
	assert.Equal(t, int64(450), r.PathCost)
	assert.Equal(t, 3, r.NodesExpanded)
	assert.Equal(t, 9, r.NodesGenerated)
	assert.Equal(t, r.Path, r.ExpandedList)
}

func TestAStar_Romania(t *testing.T) {
	ds := romania(t)
	r, err := informed.AStar(ds.Graph, ds.Heuristic, "Arad", "Bucharest", quiet...)
	require.NoError(t, err)

	assert.Equal(t, []string{"Arad", "Sibiu", "Rimnicu", "Pitesti", "Bucharest"}, r.Path)
	assert.Equal(t, int64(418), r.PathCost)
	assert.Equal(t, 5, r.NodesExpanded)
	assert.Equal(t, 15, r.NodesGenerated)
	assert.Equal(t, []string{"Arad", "Sibiu", "Rimnicu", "Fagaras", "Pitesti", "Bucharest"}, r.ExpandedList)
}

func TestIDAStar_Romania(t *testing.T) {
	ds := romania(t)
	r, err := informed.IDAStar(ds.Graph, ds.Heuristic, "Arad", "Bucharest", quiet...)
	require.NoError(t, err)

	assert.Equal(t, []string{"Arad", "Sibiu", "Rimnicu", "Pitesti", "Bucharest"}, r.Path)
	assert.Equal(t, int64(418), r.PathCost)
	// bounds 366, 393, 413, 415, 417, 418
	assert.Equal(t, 6, r.Iterations)
	assert.Equal(t, int64(418), r.Threshold)
	assert.Equal(t, 20, r.NodesExpanded)
	assert.Equal(t, 62, r.NodesGenerated)
	assert.Len(t, r.ExpandedList, 21)
	assert.Equal(t, []string{"Arad", "Arad", "Sibiu"}, r.ExpandedList[:3])
}

func TestRBFS_Romania(t *testing.T) {
	ds := romania(t)
	r, err := informed.RBFS(ds.Graph, ds.Heuristic, "Arad", "Bucharest", quiet...)
	require.NoError(t, err)

	assert.Equal(t, []string{"Arad", "Sibiu", "Rimnicu", "Pitesti", "Bucharest"}, r.Path)
	assert.Equal(t, int64(418), r.PathCost)
	assert.Equal(t, 6, r.NodesExpanded)
	assert.Equal(t, 18, r.NodesGenerated)
	// Rimnicu is abandoned for Fagaras, then revisited with a backed-up bound
	assert.Equal(t, []string{
		"Arad", "Sibiu", "Rimnicu", "Fagaras", "Rimnicu", "Pitesti", "Bucharest",
	}, r.ExpandedList)
}

func TestInformed_WarnsOnForeignHeuristic(t *testing.T) {
	ds := romania(t)
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	r, err := informed.AStar(ds.Graph, ds.Heuristic, "Arad", "Sibiu", append(quiet, search.WithLogger(logger))...)
	require.NoError(t, err)
	assert.True(t, r.Found())
	assert.Contains(t, buf.String(), "heuristic goal differs")
	assert.Contains(t, buf.String(), "heuristic_goal=Bucharest")
}
