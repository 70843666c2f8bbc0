package informed_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/builder"
	"github.com/katalvlaran/lvsearch/informed"
	"github.com/katalvlaran/lvsearch/uninformed"
)

var maze = []string{
	"..........",
	".########.",
	".#......#.",
	".#.####.#.",
	".#.#..#.#.",
	".#.#.##.#.",
	".#.#....#.",
	".#.######.",
	".#........",
	".#########",
}

func TestMaze_OptimalAgreesWithUniformCost(t *testing.T) {
	ds, err := builder.Grid(maze, 4, 4)
	require.NoError(t, err)

	ucs, err := uninformed.UniformCost(ds.Graph, "0,0", "4,4", quiet...)
	require.NoError(t, err)
	require.True(t, ucs.Found())

	for _, name := range optimal {
		r, err := strategies[name](ds.Graph, ds.Heuristic, "0,0", "4,4", quiet...)
		require.NoError(t, err)
		assert.Equal(t, ucs.PathCost, r.PathCost, name)
	}

	astar, err := informed.AStar(ds.Graph, ds.Heuristic, "0,0", "4,4", quiet...)
	require.NoError(t, err)
	assert.LessOrEqual(t, astar.NodesExpanded, ucs.NodesExpanded)
}

func TestMaze_WalledOffGoal(t *testing.T) {
	rows := []string{
		"...#.",
		"...#.",
		"...#.",
	}
	ds, err := builder.Grid(rows, 4, 0)
	require.NoError(t, err)

	for name, run := range strategies {
		r, err := run(ds.Graph, ds.Heuristic, "0,0", "4,0", quiet...)
		require.NoError(t, err, name)
		assert.False(t, r.Found(), name)
	}
}

func BenchmarkMaze_OpenField(b *testing.B) {
	rows := make([]string, 40)
	for i := range rows {
		rows[i] = strings.Repeat(".", 40)
	}
	ds, err := builder.Grid(rows, 39, 39)
	if err != nil {
		b.Fatal(err)
	}
	for _, name := range []string{informed.NameGreedy, informed.NameAStar} {
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = strategies[name](ds.Graph, ds.Heuristic, "0,0", "39,39", quiet...)
			}
		})
	}
}
