package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/builder"
	"github.com/katalvlaran/lvsearch/core"
)

func TestBuildGraph_NilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestPath(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{
		builder.WithIDScheme(builder.SymbolIDFn),
		builder.WithUniformWeight(4),
	}, builder.Path(4))
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C", "D"}, g.Vertices())
	nbrs, err := g.NeighborIDs("B")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, nbrs)
	w, ok := g.Weight("C", "D")
	assert.True(t, ok)
	assert.Equal(t, int64(4), w)

	_, err = builder.BuildGraph(nil, nil, builder.Path(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestCycle(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(3))
	require.NoError(t, err)
	assert.Equal(t, 3, g.EdgeCount())
	nbrs, err := g.NeighborIDs("0")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, nbrs)

	_, err = builder.BuildGraph(nil, nil, builder.Cycle(2))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestIsolatedAndEdges(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil,
		builder.Edges(builder.WeightedEdge{U: "A", V: "B", W: 2}),
		builder.Isolated("Z"),
	)
	require.NoError(t, err)
	assert.True(t, g.HasVertex("Z"))
	nbrs, err := g.NeighborIDs("Z")
	require.NoError(t, err)
	assert.Empty(t, nbrs)

	_, err = builder.BuildGraph(nil, nil, builder.Edges(builder.WeightedEdge{U: "A", V: "B", W: 0}))
	assert.ErrorIs(t, err, core.ErrBadWeight)
}

func TestTables_MalformedGraphRejected(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.Tables(
		[]builder.Row{{ID: "A", Neighbors: []string{"B"}}, {ID: "B", Neighbors: []string{"A"}}},
		nil,
	))
	assert.ErrorIs(t, err, core.ErrMissingWeight)
}

func TestRomania(t *testing.T) {
	ds := builder.Romania()
	require.NoError(t, ds.Validate())

	assert.Equal(t, 20, ds.Graph.VertexCount())
	assert.Equal(t, 23, ds.Graph.EdgeCount())
	assert.Equal(t, builder.RomaniaGoal, ds.Heuristic.Goal())
	assert.Equal(t, int64(366), ds.Heuristic.Estimate("Arad"))
	assert.Len(t, ds.Positions, 20)

	nbrs, err := ds.Graph.NeighborIDs("Sibiu")
	require.NoError(t, err)
	assert.Equal(t, []string{"Arad", "Oradea", "Fagaras", "Rimnicu"}, nbrs)

	// every city has a heuristic value and a position
	for _, v := range ds.Graph.Vertices() {
		_, ok := ds.Heuristic.Lookup(v)
		assert.True(t, ok, v)
		_, ok = ds.Positions[v]
		assert.True(t, ok, v)
	}
}

func TestRomania_HeuristicAdmissibleOnEdges(t *testing.T) {
	// consistency: h(u) <= w(u,v) + h(v) for every road
	ds := builder.Romania()
	for _, e := range ds.Graph.Edges() {
		hu, hv := ds.Heuristic.Estimate(e.From), ds.Heuristic.Estimate(e.To)
		assert.LessOrEqual(t, hu, e.Weight+hv, "%s-%s", e.From, e.To)
		assert.LessOrEqual(t, hv, e.Weight+hu, "%s-%s", e.To, e.From)
	}
}

func TestDataset_Validate(t *testing.T) {
	assert.ErrorIs(t, builder.Dataset{Name: "empty"}.Validate(), builder.ErrInvalidDataset)

	g, err := builder.BuildGraph(nil, nil, builder.Path(2))
	require.NoError(t, err)
	ds := builder.Dataset{Name: "bad", Graph: g, Heuristic: core.NewHeuristic("9", nil)}
	err = ds.Validate()
	assert.ErrorIs(t, err, builder.ErrInvalidDataset)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}
