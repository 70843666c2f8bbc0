package mapfile_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/builder"
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/mapfile"
	"github.com/katalvlaran/lvsearch/metrics"
	"github.com/katalvlaran/lvsearch/search"
	"github.com/katalvlaran/lvsearch/strategy"
)

// sameDataset asserts that got describes the same map as want.
func sameDataset(t *testing.T, want, got builder.Dataset) {
	t.Helper()
	require.Equal(t, want.Graph.Vertices(), got.Graph.Vertices())
	for _, id := range want.Graph.Vertices() {
		wn, _ := want.Graph.NeighborIDs(id)
		gn, _ := got.Graph.NeighborIDs(id)
		assert.Equal(t, wn, gn, id)
		for _, n := range wn {
			ww, _ := want.Graph.Weight(id, n)
			gw, ok := got.Graph.Weight(id, n)
			assert.True(t, ok)
			assert.Equal(t, ww, gw, "%s-%s", id, n)
		}
		wh, wok := want.Heuristic.Lookup(id)
		gh, gok := got.Heuristic.Lookup(id)
		assert.Equal(t, wok, gok, id)
		assert.Equal(t, wh, gh, id)
	}
	assert.Equal(t, want.Heuristic.Goal(), got.Heuristic.Goal())
	assert.Equal(t, want.Positions, got.Positions)
}

func TestLoad_Romania(t *testing.T) {
	ds, err := mapfile.Load("testdata/romania.hcl")
	require.NoError(t, err)
	assert.Equal(t, "romania", ds.Name)
	sameDataset(t, builder.Romania(), ds)

	r, err := strategy.Run(ds, strategy.Request{Algorithm: "astar", Start: "Arad", Goal: "Bucharest"},
		search.WithMeter(metrics.Nop()))
	require.NoError(t, err)
	assert.Equal(t, int64(418), r.PathCost)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := mapfile.Load("testdata/nope.hcl")
	assert.Error(t, err)
}

func TestEncode_RoundTrip(t *testing.T) {
	want := builder.Romania()

	var buf bytes.Buffer
	require.NoError(t, mapfile.Encode(&buf, want))
	assert.Contains(t, buf.String(), `city "Arad"`)
	assert.Contains(t, buf.String(), `road "Arad" "Zerind"`)

	got, err := mapfile.Parse(buf.Bytes(), "roundtrip.hcl")
	require.NoError(t, err)
	sameDataset(t, want, got)
}

func TestParse_RoadOrderWithoutNeighbors(t *testing.T) {
	src := `
city "A" { position = { x = 1, y = 2 } }
city "B" {}
city "C" {}
road "A" "C" { distance = 4 }
road "A" "B" { distance = 1 }
road "B" "C" { distance = 1 }
`
	ds, err := mapfile.Parse([]byte(src), "tri.hcl")
	require.NoError(t, err)
	assert.Equal(t, "tri", ds.Name)

	nbrs, err := ds.Graph.NeighborIDs("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B"}, nbrs)
	assert.Equal(t, core.Point{X: 1, Y: 2}, ds.Positions["A"])
	assert.Equal(t, "", ds.Heuristic.Goal())

	_, err = strategy.Run(ds, strategy.Request{Algorithm: "greedy", Start: "A", Goal: "C"})
	assert.ErrorIs(t, err, strategy.ErrNoHeuristic)

	r, err := strategy.Run(ds, strategy.Request{Algorithm: "ucs", Start: "A", Goal: "C"},
		search.WithMeter(metrics.Nop()))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, r.Path)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"syntax", `city "A" {`, mapfile.ErrParse},
		{"unknown attribute", `colour = "red"`, mapfile.ErrParse},
		{"missing distance", "city \"A\" {}\ncity \"B\" {}\nroad \"A\" \"B\" {}", mapfile.ErrParse},
		{"undeclared road city", "city \"A\" {}\nroad \"A\" \"B\" { distance = 1 }", core.ErrVertexNotFound},
		{"bad weight", "city \"A\" {}\ncity \"B\" {}\nroad \"A\" \"B\" { distance = 0 }", core.ErrBadWeight},
		{"undeclared neighbor", `city "A" { neighbors = ["Z"] }`, core.ErrVertexNotFound},
		{"heuristic without goal", `city "A" { heuristic = 3 }`, mapfile.ErrInvalidMap},
		{"nonzero goal estimate", "goal = \"A\"\ncity \"A\" { heuristic = 3 }", core.ErrBadHeuristic},
		{"unknown goal", `goal = "Z"`, core.ErrVertexNotFound},
		{"short position", `city "A" { position = [1] }`, mapfile.ErrInvalidMap},
		{"text position", `city "A" { position = "here" }`, mapfile.ErrInvalidMap},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := mapfile.Parse([]byte(tc.src), "bad.hcl")
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
