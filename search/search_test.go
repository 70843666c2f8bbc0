package search_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/builder"
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/metrics"
	"github.com/katalvlaran/lvsearch/search"
)

func romania(t *testing.T) *core.Graph {
	t.Helper()
	g, err := builder.RomaniaGraph()
	require.NoError(t, err)

	return g
}

func TestTree_RootChildAndPath(t *testing.T) {
	tr := search.NewTree()
	root := tr.Root("A")
	b := tr.Child(root, "B", 3)
	c := tr.Child(b, "C", 4)

	n := tr.Node(c)
	assert.Equal(t, "C", n.State)
	assert.Equal(t, "C", n.Action)
	assert.Equal(t, b, n.Parent)
	assert.Equal(t, int64(7), n.PathCost)
	assert.Equal(t, 2, n.Depth)
	assert.Equal(t, search.NoHandle, tr.Node(root).Parent)
	assert.Equal(t, 3, tr.Len())

	assert.Equal(t, []string{"A", "B", "C"}, search.ExtractPath(tr, c))
	assert.Nil(t, search.ExtractPath(tr, search.NoHandle))
	assert.Nil(t, search.ExtractPath(nil, c))

	assert.True(t, tr.OnPath(c, "A"))
	assert.True(t, tr.OnPath(c, "C"))
	assert.False(t, tr.OnPath(b, "C"))

	assert.Panics(t, func() { tr.Node(42) })
}

func TestExpand_AdjacencyOrder(t *testing.T) {
	g := romania(t)
	tr := search.NewTree()
	root := tr.Root("Arad")

	kids := search.Expand(g, tr, root)
	require.Len(t, kids, 3)
	var states []string
	for _, h := range kids {
		n := tr.Node(h)
		states = append(states, n.State)
		assert.Equal(t, root, n.Parent)
		assert.Equal(t, 1, n.Depth)
	}
	assert.Equal(t, []string{"Zerind", "Timisoara", "Sibiu"}, states)
	assert.Equal(t, int64(140), tr.Node(kids[2]).PathCost)

	// unknown states have no children
	assert.Empty(t, search.Expand(g, tr, tr.Root("Atlantis")))
}

func TestExpand_SkipsMissingWeight(t *testing.T) {
	// Unvalidated graph: B lists C, but no weight exists for B-C.
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.SetNeighbors("B", "A", "C"))
	require.NoError(t, g.AddVertex("C"))

	tr := search.NewTree()
	kids := search.Expand(g, tr, tr.Root("B"))
	require.Len(t, kids, 1)
	assert.Equal(t, "A", tr.Node(kids[0]).State)
}

func TestPriorityQueue_TieBreakByInsertion(t *testing.T) {
	var q search.PriorityQueue
	q.Push(10, 5)
	q.Push(11, 1)
	q.Push(12, 5)
	q.Push(13, 1)
	q.Push(14, 0)

	var got []search.Handle
	for q.Len() > 0 {
		h, _ := q.Pop()
		got = append(got, h)
	}
	assert.Equal(t, []search.Handle{14, 11, 13, 10, 12}, got)
}

func TestPathCostExpression(t *testing.T) {
	g := romania(t)
	path := []string{"Arad", "Sibiu", "Rimnicu", "Pitesti", "Bucharest"}

	expr, ok := search.PathCostExpression(g, path)
	assert.True(t, ok)
	assert.Equal(t, "Path Cost = 140 + 80 + 97 + 101 = 418", expr)
	assert.Equal(t, int64(418), search.PathCost(g, path))

	_, ok = search.PathCostExpression(g, []string{"Arad"})
	assert.False(t, ok)
	_, ok = search.PathCostExpression(g, nil)
	assert.False(t, ok)
}

func TestValidate(t *testing.T) {
	g := romania(t)
	assert.NoError(t, search.Validate(g, "Arad", "Bucharest"))
	assert.ErrorIs(t, search.Validate(g, "Paris", "Bucharest"), search.ErrInvalidState)
	assert.ErrorIs(t, search.Validate(g, "Arad", ""), search.ErrInvalidState)
	assert.ErrorIs(t, search.Validate(nil, "Arad", "Bucharest"), search.ErrGraphNil)
}

func TestCollector_FinishOnSuccessAndFailure(t *testing.T) {
	r := search.NewReport("test", "A", "B")
	c := search.NewCollector(nil)
	c.Begin()
	root := r.Tree.Root("A")
	c.Expanded("A")
	c.CountExpansion()
	goal := r.Tree.Child(root, "B", 9)
	c.Generated("B")
	c.Expanded("B")
	r.GoalNode = goal
	c.ObservePeak(123)
	c.Finish(r)

	assert.True(t, r.Found())
	assert.Equal(t, search.Found, r.Outcome)
	assert.Equal(t, []string{"A", "B"}, r.Path)
	assert.Equal(t, int64(9), r.PathCost)
	assert.Equal(t, 1, r.NodesExpanded)
	assert.Equal(t, 1, r.NodesGenerated)
	assert.Equal(t, []string{"A", "B"}, r.ExpandedList)
	assert.Equal(t, []string{"B"}, r.GeneratedList)
	assert.Equal(t, uint64(123), r.PeakMemory)
	node, ok := r.Node()
	assert.True(t, ok)
	assert.Equal(t, "B", node.State)

	failed := search.NewReport("test", "A", "Z")
	fc := search.NewCollector(metrics.Runtime())
	fc.Begin()
	fc.Expanded("A")
	fc.Finish(failed)
	assert.False(t, failed.Found())
	assert.Equal(t, search.Fail, failed.Outcome)
	assert.Nil(t, failed.Path)
	assert.Equal(t, search.NoLimit, failed.FoundLimit)
	assert.Equal(t, []string{"A"}, failed.ExpandedList)
	_, ok = failed.Node()
	assert.False(t, ok)
}

func TestOutcome_Text(t *testing.T) {
	for _, o := range []search.Outcome{search.Found, search.Cutoff, search.Fail} {
		b, err := o.MarshalText()
		require.NoError(t, err)
		var back search.Outcome
		require.NoError(t, back.UnmarshalText(b))
		assert.Equal(t, o, back)
	}
	var o search.Outcome
	assert.Error(t, o.UnmarshalText([]byte("MAYBE")))
}

func TestReport_JSON(t *testing.T) {
	r := search.NewReport("bfs", "A", "B")
	r.Outcome = search.Cutoff
	b, err := json.Marshal(r)
	require.NoError(t, err)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Equal(t, "CUTOFF", m["outcome"])
	assert.Equal(t, float64(-1), m["found_limit"])
	assert.NotContains(t, m, "Tree")
}
