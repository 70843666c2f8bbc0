// romania.go - the sample road-map data set.

package builder

import "github.com/katalvlaran/lvsearch/core"

// RomaniaGoal is the city the Romania heuristic table is relative to.
const RomaniaGoal = "Bucharest"

// romaniaRows fixes the neighbor order of every city; search tie-breaks
// depend on it.
var romaniaRows = []Row{
	{ID: "Arad", Neighbors: []string{"Zerind", "Timisoara", "Sibiu"}},
	{ID: "Zerind", Neighbors: []string{"Arad", "Oradea"}},
	{ID: "Oradea", Neighbors: []string{"Zerind", "Sibiu"}},
	{ID: "Timisoara", Neighbors: []string{"Arad", "Lugoj"}},
	{ID: "Lugoj", Neighbors: []string{"Timisoara", "Mehadia"}},
	{ID: "Mehadia", Neighbors: []string{"Lugoj", "Drobeta"}},
	{ID: "Drobeta", Neighbors: []string{"Mehadia", "Craiova"}},
	{ID: "Craiova", Neighbors: []string{"Drobeta", "Rimnicu", "Pitesti"}},
	{ID: "Sibiu", Neighbors: []string{"Arad", "Oradea", "Fagaras", "Rimnicu"}},
	{ID: "Rimnicu", Neighbors: []string{"Sibiu", "Craiova", "Pitesti"}},
	{ID: "Fagaras", Neighbors: []string{"Sibiu", "Bucharest"}},
	{ID: "Pitesti", Neighbors: []string{"Rimnicu", "Craiova", "Bucharest"}},
	{ID: "Bucharest", Neighbors: []string{"Fagaras", "Pitesti", "Giurgiu", "Urziceni"}},
	{ID: "Giurgiu", Neighbors: []string{"Bucharest"}},
	{ID: "Urziceni", Neighbors: []string{"Bucharest", "Hirsova", "Vaslui"}},
	{ID: "Hirsova", Neighbors: []string{"Urziceni", "Eforie"}},
	{ID: "Eforie", Neighbors: []string{"Hirsova"}},
	{ID: "Vaslui", Neighbors: []string{"Urziceni", "Iasi"}},
	{ID: "Iasi", Neighbors: []string{"Vaslui", "Neamt"}},
	{ID: "Neamt", Neighbors: []string{"Iasi"}},
}

// romaniaRoads lists each road once; romaniaWeights mirrors it.
var romaniaRoads = []WeightedEdge{
	{U: "Arad", V: "Zerind", W: 75},
	{U: "Arad", V: "Timisoara", W: 118},
	{U: "Arad", V: "Sibiu", W: 140},
	{U: "Zerind", V: "Oradea", W: 71},
	{U: "Oradea", V: "Sibiu", W: 151},
	{U: "Timisoara", V: "Lugoj", W: 111},
	{U: "Lugoj", V: "Mehadia", W: 70},
	{U: "Mehadia", V: "Drobeta", W: 75},
	{U: "Drobeta", V: "Craiova", W: 120},
	{U: "Craiova", V: "Rimnicu", W: 146},
	{U: "Craiova", V: "Pitesti", W: 138},
	{U: "Sibiu", V: "Rimnicu", W: 80},
	{U: "Sibiu", V: "Fagaras", W: 99},
	{U: "Fagaras", V: "Bucharest", W: 211},
	{U: "Rimnicu", V: "Pitesti", W: 97},
	{U: "Pitesti", V: "Bucharest", W: 101},
	{U: "Bucharest", V: "Giurgiu", W: 90},
	{U: "Bucharest", V: "Urziceni", W: 85},
	{U: "Urziceni", V: "Hirsova", W: 98},
	{U: "Hirsova", V: "Eforie", W: 86},
	{U: "Urziceni", V: "Vaslui", W: 142},
	{U: "Vaslui", V: "Iasi", W: 92},
	{U: "Iasi", V: "Neamt", W: 87},
}

// romaniaStraightLine holds straight-line distances to Bucharest.
var romaniaStraightLine = map[string]int64{
	"Arad": 366, "Bucharest": 0, "Craiova": 160, "Drobeta": 242,
	"Eforie": 161, "Fagaras": 176, "Giurgiu": 77, "Hirsova": 151,
	"Iasi": 226, "Lugoj": 244, "Mehadia": 241, "Neamt": 234,
	"Oradea": 380, "Pitesti": 100, "Rimnicu": 193,
	"Sibiu": 253, "Timisoara": 329, "Urziceni": 80,
	"Vaslui": 199, "Zerind": 374,
}

var romaniaLayout = core.Positions{
	"Arad":      {X: 0, Y: 1.5},
	"Zerind":    {X: 0, Y: 2.5},
	"Oradea":    {X: 2, Y: 2.5},
	"Sibiu":     {X: 1.2, Y: -1.2},
	"Fagaras":   {X: 2, Y: -2.8},
	"Rimnicu":   {X: 3, Y: 0.3},
	"Timisoara": {X: -1, Y: -1},
	"Lugoj":     {X: -2, Y: -2},
	"Mehadia":   {X: -3, Y: -3},
	"Drobeta":   {X: -4, Y: -2},
	"Craiova":   {X: -2.8, Y: -0.3},
	"Pitesti":   {X: 3, Y: -0.8},
	"Bucharest": {X: 4, Y: -1.8},
	"Giurgiu":   {X: 4.2, Y: -2.8},
	"Urziceni":  {X: 5.3, Y: -0.8},
	"Hirsova":   {X: 6.8, Y: 0},
	"Eforie":    {X: 7.5, Y: -1.3},
	"Vaslui":    {X: 6, Y: 0.8},
	"Iasi":      {X: 6.2, Y: 1.8},
	"Neamt":     {X: 5.8, Y: 2.8},
}

// romaniaWeights returns both orientations of every road.
func romaniaWeights() map[core.Pair]int64 {
	w := make(map[core.Pair]int64, 2*len(romaniaRoads))
	for _, r := range romaniaRoads {
		w[core.Pair{From: r.U, To: r.V}] = r.W
		w[core.Pair{From: r.V, To: r.U}] = r.W
	}

	return w
}

// RomaniaGraph builds the 20-city road map with its fixed neighbor order.
func RomaniaGraph() (*core.Graph, error) {
	return BuildGraph(
		[]core.GraphOption{core.WithCapacity(len(romaniaRows))},
		nil,
		Tables(romaniaRows, romaniaWeights()),
	)
}

// Romania returns the complete sample data set. The tables are static and
// valid, so a construction error is a programming error and panics.
func Romania() Dataset {
	g, err := RomaniaGraph()
	if err != nil {
		panic(err)
	}
	pos := make(core.Positions, len(romaniaLayout))
	for k, v := range romaniaLayout {
		pos[k] = v
	}

	return Dataset{
		Name:      "romania",
		Graph:     g,
		Heuristic: core.NewHeuristic(RomaniaGoal, romaniaStraightLine),
		Positions: pos,
	}
}
