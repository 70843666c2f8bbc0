// File: types.go
// Role: Graph, Pair, Point declarations, sentinel errors, options, constructor.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a zero or negative edge weight.
	ErrBadWeight = errors.New("core: edge weight must be positive")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMissingWeight indicates an adjacency entry without a weight in either orientation.
	ErrMissingWeight = errors.New("core: adjacency entry has no weight")

	// ErrAsymmetricWeight indicates w(u,v) != w(v,u).
	ErrAsymmetricWeight = errors.New("core: asymmetric edge weight")

	// ErrBadHeuristic indicates a negative estimate or a non-zero goal estimate.
	ErrBadHeuristic = errors.New("core: invalid heuristic table")
)

// Pair is an ordered vertex pair used as a weight-table key.
// The graph is undirected, so lookups consult both orientations.
type Pair struct {
	From string
	To   string
}

// Reverse returns the pair with its endpoints swapped.
func (p Pair) Reverse() Pair { return Pair{From: p.To, To: p.From} }

// Edge is one undirected edge as reported by Graph.Edges.
type Edge struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Weight int64  `json:"weight"`
}

// Point is a 2-D layout coordinate. The engine never reads it.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Positions maps a vertex ID to its layout coordinate.
type Positions map[string]Point

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithCapacity pre-sizes the internal tables for n vertices.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.capacity = n
		}
	}
}

// Graph is the static weighted undirected graph searched by the engine.
//
// mu guards all tables. Mutators are only expected during construction;
// afterwards the Graph is read-only by convention.
type Graph struct {
	mu sync.RWMutex

	allowLoops bool
	capacity   int

	order     []string            // vertex declaration order
	adjacency map[string][]string // vertex → ordered neighbor IDs
	weights   map[Pair]int64      // (u,v) → weight; either orientation may be present
}

// NewGraph creates an empty Graph with the given options.
// By default self-loops are rejected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	g.order = make([]string, 0, g.capacity)
	g.adjacency = make(map[string][]string, g.capacity)
	g.weights = make(map[Pair]int64, 2*g.capacity)

	return g
}
