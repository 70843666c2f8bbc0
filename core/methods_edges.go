// File: methods_edges.go
// Role: edge and weight-table mutation and lookup.

package core

import "fmt"

// AddEdge connects u and v with weight w. Both endpoints are declared if
// needed, each is appended to the other's adjacency row (unless already
// present) and both weight orientations are recorded.
//
// Errors:
//   - ErrEmptyVertexID if u or v is empty.
//   - ErrLoopNotAllowed if u == v without WithLoops.
//   - ErrBadWeight if w <= 0.
//
// Complexity: O(deg(u)+deg(v)) for the duplicate-neighbor check.
func (g *Graph) AddEdge(u, v string, w int64) error {
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}
	if u == v && !g.allowLoops {
		return fmt.Errorf("%w: %q", ErrLoopNotAllowed, u)
	}
	if w <= 0 {
		return fmt.Errorf("%w: %s-%s weight=%d", ErrBadWeight, u, v, w)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(u)
	g.addVertexLocked(v)
	g.appendNeighborLocked(u, v)
	if u != v {
		g.appendNeighborLocked(v, u)
	}
	g.weights[Pair{From: u, To: v}] = w
	g.weights[Pair{From: v, To: u}] = w

	return nil
}

// SetWeight records the weight of the single orientation u→v. It is the raw
// table loader used when adjacency rows are supplied separately; Validate
// checks the result for symmetry.
func (g *Graph) SetWeight(u, v string, w int64) error {
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.weights[Pair{From: u, To: v}] = w

	return nil
}

// Weight returns the weight of edge u-v, consulting both orientations.
// The u→v entry wins when both exist.
// Complexity: O(1).
func (g *Graph) Weight(u, v string) (int64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.weightLocked(u, v)
}

func (g *Graph) weightLocked(u, v string) (int64, bool) {
	if w, ok := g.weights[Pair{From: u, To: v}]; ok {
		return w, true
	}
	w, ok := g.weights[Pair{From: v, To: u}]

	return w, ok
}

// Edges returns every undirected edge once, in declaration order: vertices in
// declaration order, each row in adjacency order, keeping the first
// orientation met. Entries without a weight are skipped.
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	seen := make(map[Pair]bool, len(g.weights))
	out := make([]Edge, 0, len(g.weights)/2)
	for _, u := range g.order {
		for _, v := range g.adjacency[u] {
			p := Pair{From: u, To: v}
			if seen[p] || seen[p.Reverse()] {
				continue
			}
			w, ok := g.weightLocked(u, v)
			if !ok {
				continue
			}
			seen[p] = true
			out = append(out, Edge{From: u, To: v, Weight: w})
		}
	}

	return out
}

// EdgeCount returns the number of undirected edges reported by Edges.
func (g *Graph) EdgeCount() int {
	return len(g.Edges())
}
