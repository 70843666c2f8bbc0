// File: methods_adjacent.go
// Role: adjacency rows (SetNeighbors, NeighborIDs).
// Determinism:
//   - NeighborIDs() returns the row exactly in declaration order.

package core

// SetNeighbors replaces the adjacency row of id with nbrs, preserving their
// order, and declares id if needed. Neighbors are not declared implicitly;
// Validate reports undeclared ones.
//
// It is the raw table loader for data sets that fix a neighbor order
// different from edge insertion order.
func (g *Graph) SetNeighbors(id string, nbrs ...string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	for _, n := range nbrs {
		if n == "" {
			return ErrEmptyVertexID
		}
		if n == id && !g.allowLoops {
			return ErrLoopNotAllowed
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(id)
	row := make([]string, len(nbrs))
	copy(row, nbrs)
	g.adjacency[id] = row

	return nil
}

// NeighborIDs returns the adjacency row of id in declaration order.
// The returned slice is a copy.
//
// Errors:
//   - ErrEmptyVertexID if id == "".
//   - ErrVertexNotFound if id is not declared.
//
// Complexity: O(deg(id)).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	row, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]string, len(row))
	copy(out, row)

	return out, nil
}

// appendNeighborLocked appends v to u's row unless already present.
func (g *Graph) appendNeighborLocked(u, v string) {
	for _, n := range g.adjacency[u] {
		if n == v {
			return
		}
	}
	g.adjacency[u] = append(g.adjacency[u], v)
}
