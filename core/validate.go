// File: validate.go
// Role: configuration-time invariant checks for Graph.

package core

import "fmt"

// Validate checks the graph invariants and returns the first violation found,
// scanning vertices in declaration order. The error wraps one of
// ErrVertexNotFound, ErrMissingWeight, ErrAsymmetricWeight or ErrBadWeight.
// Complexity: O(V + E).
func (g *Graph) Validate() error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, u := range g.order {
		for _, v := range g.adjacency[u] {
			if _, ok := g.adjacency[v]; !ok {
				return fmt.Errorf("%w: %q listed as neighbor of %q", ErrVertexNotFound, v, u)
			}
			fwd, okF := g.weights[Pair{From: u, To: v}]
			bwd, okB := g.weights[Pair{From: v, To: u}]
			switch {
			case !okF && !okB:
				return fmt.Errorf("%w: %s-%s", ErrMissingWeight, u, v)
			case okF && okB && fwd != bwd:
				return fmt.Errorf("%w: %s→%s=%d, %s→%s=%d", ErrAsymmetricWeight, u, v, fwd, v, u, bwd)
			}
			w := fwd
			if !okF {
				w = bwd
			}
			if w <= 0 {
				return fmt.Errorf("%w: %s-%s weight=%d", ErrBadWeight, u, v, w)
			}
		}
	}

	return nil
}
