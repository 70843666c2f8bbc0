// File: heuristic.go
// Role: goal-relative estimate table for informed strategies.

package core

import "fmt"

// Heuristic maps a state to a non-negative estimate of the remaining cost to
// one specific goal. The zero value estimates 0 everywhere, which is
// admissible for any goal.
type Heuristic struct {
	goal   string
	values map[string]int64
}

// NewHeuristic builds a table relative to goal. values is copied.
func NewHeuristic(goal string, values map[string]int64) Heuristic {
	cp := make(map[string]int64, len(values))
	for k, v := range values {
		cp[k] = v
	}

	return Heuristic{goal: goal, values: cp}
}

// Goal returns the state the estimates are relative to.
func (h Heuristic) Goal() string { return h.goal }

// Estimate returns h(state); unknown states estimate 0.
func (h Heuristic) Estimate(state string) int64 {
	return h.values[state]
}

// Lookup returns h(state) and whether the state is in the table.
func (h Heuristic) Lookup(state string) (int64, bool) {
	v, ok := h.values[state]

	return v, ok
}

// Len returns the number of states with an explicit estimate.
func (h Heuristic) Len() int { return len(h.values) }

// Validate rejects negative estimates and a non-zero estimate for the goal.
func (h Heuristic) Validate() error {
	if v, ok := h.values[h.goal]; ok && v != 0 {
		return fmt.Errorf("%w: h(%s)=%d, want 0", ErrBadHeuristic, h.goal, v)
	}
	for k, v := range h.values {
		if v < 0 {
			return fmt.Errorf("%w: h(%s)=%d is negative", ErrBadHeuristic, k, v)
		}
	}

	return nil
}
