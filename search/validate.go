package search

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is supplied.
	ErrGraphNil = errors.New("search: graph is nil")

	// ErrInvalidState is returned when the start or goal is not a graph vertex.
	ErrInvalidState = errors.New("search: invalid state")
)

// Validate checks that start and goal are vertices of g. Callers reject
// invalid states before invoking a strategy; strategies assume valid input.
func Validate(g *core.Graph, start, goal string) error {
	if g == nil {
		return ErrGraphNil
	}
	if !g.HasVertex(start) {
		return fmt.Errorf("%w: start %q", ErrInvalidState, start)
	}
	if !g.HasVertex(goal) {
		return fmt.Errorf("%w: goal %q", ErrInvalidState, goal)
	}

	return nil
}
