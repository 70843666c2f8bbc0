// api.go - public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...).
//   - Determinism: same inputs/options and constructor order ⇒ identical graphs.
//   - Constructors never panic; they return sentinel-wrapped errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, applies all constructors in order and
// validates the result.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - any constructor error, wrapped with "BuildGraph: %w".
//   - any core.Validate error, wrapped the same way.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// Dataset bundles everything a presentation layer needs: the graph searched
// by the engine, the heuristic table for informed strategies and the layout
// coordinates used only for drawing.
type Dataset struct {
	Name      string
	Graph     *core.Graph
	Heuristic core.Heuristic
	Positions core.Positions
}

// Validate checks the graph and heuristic invariants.
func (d Dataset) Validate() error {
	if d.Graph == nil {
		return fmt.Errorf("%w: %q has no graph", ErrInvalidDataset, d.Name)
	}
	if err := d.Graph.Validate(); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrInvalidDataset, d.Name, err)
	}
	if err := d.Heuristic.Validate(); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrInvalidDataset, d.Name, err)
	}
	if goal := d.Heuristic.Goal(); goal != "" && !d.Graph.HasVertex(goal) {
		return fmt.Errorf("%w: %q: heuristic goal %q: %w", ErrInvalidDataset, d.Name, goal, core.ErrVertexNotFound)
	}

	return nil
}
