package strategy

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvsearch/builder"
	"github.com/katalvlaran/lvsearch/search"
	"github.com/katalvlaran/lvsearch/uninformed"
)

// Run validates req against ds and runs the selected strategy.
//
// Errors:
//   - ErrUnknownAlgorithm for a name outside the catalog.
//   - search.ErrGraphNil / search.ErrInvalidState for a bad dataset or state.
//   - uninformed.ErrNegativeLimit for Limit < 0.
//   - ErrNoHeuristic when an informed strategy meets a dataset without one.
//
// "No path" is not an error; see search.Report.Found.
func Run(ds builder.Dataset, req Request, opts ...search.Option) (*search.Report, error) {
	e, ok := lookup(req.Algorithm)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, req.Algorithm)
	}
	if err := search.Validate(ds.Graph, req.Start, req.Goal); err != nil {
		return nil, err
	}
	if req.Limit < 0 {
		return nil, fmt.Errorf("%w: %d", uninformed.ErrNegativeLimit, req.Limit)
	}

	return e.run(ds, req, opts)
}

// RunAll runs every strategy, in presentation order, from start to goal.
// Informed strategies are skipped when ds has no heuristic. Runs are
// sequential so each one's memory sample is its own.
func RunAll(ds builder.Dataset, start, goal string, limit int, opts ...search.Option) ([]*search.Report, error) {
	out := make([]*search.Report, 0, len(catalog))
	for _, e := range catalog {
		r, err := Run(ds, Request{Algorithm: e.name, Start: start, Goal: goal, Limit: limit}, opts...)
		switch {
		case err == nil:
			out = append(out, r)
		case errors.Is(err, ErrNoHeuristic):
			continue
		default:
			return out, fmt.Errorf("%s: %w", e.name, err)
		}
	}

	return out, nil
}
