// Sentinel errors for the builder package.
//
// Callers branch with errors.Is; implementations attach context with %w.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is below the
// constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrConstructFailed indicates a nil constructor was passed to BuildGraph.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrInvalidDataset indicates a data set whose graph or heuristic violates its invariants.
var ErrInvalidDataset = errors.New("builder: invalid dataset")

// ErrEmptyGrid indicates a grid with no rows or no columns.
var ErrEmptyGrid = errors.New("builder: grid must have at least one row and one column")

// ErrNonRectangular indicates grid rows of differing lengths.
var ErrNonRectangular = errors.New("builder: all grid rows must have the same length")
