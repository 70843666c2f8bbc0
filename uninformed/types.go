package uninformed

import "errors"

// Strategy names, as reported in search.Report.Strategy.
const (
	NameBreadthFirst       = "bfs"
	NameDepthFirst         = "dfs"
	NameUniformCost        = "ucs"
	NameDepthLimited       = "dls"
	NameIterativeDeepening = "ids"
	NameBacktracking       = "backtracking"
	NameBidirectional      = "bidirectional"
)

// DefaultMaxLimit is the deepest bound IterativeDeepening tries by default.
const DefaultMaxLimit = 50

// ErrNegativeLimit is returned when a depth bound is below zero.
var ErrNegativeLimit = errors.New("uninformed: depth limit must be non-negative")
