package search

import (
	"fmt"
	"time"
)

// Outcome classifies how a search ended.
type Outcome int

const (
	// Fail means the reachable space was exhausted without reaching the goal.
	Fail Outcome = iota

	// Found means a goal node was reached.
	Found

	// Cutoff means a depth bound stopped the search before the goal was
	// reached; a larger bound might still succeed.
	Cutoff
)

// String returns FOUND, CUTOFF or FAIL.
func (o Outcome) String() string {
	switch o {
	case Found:
		return "FOUND"
	case Cutoff:
		return "CUTOFF"
	default:
		return "FAIL"
	}
}

// MarshalText encodes the outcome by name.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText decodes FOUND, CUTOFF or FAIL.
func (o *Outcome) UnmarshalText(b []byte) error {
	switch string(b) {
	case "FOUND":
		*o = Found
	case "CUTOFF":
		*o = Cutoff
	case "FAIL":
		*o = Fail
	default:
		return fmt.Errorf("search: unknown outcome %q", b)
	}

	return nil
}

// NoLimit marks an absent FoundLimit.
const NoLimit = -1

// Report is the result of one search invocation.
//
// GoalNode is NoHandle when the goal was not reached; that absence is the
// "no path" signal. Path and PathCost are filled whenever the goal was
// reached. For bidirectional search the stitched path is also materialised
// in Tree, so ExtractPath(Tree, GoalNode) agrees with Path.
type Report struct {
	Strategy string `json:"strategy"`
	Start    string `json:"start"`
	Goal     string `json:"goal"`

	Tree     *Tree  `json:"-"`
	GoalNode Handle `json:"-"`

	Outcome  Outcome  `json:"outcome"`
	Path     []string `json:"path"`
	PathCost int64    `json:"path_cost"`

	Elapsed    time.Duration `json:"elapsed_ns"`
	PeakMemory uint64        `json:"peak_memory"`

	NodesExpanded  int      `json:"nodes_expanded"`
	NodesGenerated int      `json:"nodes_generated"`
	ExpandedList   []string `json:"expanded_list"`
	GeneratedList  []string `json:"generated_list"`

	// Limit is the depth bound of a depth-limited run, or the maximum bound
	// tried by iterative deepening.
	Limit int `json:"limit,omitempty"`

	// FoundLimit is the bound at which iterative deepening succeeded;
	// NoLimit otherwise.
	FoundLimit int `json:"found_limit"`

	// Iterations counts deepening rounds (IDS) or threshold rounds (IDA*).
	Iterations int `json:"iterations,omitempty"`

	// Threshold is the last f-bound used by IDA*.
	Threshold int64 `json:"threshold,omitempty"`
}

// NewReport returns an empty, failed report with a fresh Tree.
func NewReport(strategy, start, goal string) *Report {
	return &Report{
		Strategy:      strategy,
		Start:         start,
		Goal:          goal,
		Tree:          NewTree(),
		GoalNode:      NoHandle,
		Outcome:       Fail,
		FoundLimit:    NoLimit,
		ExpandedList:  []string{},
		GeneratedList: []string{},
	}
}

// Found reports whether a goal node is present.
func (r *Report) Found() bool {
	return r != nil && r.GoalNode != NoHandle
}

// Node returns the goal node, if any.
func (r *Report) Node() (Node, bool) {
	if !r.Found() {
		return Node{}, false
	}

	return r.Tree.Node(r.GoalNode), true
}
