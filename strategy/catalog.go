package strategy

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvsearch/builder"
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/informed"
	"github.com/katalvlaran/lvsearch/search"
	"github.com/katalvlaran/lvsearch/uninformed"
)

// Kind separates blind strategies from heuristic-guided ones.
type Kind string

const (
	Uninformed Kind = "uninformed"
	Informed   Kind = "informed"
)

// DefaultLimit is the DLS bound and the IDS maximum used when a Request
// leaves Limit at zero.
const DefaultLimit = 10

var (
	// ErrUnknownAlgorithm is returned for a name that is not in the catalog.
	ErrUnknownAlgorithm = errors.New("strategy: unknown algorithm")

	// ErrNoHeuristic is returned when an informed strategy is requested on a
	// dataset without a heuristic table.
	ErrNoHeuristic = errors.New("strategy: dataset has no heuristic")
)

// Request selects a strategy and its endpoints.
type Request struct {
	Algorithm string `json:"algorithm"`
	Start     string `json:"start"`
	Goal      string `json:"goal"`

	// Limit is the DLS bound or the IDS maximum; other strategies ignore it.
	// Zero means DefaultLimit.
	Limit int `json:"limit,omitempty"`
}

type runFunc func(ds builder.Dataset, req Request, opts []search.Option) (*search.Report, error)

// entry is one catalog row.
type entry struct {
	name  string
	title string
	kind  Kind
	run   runFunc
}

// catalog is in presentation order.
var catalog = []entry{
	{uninformed.NameBreadthFirst, "BFS", Uninformed, plain(uninformed.BreadthFirst)},
	{uninformed.NameDepthFirst, "DFS", Uninformed, plain(uninformed.DepthFirst)},
	{uninformed.NameUniformCost, "UCS", Uninformed, plain(uninformed.UniformCost)},
	{uninformed.NameDepthLimited, "DLS", Uninformed, bounded(uninformed.DepthLimited)},
	{uninformed.NameIterativeDeepening, "IDS", Uninformed, bounded(uninformed.IterativeDeepening)},
	{uninformed.NameBacktracking, "Backtracking", Uninformed, plain(uninformed.Backtracking)},
	{uninformed.NameBidirectional, "Bidirectional", Uninformed, plain(uninformed.Bidirectional)},
	{informed.NameGreedy, "Greedy", Informed, guided(informed.Greedy)},
	{informed.NameAStar, "A*", Informed, guided(informed.AStar)},
	{informed.NameIDAStar, "IDA*", Informed, guided(informed.IDAStar)},
	{informed.NameRBFS, "RBFS", Informed, guided(informed.RBFS)},
}

func plain(fn func(g *core.Graph, start, goal string, opts ...search.Option) (*search.Report, error)) runFunc {
	return func(ds builder.Dataset, req Request, opts []search.Option) (*search.Report, error) {
		return fn(ds.Graph, req.Start, req.Goal, opts...)
	}
}

func bounded(fn func(g *core.Graph, start, goal string, limit int, opts ...search.Option) (*search.Report, error)) runFunc {
	return func(ds builder.Dataset, req Request, opts []search.Option) (*search.Report, error) {
		limit := req.Limit
		if limit == 0 {
			limit = DefaultLimit
		}

		return fn(ds.Graph, req.Start, req.Goal, limit, opts...)
	}
}

func guided(fn func(g *core.Graph, h core.Heuristic, start, goal string, opts ...search.Option) (*search.Report, error)) runFunc {
	return func(ds builder.Dataset, req Request, opts []search.Option) (*search.Report, error) {
		if ds.Heuristic.Goal() == "" && ds.Heuristic.Len() == 0 {
			return nil, fmt.Errorf("%w: %q", ErrNoHeuristic, ds.Name)
		}

		return fn(ds.Graph, ds.Heuristic, req.Start, req.Goal, opts...)
	}
}

func lookup(name string) (entry, bool) {
	for _, e := range catalog {
		if strings.EqualFold(name, e.name) || strings.EqualFold(name, e.title) {
			return e, true
		}
	}

	return entry{}, false
}

// Names returns the canonical strategy names in presentation order.
func Names() []string {
	out := make([]string, len(catalog))
	for i, e := range catalog {
		out[i] = e.name
	}

	return out
}

// NamesOf returns the canonical names of one kind, in presentation order.
func NamesOf(k Kind) []string {
	var out []string
	for _, e := range catalog {
		if e.kind == k {
			out = append(out, e.name)
		}
	}

	return out
}

// Canonical resolves a name or title to its canonical name.
func Canonical(name string) (string, bool) {
	e, ok := lookup(name)

	return e.name, ok
}

// KindOf reports whether name is uninformed or informed.
func KindOf(name string) (Kind, bool) {
	e, ok := lookup(name)

	return e.kind, ok
}

// Title returns the display title of name, e.g. "A*" for "astar".
func Title(name string) string {
	if e, ok := lookup(name); ok {
		return e.title
	}

	return name
}
