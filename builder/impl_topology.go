// impl_topology.go - Path, Cycle, Isolated, Edges and Tables constructors.
//
// Edge emission order is part of the contract: it fixes adjacency order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodIsolated = "Isolated"
	methodEdges    = "Edges"
	methodTables   = "Tables"

	minPathNodes  = 2
	minCycleNodes = 3
)

// Path builds a simple path P_n: edges (i-1)-i for i=1..n-1.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		for i := 1; i < n; i++ {
			u, v := cfg.idFn(i-1), cfg.idFn(i)
			if err := g.AddEdge(u, v, cfg.weight); err != nil {
				return fmt.Errorf("%s: AddEdge(%s,%s): %w", methodPath, u, v, err)
			}
		}

		return nil
	}
}

// Cycle builds a simple cycle C_n: the path edges plus the closing edge (n-1)-0.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		for i := 1; i <= n; i++ {
			u, v := cfg.idFn(i-1), cfg.idFn(i%n)
			if err := g.AddEdge(u, v, cfg.weight); err != nil {
				return fmt.Errorf("%s: AddEdge(%s,%s): %w", methodCycle, u, v, err)
			}
		}

		return nil
	}
}

// Isolated declares vertices with no incident edges.
func Isolated(ids ...string) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for _, id := range ids {
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%q): %w", methodIsolated, id, err)
			}
		}

		return nil
	}
}

// WeightedEdge is one explicit edge for the Edges constructor.
type WeightedEdge struct {
	U, V string
	W    int64
}

// Edges adds the given edges in list order.
func Edges(list ...WeightedEdge) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for _, e := range list {
			if err := g.AddEdge(e.U, e.V, e.W); err != nil {
				return fmt.Errorf("%s: AddEdge(%s,%s): %w", methodEdges, e.U, e.V, err)
			}
		}

		return nil
	}
}

// Row is one adjacency row for the Tables constructor.
type Row struct {
	ID        string
	Neighbors []string
}

// Tables loads raw adjacency rows (in the given order) and a weight table
// that may list one or both orientations of each edge.
func Tables(rows []Row, weights map[core.Pair]int64) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for _, r := range rows {
			if err := g.SetNeighbors(r.ID, r.Neighbors...); err != nil {
				return fmt.Errorf("%s: SetNeighbors(%q): %w", methodTables, r.ID, err)
			}
		}
		for p, w := range weights {
			if err := g.SetWeight(p.From, p.To, w); err != nil {
				return fmt.Errorf("%s: SetWeight(%s,%s): %w", methodTables, p.From, p.To, err)
			}
		}

		return nil
	}
}
