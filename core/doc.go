// Package core provides the static weighted undirected Graph consumed by the
// search engine, together with the goal-relative Heuristic table and the 2-D
// layout coordinates used by renderers.
//
// A Graph is two tables kept side by side:
//
//   - adjacency: vertex ID → ordered neighbor IDs (graph-declaration order)
//   - weights:   ordered pair (u,v) → positive edge weight
//
// The declaration order of every adjacency row is preserved exactly as it was
// supplied. Search strategies iterate neighbors in that order, so it decides
// tie-breaks in BFS, DFS and every priority queue keyed by insertion order.
//
// Invariants (checked by Validate):
//
//   - every adjacency entry has a weight in at least one orientation
//   - when both orientations are present they carry the same weight
//   - weights are strictly positive
//   - every neighbor is itself a declared vertex
//
// A malformed Graph is a configuration-time error. Loaders call Validate once
// after construction; the search engine assumes a valid Graph and never
// mutates it, so a single Graph may be shared by concurrent searches.
//
// Example:
//
//	g := core.NewGraph()
//	_ = g.AddEdge("Arad", "Sibiu", 140)
//	_ = g.AddEdge("Sibiu", "Fagaras", 99)
//	if err := g.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//	w, _ := g.Weight("Sibiu", "Arad") // 140
package core
