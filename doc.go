// Package lvsearch is a graph-search engine over small weighted road maps,
// built to compare how classic strategies explore the same problem.
//
// What is inside?
//
//	Uninformed: breadth-first, depth-first, uniform-cost, depth-limited,
//	            iterative deepening, recursive backtracking, bidirectional BFS
//	Informed:   greedy best-first, A*, IDA*, recursive best-first (RBFS)
//
// Every run returns a search.Report carrying the path, its cost, elapsed
// time, peak memory, node counters and the exact expansion/generation order.
//
// Layout:
//
//	core/        Graph with ordered adjacency rows, Heuristic tables
//	builder/     deterministic constructors, the Romania map, maze grids
//	mapfile/     HCL map files (load and save)
//	metrics/     time and memory sampling
//	search/      search tree arena, Expand, priority queue, Report, path utilities
//	uninformed/  the seven blind strategies
//	informed/    the four heuristic strategies
//	strategy/    name → strategy catalog used by front ends
//	cmd/searchctl  command-line runner and comparison table
//	cmd/searchd    HTTP API for map renderers
//
// Quick example:
//
//	ds := builder.Romania()
//	r, _ := informed.AStar(ds.Graph, ds.Heuristic, "Arad", "Bucharest")
//	fmt.Println(r.Path, r.PathCost) // [Arad Sibiu Rimnicu Pitesti Bucharest] 418
package lvsearch
