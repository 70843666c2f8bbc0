// Package builder assembles core.Graph fixtures and data sets deterministically.
//
// One orchestrator, BuildGraph(gopts, bopts, cons...), creates a graph,
// resolves the builder configuration and runs each Constructor in order.
// Constructors emit vertices and edges in a stable, documented order, so the
// adjacency rows (and therefore every search tie-break) are reproducible.
//
// The package also ships the sample data set searched by the command-line and
// HTTP front ends: Romania(), the classic road map with straight-line
// distances to Bucharest as heuristic and a 2-D layout for renderers.
//
// Constructors:
//
//	Path(n)          simple path 0-1-…-(n-1)
//	Cycle(n)         simple cycle C_n
//	Isolated(ids...) vertices with no edges
//	Edges(list...)   explicit weighted edges, in list order
//	Tables(adj, w)   raw adjacency rows + weight table
package builder
