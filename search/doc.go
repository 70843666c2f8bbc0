// Package search holds the building blocks shared by every search strategy:
//
//   - Tree/Node/Handle: an arena of search-tree nodes. Each node stores the
//     handle of its parent, so a path is recovered by walking parents from a
//     goal node back to the root. There are no forward links.
//   - Expand: produces a node's children from the graph, in adjacency order.
//   - Collector: wraps one invocation with a metrics.Span, running counters
//     and the expansion/generation logs, and fills a Report on every exit path.
//   - PriorityQueue: a lazy-deletion min-heap with insertion-order tie-breaks.
//   - Report: the outcome of one search, returned as data. "No path" and
//     "cutoff" are report values, never errors.
//   - ExtractPath / PathCost / PathCostExpression: report utilities for
//     presentation layers.
//
// Counting rules shared by all strategies:
//
//   - nodes_generated grows once per child produced by Expand, whether or not
//     the strategy keeps it.
//   - nodes_expanded grows once per node whose children are generated.
//   - expanded_list records every node taken for a goal test, in order; the
//     goal itself is logged but not counted as an expansion.
package search
