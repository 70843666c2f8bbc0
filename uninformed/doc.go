// Package uninformed implements seven blind search strategies over a
// core.Graph: breadth-first, depth-first, uniform-cost, depth-limited,
// iterative-deepening, recursive backtracking and bidirectional breadth-first.
//
// Every strategy has the same contract:
//
//	report, err := uninformed.BreadthFirst(g, "Arad", "Bucharest")
//
//   - err is non-nil only for invalid input (nil graph, unknown state,
//     negative limit). Callers are expected to validate beforehand with
//     search.Validate.
//   - "no path" and "cutoff" are data: report.Found() is false and
//     report.Outcome says FAIL or CUTOFF.
//   - report carries elapsed time, peak memory, nodes expanded/generated and
//     the ordered expansion/generation logs, on success and on failure.
//
// Frontier disciplines:
//
//	BreadthFirst        FIFO; explored set + live-frontier check; goal test on pop
//	DepthFirst          LIFO, children pushed in reverse adjacency order
//	UniformCost         min-heap on path cost, insertion-order ties, lazy deletion
//	DepthLimited        recursion bounded by depth; FOUND / CUTOFF / FAIL
//	IterativeDeepening  DepthLimited for limit = 0..maxLimit
//	Backtracking        recursion with one visited set, restored on return
//	Bidirectional       two FIFOs advanced alternately; meet on generation
//
// Complexity (b = branching factor, d = solution depth, m = max depth):
//
//	BFS, Bidirectional  O(b^d) time, O(b^d) space (b^(d/2) per side for Bidirectional)
//	DFS, Backtracking   O(b^m) time, O(m) recursion / O(b·m) stack
//	UCS                 O((V + E) log E) with lazy deletion
//	DLS, IDS            O(b^limit) per round
//
// All strategies are synchronous and single-threaded. The graph is only
// read, so different searches may run concurrently on one graph.
package uninformed
