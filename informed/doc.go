// Package informed implements four heuristic-guided search strategies over a
// core.Graph: greedy best-first, A*, iterative-deepening A* (IDA*) and
// recursive best-first search (RBFS).
//
// Each strategy takes a core.Heuristic next to the graph:
//
//	h := core.NewHeuristic("Bucharest", straightLine)
//	report, err := informed.AStar(g, h, "Arad", "Bucharest")
//
// The contract matches package uninformed: err reports invalid input only,
// report.Found() is the success signal and the metrics are filled on every
// return. A state missing from the heuristic table is estimated at 0.
//
// Ordering:
//
//	Greedy   min-heap on h(n); explored set; goal test on pop
//	AStar    min-heap on g(n)+h(n); explored set; goal test on pop
//	IDAStar  depth-first rounds bounded by f = g+h; bound raised to the
//	         smallest f that exceeded it
//	RBFS     depth-first with a backed-up f-limit from the best alternative
//
// AStar returns a cost-optimal path when h is admissible and consistent.
// IDAStar and RBFS are cost-optimal when h is admissible; both avoid states
// already on the current path, so they terminate on unreachable goals.
package informed
