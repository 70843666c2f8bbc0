// Package strategy is the catalog that front ends use to pick a search
// strategy by name. It maps the eleven names
//
//	bfs dfs ucs dls ids backtracking bidirectional    (uninformed)
//	greedy astar idastar rbfs                         (informed)
//
// to the engine in packages uninformed and informed, validates requests
// against a builder.Dataset and supplies the dataset's heuristic to the
// informed strategies.
//
//	ds := builder.Romania()
//	r, err := strategy.Run(ds, strategy.Request{Algorithm: "astar", Start: "Arad", Goal: "Bucharest"})
//
// Names are matched case-insensitively; the display titles used in reports
// ("A*", "IDA*", "Bidirectional", ...) are accepted too.
package strategy
