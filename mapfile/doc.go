// Package mapfile loads and saves search maps written in HCL.
//
// A map file declares cities, roads and an optional heuristic table:
//
//	name = "romania"
//	goal = "Bucharest"
//
//	city "Arad" {
//	  neighbors = ["Zerind", "Timisoara", "Sibiu"]
//	  position  = [0, 1.5]
//	  heuristic = 366
//	}
//
//	road "Arad" "Zerind" {
//	  distance = 75
//	}
//
// Roads are undirected. A city's neighbors attribute fixes the order in
// which its neighbors are expanded; without it the order is the order of
// the road blocks. position accepts a two-element list or an object with x
// and y. heuristic values are estimates to goal and require goal to be set.
//
// Load and Parse return a validated builder.Dataset; Encode writes one back.
package mapfile
