// grid.go - maze data sets built from character grids.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

// Grid cell characters.
const (
	GridOpen = '.'
	GridWall = '#'
)

// gridOffsets is the 4-connected neighbor order: up, right, down, left.
var gridOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// GridID formats the vertex ID of cell (x, y).
func GridID(x, y int) string {
	return fmt.Sprintf("%d,%d", x, y)
}

// Grid builds a maze data set from equal-length rows of GridOpen and
// GridWall cells. Every open cell becomes a vertex "x,y" (see GridID),
// linked with weight 1 to its open 4-neighbors in up, right, down, left
// order. Positions are the cell coordinates with y growing downwards, and
// the heuristic is the Manhattan distance to (goalX, goalY), which is
// admissible and consistent for unit steps.
//
// Errors: ErrEmptyGrid, ErrNonRectangular, or ErrInvalidDataset for an
// unknown cell character or a goal that is not an open cell.
func Grid(rows []string, goalX, goalY int) (Dataset, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Dataset{}, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for y, row := range rows {
		if len(row) != w {
			return Dataset{}, fmt.Errorf("row %d: %w", y, ErrNonRectangular)
		}
		for x := 0; x < w; x++ {
			if row[x] != GridOpen && row[x] != GridWall {
				return Dataset{}, fmt.Errorf("%w: cell %s is %q", ErrInvalidDataset, GridID(x, y), row[x])
			}
		}
	}
	open := func(x, y int) bool {
		return x >= 0 && x < w && y >= 0 && y < h && rows[y][x] == GridOpen
	}
	if !open(goalX, goalY) {
		return Dataset{}, fmt.Errorf("%w: goal %s is not an open cell", ErrInvalidDataset, GridID(goalX, goalY))
	}

	g := core.NewGraph(core.WithCapacity(w * h))
	pos := make(core.Positions)
	est := make(map[string]int64)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !open(x, y) {
				continue
			}
			id := GridID(x, y)
			nbrs := make([]string, 0, len(gridOffsets))
			for _, d := range gridOffsets {
				nx, ny := x+d[0], y+d[1]
				if !open(nx, ny) {
					continue
				}
				nid := GridID(nx, ny)
				nbrs = append(nbrs, nid)
				if err := g.SetWeight(id, nid, 1); err != nil {
					return Dataset{}, err
				}
			}
			if err := g.SetNeighbors(id, nbrs...); err != nil {
				return Dataset{}, err
			}
			pos[id] = core.Point{X: float64(x), Y: float64(y)}
			est[id] = int64(abs(x-goalX) + abs(y-goalY))
		}
	}

	ds := Dataset{
		Name:      fmt.Sprintf("grid-%dx%d", w, h),
		Graph:     g,
		Heuristic: core.NewHeuristic(GridID(goalX, goalY), est),
		Positions: pos,
	}
	if err := ds.Validate(); err != nil {
		return Dataset{}, err
	}

	return ds, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}
