// internal/worker/solver.go
package worker

import (
	"fmt"

	"serpentine-td/pkg/gridmap"
)

// Solve rebuilds a field from a request snapshot and runs the planner on it.
func Solve(req *FindPathRequest) (*PathResult, error) {
	if req.Cols <= 0 || req.Rows <= 0 {
		return nil, fmt.Errorf("invalid grid dimensions %dx%d", req.Cols, req.Rows)
	}
	grid := gridmap.NewOpenGrid(req.Cols, req.Rows)
	if !grid.Contains(req.Start) || !grid.Contains(req.Goal) {
		return nil, fmt.Errorf("start %v or goal %v outside %dx%d grid", req.Start, req.Goal, req.Cols, req.Rows)
	}
	for _, wall := range req.Walls {
		grid.SetWall(wall)
	}
	grid.RestoreBlocked(req.Blocked)

	path := gridmap.AStar(req.Start, req.Goal, grid)
	// An empty open set yields the two-point fallback; tell the fallback
	// apart from a genuine one-step route by adjacency. An adjacent goal
	// that is itself walled or occupied is still unreachable.
	found := len(path) > 2 ||
		(req.Start.ManhattanDist(req.Goal) <= 1 && grid.IsPassable(req.Goal))
	return &PathResult{
		RequestID: req.RequestID,
		Found:     found,
		Path:      path,
	}, nil
}

// SnapshotObstacles extracts the wall and blocker sets a request needs from
// a live grid.
func SnapshotObstacles(g *gridmap.Grid) (walls, blocked []gridmap.Cell) {
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			c := gridmap.Cell{X: x, Y: y}
			switch g.TileAt(c).Type {
			case gridmap.CellInvalid, gridmap.CellWall:
				walls = append(walls, c)
			}
			if g.Blocked(c) {
				blocked = append(blocked, c)
			}
		}
	}
	return walls, blocked
}
