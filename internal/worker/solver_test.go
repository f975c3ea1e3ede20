package worker

import (
	"testing"

	"serpentine-td/pkg/gridmap"
)

func TestSolveOpenGrid(t *testing.T) {
	req := &FindPathRequest{
		RequestID: 7,
		Cols:      10,
		Rows:      10,
		Start:     gridmap.Cell{X: 0, Y: 0},
		Goal:      gridmap.Cell{X: 9, Y: 9},
	}
	result, err := Solve(req)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if result.RequestID != 7 {
		t.Errorf("Expected request id 7 echoed, got %d", result.RequestID)
	}
	if !result.Found {
		t.Fatal("Expected a route across an open grid")
	}
	if len(result.Path) != 19 {
		t.Errorf("Expected 19-cell route, got %d", len(result.Path))
	}
	if result.Path[0] != req.Start || result.Path[len(result.Path)-1] != req.Goal {
		t.Errorf("Route endpoints wrong: %v .. %v", result.Path[0], result.Path[len(result.Path)-1])
	}
}

func TestSolveRoutesAroundWalls(t *testing.T) {
	// Wall column at x=2 with a single gap at y=4.
	var walls []gridmap.Cell
	for y := 0; y < 5; y++ {
		if y != 4 {
			walls = append(walls, gridmap.Cell{X: 2, Y: y})
		}
	}
	req := &FindPathRequest{
		Cols:  5,
		Rows:  5,
		Start: gridmap.Cell{X: 0, Y: 0},
		Goal:  gridmap.Cell{X: 4, Y: 0},
		Walls: walls,
	}
	result, err := Solve(req)
	if err != nil {
		t.Fatal(err)
	}
	if !result.Found {
		t.Fatal("Expected a route through the gap")
	}
	// Detour through (2,4): 4 down, 4 across, 4 up.
	if len(result.Path) != 13 {
		t.Errorf("Expected 13-cell detour, got %d", len(result.Path))
	}
	for _, c := range result.Path {
		for _, w := range walls {
			if c == w {
				t.Errorf("Route passes through wall %v", w)
			}
		}
	}
}

func TestSolveSealedGoal(t *testing.T) {
	// Goal boxed in by blockers on all four sides.
	req := &FindPathRequest{
		Cols:  5,
		Rows:  5,
		Start: gridmap.Cell{X: 0, Y: 0},
		Goal:  gridmap.Cell{X: 3, Y: 3},
		Blocked: []gridmap.Cell{
			{X: 2, Y: 3}, {X: 4, Y: 3}, {X: 3, Y: 2}, {X: 3, Y: 4},
		},
	}
	result, err := Solve(req)
	if err != nil {
		t.Fatal(err)
	}
	if result.Found {
		t.Error("Expected no route to a sealed goal")
	}
}

func TestSolveAdjacentCells(t *testing.T) {
	req := &FindPathRequest{
		Cols:  5,
		Rows:  5,
		Start: gridmap.Cell{X: 1, Y: 1},
		Goal:  gridmap.Cell{X: 2, Y: 1},
	}
	result, err := Solve(req)
	if err != nil {
		t.Fatal(err)
	}
	if !result.Found {
		t.Error("Adjacent cells are always routable on an open grid")
	}
	if len(result.Path) != 2 {
		t.Errorf("Expected 2-cell route, got %d", len(result.Path))
	}
}

func TestSolveRejectsBadRequests(t *testing.T) {
	tests := []struct {
		name string
		req  FindPathRequest
	}{
		{"Zero columns", FindPathRequest{Cols: 0, Rows: 5}},
		{"Negative rows", FindPathRequest{Cols: 5, Rows: -1}},
		{"Start off grid", FindPathRequest{Cols: 5, Rows: 5, Start: gridmap.Cell{X: 9, Y: 0}}},
		{"Goal off grid", FindPathRequest{Cols: 5, Rows: 5, Goal: gridmap.Cell{X: 0, Y: -3}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Solve(&tt.req); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

func TestSnapshotObstaclesRoundTrip(t *testing.T) {
	g := gridmap.NewOpenGrid(6, 6)
	g.SetWall(gridmap.Cell{X: 1, Y: 1})
	g.SetWall(gridmap.Cell{X: 4, Y: 2})
	g.RestoreBlocked([]gridmap.Cell{{X: 2, Y: 5}})

	walls, blocked := SnapshotObstacles(g)
	if len(walls) != 2 {
		t.Errorf("Expected 2 walls, got %d: %v", len(walls), walls)
	}
	if len(blocked) != 1 || blocked[0] != (gridmap.Cell{X: 2, Y: 5}) {
		t.Errorf("Expected blocked [{2 5}], got %v", blocked)
	}

	rebuilt := gridmap.NewOpenGrid(6, 6)
	for _, w := range walls {
		rebuilt.SetWall(w)
	}
	rebuilt.RestoreBlocked(blocked)
	if rebuilt.TileAt(gridmap.Cell{X: 1, Y: 1}).Type != gridmap.CellWall {
		t.Error("Wall lost in round trip")
	}
	if !rebuilt.Blocked(gridmap.Cell{X: 2, Y: 5}) {
		t.Error("Blocker lost in round trip")
	}
}
