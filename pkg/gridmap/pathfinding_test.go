package gridmap

import (
	"testing"
)

func TestAStarOpenGrid(t *testing.T) {
	tests := []struct {
		name        string
		start, goal Cell
		wantLen     int
	}{
		{"Straight line", Cell{0, 0}, Cell{5, 0}, 6},
		{"Diagonal corner", Cell{0, 0}, Cell{3, 4}, 8},
		{"Single step", Cell{2, 2}, Cell{2, 3}, 2},
		{"Start is goal", Cell{4, 4}, Cell{4, 4}, 1},
	}

	g := NewOpenGrid(10, 10)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := AStar(tt.start, tt.goal, g)
			if len(path) != tt.wantLen {
				t.Fatalf("Expected path length %d, got %d (%v)", tt.wantLen, len(path), path)
			}
			if path[0] != tt.start {
				t.Errorf("Expected path to begin at %v, got %v", tt.start, path[0])
			}
			if path[len(path)-1] != tt.goal {
				t.Errorf("Expected path to end at %v, got %v", tt.goal, path[len(path)-1])
			}
			assertAdjacent(t, path)
		})
	}
}

func TestAStarRoutesAroundObstacles(t *testing.T) {
	g := NewOpenGrid(10, 10)
	// Wall across column 5 with one gap at y=7.
	for y := 0; y < 10; y++ {
		if y != 7 {
			g.SetWall(Cell{5, y})
		}
	}

	path := AStar(Cell{0, 0}, Cell{9, 0}, g)
	assertAdjacent(t, path)
	foundGap := false
	for _, c := range path {
		if !g.IsPassable(c) {
			t.Errorf("Path crosses impassable cell %v", c)
		}
		if c == (Cell{5, 7}) {
			foundGap = true
		}
	}
	if !foundGap {
		t.Errorf("Expected path to go through the gap at (5,7), got %v", path)
	}
	// Shortest detour: down to the gap, across, back up.
	if want := 24; len(path) != want {
		t.Errorf("Expected detour of length %d, got %d", want, len(path))
	}
}

func TestAStarBlockedCellsAreAvoided(t *testing.T) {
	g := NewOpenGrid(5, 5)
	g.SetBlocked(Cell{2, 2}, true)

	path := AStar(Cell{0, 2}, Cell{4, 2}, g)
	for _, c := range path {
		if c == (Cell{2, 2}) {
			t.Fatalf("Path crosses blocked cell: %v", path)
		}
	}
	if len(path) != 7 {
		t.Errorf("Expected length 7 around the blocker, got %d", len(path))
	}
}

func TestAStarUnreachableReturnsFallback(t *testing.T) {
	g := NewOpenGrid(8, 8)
	for y := 0; y < 8; y++ {
		g.SetWall(Cell{4, y})
	}

	path := AStar(Cell{0, 0}, Cell{7, 7}, g)
	want := []Cell{{0, 0}, {7, 7}}
	if len(path) != 2 || path[0] != want[0] || path[1] != want[1] {
		t.Errorf("Expected degenerate fallback %v, got %v", want, path)
	}
}

func assertAdjacent(t *testing.T, path []Cell) {
	t.Helper()
	for i := 1; i < len(path); i++ {
		if path[i-1].ManhattanDist(path[i]) != 1 {
			t.Fatalf("Path cells %v and %v are not adjacent", path[i-1], path[i])
		}
	}
}
