package gridmap

import (
	"math/rand"
	"testing"
)

func testGenConfig() GenConfig {
	return GenConfig{
		Cols:            24,
		Rows:            16,
		TurnBudget:      6,
		MinSegment:      3,
		MaxSegment:      10,
		BuildableRadius: 2,
		MinSeparation:   12,
		MaxTries:        40,
		WallCount:       8,
	}
}

func TestGeneratePathInvariants(t *testing.T) {
	cfg := testGenConfig()
	for seed := int64(1); seed <= 25; seed++ {
		g := Generate(cfg, rand.New(rand.NewSource(seed)))

		if len(g.Path) < 2 {
			t.Fatalf("seed %d: path has %d cells", seed, len(g.Path))
		}
		if g.Path[0] != g.Entry {
			t.Errorf("seed %d: path starts at %v, entry is %v", seed, g.Path[0], g.Entry)
		}
		if g.Path[len(g.Path)-1] != g.Exit {
			t.Errorf("seed %d: path ends at %v, exit is %v", seed, g.Path[len(g.Path)-1], g.Exit)
		}
		assertAdjacent(t, g.Path)

		if !isEdgeCell(g, g.Entry) || !isEdgeCell(g, g.Exit) {
			t.Errorf("seed %d: endpoints %v/%v not on the grid edge", seed, g.Entry, g.Exit)
		}

		for _, c := range g.Path {
			if g.TileAt(c).Type != CellPath {
				t.Errorf("seed %d: path cell %v has type %v", seed, c, g.TileAt(c).Type)
			}
			if !g.IsPassable(c) {
				t.Errorf("seed %d: path cell %v not passable", seed, c)
			}
		}
	}
}

func TestGenerateBuildableSurroundsPath(t *testing.T) {
	cfg := testGenConfig()
	g := Generate(cfg, rand.New(rand.NewSource(7)))

	buildable := 0
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			if g.Tiles[y][x].Type != CellBuildable {
				continue
			}
			buildable++
			c := Cell{x, y}
			if !g.CanBuild(c) {
				t.Errorf("Buildable cell %v rejects building", c)
			}
			if nearest := nearestPathDist(g, c); nearest > cfg.BuildableRadius {
				t.Errorf("Buildable cell %v is %d from the path, radius is %d", c, nearest, cfg.BuildableRadius)
			}
		}
	}
	if buildable == 0 {
		t.Fatal("Expected some buildable cells around the path")
	}
}

func TestGenerateDeterministic(t *testing.T) {
	cfg := testGenConfig()
	a := Generate(cfg, rand.New(rand.NewSource(99)))
	b := Generate(cfg, rand.New(rand.NewSource(99)))

	if a.Entry != b.Entry || a.Exit != b.Exit {
		t.Fatalf("Endpoints differ: %v/%v vs %v/%v", a.Entry, a.Exit, b.Entry, b.Exit)
	}
	if len(a.Path) != len(b.Path) {
		t.Fatalf("Path lengths differ: %d vs %d", len(a.Path), len(b.Path))
	}
	for i := range a.Path {
		if a.Path[i] != b.Path[i] {
			t.Fatalf("Paths diverge at %d: %v vs %v", i, a.Path[i], b.Path[i])
		}
	}
}

func TestGenerateCrossingsArePerpendicular(t *testing.T) {
	cfg := testGenConfig()
	for seed := int64(1); seed <= 50; seed++ {
		g := Generate(cfg, rand.New(rand.NewSource(seed)))
		visits := make(map[Cell]int)
		for _, c := range g.Path {
			visits[c]++
		}
		for y := 0; y < g.Rows; y++ {
			for x := 0; x < g.Cols; x++ {
				c := Cell{x, y}
				if g.TileAt(c).Crossing && visits[c] < 2 {
					t.Errorf("seed %d: cell %v marked as crossing but visited %d times", seed, c, visits[c])
				}
			}
		}
	}
}

func TestBlockedRoundTrip(t *testing.T) {
	g := NewOpenGrid(6, 6)
	g.SetBlocked(Cell{1, 1}, true)
	g.SetBlocked(Cell{2, 3}, true)

	if !g.Blocked(Cell{1, 1}) || !g.Blocked(Cell{2, 3}) {
		t.Fatal("Expected cells to be blocked")
	}
	g.SetBlocked(Cell{1, 1}, false)
	if g.Blocked(Cell{1, 1}) {
		t.Error("Expected (1,1) to be unblocked again")
	}

	g.RestoreBlocked([]Cell{{4, 4}})
	if g.Blocked(Cell{2, 3}) {
		t.Error("RestoreBlocked should replace the previous set")
	}
	if !g.Blocked(Cell{4, 4}) {
		t.Error("Expected restored cell to be blocked")
	}
}

func isEdgeCell(g *Grid, c Cell) bool {
	return c.X == 0 || c.Y == 0 || c.X == g.Cols-1 || c.Y == g.Rows-1
}

func nearestPathDist(g *Grid, c Cell) int {
	best := g.Cols + g.Rows
	for _, p := range g.Path {
		if d := c.ManhattanDist(p); d < best {
			best = d
		}
	}
	return best
}
