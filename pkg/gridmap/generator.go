// pkg/gridmap/generator.go
package gridmap

import "math"

// Rand is the source of randomness for level generation. utils.PRNGService
// satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// GenConfig tunes level generation.
type GenConfig struct {
	Cols, Rows      int
	TurnBudget      int // segments before the path is forced straight at the exit
	MinSegment      int
	MaxSegment      int
	BuildableRadius int     // Manhattan distance from path cells that becomes buildable
	MinSeparation   float64 // minimum Euclidean entry/exit distance
	MaxTries        int     // endpoint placement attempts before falling back
	WallCount       int     // decorative walls sprinkled on leftover invalid cells
}

const (
	orientH = 1 << iota
	orientV
)

// Generate builds a grid with a turn-constrained serpentine path between two
// randomized edge points. The generator is best effort: when no winding
// segment fits it degrades to a direct route so it always terminates with a
// connected path.
func Generate(cfg GenConfig, rng Rand) *Grid {
	g := newEmptyGrid(cfg.Cols, cfg.Rows)
	g.Entry, g.Exit = pickEndpoints(cfg, rng)

	b := &pathBuilder{g: g, cfg: cfg, rng: rng, orient: make(map[Cell]uint8)}
	b.build()

	g.markBuildable(cfg.BuildableRadius)
	sprinkleWalls(g, cfg.WallCount, rng)
	return g
}

// pickEndpoints selects entry and exit on the grid edges, retrying until the
// Euclidean separation constraint holds or the attempt cap runs out.
func pickEndpoints(cfg GenConfig, rng Rand) (Cell, Cell) {
	entry := randomEdgeCell(cfg, rng)
	for try := 0; try < cfg.MaxTries; try++ {
		exit := randomEdgeCell(cfg, rng)
		dx := float64(exit.X - entry.X)
		dy := float64(exit.Y - entry.Y)
		if math.Hypot(dx, dy) >= cfg.MinSeparation {
			return entry, exit
		}
	}
	// Opposite midpoints always satisfy any sane separation.
	return Cell{0, cfg.Rows / 2}, Cell{cfg.Cols - 1, cfg.Rows / 2}
}

func randomEdgeCell(cfg GenConfig, rng Rand) Cell {
	switch rng.Intn(4) {
	case 0:
		return Cell{rng.Intn(cfg.Cols), 0}
	case 1:
		return Cell{rng.Intn(cfg.Cols), cfg.Rows - 1}
	case 2:
		return Cell{0, rng.Intn(cfg.Rows)}
	default:
		return Cell{cfg.Cols - 1, rng.Intn(cfg.Rows)}
	}
}

type pathBuilder struct {
	g      *Grid
	cfg    GenConfig
	rng    Rand
	orient map[Cell]uint8 // orientation bits of committed path cells
	cur    Cell
}

func (b *pathBuilder) build() {
	g := b.g
	b.cur = g.Entry
	b.mark(g.Entry, b.inwardOrient(g.Entry))

	horizontal := b.inwardOrient(g.Entry) == orientH
	budget := b.cfg.TurnBudget

	for budget > 0 {
		if b.cur == g.Exit {
			return
		}
		if !b.placeSegment(horizontal) {
			// Neither direction on this axis fits; one try on the other
			// axis before giving up on winding.
			if !b.placeSegment(!horizontal) {
				break
			}
		}
		horizontal = !horizontal
		budget--
	}
	b.directApproach()
}

// placeSegment tries both signs along one axis, preferring the one that heads
// toward the exit. Returns false when no segment of at least MinSegment cells
// can be committed.
func (b *pathBuilder) placeSegment(horizontal bool) bool {
	length := b.cfg.MinSegment + b.rng.Intn(b.cfg.MaxSegment-b.cfg.MinSegment+1)
	for _, sign := range b.signOrder(horizontal) {
		step := Cell{sign, 0}
		if !horizontal {
			step = Cell{0, sign}
		}
		seg, ok := b.traceSegment(step, length)
		if !ok {
			continue
		}
		for _, c := range seg {
			b.mark(c, orientBit(horizontal))
		}
		b.cur = seg[len(seg)-1]
		return true
	}
	return false
}

// signOrder yields the exit-ward sign first most of the time so the path
// drifts toward the goal while still winding.
func (b *pathBuilder) signOrder(horizontal bool) [2]int {
	toward := 1
	if horizontal {
		if b.g.Exit.X < b.cur.X {
			toward = -1
		}
	} else {
		if b.g.Exit.Y < b.cur.Y {
			toward = -1
		}
	}
	if b.rng.Float64() < 0.7 {
		return [2]int{toward, -toward}
	}
	return [2]int{-toward, toward}
}

// traceSegment walks from the current cell without committing anything. A
// cell already used by a perpendicular segment is a legal crossing; a cell
// already used in the same orientation rejects the whole segment.
func (b *pathBuilder) traceSegment(step Cell, length int) ([]Cell, bool) {
	seg := make([]Cell, 0, length)
	c := b.cur
	for i := 0; i < length; i++ {
		c = c.Add(step)
		if !b.g.Contains(c) {
			break
		}
		bit := orientBit(step.Y == 0)
		if b.orient[c]&bit != 0 {
			return nil, false
		}
		seg = append(seg, c)
		if c == b.g.Exit {
			break
		}
	}
	if len(seg) < b.cfg.MinSegment {
		return nil, false
	}
	return seg, true
}

// directApproach finishes the path with a plain L-shaped walk to the exit.
// Used when the turn budget is exhausted or no winding segment fits; overlap
// rules are relaxed here so termination is unconditional.
func (b *pathBuilder) directApproach() {
	for b.cur.X != b.g.Exit.X {
		step := Cell{1, 0}
		if b.g.Exit.X < b.cur.X {
			step.X = -1
		}
		b.cur = b.cur.Add(step)
		b.mark(b.cur, orientH)
	}
	for b.cur.Y != b.g.Exit.Y {
		step := Cell{0, 1}
		if b.g.Exit.Y < b.cur.Y {
			step.Y = -1
		}
		b.cur = b.cur.Add(step)
		b.mark(b.cur, orientV)
	}
}

// mark commits a cell to the path sequence and records its orientation.
func (b *pathBuilder) mark(c Cell, bit uint8) {
	prev := b.orient[c]
	b.orient[c] = prev | bit
	b.g.Path = append(b.g.Path, c)
	b.g.setType(c, CellPath)
	if prev != 0 && prev != bit {
		b.g.Tiles[c.Y][c.X].Crossing = true
	}
}

func (b *pathBuilder) inwardOrient(c Cell) uint8 {
	if c.X == 0 || c.X == b.g.Cols-1 {
		return orientH
	}
	return orientV
}

func orientBit(horizontal bool) uint8 {
	if horizontal {
		return orientH
	}
	return orientV
}

// sprinkleWalls converts a handful of leftover invalid cells into decorative
// walls. They were impassable already; this is flavor only.
func sprinkleWalls(g *Grid, count int, rng Rand) {
	if count <= 0 {
		return
	}
	var candidates []Cell
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			if g.Tiles[y][x].Type == CellInvalid {
				candidates = append(candidates, Cell{x, y})
			}
		}
	}
	for i := 0; i < count && len(candidates) > 0; i++ {
		j := rng.Intn(len(candidates))
		g.setType(candidates[j], CellWall)
		candidates[j] = candidates[len(candidates)-1]
		candidates = candidates[:len(candidates)-1]
	}
}
