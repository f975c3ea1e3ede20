// pkg/gridmap/grid.go
package gridmap

// CellType classifies a grid cell for building and pathing rules.
type CellType uint8

const (
	CellInvalid CellType = iota
	CellBuildable
	CellPath
	CellWall // decorative, impassable
)

// Cell is a grid coordinate.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (c Cell) Add(o Cell) Cell { return Cell{c.X + o.X, c.Y + o.Y} }

// ManhattanDist is the 4-directional step distance between two cells.
func (c Cell) ManhattanDist(o Cell) int {
	return abs(c.X-o.X) + abs(c.Y-o.Y)
}

// Neighbors returns the four orthogonally adjacent cells.
func (c Cell) Neighbors() [4]Cell {
	return [4]Cell{
		{c.X + 1, c.Y},
		{c.X - 1, c.Y},
		{c.X, c.Y + 1},
		{c.X, c.Y - 1},
	}
}

// Tile is the mutable state of a single cell.
type Tile struct {
	Type     CellType `json:"type"`
	Crossing bool     `json:"crossing,omitempty"` // path cell crossed by a perpendicular segment
}

// Grid is the playable field. The ordered Path runs from Entry to Exit; every
// consecutive pair of path cells is 4-directionally adjacent.
type Grid struct {
	Cols  int      `json:"cols"`
	Rows  int      `json:"rows"`
	Tiles [][]Tile `json:"tiles"` // indexed [y][x]
	Entry Cell     `json:"entry"`
	Exit  Cell     `json:"exit"`
	Path  []Cell   `json:"path"`

	blocked map[Cell]bool // tower-occupied cells, impassable for re-pathing
}

func newEmptyGrid(cols, rows int) *Grid {
	tiles := make([][]Tile, rows)
	for y := range tiles {
		tiles[y] = make([]Tile, cols)
	}
	return &Grid{
		Cols:    cols,
		Rows:    rows,
		Tiles:   tiles,
		blocked: make(map[Cell]bool),
	}
}

// NewOpenGrid returns a grid whose every cell is passable. Callers carve
// walls and blockers into it; the planner does not care about the
// path/buildable distinction.
func NewOpenGrid(cols, rows int) *Grid {
	g := newEmptyGrid(cols, rows)
	for y := range g.Tiles {
		for x := range g.Tiles[y] {
			g.Tiles[y][x].Type = CellBuildable
		}
	}
	return g
}

// Clone returns an independent deep copy, so callers can snapshot or adopt
// a grid without aliasing the live field.
func (g *Grid) Clone() *Grid {
	c := &Grid{
		Cols:    g.Cols,
		Rows:    g.Rows,
		Entry:   g.Entry,
		Exit:    g.Exit,
		Tiles:   make([][]Tile, len(g.Tiles)),
		Path:    append([]Cell(nil), g.Path...),
		blocked: make(map[Cell]bool, len(g.blocked)),
	}
	for y := range g.Tiles {
		c.Tiles[y] = append([]Tile(nil), g.Tiles[y]...)
	}
	for cell := range g.blocked {
		c.blocked[cell] = true
	}
	return c
}

// SetWall makes a cell permanently impassable.
func (g *Grid) SetWall(c Cell) { g.setType(c, CellWall) }

// Contains reports whether the cell lies inside the playable grid.
func (g *Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Cols && c.Y >= 0 && c.Y < g.Rows
}

// TileAt returns the tile for a cell; out-of-bounds cells read as invalid.
func (g *Grid) TileAt(c Cell) Tile {
	if !g.Contains(c) {
		return Tile{Type: CellInvalid}
	}
	return g.Tiles[c.Y][c.X]
}

func (g *Grid) setType(c Cell, t CellType) {
	if g.Contains(c) {
		g.Tiles[c.Y][c.X].Type = t
	}
}

// IsPassable reports whether a walker may occupy the cell: invalid cells,
// decorative walls and tower-occupied cells are impassable.
func (g *Grid) IsPassable(c Cell) bool {
	if !g.Contains(c) || g.blocked[c] {
		return false
	}
	switch g.Tiles[c.Y][c.X].Type {
	case CellInvalid, CellWall:
		return false
	}
	return true
}

// CanBuild reports whether a tower may be placed on the cell.
func (g *Grid) CanBuild(c Cell) bool {
	return g.Contains(c) && g.Tiles[c.Y][c.X].Type == CellBuildable && !g.blocked[c]
}

// SetBlocked marks or clears a cell as occupied by a structure.
func (g *Grid) SetBlocked(c Cell, blocked bool) {
	if !g.Contains(c) {
		return
	}
	if blocked {
		g.blocked[c] = true
	} else {
		delete(g.blocked, c)
	}
}

// Blocked reports whether a structure occupies the cell.
func (g *Grid) Blocked(c Cell) bool { return g.blocked[c] }

// markBuildable promotes invalid cells within the given Manhattan distance of
// any path cell.
func (g *Grid) markBuildable(radius int) {
	for _, p := range g.Path {
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				if abs(dx)+abs(dy) > radius {
					continue
				}
				c := Cell{p.X + dx, p.Y + dy}
				if g.Contains(c) && g.TileAt(c).Type == CellInvalid {
					g.setType(c, CellBuildable)
				}
			}
		}
	}
}

// RestoreBlocked rebuilds the blocked set after deserialization.
func (g *Grid) RestoreBlocked(cells []Cell) {
	g.blocked = make(map[Cell]bool, len(cells))
	for _, c := range cells {
		g.blocked[c] = true
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
