// internal/utils/coords.go
package utils

import (
	"math"

	"serpentine-td/internal/config"
	"serpentine-td/pkg/gridmap"
)

// gridOffset centers the playable grid on the screen; everything outside it
// reads as decorative padding.
func gridOffset() (float64, float64) {
	ox := (float64(config.ScreenWidth) - float64(config.GridCols)*config.CellSize) / 2
	oy := (float64(config.ScreenHeight) - float64(config.GridRows)*config.CellSize) / 2
	return ox, oy
}

// CellToScreen returns the pixel center of a grid cell.
func CellToScreen(c gridmap.Cell) (float64, float64) {
	ox, oy := gridOffset()
	return ox + (float64(c.X)+0.5)*config.CellSize, oy + (float64(c.Y)+0.5)*config.CellSize
}

// ScreenToCell returns the grid cell containing a pixel position.
func ScreenToCell(x, y float64) gridmap.Cell {
	ox, oy := gridOffset()
	return gridmap.Cell{
		X: int(math.Floor((x - ox) / config.CellSize)),
		Y: int(math.Floor((y - oy) / config.CellSize)),
	}
}

// Dist is the Euclidean distance between two pixel positions.
func Dist(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}
