// internal/component/movement.go
package component

import "serpentine-td/pkg/gridmap"

// Position is a pixel-space position.
type Position struct {
	X, Y float64
}

// Velocity carries base movement speed in path cells per second.
type Velocity struct {
	Speed float64
}

// PathFollow tracks interpolated movement along an ordered cell sequence.
// The walker is on the edge from Cells[Index] to Cells[Index+1], Progress of
// the way across it.
type PathFollow struct {
	Cells    []gridmap.Cell
	Index    int
	Progress float64
}

// Remaining is the path distance left to the final cell, in cells. Targeting
// treats the enemy with the smallest value as closest to breaching, which
// stays comparable across re-paths of different lengths.
func (p *PathFollow) Remaining() float64 {
	left := float64(len(p.Cells)-1-p.Index) - p.Progress
	if left < 0 {
		return 0
	}
	return left
}

// AtEnd reports whether the walker stands on the final cell.
func (p *PathFollow) AtEnd() bool {
	return p.Index >= len(p.Cells)-1
}
