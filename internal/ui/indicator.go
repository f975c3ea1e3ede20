// internal/ui/indicator.go
package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// StateIndicator is the phase lamp in the corner; clicking it during the
// build phase launches the next wave.
type StateIndicator struct {
	X, Y          float32
	Radius        float32
	LastClickTime time.Time
}

func NewStateIndicator(x, y, radius float32) *StateIndicator {
	return &StateIndicator{X: x, Y: y, Radius: radius}
}

func (i *StateIndicator) Draw(screen *ebiten.Image, clr color.Color) {
	vector.DrawFilledCircle(screen, i.X, i.Y, i.Radius, clr, true)
	vector.StrokeCircle(screen, i.X, i.Y, i.Radius, 2, color.White, true)
}

func (i *StateIndicator) Contains(mx, my int) bool {
	dx := float64(mx) - float64(i.X)
	dy := float64(my) - float64(i.Y)
	r := float64(i.Radius)
	return dx*dx+dy*dy <= r*r
}
