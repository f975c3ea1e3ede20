// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpeedButton cycles the simulation speed. Drawn as a fast-forward glyph
// whose color tracks the current speed step.
type SpeedButton struct {
	X, Y          float32
	Size          float32
	StateColors   []color.Color
	CurrentState  int
	LastClickTime time.Time
}

func NewSpeedButton(x, y, size float32, stateColors []color.Color) *SpeedButton {
	return &SpeedButton{X: x, Y: y, Size: size, StateColors: stateColors}
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	// Brief pop after a click, decaying back to normal size.
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	size := b.Size * float32(scale)

	clr := b.StateColors[b.CurrentState%len(b.StateColors)]
	height := size * 1.2
	width := size
	offset := width * 0.8

	FillTriangle(screen, b.X-width, b.Y-height/2, b.X, b.Y, b.X-width, b.Y+height/2, clr)
	FillTriangle(screen, b.X-width+offset, b.Y-height/2, b.X+offset, b.Y, b.X-width+offset, b.Y+height/2, clr)
}

// Contains uses a circle hit area since the glyph is irregular.
func (b *SpeedButton) Contains(mx, my int) bool {
	dx := float64(mx) - float64(b.X)
	dy := float64(my) - float64(b.Y)
	r := float64(b.Size) * 1.5
	return dx*dx+dy*dy <= r*r
}

func (b *SpeedButton) SetState(state int) {
	b.CurrentState = state
	b.LastClickTime = time.Now()
}
