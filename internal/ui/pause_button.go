// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PauseButton shows a pause glyph while running and a play glyph while
// paused.
type PauseButton struct {
	X, Y          float32
	Size          float32
	IsPaused      bool
	PauseColor    color.Color
	PlayColor     color.Color
	LastClickTime time.Time
}

func NewPauseButton(x, y, size float32, pauseColor, playColor color.Color) *PauseButton {
	return &PauseButton{X: x, Y: y, Size: size, PauseColor: pauseColor, PlayColor: playColor}
}

func (b *PauseButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	size := b.Size * float32(scale)

	if b.IsPaused {
		FillTriangle(screen, b.X-size, b.Y-size*1.2, b.X-size, b.Y+size*1.2, b.X+size, b.Y, b.PlayColor)
	} else {
		width := size * 0.6
		height := size * 2.0
		spacing := size * 0.4
		vector.DrawFilledRect(screen, b.X-width-spacing/2, b.Y-height/2, width, height, b.PauseColor, false)
		vector.DrawFilledRect(screen, b.X+spacing/2, b.Y-height/2, width, height, b.PauseColor, false)
	}
}

func (b *PauseButton) Contains(mx, my int) bool {
	dx := float64(mx) - float64(b.X)
	dy := float64(my) - float64(b.Y)
	r := float64(b.Size) * 1.5
	return dx*dx+dy*dy <= r*r
}

func (b *PauseButton) Toggle() {
	b.IsPaused = !b.IsPaused
	b.LastClickTime = time.Now()
}

func (b *PauseButton) SetPaused(paused bool) {
	b.IsPaused = paused
}
