// internal/ui/button.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"serpentine-td/internal/config"
)

// Button is a clickable labeled rectangle.
type Button struct {
	X, Y, W, H float32
	Label      string
	Face       font.Face
	Selected   bool
}

func NewButton(x, y, w, h float32, label string, face font.Face) *Button {
	return &Button{X: x, Y: y, W: w, H: h, Label: label, Face: face}
}

// Contains reports whether a screen point falls inside the button.
func (b *Button) Contains(mx, my int) bool {
	x, y := float32(mx), float32(my)
	return x >= b.X && x <= b.X+b.W && y >= b.Y && y <= b.Y+b.H
}

func (b *Button) Draw(screen *ebiten.Image) {
	bg := config.ButtonColor
	mx, my := ebiten.CursorPosition()
	if b.Contains(mx, my) {
		bg = config.ButtonHoverColor
	}
	vector.DrawFilledRect(screen, b.X, b.Y, b.W, b.H, bg, false)
	border := color.Color(config.TextDarkColor)
	if b.Selected {
		border = config.TextLightColor
	}
	vector.StrokeRect(screen, b.X, b.Y, b.W, b.H, 2, border, false)

	bounds := text.BoundString(b.Face, b.Label)
	tx := int(b.X) + (int(b.W)-bounds.Dx())/2
	ty := int(b.Y) + (int(b.H)+bounds.Dy())/2
	text.Draw(screen, b.Label, b.Face, tx, ty, config.TextLightColor)
}
