// internal/ui/palette.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"

	"serpentine-td/internal/config"
	"serpentine-td/internal/defs"
)

// Palette is the tower build bar along the bottom edge. One button per
// tower variant; the selected variant is what a grid click will place.
type Palette struct {
	buttons  []*Button
	ids      []string
	Selected string
}

func NewPalette(face font.Face, order []string) *Palette {
	const (
		buttonW = 86
		buttonH = 34
		gap     = 6
	)
	p := &Palette{}
	x := float32(gap)
	y := float32(config.ScreenHeight - buttonH - gap)
	for _, id := range order {
		def, ok := defs.TowerLibrary[id]
		if !ok {
			continue
		}
		label := fmt.Sprintf("%s $%d", def.Name, def.Cost)
		p.buttons = append(p.buttons, NewButton(x, y, buttonW, buttonH, label, face))
		p.ids = append(p.ids, id)
		x += buttonW + gap
	}
	if len(p.ids) > 0 {
		p.Selected = p.ids[0]
	}
	return p
}

// HandleClick selects the variant under the cursor; reports whether the
// click landed on the palette at all.
func (p *Palette) HandleClick(mx, my int) bool {
	for i, b := range p.buttons {
		if b.Contains(mx, my) {
			p.Selected = p.ids[i]
			return true
		}
	}
	return false
}

func (p *Palette) Draw(screen *ebiten.Image) {
	for i, b := range p.buttons {
		b.Selected = p.ids[i] == p.Selected
		b.Draw(screen)
	}
}
