// internal/ui/info_panel.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"serpentine-td/internal/component"
	"serpentine-td/internal/config"
	"serpentine-td/internal/defs"
)

const (
	panelW = 250
	panelH = 130
)

// InfoPanel shows the selected tower's stats with upgrade and sell actions.
type InfoPanel struct {
	X, Y      float32
	Face      font.Face
	Visible   bool
	upgrade   *Button
	sell      *Button
}

func NewInfoPanel(face font.Face) *InfoPanel {
	x := float32(config.ScreenWidth - panelW - 10)
	y := float32(config.ScreenHeight - panelH - 10)
	return &InfoPanel{
		X:       x,
		Y:       y,
		Face:    face,
		upgrade: NewButton(x+10, y+panelH-40, 105, 30, "Upgrade", face),
		sell:    NewButton(x+panelW-115, y+panelH-40, 105, 30, "Sell", face),
	}
}

func (p *InfoPanel) Show() { p.Visible = true }
func (p *InfoPanel) Hide() { p.Visible = false }

// Contains reports whether a click lands on the panel while visible.
func (p *InfoPanel) Contains(mx, my int) bool {
	if !p.Visible {
		return false
	}
	x, y := float32(mx), float32(my)
	return x >= p.X && x <= p.X+panelW && y >= p.Y && y <= p.Y+panelH
}

func (p *InfoPanel) ClickedUpgrade(mx, my int) bool {
	return p.Visible && p.upgrade.Contains(mx, my)
}

func (p *InfoPanel) ClickedSell(mx, my int) bool {
	return p.Visible && p.sell.Contains(mx, my)
}

func (p *InfoPanel) Draw(screen *ebiten.Image, tower *component.Tower, upgradeCost, refund int) {
	if !p.Visible || tower == nil {
		return
	}
	def, ok := defs.TowerLibrary[tower.DefID]
	if !ok {
		return
	}

	vector.DrawFilledRect(screen, p.X, p.Y, panelW, panelH, config.PanelColor, false)
	vector.StrokeRect(screen, p.X, p.Y, panelW, panelH, 2, config.TextDarkColor, false)

	lines := []string{
		fmt.Sprintf("%s  Lv %d/%d", def.Name, tower.Level, config.MaxTowerLevel),
		fmt.Sprintf("Kills: %d", tower.Kills),
	}
	if def.Attack != nil {
		lines = append(lines, fmt.Sprintf("Damage %.0f  Range %.1f", def.Attack.Damage, def.Range))
	}
	ty := int(p.Y) + 22
	for _, line := range lines {
		text.Draw(screen, line, p.Face, int(p.X)+10, ty, config.TextLightColor)
		ty += 18
	}

	p.upgrade.Label = fmt.Sprintf("Upgrade $%d", upgradeCost)
	if tower.Level >= config.MaxTowerLevel {
		p.upgrade.Label = "Max level"
	}
	p.sell.Label = fmt.Sprintf("Sell $%d", refund)
	p.upgrade.Draw(screen)
	p.sell.Draw(screen)
}
