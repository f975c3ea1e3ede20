// internal/system/render.go
package system

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"serpentine-td/internal/config"
	"serpentine-td/internal/defs"
	"serpentine-td/internal/entity"
	"serpentine-td/internal/utils"
	"serpentine-td/pkg/gridmap"
)

// HUD is the per-frame overlay data passed in by the game state.
type HUD struct {
	Gold, Lives, Score, Wave int
	Speed                    int
	Paused                   bool
	WaveInProgress           bool
	SelectedDefID            string // tower the player would place on click
	Message                  string // transient toast
}

// RenderSystem draws the grid, entities and HUD with ebiten's vector API.
type RenderSystem struct {
	ecs    *entity.ECS
	combat *CombatSystem
	face   font.Face
}

func NewRenderSystem(ecs *entity.ECS, combat *CombatSystem) *RenderSystem {
	return &RenderSystem{ecs: ecs, combat: combat, face: basicfont.Face7x13}
}

func (s *RenderSystem) Draw(screen *ebiten.Image, grid *gridmap.Grid, hud HUD) {
	screen.Fill(config.BackgroundColor)
	s.drawGrid(screen, grid)
	s.drawBeams(screen)
	s.drawEntities(screen)
	s.drawHUD(screen, hud)
}

func (s *RenderSystem) drawGrid(screen *ebiten.Image, grid *gridmap.Grid) {
	for y := 0; y < grid.Rows; y++ {
		for x := 0; x < grid.Cols; x++ {
			c := gridmap.Cell{X: x, Y: y}
			var fill color.RGBA
			switch grid.TileAt(c).Type {
			case gridmap.CellBuildable:
				fill = config.BuildableColor
			case gridmap.CellPath:
				fill = config.PathColor
			case gridmap.CellWall:
				fill = config.WallColor
			default:
				fill = config.InvalidColor
			}
			cx, cy := utils.CellToScreen(c)
			half := float32(config.CellSize/2) - 1
			vector.DrawFilledRect(screen, float32(cx)-half, float32(cy)-half, half*2, half*2, fill, false)
		}
	}

	ex, ey := utils.CellToScreen(grid.Entry)
	vector.DrawFilledCircle(screen, float32(ex), float32(ey), float32(config.CellSize*0.3), config.EntryColor, true)
	xx, xy := utils.CellToScreen(grid.Exit)
	vector.DrawFilledCircle(screen, float32(xx), float32(xy), float32(config.CellSize*0.3), config.ExitColor, true)
}

func (s *RenderSystem) drawBeams(screen *ebiten.Image) {
	for towerID, targetID := range s.combat.BeamTargets() {
		tower, hasTower := s.ecs.Towers[towerID]
		pos, hasPos := s.ecs.Positions[targetID]
		if !hasTower || !hasPos {
			continue
		}
		tx, ty := utils.CellToScreen(tower.Cell)
		vector.StrokeLine(screen, float32(tx), float32(ty), float32(pos.X), float32(pos.Y), 2, config.BeamColor, true)
	}
}

func (s *RenderSystem) drawEntities(screen *ebiten.Image) {
	for _, tower := range s.ecs.Towers {
		def, ok := defs.TowerLibrary[tower.DefID]
		if !ok {
			continue
		}
		cx, cy := utils.CellToScreen(tower.Cell)
		radius := float32(config.CellSize * def.Visuals.RadiusFactor)
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), radius, def.Visuals.Color, true)
		// level pips
		for i := 1; i < tower.Level; i++ {
			vector.DrawFilledCircle(screen, float32(cx)+float32(i-1)*5-2, float32(cy)-radius-4, 2, config.TextLightColor, true)
		}
	}

	for id, render := range s.ecs.Renderables {
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos {
			continue
		}
		if _, isTower := s.ecs.Towers[id]; isTower {
			continue
		}
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), render.Radius, render.Color, true)

		// health bar for damaged enemies
		if health, isAlive := s.ecs.Healths[id]; isAlive && health.Value < health.Max {
			w := float64(render.Radius) * 2
			frac := health.Value / health.Max
			x := float32(pos.X - w/2)
			y := float32(pos.Y) - render.Radius - 6
			vector.DrawFilledRect(screen, x, y, float32(w), 3, config.TextDarkColor, false)
			vector.DrawFilledRect(screen, x, y, float32(w*frac), 3, config.EntryColor, false)
		}
	}
}

func (s *RenderSystem) drawHUD(screen *ebiten.Image, hud HUD) {
	line := fmt.Sprintf("Gold %d   Lives %d   Score %d   Wave %d   Speed x%d", hud.Gold, hud.Lives, hud.Score, hud.Wave, hud.Speed)
	text.Draw(screen, line, s.face, 12, 20, config.TextLightColor)

	if hud.SelectedDefID != "" {
		if def, ok := defs.TowerLibrary[hud.SelectedDefID]; ok {
			text.Draw(screen, fmt.Sprintf("Placing: %s (%d gold)", def.Name, def.Cost), s.face, 12, 38, config.TextLightColor)
		}
	}
	switch {
	case hud.Paused:
		text.Draw(screen, "PAUSED", s.face, config.ScreenWidth/2-24, 20, config.TextLightColor)
	case !hud.WaveInProgress:
		text.Draw(screen, "Build phase - press SPACE to start the wave", s.face, config.ScreenWidth/2-150, 20, config.TextLightColor)
	}
	if hud.Message != "" {
		text.Draw(screen, hud.Message, s.face, 12, config.ScreenHeight-14, config.TextLightColor)
	}
}
