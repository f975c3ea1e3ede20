// internal/state/game_state.go
package state

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font/basicfont"

	"serpentine-td/internal/app"
	"serpentine-td/internal/config"
	"serpentine-td/internal/defs"
	"serpentine-td/internal/persistence"
	"serpentine-td/internal/system"
	"serpentine-td/internal/types"
	"serpentine-td/internal/ui"
	"serpentine-td/internal/utils"
)

const clickCooldown = 150 * time.Millisecond

// GameState is the playable screen: it routes input into the game core and
// draws the field each frame.
type GameState struct {
	sm   *StateMachine
	game *app.Game

	renderer  *system.RenderSystem
	palette   *ui.Palette
	infoPanel *ui.InfoPanel
	indicator *ui.StateIndicator
	speedBtn  *ui.SpeedButton
	pauseBtn  *ui.PauseButton

	store         persistence.Storage
	selectedTower types.EntityID
	hasSelection  bool
	message       string
	messageUntil  time.Time
	lastUIClick   time.Time
}

func NewGameState(sm *StateMachine, store persistence.Storage) *GameState {
	gameLogic := app.NewGame(0)
	face := basicfont.Face7x13

	return &GameState{
		sm:        sm,
		game:      gameLogic,
		renderer:  system.NewRenderSystem(gameLogic.ECS, gameLogic.CombatSystem),
		palette:   ui.NewPalette(face, defs.OrderedTowerIDs),
		infoPanel: ui.NewInfoPanel(face),
		indicator: ui.NewStateIndicator(
			float32(config.ScreenWidth-config.IndicatorOffsetX),
			float32(config.IndicatorOffsetX),
			float32(config.IndicatorRadius),
		),
		speedBtn: ui.NewSpeedButton(
			float32(config.ScreenWidth-config.IndicatorOffsetX*3),
			float32(config.SpeedButtonY),
			float32(config.SpeedButtonSize),
			config.SpeedButtonColors,
		),
		pauseBtn: ui.NewPauseButton(
			float32(config.ScreenWidth-config.IndicatorOffsetX*5),
			float32(config.SpeedButtonY),
			float32(config.SpeedButtonSize*0.6),
			config.PauseColor, config.PlayColor,
		),
		store: store,
	}
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	g.handleKeys()
	g.game.Update(deltaTime)
	g.pauseBtn.SetPaused(g.game.IsPaused())

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if g.isClickOnUI(x, y) {
			g.handleUIClick(x, y)
		} else {
			g.handleGameClick(x, y)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		x, y := ebiten.CursorPosition()
		g.handleSell(x, y)
	}
}

func (g *GameState) handleKeys() {
	if g.game.IsGameOver() && inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewMenuState(g.sm, g.store))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.game.StartWave()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.game.TogglePause()
		if g.game.IsPaused() {
			g.sm.SetState(NewPauseState(g.sm, g))
		}
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.speedBtn.SetState(g.game.CycleSpeed() - 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		if err := g.game.SaveTo(g.store, "quicksave"); err != nil {
			log.Printf("save failed: %v", err)
			g.flash("Save failed")
		} else {
			g.flash("Saved")
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF8) {
		if err := g.game.LoadFrom(g.store, "quicksave"); err != nil {
			log.Printf("load failed: %v", err)
			g.flash("Load failed")
		} else {
			g.clearSelection()
			g.flash("Loaded")
		}
	}
}

func (g *GameState) isClickOnUI(x, y int) bool {
	return g.speedBtn.Contains(x, y) ||
		g.pauseBtn.Contains(x, y) ||
		g.indicator.Contains(x, y) ||
		g.infoPanel.Contains(x, y) ||
		g.paletteContains(x, y)
}

func (g *GameState) paletteContains(x, y int) bool {
	// Probe without changing the selection.
	saved := g.palette.Selected
	hit := g.palette.HandleClick(x, y)
	g.palette.Selected = saved
	return hit
}

func (g *GameState) handleUIClick(x, y int) {
	if time.Since(g.lastUIClick) < clickCooldown {
		return
	}
	g.lastUIClick = time.Now()

	switch {
	case g.speedBtn.Contains(x, y):
		g.speedBtn.SetState(g.game.CycleSpeed() - 1)
	case g.pauseBtn.Contains(x, y):
		g.game.TogglePause()
		g.pauseBtn.Toggle()
		if g.game.IsPaused() {
			g.sm.SetState(NewPauseState(g.sm, g))
		}
	case g.indicator.Contains(x, y):
		g.game.StartWave()
		g.indicator.LastClickTime = time.Now()
	case g.infoPanel.ClickedUpgrade(x, y):
		if g.hasSelection && !g.game.UpgradeTower(g.selectedTower) {
			g.flash("Cannot upgrade")
		}
	case g.infoPanel.ClickedSell(x, y):
		if g.hasSelection && g.game.SellTower(g.selectedTower) {
			g.clearSelection()
		}
	default:
		g.palette.HandleClick(x, y)
	}
}

func (g *GameState) handleGameClick(x, y int) {
	cell := utils.ScreenToCell(float64(x), float64(y))
	if !g.game.Grid.Contains(cell) {
		g.clearSelection()
		return
	}

	if id, _, found := g.game.TowerAt(cell); found {
		g.selectedTower = id
		g.hasSelection = true
		g.infoPanel.Show()
		return
	}
	g.clearSelection()

	if !g.game.PlaceTower(g.palette.Selected, cell) {
		if def, ok := defs.TowerLibrary[g.palette.Selected]; ok && g.game.Gold < def.Cost {
			g.flash("Not enough gold")
		}
	}
}

func (g *GameState) handleSell(x, y int) {
	cell := utils.ScreenToCell(float64(x), float64(y))
	if id, _, found := g.game.TowerAt(cell); found {
		g.game.SellTower(id)
		if g.hasSelection && g.selectedTower == id {
			g.clearSelection()
		}
	}
}

func (g *GameState) clearSelection() {
	g.hasSelection = false
	g.infoPanel.Hide()
}

func (g *GameState) flash(msg string) {
	g.message = msg
	g.messageUntil = time.Now().Add(2 * time.Second)
}

func (g *GameState) Draw(screen *ebiten.Image) {
	hud := system.HUD{
		Gold:           g.game.Gold,
		Lives:          g.game.Lives,
		Score:          g.game.Score,
		Wave:           g.game.Wave,
		Speed:          g.game.Speed(),
		Paused:         g.game.IsPaused(),
		WaveInProgress: g.game.WaveInProgress(),
		SelectedDefID:  g.palette.Selected,
	}
	if time.Now().Before(g.messageUntil) {
		hud.Message = g.message
	}
	if g.game.IsGameOver() {
		hud.Message = "GAME OVER - F8 to load, ESC for menu"
	}
	g.renderer.Draw(screen, g.game.Grid, hud)

	phaseColor := config.BuildPhaseColor
	if g.game.WaveInProgress() {
		phaseColor = config.WavePhaseColor
	}
	g.indicator.Draw(screen, phaseColor)
	g.speedBtn.Draw(screen)
	g.pauseBtn.Draw(screen)
	g.palette.Draw(screen)

	if g.hasSelection {
		if tower, ok := g.game.ECS.Towers[g.selectedTower]; ok {
			def := defs.TowerLibrary[tower.DefID]
			g.infoPanel.Draw(screen, tower, app.UpgradeCost(def, tower.Level), app.SellRefund(tower.TotalCost))
		}
	}
}

func (g *GameState) Exit() {}

// Game exposes the core to the pause overlay.
func (g *GameState) Game() *app.Game { return g.game }
