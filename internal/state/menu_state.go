// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"serpentine-td/internal/config"
	"serpentine-td/internal/persistence"
)

// MenuState is the title screen.
type MenuState struct {
	sm    *StateMachine
	store persistence.Storage
}

func NewMenuState(sm *StateMachine, store persistence.Storage) *MenuState {
	return &MenuState{sm: sm, store: store}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.sm.SetState(NewGameState(m.sm, m.store))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := basicfont.Face7x13
	lines := []string{
		"SERPENTINE TD",
		"",
		"SPACE - new game      F8 - load in game",
		"Click a buildable cell to place the selected tower",
		"Right click sells, SPACE starts the wave",
	}
	y := config.ScreenHeight/2 - len(lines)*10
	for _, line := range lines {
		x := (config.ScreenWidth - len(line)*7) / 2
		text.Draw(screen, line, face, x, y, config.TextLightColor)
		y += 20
	}
}

func (m *MenuState) Exit() {}
