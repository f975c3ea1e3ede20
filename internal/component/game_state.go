// internal/component/game_state.go
package component

// Phase separates the build phase from the wave phase.
type Phase int

const (
	BuildPhase Phase = iota
	WavePhase
)

// GameState is the shared phase marker consulted by every system.
type GameState struct {
	Phase Phase
}
