// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	CellSize     = 36.0 // pixels per grid cell
	MaxDeltaTime = 0.06

	// Playable grid dimensions; decorative padding fills the rest of the
	// viewport around it.
	GridCols = 24
	GridRows = 16

	// Simulation advances in fixed steps; the speed setting changes how many
	// steps run per rendered frame, never the step size.
	TickDuration   = 1.0 / 60.0
	MaxSpeedFactor = 3

	StartingGold  = 100
	StartingLives = 20

	SellRefundRate = 0.7
	MaxTowerLevel  = 3

	// Level multipliers: damage scales by 1+DamagePerLevel*(level-1),
	// fire interval shrinks by 1/(1+RatePerLevel*(level-1)).
	DamagePerLevel = 0.5
	RatePerLevel   = 0.25

	// Effective fire interval never drops below this share of the base.
	MinFireIntervalFactor = 0.2

	ChainDamageDecay = 0.7
	ChainHopRadius   = 2.5 // cells a chain may jump to find its next target
	AoeDamageFactor  = 0.5

	// Path generation.
	BuildableRadius    = 2 // Manhattan distance from a path cell
	MinSegmentLength   = 3
	MaxSegmentLength   = 10
	BaseTurnBudget     = 6
	EntryExitSeparation = 12.0 // minimum Euclidean distance between entry and exit
	MaxPlacementTries  = 40

	// Waves.
	SpawnInterval       = 0.8 // seconds of simulation time between spawns
	WaveClearBonus      = 25
	WavesPerRegenerate  = 5 // level is rebuilt with turn budget +1
	BossWaveInterval    = 5
	FirstBossWave       = 10

	ProjectileSpeed      = 260.0 // pixels per second
	ProjectileHitRadius  = 8.0
	ProjectileRadius     = 4.0

	IndicatorOffsetX = 30
	IndicatorRadius  = 10.0
	SpeedButtonY     = 30
	SpeedButtonSize  = 18.0

	SaveSchemaVersion = 2
	DefaultSaveSlot   = "quicksave"
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	BuildableColor  = color.RGBA{70, 100, 120, 220}
	InvalidColor    = color.RGBA{40, 44, 56, 255}
	PathColor       = color.RGBA{160, 140, 90, 230}
	WallColor       = color.RGBA{95, 95, 105, 255}
	EntryColor      = color.RGBA{0, 255, 0, 255}
	ExitColor       = color.RGBA{255, 0, 0, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDarkColor   = color.RGBA{20, 20, 30, 255}
	EnemyColor      = color.RGBA{220, 60, 60, 255}
	BossColor       = color.RGBA{255, 130, 20, 255}
	RangeRingColor  = color.RGBA{240, 240, 240, 60}
	BeamColor       = color.RGBA{120, 220, 255, 200}

	BuildPhaseColor = color.RGBA{70, 130, 180, 255}
	WavePhaseColor  = color.RGBA{220, 60, 60, 255}
	PauseColor      = color.RGBA{194, 178, 128, 255}
	PlayColor       = color.RGBA{100, 200, 100, 255}
	PanelColor      = color.RGBA{30, 34, 46, 235}
	ButtonColor     = color.RGBA{60, 66, 84, 255}
	ButtonHoverColor = color.RGBA{85, 92, 115, 255}

	SpeedButtonColors = []color.Color{
		color.RGBA{70, 130, 180, 220},  // x1
		color.RGBA{220, 60, 60, 220},   // x2
		color.RGBA{194, 178, 128, 255}, // x3
	}
)
