// internal/app/game.go
package app

import (
	"log"
	"math"

	"serpentine-td/internal/component"
	"serpentine-td/internal/config"
	"serpentine-td/internal/defs"
	"serpentine-td/internal/entity"
	"serpentine-td/internal/event"
	"serpentine-td/internal/system"
	"serpentine-td/internal/types"
	"serpentine-td/internal/utils"
	"serpentine-td/pkg/gridmap"
)

// Game owns the whole simulation state and advances it on a fixed timestep.
// Rendering and input live outside; nothing here touches ebiten.
type Game struct {
	Grid *gridmap.Grid
	ECS  *entity.ECS

	SupportSystem    *system.SupportSystem
	CombatSystem     *system.CombatSystem
	ProjectileSystem *system.ProjectileSystem
	WaveSystem       *system.WaveSystem
	MovementSystem   *system.MovementSystem
	EventDispatcher  *event.Dispatcher
	Rng              *utils.PRNGService

	Wave  int // ordinal of the next wave to start
	Gold  int
	Lives int
	Score int

	turnBudget  int
	accumulator float64
	gameTime    float64
	speed       int
	paused      bool
	gameOver    bool
}

// NewGame builds a fresh game around a generated level. Seed 0 randomizes.
func NewGame(seed int64) *Game {
	rng := utils.NewPRNGService(seed)
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()

	g := &Game{
		ECS:             ecs,
		EventDispatcher: dispatcher,
		Rng:             rng,
		Wave:            1,
		Gold:            config.StartingGold,
		Lives:           config.StartingLives,
		turnBudget:      config.BaseTurnBudget,
		speed:           1,
	}
	g.Grid = g.generateLevel()

	g.SupportSystem = system.NewSupportSystem(ecs)
	g.CombatSystem = system.NewCombatSystem(ecs, dispatcher)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, dispatcher)
	g.WaveSystem = system.NewWaveSystem(ecs, dispatcher)
	g.MovementSystem = system.NewMovementSystem(ecs)

	dispatcher.Subscribe(event.EnemyKilled, g)
	dispatcher.Subscribe(event.WaveEnded, g)
	return g
}

func (g *Game) generateLevel() *gridmap.Grid {
	return gridmap.Generate(gridmap.GenConfig{
		Cols:            config.GridCols,
		Rows:            config.GridRows,
		TurnBudget:      g.turnBudget,
		MinSegment:      config.MinSegmentLength,
		MaxSegment:      config.MaxSegmentLength,
		BuildableRadius: config.BuildableRadius,
		MinSeparation:   config.EntryExitSeparation,
		MaxTries:        config.MaxPlacementTries,
		WallCount:       config.GridCols * config.GridRows / 40,
	}, g.Rng)
}

// Update consumes a wall-clock frame delta. The simulation itself only ever
// advances in TickDuration steps; the speed setting multiplies how many
// steps a frame is worth, never the step size.
func (g *Game) Update(frameDelta float64) {
	if g.paused || g.gameOver {
		return
	}
	if frameDelta > config.MaxDeltaTime {
		frameDelta = config.MaxDeltaTime
	}
	g.accumulator += frameDelta * float64(g.speed)
	for g.accumulator >= config.TickDuration {
		g.accumulator -= config.TickDuration
		g.Step(config.TickDuration)
	}
}

// Step advances exactly one fixed tick.
func (g *Game) Step(dt float64) {
	g.gameTime += dt
	g.ECS.GameTime = g.gameTime

	if g.ECS.GameState.Phase == component.WavePhase {
		g.SupportSystem.Update(dt)
		g.CombatSystem.Update(dt)
		g.ProjectileSystem.Update(dt)
		g.WaveSystem.Update(dt)
		g.MovementSystem.Update(dt)
		g.cleanupDestroyedEntities()
	}
}

// StartWave switches to the wave phase and schedules the next wave's spawns.
func (g *Game) StartWave() {
	if g.ECS.GameState.Phase == component.WavePhase || g.gameOver {
		return
	}
	g.ECS.Wave = g.WaveSystem.StartWave(g.Wave, g.Grid.Path)
	g.ECS.GameState.Phase = component.WavePhase
}

// OnEvent implements event.Listener for the events the game loop reacts to.
func (g *Game) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled:
		info, ok := e.Data.(event.KillInfo)
		if !ok {
			return
		}
		def, found := defs.EnemyLibrary[info.DefID]
		if !found {
			return
		}
		g.Gold += int(math.Round(float64(def.Reward) * (1 + info.GoldBonus)))
		g.Score += def.Reward
		if tower, hasTower := g.ECS.Towers[info.TowerID]; hasTower {
			tower.Kills++
		}
	case event.WaveEnded:
		g.finishWave()
	}
}

func (g *Game) finishWave() {
	completed := g.Wave
	g.Gold += config.WaveClearBonus + completed*2
	g.Score += config.WaveClearBonus
	g.Wave++
	g.ECS.Wave = nil
	g.ECS.GameState.Phase = component.BuildPhase
	g.ClearProjectiles()

	// Every few waves the whole level is rebuilt with a bigger turn budget;
	// standing towers are bought back at full price.
	if completed%config.WavesPerRegenerate == 0 {
		g.rebuildLevel()
	}
}

func (g *Game) rebuildLevel() {
	for id, tower := range g.ECS.Towers {
		g.Gold += tower.TotalCost
		g.removeTowerEntity(id)
	}
	g.turnBudget++
	g.Grid = g.generateLevel()
	g.EventDispatcher.Dispatch(event.Event{Type: event.LevelRebuilt, Data: g.Wave})
	log.Printf("level rebuilt for wave %d, turn budget %d", g.Wave, g.turnBudget)
}

func (g *Game) cleanupDestroyedEntities() {
	for id, enemy := range g.ECS.Enemies {
		health, hasHealth := g.ECS.Healths[id]
		dead := hasHealth && health.Value <= 0

		if enemy.ReachedEnd && !dead {
			g.Lives--
			g.EventDispatcher.Dispatch(event.Event{Type: event.EnemyEscaped, Data: id})
		}
		if dead || enemy.ReachedEnd {
			g.ECS.RemoveEnemy(id)
		}
	}

	if g.Lives <= 0 && !g.gameOver {
		g.gameOver = true
		g.ClearEnemies()
		g.ClearProjectiles()
		g.EventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: g.Score})
	}
}

// --- accessors used by the front-end and persistence ---

func (g *Game) ClearEnemies() {
	for id := range g.ECS.Enemies {
		g.ECS.RemoveEnemy(id)
	}
}

func (g *Game) ClearProjectiles() {
	for id := range g.ECS.Projectiles {
		g.ECS.RemoveProjectile(id)
	}
}

func (g *Game) GameTime() float64 { return g.gameTime }
func (g *Game) IsPaused() bool    { return g.paused }
func (g *Game) IsGameOver() bool  { return g.gameOver }
func (g *Game) Speed() int        { return g.speed }
func (g *Game) TurnBudget() int   { return g.turnBudget }

func (g *Game) WaveInProgress() bool {
	return g.ECS.GameState.Phase == component.WavePhase
}

func (g *Game) TogglePause() { g.paused = !g.paused }

// CycleSpeed steps through the 1x/2x/3x simulation speeds.
func (g *Game) CycleSpeed() int {
	g.speed++
	if g.speed > config.MaxSpeedFactor {
		g.speed = 1
	}
	return g.speed
}

// TowerAt returns the tower entity occupying a cell.
func (g *Game) TowerAt(cell gridmap.Cell) (types.EntityID, *component.Tower, bool) {
	for id, tower := range g.ECS.Towers {
		if tower.Cell == cell {
			return id, tower, true
		}
	}
	return 0, nil, false
}
