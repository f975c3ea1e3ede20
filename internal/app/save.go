// internal/app/save.go
package app

import (
	"fmt"
	"sort"

	"serpentine-td/internal/component"
	"serpentine-td/internal/config"
	"serpentine-td/internal/defs"
	"serpentine-td/internal/persistence"
	"serpentine-td/internal/save"
	"serpentine-td/internal/utils"
	"serpentine-td/pkg/gridmap"
)

// Snapshot captures the current game for persistence. Only build-phase
// state is recorded; a restore always lands between waves.
func (g *Game) Snapshot() *save.Snapshot {
	towers := make([]save.TowerRecord, 0, len(g.ECS.Towers))
	for _, tower := range g.ECS.Towers {
		towers = append(towers, save.TowerRecord{
			DefID:     tower.DefID,
			Cell:      tower.Cell,
			Level:     tower.Level,
			TotalCost: tower.TotalCost,
			Kills:     tower.Kills,
		})
	}
	sort.Slice(towers, func(i, j int) bool {
		if towers[i].Cell.Y != towers[j].Cell.Y {
			return towers[i].Cell.Y < towers[j].Cell.Y
		}
		return towers[i].Cell.X < towers[j].Cell.X
	})

	return &save.Snapshot{
		Version:    config.SaveSchemaVersion,
		Seed:       g.Rng.Seed(),
		Gold:       g.Gold,
		Lives:      g.Lives,
		Score:      g.Score,
		Wave:       g.Wave,
		TurnBudget: g.turnBudget,
		Speed:      g.speed,
		Grid:       g.Grid.Clone(),
		Towers:     towers,
	}
}

// Restore replaces the running game's state with a snapshot's. Enemies,
// projectiles and any wave in progress are discarded.
func (g *Game) Restore(s *save.Snapshot) error {
	s.ApplyDefaults()
	if err := s.Validate(); err != nil {
		return err
	}

	// Reject bad tower records before touching anything: a failed load
	// must leave the running game exactly as it was.
	cols, rows := config.GridCols, config.GridRows
	if s.Grid != nil {
		cols, rows = s.Grid.Cols, s.Grid.Rows
	}
	for _, record := range s.Towers {
		if _, ok := defs.TowerLibrary[record.DefID]; !ok {
			return fmt.Errorf("save references unknown tower %q", record.DefID)
		}
		if record.Cell.X < 0 || record.Cell.X >= cols || record.Cell.Y < 0 || record.Cell.Y >= rows {
			return fmt.Errorf("save places tower outside the grid at %v", record.Cell)
		}
	}

	g.ClearEnemies()
	g.ClearProjectiles()
	for id := range g.ECS.Towers {
		g.removeTowerEntity(id)
	}

	g.Gold = s.Gold
	g.Lives = s.Lives
	g.Score = s.Score
	g.Wave = s.Wave
	g.turnBudget = s.TurnBudget
	g.speed = s.Speed
	g.gameOver = false
	g.paused = false
	g.accumulator = 0
	g.ECS.Wave = nil
	g.ECS.GameState.Phase = component.BuildPhase

	if s.Grid != nil {
		// Clone so restoring the same snapshot twice, or restoring a
		// snapshot taken from a live game, never shares tile or blocker
		// state between fields.
		g.Grid = s.Grid.Clone()
	} else {
		g.Grid = g.generateLevel()
	}

	blocked := make([]gridmap.Cell, 0, len(s.Towers))
	for _, record := range s.Towers {
		def := defs.TowerLibrary[record.DefID]
		if record.Level < 1 {
			record.Level = 1
		}
		if record.Level > config.MaxTowerLevel {
			record.Level = config.MaxTowerLevel
		}
		if record.TotalCost < def.Cost {
			record.TotalCost = def.Cost
		}
		id := g.ECS.NewEntity()
		x, y := utils.CellToScreen(record.Cell)
		g.ECS.Positions[id] = &component.Position{X: x, Y: y}
		g.ECS.Towers[id] = &component.Tower{
			DefID:     record.DefID,
			Cell:      record.Cell,
			Level:     record.Level,
			TotalCost: record.TotalCost,
			Kills:     record.Kills,
		}
		g.ECS.Renderables[id] = &component.Renderable{
			Color:  def.Visuals.Color,
			Radius: float32(config.CellSize * def.Visuals.RadiusFactor),
		}
		if def.Attack != nil {
			g.ECS.Combats[id] = &component.Combat{Boost: component.NeutralBoost()}
		}
		blocked = append(blocked, record.Cell)
	}
	g.Grid.RestoreBlocked(blocked)
	return nil
}

// SaveTo writes the current state to a storage slot.
func (g *Game) SaveTo(store persistence.Storage, slot string) error {
	return store.Save(slot, g.Snapshot())
}

// LoadFrom restores state from a storage slot.
func (g *Game) LoadFrom(store persistence.Storage, slot string) error {
	snapshot, err := store.Load(slot)
	if err != nil {
		return err
	}
	return g.Restore(snapshot)
}

// Export packs the game into a base64 string suitable for sharing.
func (g *Game) Export() (string, error) {
	return g.Snapshot().Encode()
}

// Import restores the game from a base64 export.
func (g *Game) Import(encoded string) error {
	snapshot, err := save.Decode(encoded)
	if err != nil {
		return err
	}
	return g.Restore(snapshot)
}
