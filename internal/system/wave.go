// internal/system/wave.go
package system

import (
	"log"

	"serpentine-td/internal/component"
	"serpentine-td/internal/config"
	"serpentine-td/internal/defs"
	"serpentine-td/internal/entity"
	"serpentine-td/internal/event"
	"serpentine-td/internal/utils"
	"serpentine-td/pkg/gridmap"
)

// WaveSystem builds spawn queues from the wave composition table and feeds
// enemies into the field as their scheduled simulation time elapses.
type WaveSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	ended      bool // WaveEnded dispatched for the current wave
}

func NewWaveSystem(ecs *entity.ECS, dispatcher *event.Dispatcher) *WaveSystem {
	return &WaveSystem{ecs: ecs, dispatcher: dispatcher}
}

// StartWave schedules a wave's enemies at fixed intervals of simulation time
// starting now, following the given route.
func (s *WaveSystem) StartWave(number int, path []gridmap.Cell) *component.Wave {
	var queue []component.SpawnEvent
	offset := 0.0
	for _, entry := range defs.Compose(number) {
		for i := 0; i < entry.Count; i++ {
			queue = append(queue, component.SpawnEvent{
				EnemyID: entry.EnemyID,
				At:      s.ecs.GameTime + offset,
			})
			offset += config.SpawnInterval
		}
	}
	s.ended = false
	return &component.Wave{Number: number, Queue: queue, Path: path}
}

func (s *WaveSystem) Update(dt float64) {
	wave := s.ecs.Wave
	if wave == nil {
		return
	}

	for !wave.Exhausted() && wave.Queue[wave.Next].At <= s.ecs.GameTime {
		s.spawnEnemy(wave.Queue[wave.Next].EnemyID, wave.Path)
		wave.Next++
	}

	if wave.Exhausted() && len(s.ecs.Enemies) == 0 && !s.ended {
		s.ended = true
		s.dispatcher.Dispatch(event.Event{Type: event.WaveEnded, Data: wave.Number})
	}
}

func (s *WaveSystem) spawnEnemy(enemyID string, path []gridmap.Cell) {
	def, ok := defs.EnemyLibrary[enemyID]
	if !ok {
		log.Printf("wave: no enemy definition for %q, skipping spawn", enemyID)
		return
	}
	if len(path) < 2 {
		return
	}

	id := s.ecs.NewEntity()
	x, y := utils.CellToScreen(path[0])
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.Velocities[id] = &component.Velocity{Speed: def.Speed}
	s.ecs.Paths[id] = &component.PathFollow{Cells: path}
	s.ecs.Healths[id] = &component.Health{Value: def.Health, Max: def.Health}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:  def.Visuals.Color,
		Radius: float32(config.CellSize * def.Visuals.RadiusFactor),
	}
	s.ecs.Enemies[id] = &component.Enemy{DefID: enemyID, SlowFactor: 1}
}
