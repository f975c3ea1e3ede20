// internal/system/movement.go
package system

import (
	"serpentine-td/internal/entity"
	"serpentine-td/internal/utils"
)

// MovementSystem advances enemies along their paths by fractional edge
// progress and keeps their pixel positions in sync for range checks and
// rendering.
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

func (s *MovementSystem) Update(dt float64) {
	for id, enemy := range s.ecs.Enemies {
		path, hasPath := s.ecs.Paths[id]
		vel, hasVel := s.ecs.Velocities[id]
		pos, hasPos := s.ecs.Positions[id]
		if !hasPath || !hasVel || !hasPos {
			continue
		}
		if path.AtEnd() {
			enemy.ReachedEnd = true
			continue
		}

		// Path edges are unit length, so cells/second is progress/second.
		path.Progress += vel.Speed * enemy.SlowFactor * dt
		for path.Progress >= 1 && !path.AtEnd() {
			path.Progress -= 1
			path.Index++
		}
		if path.AtEnd() {
			path.Progress = 0
			enemy.ReachedEnd = true
			x, y := utils.CellToScreen(path.Cells[len(path.Cells)-1])
			pos.X, pos.Y = x, y
			continue
		}

		fx, fy := utils.CellToScreen(path.Cells[path.Index])
		tx, ty := utils.CellToScreen(path.Cells[path.Index+1])
		pos.X = fx + (tx-fx)*path.Progress
		pos.Y = fy + (ty-fy)*path.Progress
	}
}
