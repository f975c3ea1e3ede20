// internal/system/support.go
package system

import (
	"math"

	"serpentine-td/internal/component"
	"serpentine-td/internal/config"
	"serpentine-td/internal/defs"
	"serpentine-td/internal/entity"
	"serpentine-td/internal/types"
	"serpentine-td/internal/utils"
	"serpentine-td/pkg/gridmap"
)

// SupportSystem recomputes every passive effect from scratch each tick:
// support boosts on active towers, slow fields and armor corrosion on
// enemies. No caching, so placing or selling a support tower takes effect on
// the very next tick at the cost of an O(towers^2) scan.
type SupportSystem struct {
	ecs *entity.ECS
}

func NewSupportSystem(ecs *entity.ECS) *SupportSystem {
	return &SupportSystem{ecs: ecs}
}

func (s *SupportSystem) Update(dt float64) {
	for _, enemy := range s.ecs.Enemies {
		enemy.SlowFactor = 1
		enemy.Corrosion = 0
	}
	for _, combat := range s.ecs.Combats {
		combat.Boost = component.NeutralBoost()
	}

	for towerID, tower := range s.ecs.Towers {
		def, ok := defs.TowerLibrary[tower.DefID]
		if !ok {
			continue
		}
		switch {
		case def.Support != nil:
			s.applySupport(towerID, tower, def)
		case def.Slow != nil:
			s.applySlowField(tower, def)
		}
	}
}

func (s *SupportSystem) applySupport(supportID types.EntityID, tower *component.Tower, def defs.TowerDefinition) {
	sup := def.Support
	amount := sup.Amount * float64(tower.Level)

	if sup.Kind == defs.SupportCorrode {
		s.forEnemiesWithin(tower, sup.Radius, func(enemy *component.Enemy) {
			enemy.Corrosion += amount
		})
		return
	}

	for targetID, target := range s.ecs.Towers {
		if targetID == supportID {
			continue
		}
		combat, isActive := s.ecs.Combats[targetID]
		if !isActive {
			continue
		}
		if cellDist(tower.Cell, target.Cell) > sup.Radius {
			continue
		}
		switch sup.Kind {
		case defs.SupportDamage:
			combat.Boost.DamageMult *= 1 + amount
		case defs.SupportFireRate:
			combat.Boost.CooldownCut += amount
		case defs.SupportRange:
			combat.Boost.RangeBonus += amount
		case defs.SupportChain:
			combat.Boost.ExtraHops += int(sup.Amount) * tower.Level
		case defs.SupportGold:
			combat.Boost.GoldBonus += amount
		}
	}
}

// applySlowField slows every enemy the field touches. Overlapping fields do
// not stack below the strongest single field.
func (s *SupportSystem) applySlowField(tower *component.Tower, def defs.TowerDefinition) {
	factor := def.Slow.Factor
	s.forEnemiesWithin(tower, def.Range, func(enemy *component.Enemy) {
		if factor < enemy.SlowFactor {
			enemy.SlowFactor = factor
		}
	})
}

func (s *SupportSystem) forEnemiesWithin(tower *component.Tower, radius float64, apply func(*component.Enemy)) {
	tx, ty := utils.CellToScreen(tower.Cell)
	maxDist := radius * config.CellSize
	for enemyID, enemy := range s.ecs.Enemies {
		pos, ok := s.ecs.Positions[enemyID]
		if !ok {
			continue
		}
		if utils.Dist(tx, ty, pos.X, pos.Y) <= maxDist {
			apply(enemy)
		}
	}
}

// cellDist is the Euclidean distance between two cell centers, in cells.
func cellDist(a, b gridmap.Cell) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}
