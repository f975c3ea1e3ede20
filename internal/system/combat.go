// internal/system/combat.go
package system

import (
	"sort"

	"serpentine-td/internal/component"
	"serpentine-td/internal/config"
	"serpentine-td/internal/defs"
	"serpentine-td/internal/entity"
	"serpentine-td/internal/event"
	"serpentine-td/internal/types"
	"serpentine-td/internal/utils"
)

// CombatSystem drives tower targeting and firing. It dispatches on the
// tower's attack archetype; support and slow towers carry no Combat
// component and are handled by the SupportSystem.
type CombatSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher

	// beamTargets records which enemy each beam tower burned this tick, for
	// rendering only.
	beamTargets map[types.EntityID]types.EntityID
}

func NewCombatSystem(ecs *entity.ECS, dispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{
		ecs:         ecs,
		dispatcher:  dispatcher,
		beamTargets: make(map[types.EntityID]types.EntityID),
	}
}

// BeamTargets exposes this tick's beam tower -> enemy pairs to the renderer.
func (s *CombatSystem) BeamTargets() map[types.EntityID]types.EntityID {
	return s.beamTargets
}

// ForgetTower drops any per-tower bookkeeping for an entity that was sold.
func (s *CombatSystem) ForgetTower(id types.EntityID) {
	delete(s.beamTargets, id)
}

// EffectiveRange is the tower's base range plus any rangefinder bonus, in
// cells.
func EffectiveRange(def defs.TowerDefinition, boost component.SupportBoost) float64 {
	return def.Range + boost.RangeBonus
}

// EffectiveInterval is the seconds between shots after the tower's level and
// heat sink support are applied, floored at MinFireIntervalFactor of the
// base interval.
func EffectiveInterval(def defs.TowerDefinition, level int, boost component.SupportBoost) float64 {
	base := def.Attack.Interval
	interval := base / (1 + config.RatePerLevel*float64(level-1))
	interval *= 1 - boost.CooldownCut
	if floor := base * config.MinFireIntervalFactor; interval < floor {
		interval = floor
	}
	return interval
}

// EffectiveDamage is the per-shot (or per-second, for beams) damage after
// the tower's level and amplifier support are applied.
func EffectiveDamage(def defs.TowerDefinition, level int, boost component.SupportBoost) float64 {
	return def.Attack.Damage * (1 + config.DamagePerLevel*float64(level-1)) * boost.DamageMult
}

func (s *CombatSystem) Update(dt float64) {
	clear(s.beamTargets)

	for id, combat := range s.ecs.Combats {
		tower, hasTower := s.ecs.Towers[id]
		if !hasTower {
			continue
		}
		def, ok := defs.TowerLibrary[tower.DefID]
		if !ok || def.Attack == nil {
			continue
		}

		if def.Attack.Kind == defs.AttackBeam {
			s.burnBeam(id, tower, combat, def, dt)
			continue
		}

		if combat.FireCooldown > 0 {
			combat.FireCooldown -= dt
			continue
		}

		targets := s.targetsInRange(tower, EffectiveRange(def, combat.Boost))
		if len(targets) == 0 {
			continue // no valid target this tick, not an error
		}

		damage := EffectiveDamage(def, tower.Level, combat.Boost)
		switch def.Attack.Kind {
		case defs.AttackSingle:
			s.fireProjectile(id, targets[0], damage, def.Attack.SplashRadius, 0, combat.Boost)
		case defs.AttackMulti:
			limit := def.Attack.TargetCap
			if limit == 0 || limit > len(targets) {
				limit = len(targets)
			}
			for _, targetID := range targets[:limit] {
				s.fireProjectile(id, targetID, damage, 0, 0, combat.Boost)
			}
		case defs.AttackChain:
			hops := def.Attack.ChainHops + combat.Boost.ExtraHops
			s.fireProjectile(id, targets[0], damage, 0, hops, combat.Boost)
		}
		combat.FireCooldown = EffectiveInterval(def, tower.Level, combat.Boost)
	}
}

// burnBeam applies damage per second directly, no projectile entity and no
// cooldown.
func (s *CombatSystem) burnBeam(id types.EntityID, tower *component.Tower, combat *component.Combat, def defs.TowerDefinition, dt float64) {
	targets := s.targetsInRange(tower, EffectiveRange(def, combat.Boost))
	if len(targets) == 0 {
		return
	}
	target := targets[0]
	s.beamTargets[id] = target
	dps := EffectiveDamage(def, tower.Level, combat.Boost)
	if ApplyDamage(s.ecs, target, dps*dt) {
		reportKill(s.ecs, s.dispatcher, target, id, combat.Boost.GoldBonus)
	}
}

// targetsInRange returns living enemies within range, ordered by how close
// they are to breaching the exit.
func (s *CombatSystem) targetsInRange(tower *component.Tower, rangeCells float64) []types.EntityID {
	tx, ty := utils.CellToScreen(tower.Cell)
	maxDist := rangeCells * config.CellSize

	var ids []types.EntityID
	for enemyID := range s.ecs.Enemies {
		pos, hasPos := s.ecs.Positions[enemyID]
		health, hasHealth := s.ecs.Healths[enemyID]
		_, hasPath := s.ecs.Paths[enemyID]
		if !hasPos || !hasHealth || !hasPath || health.Value <= 0 {
			continue
		}
		if utils.Dist(tx, ty, pos.X, pos.Y) <= maxDist {
			ids = append(ids, enemyID)
		}
	}
	sort.Slice(ids, func(i, j int) bool {
		return s.ecs.Paths[ids[i]].Remaining() < s.ecs.Paths[ids[j]].Remaining()
	})
	return ids
}

func (s *CombatSystem) fireProjectile(towerID, targetID types.EntityID, damage, splashRadius float64, hops int, boost component.SupportBoost) {
	tower := s.ecs.Towers[towerID]
	targetPos := s.ecs.Positions[targetID]
	tx, ty := utils.CellToScreen(tower.Cell)

	proj := &component.Projectile{
		SourceID:     towerID,
		TargetID:     targetID,
		TargetX:      targetPos.X,
		TargetY:      targetPos.Y,
		Speed:        config.ProjectileSpeed,
		Damage:       damage,
		SplashRadius: splashRadius,
		GoldBonus:    boost.GoldBonus,
	}
	if hops > 0 {
		proj.HopsLeft = hops
		proj.AlreadyHit = map[types.EntityID]bool{targetID: true}
	}

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: tx, Y: ty}
	s.ecs.Projectiles[id] = proj
	s.ecs.Renderables[id] = &component.Renderable{
		Color:  defs.TowerLibrary[tower.DefID].Visuals.Color,
		Radius: config.ProjectileRadius,
	}
}
