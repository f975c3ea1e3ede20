// internal/system/projectile.go
package system

import (
	"math"

	"serpentine-td/internal/component"
	"serpentine-td/internal/config"
	"serpentine-td/internal/entity"
	"serpentine-td/internal/event"
	"serpentine-td/internal/types"
	"serpentine-td/internal/utils"
)

// ProjectileSystem moves projectiles and resolves impacts: direct damage,
// AOE splash and chain re-targeting.
type ProjectileSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
}

func NewProjectileSystem(ecs *entity.ECS, dispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs, dispatcher: dispatcher}
}

func (s *ProjectileSystem) Update(dt float64) {
	for id, proj := range s.ecs.Projectiles {
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos {
			s.ecs.RemoveProjectile(id)
			continue
		}

		// Refresh the target snapshot while the target lives; a projectile
		// whose target died mid-flight is discarded.
		targetPos, targetAlive := s.ecs.Positions[proj.TargetID]
		if health, ok := s.ecs.Healths[proj.TargetID]; !ok || health.Value <= 0 {
			targetAlive = false
		}
		if !targetAlive {
			s.ecs.RemoveProjectile(id)
			continue
		}
		proj.TargetX = targetPos.X
		proj.TargetY = targetPos.Y

		dx := proj.TargetX - pos.X
		dy := proj.TargetY - pos.Y
		dist := math.Hypot(dx, dy)
		step := proj.Speed * dt

		if dist <= step || dist < config.ProjectileHitRadius {
			s.impact(id, proj, pos)
			continue
		}
		pos.X += dx / dist * step
		pos.Y += dy / dist * step
	}
}

func (s *ProjectileSystem) impact(id types.EntityID, proj *component.Projectile, at *component.Position) {
	if ApplyDamage(s.ecs, proj.TargetID, proj.Damage) {
		reportKill(s.ecs, s.dispatcher, proj.TargetID, proj.SourceID, proj.GoldBonus)
	}

	if proj.SplashRadius > 0 {
		s.splash(proj, at)
	}
	if proj.HopsLeft > 0 {
		s.chainHop(proj, at)
	}
	s.ecs.RemoveProjectile(id)
}

// splash applies reduced damage to every other enemy near the impact point.
func (s *ProjectileSystem) splash(proj *component.Projectile, at *component.Position) {
	radius := proj.SplashRadius * config.CellSize
	damage := proj.Damage * config.AoeDamageFactor
	for enemyID := range s.ecs.Enemies {
		if enemyID == proj.TargetID {
			continue
		}
		pos, hasPos := s.ecs.Positions[enemyID]
		if !hasPos || utils.Dist(at.X, at.Y, pos.X, pos.Y) > radius {
			continue
		}
		if ApplyDamage(s.ecs, enemyID, damage) {
			reportKill(s.ecs, s.dispatcher, enemyID, proj.SourceID, proj.GoldBonus)
		}
	}
}

// chainHop continues a chain at the nearest living enemy not yet hit,
// spawning a follow-up projectile from the impact point with decayed damage.
func (s *ProjectileSystem) chainHop(proj *component.Projectile, at *component.Position) {
	maxDist := config.ChainHopRadius * config.CellSize
	var next types.EntityID
	nextDist := math.MaxFloat64
	for enemyID := range s.ecs.Enemies {
		if proj.AlreadyHit[enemyID] {
			continue
		}
		pos, hasPos := s.ecs.Positions[enemyID]
		health, hasHealth := s.ecs.Healths[enemyID]
		if !hasPos || !hasHealth || health.Value <= 0 {
			continue
		}
		d := utils.Dist(at.X, at.Y, pos.X, pos.Y)
		if d <= maxDist && d < nextDist {
			nextDist = d
			next = enemyID
		}
	}
	if next == 0 {
		return
	}

	proj.AlreadyHit[next] = true
	hop := &component.Projectile{
		SourceID:   proj.SourceID,
		TargetID:   next,
		TargetX:    s.ecs.Positions[next].X,
		TargetY:    s.ecs.Positions[next].Y,
		Speed:      proj.Speed,
		Damage:     proj.Damage * config.ChainDamageDecay,
		HopsLeft:   proj.HopsLeft - 1,
		AlreadyHit: proj.AlreadyHit,
		GoldBonus:  proj.GoldBonus,
	}
	hopID := s.ecs.NewEntity()
	s.ecs.Positions[hopID] = &component.Position{X: at.X, Y: at.Y}
	s.ecs.Projectiles[hopID] = hop
	s.ecs.Renderables[hopID] = &component.Renderable{
		Color:  config.BeamColor,
		Radius: config.ProjectileRadius,
	}
}
