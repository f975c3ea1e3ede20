// internal/system/utils.go
package system

import (
	"serpentine-td/internal/defs"
	"serpentine-td/internal/entity"
	"serpentine-td/internal/event"
	"serpentine-td/internal/types"
)

// ApplyDamage deals damage to an entity after armor reduction and reports
// whether this hit killed it. Corrosion from support towers is subtracted
// from armor before the reduction; armor never absorbs more than 90%.
func ApplyDamage(ecs *entity.ECS, id types.EntityID, damage float64) bool {
	health, hasHealth := ecs.Healths[id]
	if !hasHealth || health.Value <= 0 {
		return false
	}

	reduction := 0.0
	if enemy, isEnemy := ecs.Enemies[id]; isEnemy {
		if def, ok := defs.EnemyLibrary[enemy.DefID]; ok {
			reduction = def.Armor - enemy.Corrosion
		}
	}
	if reduction < 0 {
		reduction = 0
	} else if reduction > 0.9 {
		reduction = 0.9
	}

	health.Value -= damage * (1 - reduction)
	if health.Value <= 0 {
		health.Value = 0
		return true
	}
	return false
}

// reportKill dispatches EnemyKilled with the firing tower attached so the
// game loop can award gold and count the kill.
func reportKill(ecs *entity.ECS, dispatcher *event.Dispatcher, enemyID, towerID types.EntityID, goldBonus float64) {
	defID := ""
	if enemy, ok := ecs.Enemies[enemyID]; ok {
		defID = enemy.DefID
	}
	dispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.KillInfo{
		EnemyID:   enemyID,
		TowerID:   towerID,
		DefID:     defID,
		GoldBonus: goldBonus,
	}})
}
