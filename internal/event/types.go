// internal/event/types.go
package event

import "serpentine-td/internal/types"

// KillInfo is the payload of EnemyKilled.
type KillInfo struct {
	EnemyID   types.EntityID
	TowerID   types.EntityID // 0 when the killer is unknown
	DefID     string
	GoldBonus float64 // extra gold fraction from mint support towers
}

const (
	WaveEnded      EventType = "WaveEnded"      // queue drained and field cleared
	TowerPlaced    EventType = "TowerPlaced"    // data: gridmap.Cell
	TowerSold      EventType = "TowerSold"      // data: gridmap.Cell
	EnemyKilled    EventType = "EnemyKilled"    // data: KillInfo
	EnemyEscaped   EventType = "EnemyEscaped"   // data: types.EntityID
	LevelRebuilt   EventType = "LevelRebuilt"   // periodic regeneration with a bigger turn budget
	GameOver       EventType = "GameOver"
)
