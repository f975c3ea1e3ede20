// internal/defs/waves.go
package defs

import "serpentine-td/internal/config"

// SpawnEntry pairs an enemy type with how many of it a wave contains.
type SpawnEntry struct {
	EnemyID string
	Count   int
}

// Compose returns the enemy composition for a wave ordinal. Low waves send a
// single weak type, mid waves mix weak and medium enemies, and from wave 10
// every 5th wave is a boss wave with escorts.
func Compose(wave int) []SpawnEntry {
	switch {
	case wave <= 3:
		return []SpawnEntry{{"ENEMY_SCOUT", 4 + 2*wave}}
	case wave <= 6:
		return []SpawnEntry{
			{"ENEMY_SCOUT", 6 + wave},
			{"ENEMY_SOLDIER", wave - 2},
		}
	case wave <= 9:
		return []SpawnEntry{
			{"ENEMY_SCOUT", 6},
			{"ENEMY_RUNNER", wave - 4},
			{"ENEMY_SOLDIER", wave - 3},
		}
	case wave >= config.FirstBossWave && (wave-config.FirstBossWave)%config.BossWaveInterval == 0:
		return []SpawnEntry{
			{"ENEMY_SOLDIER", wave / 2},
			{"ENEMY_BOSS", 1 + (wave-config.FirstBossWave)/15},
		}
	default:
		return []SpawnEntry{
			{"ENEMY_SCOUT", 8},
			{"ENEMY_RUNNER", wave / 2},
			{"ENEMY_SOLDIER", wave / 2},
			{"ENEMY_BRUTE", wave / 4},
		}
	}
}
