// internal/defs/enemies.go
package defs

import "image/color"

// EnemyDefinition holds the static data for one enemy type. Speed is in path
// cells per second; Armor is the fraction of incoming damage absorbed.
type EnemyDefinition struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Health  float64 `json:"health"`
	Speed   float64 `json:"speed"`
	Armor   float64 `json:"armor"`
	Reward  int     `json:"reward"`
	Boss    bool    `json:"boss,omitempty"`
	Visuals Visuals `json:"visuals"`
}

// EnemyLibrary is the catalog of all enemy types, keyed by ID.
var EnemyLibrary = map[string]EnemyDefinition{
	"ENEMY_SCOUT": {
		ID: "ENEMY_SCOUT", Name: "Scout", Health: 60, Speed: 0.7, Reward: 8,
		Visuals: Visuals{Color: color.RGBA{220, 60, 60, 255}, RadiusFactor: 0.22},
	},
	"ENEMY_RUNNER": {
		ID: "ENEMY_RUNNER", Name: "Runner", Health: 45, Speed: 1.2, Reward: 10,
		Visuals: Visuals{Color: color.RGBA{250, 120, 60, 255}, RadiusFactor: 0.18},
	},
	"ENEMY_SOLDIER": {
		ID: "ENEMY_SOLDIER", Name: "Soldier", Health: 140, Speed: 0.5, Armor: 0.1, Reward: 14,
		Visuals: Visuals{Color: color.RGBA{170, 50, 80, 255}, RadiusFactor: 0.26},
	},
	"ENEMY_BRUTE": {
		ID: "ENEMY_BRUTE", Name: "Brute", Health: 340, Speed: 0.35, Armor: 0.25, Reward: 28,
		Visuals: Visuals{Color: color.RGBA{130, 30, 60, 255}, RadiusFactor: 0.32},
	},
	"ENEMY_BOSS": {
		ID: "ENEMY_BOSS", Name: "Warlord", Health: 1600, Speed: 0.25, Armor: 0.3, Reward: 160, Boss: true,
		Visuals: Visuals{Color: color.RGBA{255, 130, 20, 255}, RadiusFactor: 0.4},
	},
}
