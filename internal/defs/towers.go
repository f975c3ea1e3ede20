// internal/defs/towers.go
package defs

import "image/color"

// AttackDef describes how an active tower fires. Damage is per shot, except
// for AttackBeam where it is damage per second.
type AttackDef struct {
	Kind      AttackKind `json:"kind"`
	Damage    float64    `json:"damage"`
	Interval  float64    `json:"interval"`               // seconds between shots; unused by BEAM
	SplashRadius float64 `json:"splash_radius,omitempty"` // >0 applies reduced AOE damage on impact
	TargetCap int        `json:"target_cap,omitempty"`    // MULTI only; 0 means every target in range
	ChainHops int        `json:"chain_hops,omitempty"`    // CHAIN only; extra targets after the first hit
}

// SupportDef describes a passive support tower. Amount scales with the
// support tower's level; its meaning depends on Kind.
type SupportDef struct {
	Kind   SupportKind `json:"kind"`
	Radius float64     `json:"radius"`
	Amount float64     `json:"amount"`
}

// SlowDef describes a slow-field tower: enemies inside Range move at Factor
// of their base speed while the field touches them.
type SlowDef struct {
	Factor float64 `json:"factor"`
}

// Visuals holds rendering parameters for a tower or enemy.
type Visuals struct {
	Color        color.RGBA `json:"color"`
	RadiusFactor float64    `json:"radius_factor"`
}

// TowerDefinition holds the static data for one tower variant. Exactly one
// of Attack, Support or Slow is set.
type TowerDefinition struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Cost    int         `json:"cost"`
	Range   float64     `json:"range"` // cells; 0 for pure support towers
	Attack  *AttackDef  `json:"attack,omitempty"`
	Support *SupportDef `json:"support,omitempty"`
	Slow    *SlowDef    `json:"slow,omitempty"`
	Visuals Visuals     `json:"visuals"`
}

// IsSupport reports whether the tower is a passive support variant.
func (d TowerDefinition) IsSupport() bool { return d.Support != nil }

// TowerLibrary is the catalog of all tower variants, keyed by ID.
var TowerLibrary = map[string]TowerDefinition{
	"TOWER_SHOOTER": {
		ID: "TOWER_SHOOTER", Name: "Shooter", Cost: 50, Range: 3,
		Attack:  &AttackDef{Kind: AttackSingle, Damage: 10, Interval: 0.8},
		Visuals: Visuals{Color: color.RGBA{90, 180, 255, 255}, RadiusFactor: 0.32},
	},
	"TOWER_SNIPER": {
		ID: "TOWER_SNIPER", Name: "Sniper", Cost: 120, Range: 6,
		Attack:  &AttackDef{Kind: AttackSingle, Damage: 40, Interval: 2.5},
		Visuals: Visuals{Color: color.RGBA{60, 120, 200, 255}, RadiusFactor: 0.3},
	},
	"TOWER_MINIGUN": {
		ID: "TOWER_MINIGUN", Name: "Minigun", Cost: 110, Range: 2,
		Attack:  &AttackDef{Kind: AttackSingle, Damage: 4, Interval: 0.15},
		Visuals: Visuals{Color: color.RGBA{140, 200, 255, 255}, RadiusFactor: 0.34},
	},
	"TOWER_CANNON": {
		ID: "TOWER_CANNON", Name: "Cannon", Cost: 140, Range: 3,
		Attack:  &AttackDef{Kind: AttackSingle, Damage: 18, Interval: 1.6, SplashRadius: 1.5},
		Visuals: Visuals{Color: color.RGBA{200, 160, 90, 255}, RadiusFactor: 0.38},
	},
	"TOWER_FROST": {
		ID: "TOWER_FROST", Name: "Frost Field", Cost: 90, Range: 2.5,
		Slow:    &SlowDef{Factor: 0.55},
		Visuals: Visuals{Color: color.RGBA{120, 220, 255, 255}, RadiusFactor: 0.3},
	},
	"TOWER_TESLA": {
		ID: "TOWER_TESLA", Name: "Tesla Coil", Cost: 150, Range: 3,
		Attack:  &AttackDef{Kind: AttackChain, Damage: 14, Interval: 1.2, ChainHops: 3},
		Visuals: Visuals{Color: color.RGBA{190, 120, 255, 255}, RadiusFactor: 0.34},
	},
	"TOWER_SCATTER": {
		ID: "TOWER_SCATTER", Name: "Scatter", Cost: 130, Range: 2.5,
		Attack:  &AttackDef{Kind: AttackMulti, Damage: 6, Interval: 1.0},
		Visuals: Visuals{Color: color.RGBA{255, 200, 90, 255}, RadiusFactor: 0.34},
	},
	"TOWER_PRISM": {
		ID: "TOWER_PRISM", Name: "Prism", Cost: 160, Range: 3,
		Attack:  &AttackDef{Kind: AttackMulti, Damage: 12, Interval: 1.4, TargetCap: 4},
		Visuals: Visuals{Color: color.RGBA{255, 140, 200, 255}, RadiusFactor: 0.32},
	},
	"TOWER_BEAM": {
		ID: "TOWER_BEAM", Name: "Beam Lance", Cost: 170, Range: 3.5,
		Attack:  &AttackDef{Kind: AttackBeam, Damage: 22},
		Visuals: Visuals{Color: color.RGBA{120, 255, 190, 255}, RadiusFactor: 0.32},
	},

	// Passive support towers: no attack, effects recomputed every tick by
	// the support system.
	"TOWER_AMPLIFIER": {
		ID: "TOWER_AMPLIFIER", Name: "Amplifier", Cost: 100,
		Support: &SupportDef{Kind: SupportDamage, Radius: 2, Amount: 0.25},
		Visuals: Visuals{Color: color.RGBA{255, 90, 90, 255}, RadiusFactor: 0.28},
	},
	"TOWER_HEATSINK": {
		ID: "TOWER_HEATSINK", Name: "Heat Sink", Cost: 100,
		Support: &SupportDef{Kind: SupportFireRate, Radius: 2, Amount: 0.3},
		Visuals: Visuals{Color: color.RGBA{90, 255, 140, 255}, RadiusFactor: 0.28},
	},
	"TOWER_RANGEFINDER": {
		ID: "TOWER_RANGEFINDER", Name: "Rangefinder", Cost: 90,
		Support: &SupportDef{Kind: SupportRange, Radius: 2, Amount: 1},
		Visuals: Visuals{Color: color.RGBA{230, 230, 120, 255}, RadiusFactor: 0.28},
	},
	"TOWER_CORRODER": {
		ID: "TOWER_CORRODER", Name: "Corroder", Cost: 120,
		Support: &SupportDef{Kind: SupportCorrode, Radius: 2.5, Amount: 0.15},
		Visuals: Visuals{Color: color.RGBA{150, 255, 90, 255}, RadiusFactor: 0.28},
	},
	"TOWER_MINT": {
		ID: "TOWER_MINT", Name: "Gold Mint", Cost: 130,
		Support: &SupportDef{Kind: SupportGold, Radius: 2.5, Amount: 0.25},
		Visuals: Visuals{Color: color.RGBA{255, 215, 0, 255}, RadiusFactor: 0.28},
	},
	"TOWER_CONDUCTOR": {
		ID: "TOWER_CONDUCTOR", Name: "Conductor", Cost: 110,
		Support: &SupportDef{Kind: SupportChain, Radius: 2, Amount: 1},
		Visuals: Visuals{Color: color.RGBA{210, 160, 255, 255}, RadiusFactor: 0.28},
	},
}

// OrderedTowerIDs fixes the build bar order: attackers first, then the
// frost field, then supports.
var OrderedTowerIDs = []string{
	"TOWER_SHOOTER",
	"TOWER_SNIPER",
	"TOWER_MINIGUN",
	"TOWER_CANNON",
	"TOWER_SCATTER",
	"TOWER_PRISM",
	"TOWER_TESLA",
	"TOWER_BEAM",
	"TOWER_FROST",
	"TOWER_AMPLIFIER",
	"TOWER_HEATSINK",
	"TOWER_RANGEFINDER",
	"TOWER_CORRODER",
	"TOWER_MINT",
	"TOWER_CONDUCTOR",
}
