// internal/component/combat.go
package component

// Health is remaining hit points.
type Health struct {
	Value float64
	Max   float64
}

// SupportBoost is the aggregate effect of nearby support towers on one
// active tower. It is recomputed from scratch every tick.
type SupportBoost struct {
	DamageMult  float64 // multiplies damage; 1 = no boost
	CooldownCut float64 // fraction removed from the fire interval, capped by the interval floor
	RangeBonus  float64 // cells added to base range
	ExtraHops   int     // additional chain hops
	GoldBonus   float64 // extra gold fraction on kills
}

// NeutralBoost is the boost of a tower with no support towers in range.
func NeutralBoost() SupportBoost {
	return SupportBoost{DamageMult: 1}
}

// Combat is the mutable firing state of an active tower.
type Combat struct {
	FireCooldown float64
	Boost        SupportBoost
}
