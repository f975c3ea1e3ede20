// internal/component/projectile.go
package component

import "serpentine-td/internal/types"

// Projectile travels toward a snapshot of its target's position. SourceID
// and TargetID are non-owning lookups into the ECS.
type Projectile struct {
	SourceID types.EntityID
	TargetID types.EntityID
	TargetX  float64
	TargetY  float64
	Speed    float64
	Damage   float64

	SplashRadius float64              // >0: reduced AOE damage around the impact
	HopsLeft     int                  // chain hops remaining after this hit
	AlreadyHit   map[types.EntityID]bool // chain: targets excluded from re-targeting

	GoldBonus float64 // carried from the firing tower's support boost
}
