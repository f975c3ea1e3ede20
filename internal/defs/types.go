// internal/defs/types.go
package defs

// AttackKind selects the firing archetype of an active tower. The combat
// system dispatches on it instead of probing optional fields.
type AttackKind string

const (
	AttackSingle AttackKind = "SINGLE" // one projectile at the primary target
	AttackMulti  AttackKind = "MULTI"  // projectiles at every target in range, up to TargetCap
	AttackBeam   AttackKind = "BEAM"   // continuous damage per second, no projectile entity
	AttackChain  AttackKind = "CHAIN"  // projectile that hops to nearby un-hit targets
)

// SupportKind selects what a passive support tower modifies in its radius.
type SupportKind string

const (
	SupportDamage   SupportKind = "DAMAGE"    // multiplies tower damage
	SupportFireRate SupportKind = "FIRE_RATE" // shortens tower fire interval
	SupportRange    SupportKind = "RANGE"     // extends tower range (cells)
	SupportCorrode  SupportKind = "CORRODE"   // strips armor from enemies
	SupportGold     SupportKind = "GOLD"      // bonus gold on kills by towers in radius
	SupportChain    SupportKind = "CHAIN"     // extra chain hops for towers in radius
)
