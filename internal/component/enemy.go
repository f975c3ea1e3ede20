// internal/component/enemy.go
package component

// Enemy is the mutable state of a spawned enemy. SlowFactor and Corrosion
// are cleared at the start of every tick and re-applied by field towers.
type Enemy struct {
	DefID      string
	SlowFactor float64 // effective speed multiplier this tick; 1 = full speed
	Corrosion  float64 // armor stripped this tick by corroder towers
	ReachedEnd bool
}
