// internal/component/wave.go
package component

import "serpentine-td/pkg/gridmap"

// SpawnEvent schedules one enemy at a point in simulation time, not wall
// clock, so speed multipliers do not change wave pacing.
type SpawnEvent struct {
	EnemyID string
	At      float64 // simulation time at which to spawn
}

// Wave is the active wave's spawn queue. Next indexes the first event not
// yet dequeued; the wave completes when the queue is drained and no enemies
// remain alive. Path is the route handed to enemies at spawn time.
type Wave struct {
	Number int
	Queue  []SpawnEvent
	Next   int
	Path   []gridmap.Cell
}

// Exhausted reports whether every scheduled enemy has spawned.
func (w *Wave) Exhausted() bool { return w.Next >= len(w.Queue) }
