// internal/component/tower.go
package component

import "serpentine-td/pkg/gridmap"

// Tower occupies exactly one grid cell. TotalCost accumulates the purchase
// and upgrade spend and drives the sell refund.
type Tower struct {
	DefID     string
	Cell      gridmap.Cell
	Level     int // 1..3
	TotalCost int
	Kills     int
}
