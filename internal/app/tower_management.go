// internal/app/tower_management.go
package app

import (
	"math"

	"serpentine-td/internal/component"
	"serpentine-td/internal/config"
	"serpentine-td/internal/defs"
	"serpentine-td/internal/event"
	"serpentine-td/internal/types"
	"serpentine-td/internal/utils"
	"serpentine-td/pkg/gridmap"
)

// PlaceTower buys and places a tower on a buildable cell. Placement is
// allowed mid-wave; every enemy already on the field is re-routed because
// a new blocker may invalidate its current route.
func (g *Game) PlaceTower(defID string, cell gridmap.Cell) bool {
	def, ok := defs.TowerLibrary[defID]
	if !ok || g.gameOver {
		return false
	}
	if !g.Grid.CanBuild(cell) || g.Gold < def.Cost {
		return false
	}
	if _, _, occupied := g.TowerAt(cell); occupied {
		return false
	}

	g.Gold -= def.Cost
	id := g.ECS.NewEntity()
	x, y := utils.CellToScreen(cell)
	g.ECS.Positions[id] = &component.Position{X: x, Y: y}
	g.ECS.Towers[id] = &component.Tower{
		DefID:     defID,
		Cell:      cell,
		Level:     1,
		TotalCost: def.Cost,
	}
	g.ECS.Renderables[id] = &component.Renderable{
		Color:  def.Visuals.Color,
		Radius: float32(config.CellSize * def.Visuals.RadiusFactor),
	}
	if def.Attack != nil {
		g.ECS.Combats[id] = &component.Combat{Boost: component.NeutralBoost()}
	}

	g.Grid.SetBlocked(cell, true)
	g.repathEnemies()
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: cell})
	return true
}

// UpgradeCost is what the next level of a tower costs. Each level is a
// full base price more expensive than the last.
func UpgradeCost(def defs.TowerDefinition, level int) int {
	return def.Cost * level
}

// UpgradeTower raises a tower one level, up to MaxTowerLevel.
func (g *Game) UpgradeTower(id types.EntityID) bool {
	tower, ok := g.ECS.Towers[id]
	if !ok || tower.Level >= config.MaxTowerLevel {
		return false
	}
	def, ok := defs.TowerLibrary[tower.DefID]
	if !ok {
		return false
	}
	cost := UpgradeCost(def, tower.Level)
	if g.Gold < cost {
		return false
	}
	g.Gold -= cost
	tower.Level++
	tower.TotalCost += cost
	return true
}

// SellTower removes a tower, refunding a fixed share of everything spent
// on it, rounded down.
func (g *Game) SellTower(id types.EntityID) bool {
	tower, ok := g.ECS.Towers[id]
	if !ok {
		return false
	}
	g.Gold += SellRefund(tower.TotalCost)
	cell := tower.Cell
	g.removeTowerEntity(id)
	g.Grid.SetBlocked(cell, false)
	g.repathEnemies()
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerSold, Data: cell})
	return true
}

// SellRefund applies the refund rate to the total spend, rounding down.
func SellRefund(totalCost int) int {
	return int(math.Floor(float64(totalCost) * config.SellRefundRate))
}

func (g *Game) removeTowerEntity(id types.EntityID) {
	delete(g.ECS.Towers, id)
	delete(g.ECS.Combats, id)
	delete(g.ECS.Positions, id)
	delete(g.ECS.Renderables, id)
	g.CombatSystem.ForgetTower(id)
}

// repathEnemies recomputes every walking enemy's route from the cell it is
// currently traversing. The fractional progress along the current edge is
// preserved so enemies never snap backwards when the field changes.
func (g *Game) repathEnemies() {
	for id := range g.ECS.Enemies {
		follow, ok := g.ECS.Paths[id]
		if !ok || follow.AtEnd() {
			continue
		}
		from := follow.Cells[follow.Index]
		next := follow.Cells[follow.Index+1]

		route := gridmap.AStar(next, g.Grid.Exit, g.Grid)
		cells := make([]gridmap.Cell, 0, len(route)+1)
		cells = append(cells, from)
		cells = append(cells, route...)

		follow.Cells = cells
		follow.Index = 0
	}
}
