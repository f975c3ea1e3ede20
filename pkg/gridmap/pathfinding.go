// pkg/gridmap/pathfinding.go
package gridmap

import (
	"container/heap"
)

// AStar finds a shortest path from start to goal over passable cells:
// 4-directional steps, unit cost, Manhattan heuristic. When no route exists
// it returns a degenerate two-point line instead of failing, so callers can
// keep simulating.
func AStar(start, goal Cell, g *Grid) []Cell {
	pq := &nodeQueue{}
	heap.Init(pq)
	heap.Push(pq, &node{cell: start, priority: 0})
	costSoFar := map[Cell]int{start: 0}

	for pq.Len() > 0 {
		current := heap.Pop(pq).(*node)
		if current.cell == goal {
			return reconstructPath(current)
		}
		for _, neighbor := range current.cell.Neighbors() {
			if !g.IsPassable(neighbor) {
				continue
			}
			newCost := costSoFar[current.cell] + 1
			if old, seen := costSoFar[neighbor]; !seen || newCost < old {
				costSoFar[neighbor] = newCost
				heap.Push(pq, &node{
					cell:     neighbor,
					priority: newCost + neighbor.ManhattanDist(goal),
					parent:   current,
				})
			}
		}
	}
	return []Cell{start, goal}
}

type node struct {
	cell     Cell
	priority int
	parent   *node
}

type nodeQueue []*node

func (q nodeQueue) Len() int            { return len(q) }
func (q nodeQueue) Less(i, j int) bool  { return q[i].priority < q[j].priority }
func (q nodeQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *nodeQueue) Push(x interface{}) { *q = append(*q, x.(*node)) }
func (q *nodeQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

func reconstructPath(n *node) []Cell {
	var rev []Cell
	for n != nil {
		rev = append(rev, n.cell)
		n = n.parent
	}
	path := make([]Cell, len(rev))
	for i := range rev {
		path[i] = rev[len(rev)-1-i]
	}
	return path
}
