// Package planner implements the turn-cost-aware A* search used for
// fastest-path runs and for the exploration engine's return-to-start and
// targeted-sweep legs, plus the post-processing that lowers a node path into
// consolidated motion commands for the transport collaborator.
package planner

import "github.com/HanYiChoong/MDP-Grp6-Algorithms/internal/geometry"

// Node is one expanded state in the search: a point reached while facing a
// direction, with the accumulated cost and parent link needed to reconstruct
// a path. Equality between nodes is over Point only; ordering in the open
// set is over F only — the two must never be conflated, or a correct node
// can get discarded as a worse duplicate of an unrelated one.
type Node struct {
	Point     geometry.Point
	Direction geometry.Direction
	Parent    *Node
	G, H, F   int

	heapIndex int
}

const (
	moveCost           = 1
	turnCostPerpendicular = 2
	turnCostOpposite      = 4
)

// turnCost returns the cost of rotating from `from` to `to`, per §4.4: 0 if
// equal, 2 if perpendicular (one 90-degree turn), 4 if opposite.
func turnCost(from, to geometry.Direction) int {
	switch to {
	case from:
		return 0
	case geometry.Opposite(from):
		return turnCostOpposite
	default:
		return turnCostPerpendicular
	}
}

// directionTowards returns the cardinal direction from `from` to an
// adjacent `to`, assuming the two differ by exactly one axis-aligned step.
func directionTowards(from, to geometry.Point) geometry.Direction {
	switch {
	case to.Row < from.Row:
		return geometry.North
	case to.Row > from.Row:
		return geometry.South
	case to.Col > from.Col:
		return geometry.East
	default:
		return geometry.West
	}
}
