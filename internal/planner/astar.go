package planner

import (
	"errors"

	"github.com/HanYiChoong/MDP-Grp6-Algorithms/internal/arena"
	"github.com/HanYiChoong/MDP-Grp6-Algorithms/internal/geometry"
)

// ErrNoPath is returned when the open set is exhausted before the target is
// reached.
var ErrNoPath = errors.New("planner: open set exhausted before reaching target")

// ErrInvalidPoint is returned when start, waypoint, or goal fail the inner-
// arena-and-Free precondition in §4.4.
var ErrInvalidPoint = errors.New("planner: point is outside the inner arena or not free")

// Grid is the planning surface: a virtual-walled arena.CellState grid,
// indexed [row][col].
type Grid = [][]arena.CellState

func isValidPoint(grid Grid, p geometry.Point) bool {
	return arena.IsWithinInnerRange(p) && !arena.IsNotFree(grid, p)
}

// search runs a single A* pass from (start, startDir) to target over grid,
// expanding 4-connected neighbours only, and returns the reached node (its
// Parent chain reconstructs the path) or ErrNoPath.
func search(grid Grid, start geometry.Point, startDir geometry.Direction, target geometry.Point) (*Node, error) {
	open := newOpenSet()
	closed := make(map[geometry.Point]bool)

	startNode := &Node{Point: start, Direction: startDir, G: 0, H: start.ManhattanDistance(target)}
	startNode.F = startNode.G + startNode.H
	open.Push(startNode)

	for !open.Empty() {
		current := open.Pop()
		if current.Point == target {
			return current, nil
		}
		closed[current.Point] = true

		for _, offset := range []geometry.Direction{geometry.North, geometry.East, geometry.South, geometry.West} {
			neighbourPoint := current.Point.Add(geometry.Offset(offset))
			if closed[neighbourPoint] {
				continue
			}
			if !isValidPoint(grid, neighbourPoint) {
				continue
			}
			neighbourDir := directionTowards(current.Point, neighbourPoint)
			g := current.G + moveCost + turnCost(current.Direction, neighbourDir)

			if existing, ok := open.Contains(neighbourPoint); ok {
				h := existing.H
				if g+h >= existing.F {
					continue
				}
			}

			h := neighbourPoint.ManhattanDistance(target)
			open.Push(&Node{
				Point:     neighbourPoint,
				Direction: neighbourDir,
				Parent:    current,
				G:         g,
				H:         h,
				F:         g + h,
			})
		}
	}

	return nil, ErrNoPath
}

// reconstruct walks parents from n back to the root and reverses, returning
// the path without the initial start node, per §4.4.
func reconstruct(n *Node) []*Node {
	var reversed []*Node
	for cur := n; cur != nil; cur = cur.Parent {
		reversed = append(reversed, cur)
	}
	path := make([]*Node, 0, len(reversed)-1)
	for i := len(reversed) - 2; i >= 0; i-- {
		path = append(path, reversed[i])
	}
	return path
}

// Plan runs A* from (start, startDir) to goal, optionally routed through a
// mandatory waypoint first, per the composition rule in §4.4: plan to the
// waypoint, then re-run from the reached node with a fresh open/closed set
// to the goal, and stitch the two legs together.
func Plan(grid Grid, start geometry.Point, startDir geometry.Direction, waypoint *geometry.Point, goal geometry.Point) ([]*Node, error) {
	for _, p := range []geometry.Point{start, goal} {
		if !isValidPoint(grid, p) {
			return nil, ErrInvalidPoint
		}
	}
	if waypoint != nil && !isValidPoint(grid, *waypoint) {
		return nil, ErrInvalidPoint
	}

	if waypoint == nil {
		reached, err := search(grid, start, startDir, goal)
		if err != nil {
			return nil, err
		}
		return reconstruct(reached), nil
	}

	firstLeg, err := search(grid, start, startDir, *waypoint)
	if err != nil {
		return nil, err
	}
	secondLeg, err := search(grid, firstLeg.Point, firstLeg.Direction, goal)
	if err != nil {
		return nil, err
	}

	path := append(reconstruct(firstLeg), reconstruct(secondLeg)...)
	return path, nil
}
