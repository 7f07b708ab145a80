package explore

import (
	"context"
	"sort"

	"github.com/HanYiChoong/MDP-Grp6-Algorithms/internal/arena"
	"github.com/HanYiChoong/MDP-Grp6-Algorithms/internal/geometry"
	"github.com/HanYiChoong/MDP-Grp6-Algorithms/internal/planner"
)

// candidate is a viewing position the robot could move to in order to
// observe (and thereby explore) an Unexplored cell.
type candidate struct {
	point     geometry.Point
	direction geometry.Direction
}

// candidatesFor enumerates the up to 12 viewing positions for an Unexplored
// cell, reusing the same (±2, ±1) strip formula the right-hug check uses,
// rooted at the target cell rather than the robot: for each cardinal axis
// D, the three cells two-out-plus-perpendicular in D are candidates whose
// required facing is back towards the target (Opposite(D)).
func candidatesFor(target geometry.Point) []candidate {
	cands := make([]candidate, 0, 12)
	for _, d := range []geometry.Direction{geometry.North, geometry.East, geometry.South, geometry.West} {
		for _, p := range strip(target, d) {
			cands = append(cands, candidate{point: p, direction: geometry.Opposite(d)})
		}
	}
	return cands
}

func footprintAllExplored(a *arena.Arena, p geometry.Point) bool {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			n := geometry.Point{Row: p.Row + dr, Col: p.Col + dc}
			if a.ExplorationAt(n) == arena.Unexplored {
				return false
			}
		}
	}
	return true
}

func isValidCandidate(a *arena.Arena, c candidate) bool {
	return arena.IsWithinInnerRange(c.point) && !a.IsObstacle(c.point) && footprintAllExplored(a, c.point)
}

// unexploredCells lists every cell the arena has not yet marked Explored.
func unexploredCells(a *arena.Arena) []geometry.Point {
	var cells []geometry.Point
	for r := 0; r < arena.Height; r++ {
		for c := 0; c < arena.Width; c++ {
			p := geometry.Point{Row: r, Col: c}
			if a.ExplorationAt(p) == arena.Unexplored {
				cells = append(cells, p)
			}
		}
	}
	return cells
}

// candidatePool gathers every valid candidate across every Unexplored cell,
// sorted nearest-first to the robot so the sweep can try each in turn until
// one plans successfully.
func (e *Engine) candidatePool() []candidate {
	var pool []candidate
	for _, cell := range unexploredCells(e.arena) {
		for _, c := range candidatesFor(cell) {
			if isValidCandidate(e.arena, c) {
				pool = append(pool, c)
			}
		}
	}
	robotPoint := e.robot.Pose.Point
	sort.Slice(pool, func(i, j int) bool {
		return pool[i].point.ManhattanDistance(robotPoint) < pool[j].point.ManhattanDistance(robotPoint)
	})
	return pool
}

// targetedSweep drives the robot to every candidate viewing position it can
// reach, nearest first, until budgets are exhausted or no reachable
// candidate remains. A candidate whose plan fails is skipped, per the
// PlanningError recovery policy; if every candidate this iteration fails,
// the phase ends.
func (e *Engine) targetedSweep(ctx context.Context) {
	for !e.limitExceeded(ctx) {
		pool := e.candidatePool()
		if len(pool) == 0 {
			return
		}

		planned := false
		for _, c := range pool {
			grid := e.arena.DerivedGrid(false)
			path, err := planner.Plan(grid, e.robot.Pose.Point, e.robot.Pose.Direction, nil, c.point)
			if err != nil {
				continue
			}
			e.replay(path, e.robot.Pose.Direction)
			e.rotateTo(c.direction)
			planned = true
			break
		}
		if !planned {
			return
		}
	}
}
