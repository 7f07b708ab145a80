package explore

import (
	"context"

	"github.com/HanYiChoong/MDP-Grp6-Algorithms/internal/arena"
	"github.com/HanYiChoong/MDP-Grp6-Algorithms/internal/geometry"
)

// strip returns the three cells the robot's 3-wide body would clear two
// cells ahead in direction dir: the cell straight ahead, and its two
// perpendicular neighbours, relative to origin.
func strip(origin geometry.Point, dir geometry.Direction) [3]geometry.Point {
	ahead := geometry.Offset(dir)
	ahead = geometry.Point{Row: ahead.Row * 2, Col: ahead.Col * 2}
	center := origin.Add(ahead)
	return [3]geometry.Point{
		center,
		center.Add(geometry.Offset(geometry.Clockwise(dir))),
		center.Add(geometry.Offset(geometry.AntiClockwise(dir))),
	}
}

// stripIsFree reports whether every cell in the strip two cells ahead of
// origin, facing dir, is in-bounds and not Obstacle.
func stripIsFree(a *arena.Arena, origin geometry.Point, dir geometry.Direction) bool {
	for _, p := range strip(origin, dir) {
		if !arena.IsWithinRange(p.Row, p.Col) || a.IsObstacle(p) {
			return false
		}
	}
	return true
}

func (e *Engine) rightDirection() geometry.Direction { return geometry.Clockwise(e.robot.Pose.Direction) }
func (e *Engine) leftDirection() geometry.Direction   { return geometry.AntiClockwise(e.robot.Pose.Direction) }

// rightOfRobotIsFree additionally requires that taking Right would not walk
// back onto the previous point, to avoid oscillation, per §4.3.
func (e *Engine) rightOfRobotIsFree() bool {
	if !stripIsFree(e.arena, e.robot.Pose.Point, e.rightDirection()) {
		return false
	}
	if !e.hasPrevious {
		return true
	}
	next := e.robot.Pose.Point.Add(geometry.Offset(e.rightDirection()))
	return next != e.previousStep
}

func (e *Engine) frontOfRobotIsFree() bool {
	return stripIsFree(e.arena, e.robot.Pose.Point, e.robot.Pose.Direction)
}

func (e *Engine) leftOfRobotIsFree() bool {
	return stripIsFree(e.arena, e.robot.Pose.Point, e.leftDirection())
}

// rightHug runs the wall-following loop: while not over budget and not back
// home after reaching the goal, escape detected loops, otherwise prefer
// Right, then Forward, then Left, and fall back to a U-turn.
func (e *Engine) rightHug(ctx context.Context) {
	for !e.limitExceeded(ctx) && !(e.enteredGoal && e.robot.Pose.Point == arena.CanonicalStart) {
		if e.robot.Pose.Point == arena.CanonicalGoal {
			e.enteredGoal = true
		}
		e.rightHugStep(ctx)
	}
}

// rightHugStep issues exactly one movement per the priority rules: escape a
// detected loop, else prefer Right, then Forward, then Left, else U-turn.
func (e *Engine) rightHugStep(ctx context.Context) {
	if e.matchesLoopSignature() {
		e.host.RequestCalibration(ctx, "loop escape forced U-turn")
		e.move(geometry.Right)
		e.move(geometry.Right)
		return
	}

	switch {
	case e.rightOfRobotIsFree():
		e.move(geometry.Right)
	case e.frontOfRobotIsFree():
		e.move(geometry.Forward)
	case e.leftOfRobotIsFree():
		e.move(geometry.Left)
	default:
		e.move(geometry.Right)
		e.move(geometry.Right)
	}
}
