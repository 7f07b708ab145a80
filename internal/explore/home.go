package explore

import (
	"context"

	"github.com/HanYiChoong/MDP-Grp6-Algorithms/internal/arena"
	"github.com/HanYiChoong/MDP-Grp6-Algorithms/internal/geometry"
	"github.com/HanYiChoong/MDP-Grp6-Algorithms/internal/planner"
)

// returnHome plans from the current pose to the start cell and replays it,
// finishing facing East. A failed plan is logged by the caller via the
// returned error and leaves the robot where it stood; exploration ends
// regardless, per §4.3's failure mode for this phase.
func (e *Engine) returnHome(ctx context.Context) error {
	if e.robot.Pose.Point == arena.CanonicalStart {
		e.rotateTo(geometry.East)
		return nil
	}

	grid := e.arena.DerivedGrid(false)
	path, err := planner.Plan(grid, e.robot.Pose.Point, e.robot.Pose.Direction, nil, arena.CanonicalStart)
	if err != nil {
		return err
	}

	e.replay(path, e.robot.Pose.Direction)
	e.rotateTo(geometry.East)
	return nil
}
