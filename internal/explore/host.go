// Package explore drives the robot across the arena under a coverage and
// wall-time budget: right-hug wall following with loop escape, a targeted
// sweep of any cells the hug missed, and a planned return to the start cell.
// It never touches a transport or a display directly; all of that is routed
// through the Host capability below, replacing the reference
// implementation's scattered on_move/on_update_map/on_take_photo/
// on_calibrate callbacks with one collaborator the engine holds a single
// reference to.
package explore

import (
	"context"

	"github.com/HanYiChoong/MDP-Grp6-Algorithms/internal/geometry"
	"github.com/HanYiChoong/MDP-Grp6-Algorithms/internal/robot"
)

// Host is the engine's sole side channel to the outside world. Production
// code backs it with the orchestrator (emitting MDF/log frames over the
// transport); tests back it with a recording fake.
type Host interface {
	// ReportMove is called after every pose mutation.
	ReportMove(pose geometry.Pose, movement geometry.Movement)
	// ReportCellExplored is called with the robot's centre cell once after
	// the initial sense and once after every movement, after that step's
	// readings and footprint have been marked Explored.
	ReportCellExplored(p geometry.Point)
	// RequestSensors returns one reading per sensor the robot carries, in
	// Robot.Sensors order.
	RequestSensors() []robot.Reading
	// RequestPhoto asks the photo collaborator to capture the obstacle face
	// at target from the robot's current pose.
	RequestPhoto(target geometry.Point)
	// RequestCalibration asks the robot to recalibrate its position against
	// a wall it is currently flush against. reason documents why the engine
	// believes calibration is warranted (e.g. "loop escape forced U-turn").
	RequestCalibration(ctx context.Context, reason string)
}
