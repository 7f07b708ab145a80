package explore

import (
	"github.com/HanYiChoong/MDP-Grp6-Algorithms/internal/arena"
	"github.com/HanYiChoong/MDP-Grp6-Algorithms/internal/geometry"
	"github.com/HanYiChoong/MDP-Grp6-Algorithms/internal/robot"
)

// applyReading marks cells along one sensor's ray Explored, and the hit
// cell Obstacle, given a settled Reading. A Discarded reading marks
// nothing; an Exhausted reading marks the sensor's origin cell and every
// cell in range Explored with no obstacle; a Detected reading marks the
// origin cell, the cells up to the hit distance and the hit cell itself, per
// the boundary behaviour in §8. A hit inside the start or goal region is
// not written as Obstacle.
func applyReading(a *arena.Arena, sensor robot.Descriptor, pose geometry.Pose, reading robot.Reading) {
	if reading.Discarded {
		return
	}

	lower, upper := sensor.Kind.RangeBounds()
	origin := sensor.WorldPoint(pose)
	dir := sensor.WorldDirection(pose.Direction)
	offset := geometry.Offset(dir)

	if arena.IsWithinRange(origin.Row, origin.Col) {
		a.MarkExplored(origin)
	}

	limit := upper
	if reading.Detected && reading.Distance < limit {
		limit = reading.Distance
	}

	for i := lower; i <= limit; i++ {
		cell := geometry.Point{Row: origin.Row + i*offset.Row, Col: origin.Col + i*offset.Col}
		if !arena.IsWithinRange(cell.Row, cell.Col) {
			continue
		}
		a.MarkExplored(cell)
		if reading.Detected && i == reading.Distance && !arena.StartRegion.Contains(cell) && !arena.GoalRegion.Contains(cell) {
			a.SetObstacle(cell, true)
		}
	}
}

// senseAndApply pulls one reading per sensor from the host and folds every
// one into the arena, mirroring the reference implementation's
// sense_and_repaint_canvas step.
func (e *Engine) senseAndApply() {
	readings := e.host.RequestSensors()
	for i, sensor := range e.robot.Sensors {
		if i >= len(readings) {
			break
		}
		applyReading(e.arena, sensor, e.robot.Pose, readings[i])
	}
}
