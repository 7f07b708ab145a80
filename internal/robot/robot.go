// Package robot models the physical robot: its pose, its mounted sensors,
// and the movement semantics that mutate that pose. It has no notion of the
// arena or of exploration strategy; those live in internal/arena and
// internal/explore respectively, and are wired in through the two injection
// points described below.
package robot

import "github.com/HanYiChoong/MDP-Grp6-Algorithms/internal/geometry"

// OnMoveFunc is invoked after every pose mutation, unless suppressed, so a
// caller can emit a motion frame, log telemetry, or otherwise react to the
// new pose.
type OnMoveFunc func(pose geometry.Pose, movement geometry.Movement)

// SensorReadFunc returns the current readings for every sensor the robot
// carries, in the same order as Sensors. How the readings are produced (a
// live ray-cast against an arena, a parsed hardware frame, a replayed fixture)
// is entirely up to the function supplied by the caller.
type SensorReadFunc func() []Reading

// Robot is the movement and sensor-mount model for one physical or simulated
// unit. Speed paces how callers schedule motion commands; Robot itself never
// sleeps.
type Robot struct {
	Pose    geometry.Pose
	Sensors []Descriptor
	Speed   float64

	OnMove     OnMoveFunc
	SensorRead SensorReadFunc
}

// New returns a Robot at the given starting pose with the given sensor
// layout. OnMove and SensorRead are left nil; callers wire them before the
// robot is put into service.
func New(start geometry.Pose, sensors []Descriptor, speed float64) *Robot {
	return &Robot{Pose: start, Sensors: sensors, Speed: speed}
}

// DefaultSensors is the reference robot's fixed sensor mount: three
// long-range sensors facing North across the front edge, one short-range
// sensor facing West off the left edge, and two long-range sensors facing
// East off the right edge. This is a fixed physical layout, not a tunable
// parameter, so it is a constructor here rather than a config field.
func DefaultSensors() []Descriptor {
	return []Descriptor{
		{Kind: Long, BodyOffset: geometry.Point{Row: 1, Col: -1}, Mount: geometry.North},
		{Kind: Long, BodyOffset: geometry.Point{Row: 1, Col: 0}, Mount: geometry.North},
		{Kind: Long, BodyOffset: geometry.Point{Row: 1, Col: 1}, Mount: geometry.North},
		{Kind: Short, BodyOffset: geometry.Point{Row: 1, Col: -1}, Mount: geometry.West},
		{Kind: Long, BodyOffset: geometry.Point{Row: 1, Col: 1}, Mount: geometry.East},
		{Kind: Long, BodyOffset: geometry.Point{Row: -1, Col: 1}, Mount: geometry.East},
	}
}

// Step applies one Forward/Backward/Left/Right movement to the robot's pose.
// Forward and Backward translate the point along the current heading;
// Left and Right rotate the heading in place. The on-move callback, if set,
// fires after the mutation.
func (r *Robot) Step(movement geometry.Movement) {
	switch movement {
	case geometry.Forward:
		r.Pose.Point = r.Pose.Point.Add(geometry.Offset(r.Pose.Direction))
	case geometry.Backward:
		r.Pose.Point = r.Pose.Point.Sub(geometry.Offset(r.Pose.Direction))
	case geometry.Right:
		r.Pose.Direction = geometry.Clockwise(r.Pose.Direction)
	case geometry.Left:
		r.Pose.Direction = geometry.AntiClockwise(r.Pose.Direction)
	}
	if r.OnMove != nil {
		r.OnMove(r.Pose, movement)
	}
}

// StepTowards advances the robot one cell in an absolute direction without
// changing its heading, and reports the step to OnMove as Forward.
func (r *Robot) StepTowards(dir geometry.Direction) {
	r.Pose.Point = r.Pose.Point.Add(geometry.Offset(dir))
	if r.OnMove != nil {
		r.OnMove(r.Pose, geometry.Forward)
	}
}

// ReadSensors invokes the configured sensor-read function, or returns nil if
// none is set.
func (r *Robot) ReadSensors() []Reading {
	if r.SensorRead == nil {
		return nil
	}
	return r.SensorRead()
}

// SensorWorldPoints returns, for every mounted sensor, the world cell its ray
// originates from and the world direction it points in, given the robot's
// current pose.
func (r *Robot) SensorWorldPoints() []geometry.Pose {
	poses := make([]geometry.Pose, len(r.Sensors))
	for i, s := range r.Sensors {
		poses[i] = geometry.Pose{
			Point:     s.WorldPoint(r.Pose),
			Direction: s.WorldDirection(r.Pose.Direction),
		}
	}
	return poses
}
