package robot

import "github.com/HanYiChoong/MDP-Grp6-Algorithms/internal/geometry"

// SensorKind distinguishes the two physical sensor ranges fitted to the
// robot.
type SensorKind int

const (
	Short SensorKind = iota
	Long
)

// RangeBounds returns the inclusive (lower, upper) cell-distance span the
// sensor can report: Short is 1..1 (one cell ahead), Long is 1..6.
func (k SensorKind) RangeBounds() (lower, upper int) {
	switch k {
	case Long:
		return 1, 6
	default:
		return 1, 1
	}
}

// Descriptor describes one physical sensor mounted on the robot body.
type Descriptor struct {
	Kind       SensorKind
	BodyOffset geometry.Point
	Mount      geometry.Direction
}

// WorldDirection is the sensor's absolute facing given the robot's current
// heading: (robotDirection + mount - North) mod 8.
func (d Descriptor) WorldDirection(robotDirection geometry.Direction) geometry.Direction {
	const headings = 8
	return geometry.Direction((int(robotDirection) + int(d.Mount) - int(geometry.North) + headings) % headings)
}

// WorldPoint is the cell the sensor ray originates from, given the robot's
// pose. The body offset (a,b) is rotated into world space according to the
// robot's own heading (not the sensor's mount direction) per §4.2.
func (d Descriptor) WorldPoint(pose geometry.Pose) geometry.Point {
	a, b := d.BodyOffset.Row, d.BodyOffset.Col
	p := pose.Point
	switch pose.Direction {
	case geometry.North:
		return geometry.Point{Row: p.Row - a, Col: p.Col + b}
	case geometry.East:
		return geometry.Point{Row: p.Row + b, Col: p.Col + a}
	case geometry.South:
		return geometry.Point{Row: p.Row + a, Col: p.Col - b}
	case geometry.West:
		return geometry.Point{Row: p.Row - b, Col: p.Col - a}
	default:
		return p
	}
}

// Reading is the outcome of casting a sensor ray across an occupancy
// predicate. A zero-value Reading with Detected=false and Exhausted=false
// never occurs; exactly one of Detected/Discarded/Exhausted is true.
type Reading struct {
	Distance  int  // valid only when Detected is true
	Detected  bool // an obstacle or bound was hit within range
	Discarded bool // a hit occurred below range_lower
	Exhausted bool // no hit within the sensor's range (None)
}

// IsObstacleFunc reports whether a world point is an obstacle (or otherwise
// impassable) for ray-casting purposes.
type IsObstacleFunc func(p geometry.Point) bool

// Simulate casts a ray from origin in dir, using isObstacle to test each
// advancing cell, and returns the reading per §4.2: advance i=1..upper; the
// first i whose cell is out of bounds or an obstacle settles the reading
// (discarded if i < lower, else detected at distance i); if no such i is
// found within range the reading is exhausted (None).
func (d Descriptor) Simulate(origin geometry.Point, dir geometry.Direction, isObstacle IsObstacleFunc) Reading {
	lower, upper := d.Kind.RangeBounds()
	offset := geometry.Offset(dir)
	for i := 1; i <= upper; i++ {
		cell := geometry.Point{Row: origin.Row + i*offset.Row, Col: origin.Col + i*offset.Col}
		if isObstacle(cell) {
			if i < lower {
				return Reading{Discarded: true}
			}
			return Reading{Distance: i, Detected: true}
		}
	}
	return Reading{Exhausted: true}
}
