package explore

import (
	"context"
	"time"

	"github.com/HanYiChoong/MDP-Grp6-Algorithms/internal/arena"
	"github.com/HanYiChoong/MDP-Grp6-Algorithms/internal/geometry"
	"github.com/HanYiChoong/MDP-Grp6-Algorithms/internal/planner"
)

// PhotoTracker records, per obstacle cell, which cardinal faces still need
// a photograph. A face is pruned once it becomes unreachable (the arena
// edge) or uninformative (a neighbouring obstacle occupies that side, so
// both obstacles' faces toward each other are pruned together).
type PhotoTracker struct {
	unseen map[geometry.Point]map[geometry.Direction]bool
}

// NewPhotoTracker returns an empty tracker.
func NewPhotoTracker() *PhotoTracker {
	return &PhotoTracker{unseen: make(map[geometry.Point]map[geometry.Direction]bool)}
}

var cardinalFaces = []geometry.Direction{geometry.North, geometry.East, geometry.South, geometry.West}

// Register starts tracking obstacleCell if it isn't already known, pruning
// its arena-edge faces and its faces toward any adjacent obstacle; an
// already-registered neighbour also loses its face pointing back.
func (t *PhotoTracker) Register(a *arena.Arena, obstacleCell geometry.Point) {
	if _, known := t.unseen[obstacleCell]; known {
		return
	}

	faces := make(map[geometry.Direction]bool, 4)
	for _, d := range cardinalFaces {
		faces[d] = true
	}
	t.unseen[obstacleCell] = faces

	for _, d := range cardinalFaces {
		neighbour := obstacleCell.Add(geometry.Offset(d))
		if !arena.IsWithinRange(neighbour.Row, neighbour.Col) {
			delete(faces, d)
			continue
		}
		if a.IsObstacle(neighbour) {
			delete(faces, d)
			if neighbourFaces, ok := t.unseen[neighbour]; ok {
				delete(neighbourFaces, geometry.Opposite(d))
			}
		}
	}
}

// UnseenFaces returns the remaining unphotographed directions for an
// obstacle cell.
func (t *PhotoTracker) UnseenFaces(obstacleCell geometry.Point) []geometry.Direction {
	faces := t.unseen[obstacleCell]
	out := make([]geometry.Direction, 0, len(faces))
	for d := range faces {
		out = append(out, d)
	}
	return out
}

// MarkPhotographed removes one face once the engine has requested a photo
// of it.
func (t *PhotoTracker) MarkPhotographed(obstacleCell geometry.Point, face geometry.Direction) {
	if faces, ok := t.unseen[obstacleCell]; ok {
		delete(faces, face)
	}
}

// AnyUnseen reports whether any obstacle still has an unphotographed face.
func (t *PhotoTracker) AnyUnseen() bool {
	for _, faces := range t.unseen {
		if len(faces) > 0 {
			return true
		}
	}
	return false
}

// ImageEngine wraps Engine with photo-taking behaviour. After the right-hug
// it registers every obstacle known at that point with a PhotoTracker, then
// hugs obstacle clusters, runs the targeted sweep, sweeps for remaining
// unseen faces and returns home, requesting a photo through the host each
// time it faces an unseen face. Obstacles discovered after the right-hug are
// not registered.
type ImageEngine struct {
	*Engine
	tracker *PhotoTracker
}

// NewImageEngine returns an ImageEngine sharing the given Engine's arena,
// robot, and host.
func NewImageEngine(e *Engine) *ImageEngine {
	return &ImageEngine{Engine: e, tracker: NewPhotoTracker()}
}

// Run executes right-hug, registers every obstacle discovered so far,
// hugs obstacle clusters to photograph reachable faces, sweeps for any
// faces still unseen, then returns home.
func (ie *ImageEngine) Run(ctx context.Context) error {
	ie.startTime = time.Now()

	ie.senseAndApply()
	ie.arena.MarkFootprintExplored(ie.robot.Pose.Point)
	ie.host.ReportCellExplored(ie.robot.Pose.Point)

	ie.rightHug(ctx)
	ie.registerDiscoveredObstacles()

	ie.huggObstacleClustersForPhotos(ctx)
	ie.targetedSweep(ctx)
	ie.sweepRemainingFaces(ctx)

	return ie.returnHome(ctx)
}

func (ie *ImageEngine) registerDiscoveredObstacles() {
	for r := 0; r < arena.Height; r++ {
		for c := 0; c < arena.Width; c++ {
			p := geometry.Point{Row: r, Col: c}
			if ie.arena.IsObstacle(p) {
				ie.tracker.Register(ie.arena, p)
			}
		}
	}
}

// huggObstacleClustersForPhotos retraces the right-hug priority loop
// starting and ending at the robot's current cell, requesting a photo
// whenever the robot's current pose puts it facing an obstacle face that is
// still unseen.
func (ie *ImageEngine) huggObstacleClustersForPhotos(ctx context.Context) {
	entry := ie.robot.Pose.Point
	first := true

	for !ie.limitExceeded(ctx) && (first || ie.robot.Pose.Point != entry) {
		first = false
		ie.captureFacingObstacleIfUnseen()

		switch {
		case ie.rightOfRobotIsFree():
			ie.move(geometry.Right)
		case ie.frontOfRobotIsFree():
			ie.move(geometry.Forward)
		case ie.leftOfRobotIsFree():
			ie.move(geometry.Left)
		default:
			ie.move(geometry.Right)
			ie.move(geometry.Right)
		}
	}
}

// captureFacingObstacleIfUnseen requests a photo of the obstacle directly
// ahead of the robot if one is present and that face hasn't been
// photographed yet.
func (ie *ImageEngine) captureFacingObstacleIfUnseen() {
	ahead := geometry.Offset(ie.robot.Pose.Direction)
	target := ie.robot.Pose.Point.Add(ahead).Add(ahead)
	if !ie.arena.IsObstacle(target) {
		return
	}
	face := geometry.Opposite(ie.robot.Pose.Direction)
	faces := ie.tracker.unseen[target]
	if faces == nil || !faces[face] {
		return
	}
	ie.host.RequestPhoto(target)
	ie.tracker.MarkPhotographed(target, face)
}

// sweepRemainingFaces visits every obstacle with a still-unseen face, using
// the same candidate-viewing-position machinery as targetedSweep, and
// requests a photo once facing it.
func (ie *ImageEngine) sweepRemainingFaces(ctx context.Context) {
	for ie.tracker.AnyUnseen() && !ie.limitExceeded(ctx) {
		progressed := false
		for obstacleCell, faces := range ie.tracker.unseen {
			for face := range faces {
				viewPoint := candidate{point: obstacleCell.Add(geometry.Offset(face)).Add(geometry.Offset(face)), direction: geometry.Opposite(face)}
				if !isValidCandidate(ie.arena, viewPoint) {
					continue
				}
				grid := ie.arena.DerivedGrid(false)
				path, err := planner.Plan(grid, ie.robot.Pose.Point, ie.robot.Pose.Direction, nil, viewPoint.point)
				if err != nil {
					continue
				}
				ie.replay(path, ie.robot.Pose.Direction)
				ie.rotateTo(viewPoint.direction)
				ie.host.RequestPhoto(obstacleCell)
				ie.tracker.MarkPhotographed(obstacleCell, face)
				progressed = true
				break
			}
			if progressed {
				break
			}
		}
		if !progressed {
			return
		}
	}
}
