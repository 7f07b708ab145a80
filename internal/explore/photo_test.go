package explore

import (
	"testing"

	"github.com/HanYiChoong/MDP-Grp6-Algorithms/internal/arena"
	"github.com/HanYiChoong/MDP-Grp6-Algorithms/internal/geometry"
	. "github.com/smartystreets/goconvey/convey"
)

func TestPhotoTrackerPrunesArenaEdge(t *testing.T) {
	Convey("Given an obstacle on the arena's northern boundary row", t, func() {
		a := arena.New()
		obstacle := geometry.Point{Row: 0, Col: 5}
		a.SetObstacle(obstacle, true)
		tracker := NewPhotoTracker()

		tracker.Register(a, obstacle)

		Convey("Its North face is not trackable", func() {
			So(tracker.unseen[obstacle][geometry.North], ShouldBeFalse)
		})

		Convey("Its other three faces remain unseen", func() {
			So(tracker.UnseenFaces(obstacle), ShouldHaveLength, 3)
		})
	})
}

func TestPhotoTrackerPrunesAdjacentObstaclePair(t *testing.T) {
	Convey("Given two adjacent obstacles", t, func() {
		a := arena.New()
		first := geometry.Point{Row: 10, Col: 7}
		second := geometry.Point{Row: 10, Col: 8}
		a.SetObstacle(first, true)
		a.SetObstacle(second, true)
		tracker := NewPhotoTracker()

		tracker.Register(a, first)
		tracker.Register(a, second)

		Convey("Neither obstacle's face toward the other remains unseen", func() {
			So(tracker.unseen[first][geometry.East], ShouldBeFalse)
			So(tracker.unseen[second][geometry.West], ShouldBeFalse)
		})
	})
}

func TestPhotoTrackerMarkPhotographed(t *testing.T) {
	Convey("Given a tracked interior obstacle", t, func() {
		a := arena.New()
		obstacle := geometry.Point{Row: 10, Col: 7}
		a.SetObstacle(obstacle, true)
		tracker := NewPhotoTracker()
		tracker.Register(a, obstacle)

		tracker.MarkPhotographed(obstacle, geometry.North)

		Convey("That face is no longer unseen", func() {
			So(tracker.unseen[obstacle][geometry.North], ShouldBeFalse)
			So(tracker.UnseenFaces(obstacle), ShouldHaveLength, 3)
		})
	})
}
