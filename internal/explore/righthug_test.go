package explore

import (
	"testing"

	"github.com/HanYiChoong/MDP-Grp6-Algorithms/internal/arena"
	"github.com/HanYiChoong/MDP-Grp6-Algorithms/internal/geometry"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLoopEscape(t *testing.T) {
	Convey("Given an engine whose last six movements match the loop signature", t, func() {
		a := arena.New()
		host := &fakeHost{}
		e := newTestEngine(a, geometry.Pose{Point: arena.CanonicalStart, Direction: geometry.East}, host)
		e.recent = []geometry.Movement{
			geometry.Forward, geometry.Right, geometry.Forward,
			geometry.Right, geometry.Forward, geometry.Right,
		}

		Convey("The next issued movement is Right, beginning the forced U-turn", func() {
			e.rightHugStep(backgroundCtx)
			So(host.Moves[0], ShouldEqual, geometry.Right)
			So(host.Moves[1], ShouldEqual, geometry.Right)
		})

		Convey("Calibration is requested for the forced U-turn", func() {
			e.rightHugStep(backgroundCtx)
			So(host.CalibrationReasons, ShouldResemble, []string{"loop escape forced U-turn"})
		})
	})
}

func TestRightHugFullyCoversEmptyArena(t *testing.T) {
	Convey("Given a fully free arena and an engine starting at the boot pose", t, func() {
		a := arena.New()
		host := &fakeHost{}
		e := newTestEngine(a, geometry.Pose{Point: arena.CanonicalStart, Direction: geometry.East}, host)

		err := e.Run(backgroundCtx)

		Convey("Exploration completes without error", func() {
			So(err, ShouldBeNil)
		})

		Convey("The robot returns to the start cell facing East", func() {
			So(e.robot.Pose.Point, ShouldResemble, arena.CanonicalStart)
			So(e.robot.Pose.Direction, ShouldEqual, geometry.East)
		})

		Convey("Every one of the 300 cells is Explored, per scenario 1", func() {
			So(a.Coverage(), ShouldEqual, 1.0)
		})
	})
}

func TestStripIsFreeRespectsBounds(t *testing.T) {
	Convey("Given the robot near the arena's eastern edge facing East", t, func() {
		a := arena.New()

		Convey("The front strip running off the arena is not free", func() {
			So(stripIsFree(a, geometry.Point{Row: 10, Col: 13}, geometry.East), ShouldBeFalse)
		})
	})

	Convey("Given an obstacle inside an otherwise free strip", t, func() {
		a := arena.New()
		a.SetObstacle(geometry.Point{Row: 8, Col: 7}, true)

		Convey("The strip covering it is not free", func() {
			So(stripIsFree(a, geometry.Point{Row: 10, Col: 7}, geometry.North), ShouldBeFalse)
		})
	})
}
