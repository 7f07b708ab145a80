package explore

import (
	"testing"

	"github.com/HanYiChoong/MDP-Grp6-Algorithms/internal/arena"
	"github.com/HanYiChoong/MDP-Grp6-Algorithms/internal/geometry"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCandidatesForYieldsTwelvePoints(t *testing.T) {
	Convey("Given an unexplored cell deep in the arena", t, func() {
		target := geometry.Point{Row: 10, Col: 7}
		cands := candidatesFor(target)

		Convey("Twelve candidates are produced, three per cardinal axis", func() {
			So(cands, ShouldHaveLength, 12)
		})

		Convey("Each candidate's required direction points back at the target", func() {
			for _, c := range cands {
				reverse := c.point.Add(geometry.Offset(c.direction))
				So(reverse.ManhattanDistance(target), ShouldBeLessThanOrEqualTo, 3)
			}
		})
	})
}

func TestIsValidCandidateRejectsOuterRingAndObstacles(t *testing.T) {
	Convey("Given an arena with one obstacle", t, func() {
		a := arena.New()
		a.SetObstacle(geometry.Point{Row: 10, Col: 7}, true)

		Convey("A candidate on the obstacle itself is invalid", func() {
			So(isValidCandidate(a, candidate{point: geometry.Point{Row: 10, Col: 7}}), ShouldBeFalse)
		})

		Convey("A candidate on the outer ring is invalid", func() {
			So(isValidCandidate(a, candidate{point: geometry.Point{Row: 0, Col: 5}}), ShouldBeFalse)
		})

		Convey("A candidate whose footprint is already fully explored (start region) is valid", func() {
			So(isValidCandidate(a, candidate{point: arena.CanonicalStart}), ShouldBeTrue)
		})
	})
}

func TestCandidatePoolSortedNearestFirst(t *testing.T) {
	Convey("Given an engine near the start with the whole arena still unexplored", t, func() {
		a := arena.New()
		host := &fakeHost{}
		e := newTestEngine(a, geometry.Pose{Point: arena.CanonicalStart, Direction: geometry.East}, host)

		pool := e.candidatePool()

		Convey("The pool is sorted by non-decreasing distance from the robot", func() {
			for i := 1; i < len(pool); i++ {
				prev := pool[i-1].point.ManhattanDistance(e.robot.Pose.Point)
				cur := pool[i].point.ManhattanDistance(e.robot.Pose.Point)
				So(cur, ShouldBeGreaterThanOrEqualTo, prev)
			}
		})
	})
}
