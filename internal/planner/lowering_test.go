package planner

import (
	"testing"

	"github.com/HanYiChoong/MDP-Grp6-Algorithms/internal/geometry"
	. "github.com/smartystreets/goconvey/convey"
)

func TestToMovements(t *testing.T) {
	Convey("Given a path that goes straight, turns right once, then continues straight", t, func() {
		path := []*Node{
			{Point: geometry.Point{Row: 9, Col: 5}, Direction: geometry.North},
			{Point: geometry.Point{Row: 8, Col: 5}, Direction: geometry.North},
			{Point: geometry.Point{Row: 8, Col: 6}, Direction: geometry.East},
			{Point: geometry.Point{Row: 8, Col: 7}, Direction: geometry.East},
		}

		movements := ToMovements(path, geometry.North)

		Convey("It emits one Right before the turn and Forward for every node", func() {
			So(movements, ShouldResemble, []geometry.Movement{
				geometry.Forward, geometry.Forward,
				geometry.Right, geometry.Forward,
				geometry.Forward,
			})
		})
	})

	Convey("Given a path that reverses direction entirely", t, func() {
		path := []*Node{
			{Point: geometry.Point{Row: 9, Col: 5}, Direction: geometry.South},
		}

		movements := ToMovements(path, geometry.North)

		Convey("It emits two Rights before the Forward", func() {
			So(movements, ShouldResemble, []geometry.Movement{geometry.Right, geometry.Right, geometry.Forward})
		})
	})
}

func TestConsolidate(t *testing.T) {
	Convey("Given [F,F,R,F]", t, func() {
		movements := []geometry.Movement{geometry.Forward, geometry.Forward, geometry.Right, geometry.Forward}

		Convey("It consolidates to F2|R1|F1|", func() {
			So(Consolidate(movements), ShouldEqual, "F2|R1|F1|")
		})
	})

	Convey("Given an empty movement list", t, func() {
		Convey("It consolidates to the empty string", func() {
			So(Consolidate(nil), ShouldEqual, "")
		})
	})
}

func TestBatch(t *testing.T) {
	Convey("Given a consolidated string longer than the budget", t, func() {
		consolidated := "F2|R1|F10|L1|F3|"

		Convey("Batching never splits a token across chunks", func() {
			chunks := Batch(consolidated, 6)
			for _, c := range chunks {
				So(c, ShouldEndWith, "|")
			}
			So(chunksJoined(chunks), ShouldEqual, consolidated)
		})
	})

	Convey("Given the empty string", t, func() {
		Convey("Batch returns no chunks", func() {
			So(Batch("", 6), ShouldBeEmpty)
		})
	})
}

func chunksJoined(chunks []string) string {
	out := ""
	for _, c := range chunks {
		out += c
	}
	return out
}
