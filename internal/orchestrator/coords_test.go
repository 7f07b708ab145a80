package orchestrator

import (
	"testing"

	"github.com/HanYiChoong/MDP-Grp6-Algorithms/internal/geometry"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCoordinateRoundTrip(t *testing.T) {
	Convey("Given the canonical start cell in internal coordinates", t, func() {
		p := geometry.Point{Row: 18, Col: 1}

		Convey("Converting to external and back yields the same point", func() {
			x, y := toExternal(p)
			So(toInternal(x, y), ShouldResemble, p)
		})
	})

	Convey("Given an external coordinate at the origin", t, func() {
		Convey("It maps to the bottom-left internal row", func() {
			So(toInternal(0, 0), ShouldResemble, geometry.Point{Row: 19, Col: 0})
		})
	})

	Convey("Given the internal top-left corner", t, func() {
		Convey("It maps to external (0, 19)", func() {
			x, y := toExternal(geometry.Point{Row: 0, Col: 0})
			So(x, ShouldEqual, 0)
			So(y, ShouldEqual, 19)
		})
	})
}
