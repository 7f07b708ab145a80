// Package orchestrator consumes inbound frames from a transport, drives one
// of {exploration, image-recognition exploration, fastest-path} over an
// arena and robot, and emits outbound frames. It is the only package that
// knows about the wire protocol; everything below it speaks internal
// (row, col) coordinates exclusively, per the coordinate-frame guidance in
// DESIGN.md.
package orchestrator

import (
	"github.com/HanYiChoong/MDP-Grp6-Algorithms/internal/arena"
	"github.com/HanYiChoong/MDP-Grp6-Algorithms/internal/geometry"
)

// toInternal converts an external (x, y) coordinate, as carried on the wire,
// to the internal (row, col) frame. External y is flipped relative to
// internal row: internal r = 19 - external_y, internal c = external_x.
func toInternal(x, y int) geometry.Point {
	return geometry.Point{Row: (arena.Height - 1) - y, Col: x}
}

// toExternal is the inverse of toInternal: external x = col, external y =
// 19 - row.
func toExternal(p geometry.Point) (x, y int) {
	return p.Col, (arena.Height - 1) - p.Row
}

// toImaging is identical to toExternal; the imaging frame reuses the same
// flip but carries its coordinates as integers rather than wire strings.
func toImaging(p geometry.Point) (x, y int) {
	return toExternal(p)
}
