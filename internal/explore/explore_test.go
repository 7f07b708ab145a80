package explore

import (
	"context"

	"github.com/HanYiChoong/MDP-Grp6-Algorithms/internal/arena"
	"github.com/HanYiChoong/MDP-Grp6-Algorithms/internal/geometry"
	"github.com/HanYiChoong/MDP-Grp6-Algorithms/internal/robot"
)

// fakeHost is a recording Host: sensors always report "nothing ahead"
// unless a test configures SenseFunc, matching the convention of supplying
// a recording fake described in the redesign notes.
type fakeHost struct {
	Moves              []geometry.Movement
	ExploredCells      []geometry.Point
	Photos             []geometry.Point
	CalibrationReasons []string
	SenseFunc          func() []robot.Reading
}

func (h *fakeHost) ReportMove(pose geometry.Pose, movement geometry.Movement) {
	h.Moves = append(h.Moves, movement)
}

func (h *fakeHost) ReportCellExplored(p geometry.Point) {
	h.ExploredCells = append(h.ExploredCells, p)
}

func (h *fakeHost) RequestSensors() []robot.Reading {
	if h.SenseFunc != nil {
		return h.SenseFunc()
	}
	readings := make([]robot.Reading, len(robot.DefaultSensors()))
	for i := range readings {
		readings[i] = robot.Reading{Exhausted: true}
	}
	return readings
}

func (h *fakeHost) RequestPhoto(target geometry.Point) {
	h.Photos = append(h.Photos, target)
}

func (h *fakeHost) RequestCalibration(ctx context.Context, reason string) {
	h.CalibrationReasons = append(h.CalibrationReasons, reason)
}

func newTestEngine(a *arena.Arena, start geometry.Pose, host Host) *Engine {
	r := robot.New(start, robot.DefaultSensors(), 1.0)
	return New(a, r, host, DefaultConfig())
}

var backgroundCtx = context.Background()
