package explore

import (
	"context"
	"time"

	"github.com/HanYiChoong/MDP-Grp6-Algorithms/internal/arena"
	"github.com/HanYiChoong/MDP-Grp6-Algorithms/internal/geometry"
	"github.com/HanYiChoong/MDP-Grp6-Algorithms/internal/planner"
	"github.com/HanYiChoong/MDP-Grp6-Algorithms/internal/robot"
)

// Engine drives one exploration run. It borrows the arena and robot
// exclusively for the duration of Run; both are owned by the orchestrator,
// per the single-owner guidance this package follows.
type Engine struct {
	arena  *arena.Arena
	robot  *robot.Robot
	host   Host
	config Config

	startTime    time.Time
	enteredGoal  bool
	previousStep geometry.Point
	hasPrevious  bool
	recent       []geometry.Movement
}

// New returns an Engine ready to run over the given arena and robot.
func New(a *arena.Arena, r *robot.Robot, host Host, cfg Config) *Engine {
	return &Engine{arena: a, robot: r, host: host, config: cfg}
}

func (e *Engine) coverage() float64 {
	return e.arena.Coverage()
}

func (e *Engine) timeElapsed() time.Duration {
	return time.Since(e.startTime)
}

// returnBudget estimates the time needed to return to the start cell from
// the robot's current pose, per §4.3's heuristic_distance(robot,start) /
// robot.speed.
func (e *Engine) returnBudget() time.Duration {
	if e.robot.Speed <= 0 {
		return 0
	}
	distance := e.robot.Pose.Point.ManhattanDistance(arena.CanonicalStart)
	return time.Duration(float64(distance)/e.robot.Speed) * time.Second
}

// limitExceeded is true once the run should stop accepting new exploratory
// moves: the caller cancelled, coverage is already past budget, or there is
// no longer enough wall-time left to both keep exploring and get home.
func (e *Engine) limitExceeded(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
	}
	if e.coverage() > e.config.CoverageLimit {
		return true
	}
	return e.timeElapsed()+e.returnBudget() > e.config.TimeLimit
}

// move issues one movement, senses, and folds the result into the arena and
// the recent-movement window used for loop detection.
func (e *Engine) move(movement geometry.Movement) {
	if movement == geometry.Forward || movement == geometry.Backward {
		e.previousStep = e.robot.Pose.Point
		e.hasPrevious = true
	}

	e.robot.Step(movement)
	e.host.ReportMove(e.robot.Pose, movement)

	e.senseAndApply()

	e.arena.MarkFootprintExplored(e.robot.Pose.Point)
	e.host.ReportCellExplored(e.robot.Pose.Point)

	e.recordMovement(movement)
}

func (e *Engine) recordMovement(m geometry.Movement) {
	e.recent = append(e.recent, m)
	if len(e.recent) > e.config.LoopSignatureLength {
		e.recent = e.recent[len(e.recent)-e.config.LoopSignatureLength:]
	}
}

// loopSignature is the alternating Forward/Right pattern the hug loop
// escapes when it has clearly started oscillating: F,R,F,R,F,R,...
func loopSignature(length int) []geometry.Movement {
	sig := make([]geometry.Movement, length)
	for i := range sig {
		if i%2 == 0 {
			sig[i] = geometry.Forward
		} else {
			sig[i] = geometry.Right
		}
	}
	return sig
}

func (e *Engine) matchesLoopSignature() bool {
	want := loopSignature(e.config.LoopSignatureLength)
	if len(e.recent) != len(want) {
		return false
	}
	for i := range want {
		if e.recent[i] != want[i] {
			return false
		}
	}
	return true
}

// Run executes the full exploration lifecycle: initial sense, right-hug,
// targeted sweep, return home. It returns early, leaving the robot in
// place, if the return-home plan fails.
func (e *Engine) Run(ctx context.Context) error {
	e.startTime = time.Now()

	e.senseAndApply()
	e.arena.MarkFootprintExplored(e.robot.Pose.Point)
	e.host.ReportCellExplored(e.robot.Pose.Point)

	e.rightHug(ctx)
	e.targetedSweep(ctx)
	return e.returnHome(ctx)
}

// replay issues every movement in a planned path in order, via move, so
// each step senses and records like any other movement.
func (e *Engine) replay(path []*planner.Node, initialDirection geometry.Direction) {
	for _, m := range planner.ToMovements(path, initialDirection) {
		e.move(m)
	}
}

// rotateTo issues the minimal turn sequence to face target, without moving.
func (e *Engine) rotateTo(target geometry.Direction) {
	for _, m := range geometry.RotationsFor(e.robot.Pose.Direction, target) {
		e.move(m)
	}
}
