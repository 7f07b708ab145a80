package orchestrator

import (
	"context"
	"log"
	"time"

	"github.com/HanYiChoong/MDP-Grp6-Algorithms/internal/arena"
	"github.com/HanYiChoong/MDP-Grp6-Algorithms/internal/explore"
	"github.com/HanYiChoong/MDP-Grp6-Algorithms/internal/geometry"
	"github.com/HanYiChoong/MDP-Grp6-Algorithms/internal/planner"
	"github.com/HanYiChoong/MDP-Grp6-Algorithms/internal/robot"
)

// motionChunkCharBudget bounds how many characters of consolidated motion
// commands are sent per "h ..." frame. The spec fixes only the pacing
// interval between chunks, not a chunk size; this mirrors the kind of
// payload limit a serial-connected motion collaborator (e.g. an Arduino's
// line buffer) would actually impose.
const motionChunkCharBudget = 20

// Config holds the run parameters enumerated in §6. Durations are
// pre-converted from the configured seconds so the rest of the package
// never does unit arithmetic at the call site.
type Config struct {
	CoverageLimit       float64
	TimeLimit           time.Duration
	RobotSpeed          float64
	MotionChunkPacing   time.Duration
	SensorRequestDelay  time.Duration
	InboundPollInterval time.Duration
	LoopSignatureLength int
}

func (c Config) exploreConfig() explore.Config {
	return explore.Config{
		CoverageLimit:       c.CoverageLimit,
		TimeLimit:           c.TimeLimit,
		LoopSignatureLength: c.LoopSignatureLength,
	}
}

// Orchestrator owns the arena and holds a mutable reference to the robot,
// per the shared-resources model in §5. It is the sole consumer of the
// inbound Queue and the sole producer onto the outbound FrameSink.
type Orchestrator struct {
	arena *arena.Arena
	robot *robot.Robot
	queue *Queue
	sink  FrameSink
	cfg   Config

	waypoint *geometry.Point
	cancel   context.CancelFunc
}

// New returns an Orchestrator wired to drive robot over arena, consuming
// inbound frames from queue and writing outbound frames to sink.
func New(a *arena.Arena, r *robot.Robot, queue *Queue, sink FrameSink, cfg Config) *Orchestrator {
	return &Orchestrator{arena: a, robot: r, queue: queue, sink: sink, cfg: cfg}
}

// Run is task T2: it pops frames in FIFO order and dispatches each to the
// operation named in §4.5, until the queue closes, ctx is cancelled, or a
// terminate frame arrives. Any other header is logged and discarded.
func (o *Orchestrator) Run(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	o.cancel = cancel

	for {
		frame, ok := o.queue.Pop(runCtx)
		if !ok {
			return nil
		}

		parsed := parseInbound(frame)
		switch parsed.header {
		case headerExplore:
			o.runExploration(runCtx, false)
		case headerImageExplore:
			o.runExploration(runCtx, true)
		case headerWaypoint:
			o.handleWaypoint(parsed.payload)
		case headerStart:
			o.handleStart(parsed.payload)
		case headerFastestPath:
			o.runFastestPath(runCtx)
		case headerTerminate:
			return nil
		default:
			log.Printf("orchestrator: discarding unrecognised frame %q", frame)
		}

		select {
		case <-runCtx.Done():
			return nil
		default:
		}
	}
}

func (o *Orchestrator) runExploration(ctx context.Context, imageRecognition bool) {
	host := &hostAdapter{
		ctx:    ctx,
		cancel: o.cancel,
		arena:  o.arena,
		queue:  o.queue,
		sink:   o.sink,
		cfg:    o.cfg,
	}

	engine := explore.New(o.arena, o.robot, host, o.cfg.exploreConfig())

	var err error
	if imageRecognition {
		err = explore.NewImageEngine(engine).Run(ctx)
	} else {
		err = engine.Run(ctx)
	}
	if err != nil {
		log.Printf("orchestrator: exploration run ended: %v", err)
	}
}

// handleWaypoint decodes and validates a WP frame's payload, per §4.5 and
// §7's ValidationError recovery: log and discard, never abort the task.
func (o *Orchestrator) handleWaypoint(payload string) {
	x, y, err := parseCoordinatePayload(payload)
	if err != nil {
		log.Printf("orchestrator: malformed waypoint payload %q: %v", payload, err)
		return
	}

	p := toInternal(x, y)
	if !o.isValidAnchor(p) {
		log.Printf("orchestrator: waypoint %v rejected: not a free inner cell", p)
		return
	}
	o.waypoint = &p
}

// handleStart decodes and validates a START frame's payload and relocates
// the robot to it.
func (o *Orchestrator) handleStart(payload string) {
	x, y, err := parseCoordinatePayload(payload)
	if err != nil {
		log.Printf("orchestrator: malformed start payload %q: %v", payload, err)
		return
	}

	p := toInternal(x, y)
	if !o.isValidAnchor(p) {
		log.Printf("orchestrator: start pose %v rejected: not a free inner cell", p)
		return
	}
	o.robot.Pose.Point = p
}

func (o *Orchestrator) isValidAnchor(p geometry.Point) bool {
	return arena.IsWithinInnerRange(p) && !o.arena.IsObstacle(p)
}

// runFastestPath implements the FP dispatch: plan from the robot's current
// pose through the set waypoint to the goal, emit the consolidated motion
// frames at the paced interval, then replay the same path locally so the
// display collaborator sees the resulting poses.
func (o *Orchestrator) runFastestPath(ctx context.Context) {
	if o.waypoint == nil {
		log.Printf("orchestrator: FP requested with no waypoint set")
		return
	}

	grid := o.arena.DerivedGrid(false)
	path, err := planner.Plan(grid, o.robot.Pose.Point, o.robot.Pose.Direction, o.waypoint, arena.CanonicalGoal)
	if err != nil {
		log.Printf("orchestrator: fastest-path planning failed: %v", err)
		return
	}

	initialDirection := o.robot.Pose.Direction
	movements := planner.ToMovements(path, initialDirection)
	consolidated := planner.Consolidate(movements)
	chunks := planner.Batch(consolidated, motionChunkCharBudget)

	if err := o.sink.Send(ctx, formatMotionIndicator()); err != nil {
		log.Printf("orchestrator: send motion indicator: %v", err)
		return
	}

	for _, chunk := range chunks {
		select {
		case <-ctx.Done():
			return
		default:
		}
		if err := o.sink.Send(ctx, planner.FormatMotionFrame(chunk)); err != nil {
			log.Printf("orchestrator: send motion chunk: %v", err)
			return
		}
		time.Sleep(o.cfg.MotionChunkPacing)
	}

	o.replayFastestPath(ctx, movements)
}

// replayFastestPath walks the already-lowered movement sequence directly on
// the robot (no sensing: the map is already known) and emits an MDF frame
// per step so the display collaborator can surface the resulting poses.
func (o *Orchestrator) replayFastestPath(ctx context.Context, movements []geometry.Movement) {
	for _, m := range movements {
		o.robot.Step(m)
		p1, p2 := o.arena.EncodeMDF()
		if err := o.sink.Send(ctx, formatMDF(p1, p2)); err != nil {
			log.Printf("orchestrator: send MDF during fastest-path replay: %v", err)
			return
		}
	}
}
