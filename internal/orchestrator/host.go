package orchestrator

import (
	"context"
	"log"
	"time"

	"github.com/HanYiChoong/MDP-Grp6-Algorithms/internal/arena"
	"github.com/HanYiChoong/MDP-Grp6-Algorithms/internal/geometry"
	"github.com/HanYiChoong/MDP-Grp6-Algorithms/internal/robot"
)

// hostAdapter backs explore.Host with the orchestrator's queue and sink, per
// the single ExplorationHost capability the design notes call for in place
// of scattered callbacks.
type hostAdapter struct {
	ctx    context.Context
	cancel context.CancelFunc
	arena  *arena.Arena
	queue  *Queue
	sink   FrameSink
	cfg    Config
}

// ReportMove is a no-op here: the frame that actually surfaces a pose change
// is the MDF frame emitted from ReportCellExplored, once sensing for that
// move has folded into the arena. Emitting from ReportMove instead would
// send a frame one sense-cycle stale.
func (h *hostAdapter) ReportMove(pose geometry.Pose, movement geometry.Movement) {}

// ReportCellExplored emits the "a MDF <P1> <P2>" frame described in §4.5,
// reflecting the arena state immediately after the move that produced p.
func (h *hostAdapter) ReportCellExplored(p geometry.Point) {
	p1, p2 := h.arena.EncodeMDF()
	if err := h.sink.Send(h.ctx, formatMDF(p1, p2)); err != nil {
		log.Printf("orchestrator: send MDF frame: %v", err)
	}
}

// RequestSensors waits out the configured settle delay, then pops frames off
// the inbound queue until a P frame arrives, discarding anything else (the
// dispatch loop is not running concurrently, so this is the only reader
// while a sense is pending). A closed queue or a terminate frame both yield
// an empty reading; the engine then applies no reading for that step and
// carries on. The context is also cancelled on terminate so the next
// limitExceeded check stops the run.
func (h *hostAdapter) RequestSensors() []robot.Reading {
	if h.cfg.SensorRequestDelay > 0 {
		time.Sleep(h.cfg.SensorRequestDelay)
	}

	for {
		frame, ok := h.queue.Pop(h.ctx)
		if !ok {
			return nil
		}

		parsed := parseInbound(frame)
		switch parsed.header {
		case headerSensors:
			readings, err := parseSensorPayload(parsed.payload)
			if err != nil {
				log.Printf("orchestrator: malformed sensor payload %q: %v", parsed.payload, err)
				continue
			}
			return readings
		case headerTerminate:
			if h.cancel != nil {
				h.cancel()
			}
			return nil
		default:
			log.Printf("orchestrator: discarding %q while awaiting sensors", frame)
		}
	}
}

// RequestPhoto emits the outbound photo-request frame for target, in
// Imaging coordinates.
func (h *hostAdapter) RequestPhoto(target geometry.Point) {
	if err := h.sink.Send(h.ctx, formatPhotoRequest(target)); err != nil {
		log.Printf("orchestrator: send photo request: %v", err)
	}
}

// RequestCalibration has no wire encoding (see DESIGN.md): the reference
// implementation recalibrates the robot's position against a flush wall as
// a local concern of the motion collaborator, not a message the orchestrator
// originates. Logged rather than sent, so the trigger is still observable.
func (h *hostAdapter) RequestCalibration(ctx context.Context, reason string) {
	log.Printf("orchestrator: calibration requested: %s", reason)
}
