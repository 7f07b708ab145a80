package orchestrator

import "context"

// FrameSink is the orchestrator's outbound side: whatever transport the
// caller wires in (a websocket, a serial port, a test recorder) accepts
// fully-formatted wire frames and delivers them to the appropriate
// collaborator (display, motion, or photo).
type FrameSink interface {
	Send(ctx context.Context, frame string) error
}
