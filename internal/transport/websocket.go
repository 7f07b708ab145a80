// Package transport is the externalmost layer: it upgrades HTTP connections
// to websockets, serializes reads and writes to the single client frame
// format described in §6, and feeds whole inbound lines into an
// orchestrator.Queue. It implements orchestrator.FrameSink directly, so the
// orchestrator never imports net/http or gorilla/websocket.
package transport

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/HanYiChoong/MDP-Grp6-Algorithms/internal/orchestrator"
	"github.com/gorilla/websocket"
	channerics "github.com/niceyeti/channerics/channels"
	"golang.org/x/sync/errgroup"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 1 * time.Second
	// Maximum message size accepted from the peer: comfortably larger than
	// any inbound frame this protocol defines (the widest is P$ with six
	// space-separated integers).
	maxMessageSize = 512

	pingResolution = 500 * time.Millisecond
	// Example code sets this to 10*pingResolution. By definition it
	// encompasses the number of pings to tolerate losing before concluding
	// the peer is gone.
	pongWait = pingResolution * 4

	writeDeadline = time.Second
)

// ErrPongDeadlineExceeded indicates the peer stopped answering pings.
var ErrPongDeadlineExceeded = errors.New("transport: client disconnect, pong deadline exceeded")

// ErrSockCongestion indicates too many waiters queued on the socket for a
// given operation.
var ErrSockCongestion = errors.New("transport: sock op failed due to congestion")

// WebsocketTransport pairs one upgraded websocket connection with the
// orchestrator's inbound Queue. Serve runs until the peer disconnects, the
// context is cancelled, or an unrecoverable websocket error occurs; Send
// implements orchestrator.FrameSink so the orchestrator can be handed this
// transport directly as its outbound sink.
//
// The connection is read from exactly one goroutine (readFrames), so reads
// need no serialization. Writes are a different story: pingPong and
// whatever goroutine calls Send (the orchestrator's dispatch loop) both
// write to the same *websocket.Conn, which gorilla/websocket requires to
// have at most one writer at a time. writeSem is the lock for that, sized
// as a capacity-1 channel so a write attempt can still respect ctx
// cancellation instead of blocking forever on a wedged peer.
type WebsocketTransport struct {
	conn     *websocket.Conn
	queue    *orchestrator.Queue
	writeSem chan struct{}
}

// NewWebsocketTransport wraps an already-upgraded connection.
func NewWebsocketTransport(conn *websocket.Conn, queue *orchestrator.Queue) *WebsocketTransport {
	conn.SetReadLimit(maxMessageSize)
	return &WebsocketTransport{conn: conn, queue: queue, writeSem: make(chan struct{}, 1)}
}

// Serve runs the read pump (T1: append whole frames to the inbound queue)
// and the liveness ping-pong concurrently until either fails or ctx is
// cancelled. The queue is always closed on return, which is the shutdown
// sentinel the orchestrator's dispatch loop responds to, and the connection
// itself is always closed too.
func (t *WebsocketTransport) Serve(ctx context.Context) error {
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return t.readFrames(groupCtx)
	})
	group.Go(func() error {
		return t.pingPong(groupCtx)
	})

	err := group.Wait()
	t.queue.Close()
	t.close()
	return err
}

// readFrames blocks on the network and pushes each whole text frame onto
// the inbound queue in arrival order, satisfying the FIFO ordering
// guarantee in §5.
func (t *WebsocketTransport) readFrames(ctx context.Context) error {
	for {
		_, data, err := t.conn.ReadMessage()
		if err != nil {
			return err
		}
		if err := t.queue.Push(ctx, string(data)); err != nil {
			return err
		}
	}
}

// pingPong runs the client liveness check, mirroring the read-pump/pong-
// handler pattern websocket connections require.
func (t *WebsocketTransport) pingPong(ctx context.Context) error {
	pong := make(chan struct{})
	defer close(pong)
	t.conn.SetPongHandler(func(_ string) error {
		pong <- struct{}{}
		return nil
	})

	pinger := channerics.NewTicker(ctx.Done(), pingResolution)
	lastPong := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-pinger:
			if time.Since(lastPong) > pongWait {
				return ErrPongDeadlineExceeded
			}
			if err := t.ping(ctx); err != nil {
				return err
			}
		case <-pong:
			lastPong = time.Now()
		}
	}
}

func (t *WebsocketTransport) ping(ctx context.Context) error {
	return t.withWriteLock(ctx, func() error {
		if err := t.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
			if isError(err) {
				return fmt.Errorf("ping failed: %T %v", err, err)
			}
			return err
		}
		return nil
	})
}

// Send implements orchestrator.FrameSink: it writes one outbound frame as a
// text message.
func (t *WebsocketTransport) Send(ctx context.Context, frame string) error {
	return t.withWriteLock(ctx, func() error {
		if err := t.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
			return fmt.Errorf("failed to set deadline: %T %w", err, err)
		}
		if err := t.conn.WriteMessage(websocket.TextMessage, []byte(frame)); err != nil {
			if isError(err) {
				return fmt.Errorf("send failed: %T %v", err, err)
			}
			return err
		}
		return nil
	})
}

// withWriteLock serializes writeFn against every other writer on this
// connection, giving up with ErrSockCongestion rather than blocking forever
// if the lock can't be acquired before writeDeadline.
func (t *WebsocketTransport) withWriteLock(ctx context.Context, writeFn func() error) error {
	select {
	case <-ctx.Done():
		return nil
	case t.writeSem <- struct{}{}:
		defer func() { <-t.writeSem }()
		return writeFn()
	case <-time.After(writeDeadline):
		return ErrSockCongestion
	}
}

// close sends a close frame and tears down the connection. Called once,
// from Serve, after both the read pump and ping-pong have exited.
func (t *WebsocketTransport) close() {
	_ = t.withWriteLock(context.Background(), func() error {
		_ = t.conn.SetWriteDeadline(time.Now().Add(writeWait))
		return t.conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	})
	t.conn.Close()
}

func isError(err error) bool {
	return err != nil && websocket.IsUnexpectedCloseError(
		err,
		websocket.CloseNormalClosure,
		websocket.CloseGoingAway)
}
