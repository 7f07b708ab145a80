package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/HanYiChoong/MDP-Grp6-Algorithms/internal/arena"
	"github.com/HanYiChoong/MDP-Grp6-Algorithms/internal/orchestrator"
	"github.com/gorilla/websocket"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMuxDebugRoutes(t *testing.T) {
	Convey("Given a mux wired to an arena", t, func() {
		a := arena.New()
		srv := httptest.NewServer(NewMux(a, func(context.Context, *websocket.Conn) error { return nil }))
		defer srv.Close()

		Convey("GET /healthz reports ok", func() {
			resp, err := http.Get(srv.URL + "/healthz")
			So(err, ShouldBeNil)
			So(resp.StatusCode, ShouldEqual, http.StatusOK)
		})

		Convey("GET /debug/arena returns a JSON snapshot", func() {
			resp, err := http.Get(srv.URL + "/debug/arena")
			So(err, ShouldBeNil)
			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			So(resp.Header.Get("Content-Type"), ShouldEqual, "application/json")
		})
	})
}

func TestWebsocketTransportDeliversFrameAndReply(t *testing.T) {
	Convey("Given a server that pops one inbound frame and replies", t, func() {
		a := arena.New()
		received := make(chan string, 1)

		handler := func(ctx context.Context, conn *websocket.Conn) error {
			runCtx, cancel := context.WithCancel(ctx)
			defer cancel()

			queue := orchestrator.NewQueue(4)
			tr := NewWebsocketTransport(conn, queue)
			go func() { _ = tr.Serve(runCtx) }()

			frame, ok := queue.Pop(runCtx)
			if ok {
				received <- frame
				_ = tr.Send(runCtx, "a MDF ACK ACK")
			}
			return nil
		}

		srv := httptest.NewServer(NewMux(a, handler))
		defer srv.Close()

		wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
		conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
		So(err, ShouldBeNil)
		defer conn.Close()

		So(conn.WriteMessage(websocket.TextMessage, []byte("EXP")), ShouldBeNil)

		Convey("The server receives the frame verbatim and replies", func() {
			select {
			case frame := <-received:
				So(frame, ShouldEqual, "EXP")
			case <-time.After(2 * time.Second):
				t.Fatal("timed out waiting for the server to receive the frame")
			}

			_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
			_, data, err := conn.ReadMessage()
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "a MDF ACK ACK")
		})
	})
}
