package transport

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/HanYiChoong/MDP-Grp6-Algorithms/internal/arena"
	"github.com/HanYiChoong/MDP-Grp6-Algorithms/internal/orchestrator"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"
)

var upgrader = websocket.Upgrader{}

// ConnHandler serves one upgraded websocket connection for the lifetime of
// ctx (the request's context, cancelled on client disconnect or server
// shutdown). It returns once the connection is done.
type ConnHandler func(ctx context.Context, conn *websocket.Conn) error

// NewMux builds the HTTP router: the websocket upgrade endpoint the
// exploration client connects to, plus a couple of read-only debug routes
// so a GUI collaborator (or a human) can inspect arena state without going
// through the wire protocol, per the design notes' "GUI owns only
// read-mostly snapshots" guidance.
func NewMux(a *arena.Arena, handle ConnHandler) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/ws", func(w http.ResponseWriter, req *http.Request) {
		conn, err := upgrader.Upgrade(w, req, nil)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if err := handle(req.Context(), conn); err != nil {
			log.Printf("transport: connection ended: %v", err)
		}
	}).Methods(http.MethodGet)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	r.HandleFunc("/debug/arena", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(a.Snapshot())
	}).Methods(http.MethodGet)

	return r
}

// NewConnHandler adapts an orchestrator factory into a ConnHandler: each
// upgraded connection gets its own Queue, its own WebsocketTransport, and
// its own Orchestrator, so concurrent clients never share inbound state.
// The transport's read pump and the orchestrator's dispatch loop run
// concurrently and the handler returns once either exits.
func NewConnHandler(newOrchestrator func(*orchestrator.Queue, orchestrator.FrameSink) *orchestrator.Orchestrator) ConnHandler {
	return func(ctx context.Context, conn *websocket.Conn) error {
		queue := orchestrator.NewQueue(64)
		t := NewWebsocketTransport(conn, queue)
		o := newOrchestrator(queue, t)

		group, groupCtx := errgroup.WithContext(ctx)
		group.Go(func() error {
			return t.Serve(groupCtx)
		})
		group.Go(func() error {
			return o.Run(groupCtx)
		})
		return group.Wait()
	}
}
