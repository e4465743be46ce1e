// Package remote bridges browser clients to the engine over a websocket.
// Every connection gets its own engine; the engine draws into a Surface that
// encodes each call as a protocol message.
package remote

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"worldofbits/pkg/game/gameplay"
	"worldofbits/pkg/game/protocol"
	"worldofbits/pkg/game/renderer"
)

// EngineFactory builds a fresh engine drawing into s. The factory owns any
// shared collaborators such as the journal; the server never closes them.
type EngineFactory func(s renderer.Surface) *gameplay.Engine

// Server accepts websocket connections on /ws
type Server struct {
	newEngine EngineFactory
	log       *log.Logger

	upgrader websocket.Upgrader
}

// NewServer creates a server that starts one engine per connection
func NewServer(factory EngineFactory, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		newEngine: factory,
		log:       logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  16 * 1024,
			WriteBufferSize: 16 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true }, // dev default
		},
	}
}

// Mux returns a mux serving the bridge at /ws
func (s *Server) Mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.Handler())
	return mux
}

// ListenAndServe serves the bridge on addr until the listener fails
func (s *Server) ListenAndServe(addr string) error {
	s.log.Printf("listening on %s", addr)
	srv := &http.Server{Addr: addr, Handler: s.Mux(), ReadHeaderTimeout: 5 * time.Second}
	return srv.ListenAndServe()
}

// Handler upgrades the request and runs one session until the client leaves
func (s *Server) Handler() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		conn, err := s.upgrader.Upgrade(rw, r, nil)
		if err != nil {
			s.log.Printf("upgrade: %v", err)
			return
		}
		defer conn.Close()

		ctx, cancel := context.WithCancel(r.Context())
		defer cancel()

		out := make(chan []byte, 512)
		surface := &wsSurface{ctx: ctx, out: out, log: s.log}

		// Writer goroutine.
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case b := <-out:
					_ = conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
					if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
						cancel()
						return
					}
				}
			}
		}()

		engine := s.newEngine(surface)
		engine.Start()
		s.log.Printf("session started from %s", r.RemoteAddr)

		// Reader loop.
		for {
			_ = conn.SetReadDeadline(time.Now().Add(10 * time.Minute))
			_, msg, err := conn.ReadMessage()
			if err != nil {
				break
			}
			m, err := protocol.DecodeClient(msg)
			if err != nil {
				surface.reject(err)
				continue
			}
			s.dispatch(engine, surface, m)
		}
		s.log.Printf("session from %s ended", r.RemoteAddr)
	}
}

// dispatch drives the engine entry point for one client message
func (s *Server) dispatch(e *gameplay.Engine, surface *wsSurface, m protocol.ClientMessage) {
	switch m.Type {
	case protocol.TypeActivate:
		e.OnCellActivated(m.Cell())
	case protocol.TypeViewport:
		e.OnViewportChanged(m.LatLng())
	case protocol.TypeMove:
		dir, ok := m.Direction()
		if !ok {
			surface.reject(protocol.ErrBadRequest)
			return
		}
		e.Move(dir)
	case protocol.TypeRefresh:
		e.Refresh()
	}
}

// wsSurface encodes surface calls onto the connection's outbound queue.
// It is called with the engine lock held and only blocks on a full queue.
type wsSurface struct {
	ctx context.Context
	out chan<- []byte
	log *log.Logger
}

func (s *wsSurface) send(v any) {
	b, err := json.Marshal(v)
	if err != nil {
		s.log.Printf("encode %T: %v", v, err)
		return
	}
	select {
	case s.out <- b:
	case <-s.ctx.Done():
	}
}

// reject reports a malformed client message as a denied notice
func (s *wsSurface) reject(err error) {
	text := "bad request"
	if errors.Is(err, protocol.ErrUnknownType) {
		text = "unknown message type"
	}
	s.send(protocol.NoticeMsg{Type: protocol.TypeNotice, Kind: protocol.NoticeKindName(renderer.NoticeDenied), Text: text})
}

// Clear implements renderer.Surface
func (s *wsSurface) Clear() { s.send(protocol.NewClear()) }

// DrawCell implements renderer.Surface
func (s *wsSurface) DrawCell(v renderer.CellView) { s.send(protocol.NewCell(protocol.TypeCell, v)) }

// UpdateCell implements renderer.Surface
func (s *wsSurface) UpdateCell(v renderer.CellView) { s.send(protocol.NewCell(protocol.TypeUpdate, v)) }

// ShowStatus implements renderer.Surface
func (s *wsSurface) ShowStatus(st renderer.Status) { s.send(protocol.NewStatus(st)) }

// Notify implements renderer.Surface
func (s *wsSurface) Notify(n renderer.Notice) { s.send(protocol.NewNotice(n)) }
