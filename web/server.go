// Package web mirrors the running session into browsers: an embedded
// canvas client, periodic state and point pushes over a websocket, and
// remote clicks injected back into the viewer loop as synthetic mouse
// events.
package web

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"

	"github.com/coder/websocket"

	"github.com/lixenwraith/chaoscope/constants"
	"github.com/lixenwraith/chaoscope/display"
	"github.com/lixenwraith/chaoscope/engine"
)

//go:embed index.html
var indexHTML []byte

// Server mirrors published snapshots to websocket clients
type Server struct {
	addr   string
	source func() *engine.Snapshot
	events chan display.Event

	httpSrv *http.Server
	ln      net.Listener
}

// NewServer creates a mirror server reading frames from source.
// Nothing listens until Start.
func NewServer(addr string, source func() *engine.Snapshot) *Server {
	s := &Server{
		addr:   addr,
		source: source,
		events: make(chan display.Event, 100),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/ws", s.handleWS)
	s.httpSrv = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: constants.WebReadHeaderTimeout,
	}
	return s
}

// Events returns remote clicks as synthetic mouse events
func (s *Server) Events() <-chan display.Event {
	return s.events
}

// Handler exposes the route table
func (s *Server) Handler() http.Handler {
	return s.httpSrv.Handler
}

// Start binds the listen address and serves in the background.
// Bind errors surface immediately; later serve errors are logged.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("web listen: %w", err)
	}
	s.ln = ln

	go func() {
		if err := s.httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("web server: %v", err)
		}
	}()
	return nil
}

// Addr returns the bound listen address, nil before Start
func (s *Server) Addr() net.Addr {
	if s.ln == nil {
		return nil
	}
	return s.ln.Addr()
}

// Shutdown stops accepting connections and drains the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexHTML)
}

// handleWS upgrades and serves one client until it disconnects
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		log.Printf("web accept: %v", err)
		return
	}
	defer c.CloseNow()

	s.serveClient(r.Context(), c)
}
