package web

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"math"
	"time"

	"github.com/coder/websocket"

	"github.com/lixenwraith/chaoscope/constants"
	"github.com/lixenwraith/chaoscope/display"
	"github.com/lixenwraith/chaoscope/engine"
	"github.com/lixenwraith/chaoscope/geometry"
)

// stateMsg mirrors the session for the browser HUD
type stateMsg struct {
	Type    string       `json:"type"`
	Run     uint64       `json:"run"`
	Anchors [][2]float64 `json:"anchors"`
	Paused  bool         `json:"paused"`
	Rate    int          `json:"rate"`
	Total   int          `json:"total"`
}

// clickMsg is a remote edit from the canvas in unit coordinates
type clickMsg struct {
	Type   string  `json:"type"`
	Button string  `json:"button"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

type outMsg struct {
	typ  websocket.MessageType
	data []byte
}

// serveClient runs the push loop for one connection; a reader goroutine
// feeds remote clicks back and a writer goroutine owns the socket
func (s *Server) serveClient(ctx context.Context, c *websocket.Conn) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	out := make(chan outMsg, constants.WebSendBuffer)

	go func() {
		defer cancel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg := <-out:
				if err := c.Write(ctx, msg.typ, msg.data); err != nil {
					return
				}
			}
		}
	}()

	go s.readClicks(ctx, c, cancel)

	s.pushLoop(ctx, out)
}

// pushLoop snapshots the session every tick and enqueues a state
// message plus any unsent points. Full queues drop the tick; the
// backlog catches up on later ticks.
func (s *Server) pushLoop(ctx context.Context, out chan<- outMsg) {
	ticker := time.NewTicker(constants.WebPushInterval)
	defer ticker.Stop()

	var lastRun uint64
	sent := 0

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		snap := s.source()
		if snap == nil {
			continue
		}
		if snap.Run != lastRun {
			lastRun = snap.Run
			sent = 0
		}

		state, err := json.Marshal(stateFromSnapshot(snap))
		if err != nil {
			continue
		}
		select {
		case out <- outMsg{websocket.MessageText, state}:
		default:
			continue // client stalled, retry the whole tick later
		}

		if sent < len(snap.Points) {
			batch := snap.Points[sent:]
			if len(batch) > constants.WebMaxBatch {
				batch = batch[:constants.WebMaxBatch]
			}
			select {
			case out <- outMsg{websocket.MessageBinary, pointsPayload(batch)}:
				sent += len(batch)
			default:
			}
		}
	}
}

// readClicks turns inbound click messages into synthetic mouse events
func (s *Server) readClicks(ctx context.Context, c *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()
	for {
		typ, data, err := c.Read(ctx)
		if err != nil {
			return
		}
		if typ != websocket.MessageText {
			continue
		}

		var m clickMsg
		if err := json.Unmarshal(data, &m); err != nil || m.Type != "click" {
			continue
		}
		snap := s.source()
		if snap == nil || snap.PlotW < 1 || snap.PlotH < 1 {
			continue
		}

		var btn display.MouseButton
		switch m.Button {
		case "left":
			btn = display.MouseBtnLeft
		case "right":
			btn = display.MouseBtnRight
		default:
			continue
		}

		px, py := geometry.Vec2{X: m.X, Y: m.Y}.ToPixel(snap.PlotW, snap.PlotH)
		ev := display.Event{
			Type:   display.EventMouse,
			Button: btn,
			Action: display.MouseActionPress,
			X:      px,
			Y:      py,
		}
		select {
		case s.events <- ev:
		default: // drop when the viewer stalls
		}
	}
}

func stateFromSnapshot(snap *engine.Snapshot) stateMsg {
	anchors := make([][2]float64, len(snap.Anchors))
	for i, a := range snap.Anchors {
		anchors[i] = [2]float64{a.X, a.Y}
	}
	return stateMsg{
		Type:    "state",
		Run:     snap.Run,
		Anchors: anchors,
		Paused:  snap.Paused,
		Rate:    snap.Rate,
		Total:   len(snap.Points),
	}
}

// pointsPayload packs points as little-endian float32 x,y pairs
func pointsPayload(points []geometry.Vec2) []byte {
	buf := make([]byte, 8*len(points))
	for i, p := range points {
		binary.LittleEndian.PutUint32(buf[8*i:], math.Float32bits(float32(p.X)))
		binary.LittleEndian.PutUint32(buf[8*i+4:], math.Float32bits(float32(p.Y)))
	}
	return buf
}
