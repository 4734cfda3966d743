package web

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"

	"github.com/lixenwraith/chaoscope/audio"
	"github.com/lixenwraith/chaoscope/display"
	"github.com/lixenwraith/chaoscope/engine"
	"github.com/lixenwraith/chaoscope/geometry"
)

// newSession builds a 100x100 engine with three anchors and one frame
// of generated points
func newSession(t *testing.T) *engine.Context {
	t.Helper()
	eng := engine.New(100, 100, audio.NewPlayer(), 11, 600)
	for _, px := range [][2]int{{50, 10}, {10, 90}, {90, 90}} {
		ev := display.Event{
			Type:   display.EventMouse,
			Button: display.MouseBtnLeft,
			Action: display.MouseActionPress,
			X:      px[0],
			Y:      px[1],
		}
		if err := eng.HandleEvent(ev); err != nil {
			t.Fatalf("Expected nil error, got %v", err)
		}
	}
	eng.Advance(time.Now())
	return eng
}

func dialWS(t *testing.T, ctx context.Context, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := strings.Replace(ts.URL, "http", "ws", 1) + "/ws"
	c, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		t.Fatalf("Expected websocket dial to succeed, got %v", err)
	}
	return c
}

func TestServer_IndexServed(t *testing.T) {
	eng := newSession(t)
	ts := httptest.NewServer(NewServer("", eng.Snapshot).Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatalf("Expected GET / to succeed, got %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "<canvas") {
		t.Error("Expected the embedded client to carry a canvas")
	}

	missing, err := http.Get(ts.URL + "/nope")
	if err != nil {
		t.Fatalf("Expected GET /nope to complete, got %v", err)
	}
	missing.Body.Close()
	if missing.StatusCode != http.StatusNotFound {
		t.Errorf("Expected status 404 for unknown paths, got %d", missing.StatusCode)
	}
}

func TestStateFromSnapshot(t *testing.T) {
	snap := &engine.Snapshot{
		Run:     3,
		Anchors: []geometry.Vec2{{X: 0.25, Y: 0.5}, {X: 0.75, Y: 0.5}},
		Points:  []geometry.Vec2{{X: 0.5, Y: 0.5}, {X: 0.4, Y: 0.6}, {X: 0.3, Y: 0.7}},
		Paused:  true,
		Rate:    600,
	}

	st := stateFromSnapshot(snap)
	if st.Type != "state" {
		t.Errorf("Expected type state, got %q", st.Type)
	}
	if st.Run != 3 || st.Total != 3 || st.Rate != 600 || !st.Paused {
		t.Errorf("Expected run 3 total 3 rate 600 paused, got %+v", st)
	}
	if len(st.Anchors) != 2 || st.Anchors[0] != [2]float64{0.25, 0.5} {
		t.Errorf("Expected anchor pairs, got %v", st.Anchors)
	}
}

func TestPointsPayload(t *testing.T) {
	pts := []geometry.Vec2{{X: 0.5, Y: 0.25}, {X: 1, Y: 0}, {X: 0.125, Y: 0.875}}
	buf := pointsPayload(pts)

	if len(buf) != 8*len(pts) {
		t.Fatalf("Expected %d payload bytes, got %d", 8*len(pts), len(buf))
	}
	for i, p := range pts {
		x := math.Float32frombits(binary.LittleEndian.Uint32(buf[8*i:]))
		y := math.Float32frombits(binary.LittleEndian.Uint32(buf[8*i+4:]))
		if x != float32(p.X) || y != float32(p.Y) {
			t.Errorf("Expected pair %d to be (%v,%v), got (%v,%v)", i, float32(p.X), float32(p.Y), x, y)
		}
	}
}

func TestServer_StreamsStateAndPoints(t *testing.T) {
	eng := newSession(t)
	ts := httptest.NewServer(NewServer("", eng.Snapshot).Handler())
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	c := dialWS(t, ctx, ts)
	defer c.Close(websocket.StatusNormalClosure, "")

	var gotState, gotPoints bool
	var floats int
	for !(gotState && gotPoints) {
		typ, data, err := c.Read(ctx)
		if err != nil {
			t.Fatalf("Expected stream messages, got %v (state=%v points=%v)", err, gotState, gotPoints)
		}
		switch typ {
		case websocket.MessageText:
			var st stateMsg
			if err := json.Unmarshal(data, &st); err != nil {
				t.Fatalf("Expected state JSON, got %v", err)
			}
			if st.Type != "state" {
				t.Fatalf("Expected type state, got %q", st.Type)
			}
			if len(st.Anchors) != 3 {
				t.Errorf("Expected 3 anchors, got %d", len(st.Anchors))
			}
			if st.Total != eng.PointCount() {
				t.Errorf("Expected total %d, got %d", eng.PointCount(), st.Total)
			}
			gotState = true
		case websocket.MessageBinary:
			if len(data)%8 != 0 {
				t.Fatalf("Expected whole float32 pairs, got %d bytes", len(data))
			}
			floats += len(data) / 8
			gotPoints = true
		}
	}

	if floats == 0 || floats > eng.PointCount() {
		t.Errorf("Expected between 1 and %d streamed points, got %d", eng.PointCount(), floats)
	}
}

func TestServer_ClickInjectsEvent(t *testing.T) {
	eng := newSession(t)
	srv := NewServer("", eng.Snapshot)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	c := dialWS(t, ctx, ts)
	defer c.Close(websocket.StatusNormalClosure, "")

	click, _ := json.Marshal(clickMsg{Type: "click", Button: "left", X: 0.5, Y: 0.5})
	if err := c.Write(ctx, websocket.MessageText, click); err != nil {
		t.Fatalf("Expected click write to succeed, got %v", err)
	}

	select {
	case ev := <-srv.Events():
		if ev.Type != display.EventMouse || ev.Button != display.MouseBtnLeft || ev.Action != display.MouseActionPress {
			t.Errorf("Expected a left press event, got %+v", ev)
		}
		// 0.5 on a 100px plot lands on pixel 50
		if ev.X != 50 || ev.Y != 50 {
			t.Errorf("Expected plot pixel (50,50), got (%d,%d)", ev.X, ev.Y)
		}
	case <-ctx.Done():
		t.Fatal("Expected a synthetic event before the timeout")
	}
}

func TestServer_StartAndShutdown(t *testing.T) {
	eng := newSession(t)
	srv := NewServer("127.0.0.1:0", eng.Snapshot)

	if err := srv.Start(); err != nil {
		t.Fatalf("Expected start to succeed, got %v", err)
	}
	if srv.Addr() == nil {
		t.Fatal("Expected a bound address after start")
	}

	resp, err := http.Get("http://" + srv.Addr().String() + "/")
	if err != nil {
		t.Fatalf("Expected GET against the live server to succeed, got %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		t.Errorf("Expected clean shutdown, got %v", err)
	}
}
