// Package engine owns the interactive session state: the anchor set,
// the running chaos game, the retained point history, and the derived
// density field. It is driven by the frame loop and mutated only
// there; other goroutines observe through published snapshots.
package engine

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/chaoscope/anchor"
	"github.com/lixenwraith/chaoscope/audio"
	"github.com/lixenwraith/chaoscope/chaos"
	"github.com/lixenwraith/chaoscope/constants"
	"github.com/lixenwraith/chaoscope/geometry"
	"github.com/lixenwraith/chaoscope/plot"
)

// Context holds the session state behind the plot
type Context struct {
	// ===== Immutable After Init =====
	// Set once during New. The player synchronizes internally.

	sounds   *audio.Player
	baseSeed int64

	// ===== Main-Loop Exclusive =====
	// Accessed only from the frame goroutine (input, advance, render).
	// No synchronization required.

	set     *anchor.Set
	game    *chaos.Game     // nil while the anchor set is empty
	field   *plot.Field     // density over the visible history prefix
	history []geometry.Vec2 // retained points in unit space, capped

	width, height int // plot dimensions, pixels

	rate      int // points emitted per frame
	paused    bool
	showHull  bool
	saturated bool // history hit the retention cap this run

	follow  bool // view tracks the newest point
	viewLen int  // history prefix length currently shown

	cursorX, cursorY int // plot pixels, -1 when the pointer is absent
	hoverIdx         int // anchor within removal tolerance, -1 none

	message       string
	messageExpiry time.Time

	snapshotReq bool
	runID       uint64 // bumps on every rebuild; seeds the game and versions snapshots

	// ===== Atomic (Self-Synchronized) =====

	published atomic.Pointer[Snapshot] // latest frame state for observers
}

// New creates a session with an empty anchor set.
// The player may be uninitialized; playback is then a no-op.
func New(width, height int, sounds *audio.Player, seed int64, rate int) *Context {
	c := &Context{
		sounds:   sounds,
		baseSeed: seed,
		set:      anchor.NewSet(),
		field:    plot.NewField(width, height),
		width:    width,
		height:   height,
		rate:     clampRate(rate),
		follow:   true,
		cursorX:  -1,
		cursorY:  -1,
		hoverIdx: -1,
	}
	c.publish()
	return c
}

func clampRate(rate int) int {
	if rate < constants.MinPointsPerFrame {
		return constants.MinPointsPerFrame
	}
	if rate > constants.MaxPointsPerFrame {
		return constants.MaxPointsPerFrame
	}
	return rate
}

// rebuild discards the point run and restarts generation from the
// current anchor set. Every path that invalidates accumulated points
// funnels through here.
func (c *Context) rebuild() {
	c.runID++
	c.history = make([]geometry.Vec2, 0, 4096)
	c.field.Clear()
	c.follow = true
	c.viewLen = 0
	c.saturated = false

	if c.set.Len() == 0 {
		c.game = nil
		return
	}
	c.game = chaos.New(c.set.Points(), chaos.DefaultRatio, c.baseSeed+int64(c.runID))
}

// rebuildField replays the visible history prefix into the field
func (c *Context) rebuildField() {
	c.field.Clear()
	for _, p := range c.history[:c.viewLen] {
		x, y := p.ToPixel(c.width, c.height)
		c.field.Mark(x, y)
	}
}

// ShowMessage displays a transient status message
func (c *Context) ShowMessage(msg string) {
	c.message = msg
	c.messageExpiry = time.Now().Add(constants.MessageDuration)
}

// TakeSnapshotRequest consumes a pending image snapshot request
func (c *Context) TakeSnapshotRequest() bool {
	req := c.snapshotReq
	c.snapshotReq = false
	return req
}

// ===== Frame State Accessors =====

func (c *Context) PlotSize() (int, int)  { return c.width, c.height }
func (c *Context) CursorPos() (int, int) { return c.cursorX, c.cursorY }
func (c *Context) Paused() bool          { return c.paused }
func (c *Context) HullVisible() bool     { return c.showHull }
func (c *Context) Muted() bool           { return c.sounds.Muted() }
func (c *Context) Rate() int             { return c.rate }
func (c *Context) Message() string       { return c.message }
func (c *Context) Saturated() bool       { return c.saturated }
func (c *Context) Run() uint64           { return c.runID }

func (c *Context) AnchorCount() int         { return c.set.Len() }
func (c *Context) Anchors() []geometry.Vec2 { return c.set.Points() }
func (c *Context) Hull() []geometry.Vec2    { return c.set.Hull() }
func (c *Context) HoverIndex() int          { return c.hoverIdx }
func (c *Context) Field() *plot.Field       { return c.field }
func (c *Context) PointCount() int          { return len(c.history) }
func (c *Context) ViewLen() int             { return c.viewLen }
func (c *Context) Following() bool          { return c.follow }
func (c *Context) Points() []geometry.Vec2  { return c.history }

// Current returns the generator position while points are flowing
func (c *Context) Current() (geometry.Vec2, bool) {
	if c.game == nil || c.paused || !c.follow || c.game.Steps() == 0 {
		return geometry.Vec2{}, false
	}
	return c.game.Pos(), true
}
