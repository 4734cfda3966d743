package engine

import (
	"github.com/lixenwraith/chaoscope/constants"
	"github.com/lixenwraith/chaoscope/display"
	"github.com/lixenwraith/chaoscope/geometry"
)

// HandleEvent applies one surface event to the session.
// Returns display.ErrQuit when the user asked to leave, or the surface
// error carried by an EventError.
func (c *Context) HandleEvent(ev display.Event) error {
	switch ev.Type {
	case display.EventKey:
		return c.handleKey(ev)
	case display.EventMouse:
		c.handleMouse(ev)
	case display.EventResize:
		c.resize(ev.W, ev.H)
	case display.EventClosed:
		return display.ErrQuit
	case display.EventError:
		return ev.Err
	}
	return nil
}

func (c *Context) handleKey(ev display.Event) error {
	switch ev.Key {
	case display.KeyEscape, display.KeyCtrlC:
		return display.ErrQuit
	case display.KeyRune:
	default:
		return nil
	}

	switch ev.Rune {
	case 'q':
		return display.ErrQuit
	case ' ':
		c.paused = !c.paused
	case 'r':
		c.rebuild()
	case 'C':
		c.clearAnchors()
	case 'h':
		c.showHull = !c.showHull
	case 'm':
		c.sounds.ToggleMuted()
	case '[':
		c.setRate(c.rate / 2)
	case ']':
		c.setRate(c.rate * 2)
	case ',':
		c.scrubBack()
	case '.':
		c.scrubForward()
	case 'g':
		c.scrubHome()
	case 'G':
		c.scrubEnd()
	case 's':
		c.snapshotReq = true
	}
	return nil
}

func (c *Context) handleMouse(ev display.Event) {
	c.cursorX = ev.X
	c.cursorY = ev.Y

	switch ev.Button {
	case display.MouseBtnLeft:
		if ev.Action == display.MouseActionPress {
			c.addAnchorAt(ev.X, ev.Y)
		}
	case display.MouseBtnRight:
		if ev.Action == display.MouseActionPress {
			c.removeAnchorAt(ev.X, ev.Y)
		}
	case display.MouseBtnWheelUp:
		c.scrubBack()
	case display.MouseBtnWheelDown:
		c.scrubForward()
	}

	c.updateHover()
}

func (c *Context) addAnchorAt(px, py int) {
	p := geometry.FromPixel(px, py, c.width, c.height)
	c.set.Add(p)
	c.rebuild()
	c.sounds.PlayAdd()
}

func (c *Context) removeAnchorAt(px, py int) {
	p := geometry.FromPixel(px, py, c.width, c.height)
	if _, ok := c.set.Remove(p, c.removalTolUnit()); !ok {
		c.sounds.PlayDenied()
		return
	}
	c.rebuild()
	c.sounds.PlayRemove()
}

func (c *Context) clearAnchors() {
	if c.set.Len() == 0 {
		return
	}
	c.set.Clear()
	c.rebuild()
	c.sounds.PlayRemove()
}

// removalTolUnit converts the pixel pick radius to unit space.
// The radius scales with the plot but never drops below the minimum,
// which keeps picking usable on coarse terminal grids.
func (c *Context) removalTolUnit() float64 {
	minDim := min(c.width, c.height)
	if minDim < 1 {
		minDim = 1
	}
	tolPx := max(float64(constants.ToleranceMinPx), float64(minDim)/constants.ToleranceDivisor)
	return tolPx / float64(minDim)
}

// updateHover refreshes the anchor index under the cursor, if any
func (c *Context) updateHover() {
	c.hoverIdx = -1
	if c.cursorX < 0 || c.cursorY < 0 || c.set.Len() == 0 {
		return
	}
	p := geometry.FromPixel(c.cursorX, c.cursorY, c.width, c.height)
	if idx, dist, ok := c.set.Nearest(p); ok && dist <= c.removalTolUnit() {
		c.hoverIdx = idx
	}
}

// resize adopts new plot dimensions and replays the visible history
// onto the resized field. Unit-space state carries over unchanged.
func (c *Context) resize(w, h int) {
	if w == c.width && h == c.height {
		return
	}
	if w < 1 || h < 1 {
		return
	}
	c.width = w
	c.height = h
	c.field.Resize(w, h)
	c.rebuildField()
	c.updateHover()
}

// scrubStep sizes one view-scrub increment relative to the run length
func (c *Context) scrubStep() int {
	return max(len(c.history)/constants.ScrubDivisor, constants.MinScrubStep)
}

func (c *Context) scrubBack() {
	c.follow = false
	c.viewLen -= c.scrubStep()
	if c.viewLen < 0 {
		c.viewLen = 0
	}
	c.rebuildField()
}

func (c *Context) scrubForward() {
	if c.follow {
		return
	}
	c.viewLen += c.scrubStep()
	if c.viewLen >= len(c.history) {
		c.viewLen = len(c.history)
		c.follow = true
	}
	c.rebuildField()
}

func (c *Context) scrubHome() {
	c.follow = false
	c.viewLen = 0
	c.rebuildField()
}

func (c *Context) scrubEnd() {
	c.follow = true
	c.viewLen = len(c.history)
	c.rebuildField()
}

func (c *Context) setRate(rate int) {
	c.rate = clampRate(rate)
}
