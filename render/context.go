package render

import (
	"time"

	"github.com/lixenwraith/chaoscope/engine"
	"github.com/lixenwraith/chaoscope/geometry"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	FrameTime time.Time
	IsPaused  bool

	// Plot dimensions (pixels)
	Width  int
	Height int

	// Cursor position (plot pixels), -1 when no pointer is over the plot
	CursorX int
	CursorY int
}

// NewContextFromEngine captures per-frame state from the engine
func NewContextFromEngine(eng *engine.Context, now time.Time) RenderContext {
	w, h := eng.PlotSize()
	cx, cy := eng.CursorPos()
	return RenderContext{
		FrameTime: now,
		IsPaused:  eng.Paused(),
		Width:     w,
		Height:    h,
		CursorX:   cx,
		CursorY:   cy,
	}
}

// UnitToPixel projects a unit-space point onto the plot
func (rc *RenderContext) UnitToPixel(p geometry.Vec2) (int, int) {
	return p.ToPixel(rc.Width, rc.Height)
}

// PixelToUnit unprojects a plot pixel into unit space
func (rc *RenderContext) PixelToUnit(x, y int) geometry.Vec2 {
	return geometry.FromPixel(x, y, rc.Width, rc.Height)
}
