package engine

import (
	"github.com/lixenwraith/chaoscope/geometry"
)

// Snapshot is an immutable view of one frame, safe to read from any
// goroutine. Points aliases the history backing array, which is
// append-only within a run; a rebuild allocates fresh backing, so a
// held snapshot never sees points from a later run.
type Snapshot struct {
	Run     uint64 // bumps on every rebuild; detects run boundaries
	Anchors []geometry.Vec2
	Points  []geometry.Vec2
	Hull    []geometry.Vec2
	Paused  bool
	Rate    int
	PlotW   int
	PlotH   int
}

// publish stores the current frame state for concurrent observers
func (c *Context) publish() {
	c.published.Store(&Snapshot{
		Run:     c.runID,
		Anchors: c.set.Points(),
		Points:  c.history[:len(c.history):len(c.history)],
		Hull:    c.set.Hull(),
		Paused:  c.paused,
		Rate:    c.rate,
		PlotW:   c.width,
		PlotH:   c.height,
	})
}

// Snapshot returns the most recently published frame state
func (c *Context) Snapshot() *Snapshot {
	return c.published.Load()
}
