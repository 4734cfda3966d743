package engine

import (
	"time"

	"github.com/lixenwraith/chaoscope/constants"
)

// Advance runs one frame of generation: emits up to rate points from
// the walk, marks them while the view is following, and publishes the
// frame snapshot. Call once per frame after input handling.
func (c *Context) Advance(now time.Time) {
	if c.message != "" && now.After(c.messageExpiry) {
		c.message = ""
	}

	if c.game != nil && !c.paused {
		room := constants.MaxPoints - len(c.history)
		if room > 0 {
			budget := min(c.rate, room)
			for i := 0; i < budget; i++ {
				p := c.game.Next()
				c.history = append(c.history, p)
				if c.follow {
					x, y := p.ToPixel(c.width, c.height)
					c.field.Mark(x, y)
				}
			}
		} else if !c.saturated {
			c.saturated = true
			c.ShowMessage("point cap reached, r reruns")
		}
	}

	if c.follow {
		c.viewLen = len(c.history)
	}

	c.publish()
}
