package renderers

import (
	"fmt"

	"github.com/lixenwraith/chaoscope/display"
	"github.com/lixenwraith/chaoscope/engine"
	"github.com/lixenwraith/chaoscope/render"
)

// StatusLine builds the styled segment run shown under the plot
type StatusLine struct {
	eng *engine.Context
}

// NewStatusLine creates the status line source
func NewStatusLine(eng *engine.Context) *StatusLine {
	return &StatusLine{eng: eng}
}

// StatusSegments formats the session state for the surface status row
func (s *StatusLine) StatusSegments() []display.Segment {
	segs := make([]display.Segment, 0, 10)
	segs = append(segs, display.Segment{Text: "chaoscope ", Fg: render.RgbStatusFaint, Bold: true})

	if s.eng.Paused() {
		segs = append(segs, display.Segment{Text: "[paused] ", Fg: render.RgbStatusAlert, Bold: true})
	}
	if !s.eng.Following() {
		segs = append(segs, display.Segment{
			Text: fmt.Sprintf("[view %d/%d] ", s.eng.ViewLen(), s.eng.PointCount()),
			Fg:   render.RgbStatusAlert,
		})
	}

	segs = append(segs,
		display.Segment{Text: fmt.Sprintf("anchors %d", s.eng.AnchorCount()), Fg: render.RgbStatusText},
		display.Segment{Text: fmt.Sprintf("  points %d", s.eng.PointCount()), Fg: render.RgbStatusText},
		display.Segment{Text: fmt.Sprintf("  rate %d/f", s.eng.Rate()), Fg: render.RgbStatusAccent},
	)

	if s.eng.Saturated() {
		segs = append(segs, display.Segment{Text: "  full", Fg: render.RgbStatusAlert})
	}
	if s.eng.HullVisible() {
		segs = append(segs, display.Segment{Text: "  hull", Fg: render.RgbHull})
	}
	if s.eng.Muted() {
		segs = append(segs, display.Segment{Text: "  muted", Fg: render.RgbStatusFaint})
	}

	if msg := s.eng.Message(); msg != "" {
		segs = append(segs, display.Segment{Text: "  " + msg, Fg: render.RgbStatusAccent, Bold: true})
	} else if s.eng.AnchorCount() == 0 {
		segs = append(segs, display.Segment{Text: "  left-click to add anchors", Fg: render.RgbStatusFaint})
	}

	return segs
}
