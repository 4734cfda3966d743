package render

import (
	"github.com/lixenwraith/chaoscope/display"
)

// Renderer is implemented by pipeline stages with pixel output
type Renderer interface {
	Render(ctx RenderContext, buf *PixBuffer)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}

// StatusSource supplies the status line segments for a frame
type StatusSource interface {
	StatusSegments() []display.Segment
}
