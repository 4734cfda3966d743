package renderers

import (
	"github.com/lixenwraith/chaoscope/engine"
	"github.com/lixenwraith/chaoscope/render"
)

// HullRenderer outlines the convex hull of the anchor set
type HullRenderer struct {
	eng *engine.Context
}

// NewHullRenderer creates a hull outline renderer
func NewHullRenderer(eng *engine.Context) *HullRenderer {
	return &HullRenderer{eng: eng}
}

// IsVisible reports whether the hull overlay is toggled on
func (r *HullRenderer) IsVisible() bool {
	return r.eng.HullVisible()
}

// Render draws the hull edges over the point field
func (r *HullRenderer) Render(ctx render.RenderContext, buf *render.PixBuffer) {
	hull := r.eng.Hull()
	if len(hull) < 2 {
		return
	}
	for i := range hull {
		ax, ay := ctx.UnitToPixel(hull[i])
		bx, by := ctx.UnitToPixel(hull[(i+1)%len(hull)])
		render.DrawLine(buf, ax, ay, bx, by, render.RgbHull)
	}
}
