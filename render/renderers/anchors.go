package renderers

import (
	"github.com/lixenwraith/chaoscope/constants"
	"github.com/lixenwraith/chaoscope/engine"
	"github.com/lixenwraith/chaoscope/render"
)

// AnchorsRenderer draws a marker disc per anchor
type AnchorsRenderer struct {
	eng *engine.Context
}

// NewAnchorsRenderer creates an anchor marker renderer
func NewAnchorsRenderer(eng *engine.Context) *AnchorsRenderer {
	return &AnchorsRenderer{eng: eng}
}

// markerRadius scales the disc with the plot, floored for tiny surfaces
func markerRadius(w, h int) int {
	r := constants.AnchorRadiusPx * min(w, h) / constants.DefaultWindowPlotSize
	if r < 2 {
		r = 2
	}
	return r
}

// Render fills a disc with a darker rim per anchor; the removal
// candidate under the cursor is brightened
func (r *AnchorsRenderer) Render(ctx render.RenderContext, buf *render.PixBuffer) {
	hover := r.eng.HoverIndex()
	radius := markerRadius(ctx.Width, ctx.Height)
	hoverFill := render.Scale(render.RgbAnchor, 1.6)

	for i, a := range r.eng.Anchors() {
		px, py := ctx.UnitToPixel(a)
		fill := render.RgbAnchor
		if i == hover {
			fill = hoverFill
		}
		render.FillDisc(buf, px, py, radius, fill)
		render.DrawRing(buf, px, py, radius, render.RgbAnchorEdge)
	}
}
