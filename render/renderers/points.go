package renderers

import (
	"math"

	"github.com/lixenwraith/chaoscope/engine"
	"github.com/lixenwraith/chaoscope/render"
)

// PointsRenderer rasterizes the density field onto the frame
type PointsRenderer struct {
	eng *engine.Context
}

// NewPointsRenderer creates a density field renderer
func NewPointsRenderer(eng *engine.Context) *PointsRenderer {
	return &PointsRenderer{eng: eng}
}

// Render maps hit counts onto the point ramp with log scaling, then
// marks the walk's current position while points are flowing
func (r *PointsRenderer) Render(ctx render.RenderContext, buf *render.PixBuffer) {
	field := r.eng.Field()
	if field.Max() > 0 {
		w := min(field.Width(), buf.Width())
		h := min(field.Height(), buf.Height())
		counts := field.Counts()
		invLogMax := 1.0 / math.Log1p(float64(field.Max()))
		for y := 0; y < h; y++ {
			row := counts[y*field.Width() : y*field.Width()+w]
			for x, n := range row {
				if n == 0 {
					continue
				}
				buf.Set(x, y, render.DensityColor(math.Log1p(float64(n))*invLogMax))
			}
		}
	}

	if pos, ok := r.eng.Current(); ok {
		px, py := ctx.UnitToPixel(pos)
		render.FillDisc(buf, px, py, 1, render.RgbPointNew)
	}
}
