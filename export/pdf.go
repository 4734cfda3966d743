package export

import (
	"fmt"
	"image/color"

	"github.com/llgcode/draw2d/draw2dkit"
	"github.com/llgcode/draw2d/draw2dpdf"

	"github.com/lixenwraith/chaoscope/geometry"
)

// A4 portrait in millimeters, with the unit square centered
const (
	pageWidth  = 210.0
	pageHeight = 297.0
	plotSide   = 170.0
)

// PDFOptions configure the vector export
type PDFOptions struct {
	Anchors  []geometry.Vec2
	Points   []geometry.Vec2
	ShowHull bool
}

// WritePDF draws anchors, the optional hull outline, and the point
// sample as sub-millimeter marks onto an A4 page
func WritePDF(path string, opts PDFOptions) error {
	dest := draw2dpdf.NewPdf("P", "mm", "A4")
	gc := draw2dpdf.NewGraphicContext(dest)

	ox := (pageWidth - plotSide) / 2
	oy := (pageHeight - plotSide) / 2
	toPage := func(p geometry.Vec2) (float64, float64) {
		return ox + p.X*plotSide, oy + p.Y*plotSide
	}

	gc.SetFillColor(color.RGBA{0x24, 0x28, 0x3B, 0xFF})
	for _, p := range opts.Points {
		x, y := toPage(p)
		draw2dkit.Circle(gc, x, y, 0.12)
		gc.Fill()
	}

	if hull := geometry.ConvexHull(opts.Anchors); opts.ShowHull && len(hull) >= 2 {
		gc.SetStrokeColor(color.RGBA{0x4F, 0x77, 0x2E, 0xFF})
		gc.SetLineWidth(0.3)
		x, y := toPage(hull[0])
		gc.MoveTo(x, y)
		for _, v := range hull[1:] {
			x, y = toPage(v)
			gc.LineTo(x, y)
		}
		gc.Close()
		gc.Stroke()
	}

	gc.SetFillColor(color.RGBA{0x12, 0x93, 0xD8, 0xFF})
	gc.SetStrokeColor(color.RGBA{0x0A, 0x5A, 0x87, 0xFF})
	gc.SetLineWidth(0.25)
	for _, a := range opts.Anchors {
		x, y := toPage(a)
		draw2dkit.Circle(gc, x, y, 1.4)
		gc.FillStroke()
	}

	if err := draw2dpdf.SaveToPdfFile(path, dest); err != nil {
		return fmt.Errorf("export: save pdf: %w", err)
	}
	return nil
}
