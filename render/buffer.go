package render

import (
	"github.com/lixenwraith/chaoscope/display"
)

// PixBuffer is a pixel compositor backed by a display.RGB array
// Uses []display.RGB directly to allow zero-copy flush, worth the coupling
type PixBuffer struct {
	pix    []display.RGB
	width  int
	height int
}

// NewPixBuffer creates a buffer with the specified dimensions
func NewPixBuffer(width, height int) *PixBuffer {
	b := &PixBuffer{
		pix:    make([]display.RGB, width*height),
		width:  width,
		height: height,
	}
	b.Clear()
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *PixBuffer) Resize(width, height int) {
	size := width * height
	if cap(b.pix) < size {
		b.pix = make([]display.RGB, size)
	} else {
		b.pix = b.pix[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all pixels to the background using exponential copy
func (b *PixBuffer) Clear() {
	if len(b.pix) == 0 {
		return
	}
	b.pix[0] = RgbBackground
	for filled := 1; filled < len(b.pix); filled *= 2 {
		copy(b.pix[filled:], b.pix[:filled])
	}
}

// inBounds returns true if in plot bounds
func (b *PixBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

func (b *PixBuffer) Width() int  { return b.width }
func (b *PixBuffer) Height() int { return b.height }

// Pix exposes the backing array for backend flush; zero-copy, do not retain
func (b *PixBuffer) Pix() []display.RGB { return b.pix }

// ===== COMPOSITOR API =====

// Set replaces a pixel
func (b *PixBuffer) Set(x, y int, c RGB) {
	if !b.inBounds(x, y) {
		return
	}
	b.pix[y*b.width+x] = c
}

// At returns the pixel color, background when out of bounds
func (b *PixBuffer) At(x, y int) RGB {
	if !b.inBounds(x, y) {
		return RgbBackground
	}
	return b.pix[y*b.width+x]
}

// BlendPx alpha-blends a color over the existing pixel
func (b *PixBuffer) BlendPx(x, y int, c RGB, alpha float64) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.pix[idx] = Blend(b.pix[idx], c, alpha)
}

// AddPx additive-blends a color into the existing pixel
func (b *PixBuffer) AddPx(x, y int, c RGB) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.pix[idx] = Add(b.pix[idx], c)
}

// MaxPx writes the per-channel maximum, keeping bright content visible
// when strokes cross dense regions
func (b *PixBuffer) MaxPx(x, y int, c RGB) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.pix[idx] = Max(b.pix[idx], c)
}
