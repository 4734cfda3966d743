package export

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/lixenwraith/chaoscope/plot"
	"github.com/lixenwraith/chaoscope/render"
)

// PNG styles
const (
	StyleGray = "gray" // 16-bit grayscale, counts normalized to the max
	StyleHeat = "heat" // the viewer's dim-to-hot ramp
)

// WritePNG encodes the density field in the given style
func WritePNG(w io.Writer, field *plot.Field, style string) error {
	var img image.Image
	switch style {
	case StyleGray:
		img = grayImage(field)
	case StyleHeat:
		img = heatImage(field)
	default:
		return fmt.Errorf("export: unknown style %q", style)
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("export: encode png: %w", err)
	}
	return nil
}

// SavePNG writes the density field to a file
func SavePNG(path string, field *plot.Field, style string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := WritePNG(f, field, style); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}

func grayImage(field *plot.Field) *image.Gray16 {
	w, h := field.Width(), field.Height()
	img := image.NewGray16(image.Rect(0, 0, w, h))
	maxCount := uint64(field.Max())
	if maxCount == 0 {
		return img
	}
	counts := field.Counts()
	for i, c := range counts {
		if c == 0 {
			continue
		}
		v := uint16(uint64(c) * math.MaxUint16 / maxCount)
		img.SetGray16(i%w, i/w, color.Gray16{Y: v})
	}
	return img
}

func heatImage(field *plot.Field) *image.RGBA {
	w, h := field.Width(), field.Height()
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	bg := color.RGBA{render.RgbBackground.R, render.RgbBackground.G, render.RgbBackground.B, 0xFF}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, bg)
		}
	}

	maxCount := field.Max()
	if maxCount == 0 {
		return img
	}
	invLogMax := 1.0 / math.Log1p(float64(maxCount))
	counts := field.Counts()
	for i, c := range counts {
		if c == 0 {
			continue
		}
		rgb := render.DensityColor(math.Log1p(float64(c)) * invLogMax)
		img.SetRGBA(i%w, i/w, color.RGBA{rgb.R, rgb.G, rgb.B, 0xFF})
	}
	return img
}
