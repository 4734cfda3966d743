// Package export renders chaos-game runs offline: density images for
// the viewer snapshot key and the batch command, vector PDFs for print.
package export

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/chaoscope/chaos"
	"github.com/lixenwraith/chaoscope/constants"
	"github.com/lixenwraith/chaoscope/geometry"
	"github.com/lixenwraith/chaoscope/plot"
)

// DensityOptions configure a headless walk
type DensityOptions struct {
	Anchors []geometry.Vec2
	Width   int
	Height  int
	Iters   int
	Seed    int64
	Ratio   float64
}

// walk runs the configured walk and emits each settled point.
// The leading transient steps are discarded.
func walk(opts DensityOptions, iters int, emit func(geometry.Vec2)) error {
	game := chaos.New(opts.Anchors, opts.Ratio, opts.Seed)
	if game == nil {
		return errors.New("export: no anchors")
	}
	for i := 0; i < constants.TransientPoints; i++ {
		game.Next()
	}
	for i := 0; i < iters; i++ {
		emit(game.Next())
	}
	return nil
}

// DensityField accumulates a headless run onto a density grid
func DensityField(opts DensityOptions) (*plot.Field, error) {
	if opts.Width < 1 || opts.Height < 1 {
		return nil, fmt.Errorf("export: invalid size %dx%d", opts.Width, opts.Height)
	}
	if opts.Iters < 0 {
		return nil, fmt.Errorf("export: invalid iteration count %d", opts.Iters)
	}

	field := plot.NewField(opts.Width, opts.Height)
	err := walk(opts, opts.Iters, func(p geometry.Vec2) {
		x, y := p.ToPixel(opts.Width, opts.Height)
		field.Mark(x, y)
	})
	if err != nil {
		return nil, err
	}
	return field, nil
}

// SamplePoints runs the walk headless and returns at most limit points
func SamplePoints(opts DensityOptions, limit int) ([]geometry.Vec2, error) {
	n := min(opts.Iters, limit)
	if n < 0 {
		n = 0
	}
	pts := make([]geometry.Vec2, 0, n)
	err := walk(opts, n, func(p geometry.Vec2) {
		pts = append(pts, p)
	})
	if err != nil {
		return nil, err
	}
	return pts, nil
}
