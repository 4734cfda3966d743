package geometry

import "math"

// Vec2 is a 2D point or vector in float64 coordinates.
// Plot state lives in unit space [0,1]x[0,1] with y growing downward;
// surfaces project to their own pixel grids via ToPixel/FromPixel.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v multiplied by factor
func (v Vec2) Scale(factor float64) Vec2 {
	return Vec2{v.X * factor, v.Y * factor}
}

// Lerp returns the point t of the way from v to o
// t=0 returns v, t=1 returns o, t=0.5 is the midpoint
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{
		X: v.X + (o.X-v.X)*t,
		Y: v.Y + (o.Y-v.Y)*t,
	}
}

// Dist2 returns squared distance without sqrt
func (v Vec2) Dist2(o Vec2) float64 {
	dx := v.X - o.X
	dy := v.Y - o.Y
	return dx*dx + dy*dy
}

// Dist returns Euclidean distance
func (v Vec2) Dist(o Vec2) float64 {
	return math.Sqrt(v.Dist2(o))
}

// ToPixel projects a unit-space point onto a w x h pixel grid
// Out-of-range input clamps to the grid edge
func (v Vec2) ToPixel(w, h int) (int, int) {
	px := int(v.X*float64(w-1) + 0.5)
	py := int(v.Y*float64(h-1) + 0.5)
	if px < 0 {
		px = 0
	} else if px >= w {
		px = w - 1
	}
	if py < 0 {
		py = 0
	} else if py >= h {
		py = h - 1
	}
	return px, py
}

// FromPixel unprojects a pixel coordinate on a w x h grid to unit space
func FromPixel(px, py, w, h int) Vec2 {
	dw := float64(w - 1)
	dh := float64(h - 1)
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}
	return Vec2{
		X: float64(px) / dw,
		Y: float64(py) / dh,
	}
}

// Centroid returns the arithmetic mean of pts, zero value for empty input
func Centroid(pts []Vec2) Vec2 {
	if len(pts) == 0 {
		return Vec2{}
	}
	var c Vec2
	for _, p := range pts {
		c.X += p.X
		c.Y += p.Y
	}
	inv := 1.0 / float64(len(pts))
	return Vec2{c.X * inv, c.Y * inv}
}
