package render

// FillDisc draws a filled circle
func FillDisc(buf *PixBuffer, cx, cy, r int, c RGB) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				buf.Set(cx+dx, cy+dy, c)
			}
		}
	}
}

// DrawRing draws a one pixel circle outline using the midpoint walk
func DrawRing(buf *PixBuffer, cx, cy, r int, c RGB) {
	if r < 0 {
		return
	}
	x, y := r, 0
	d := 1 - r
	for x >= y {
		buf.Set(cx+x, cy+y, c)
		buf.Set(cx+y, cy+x, c)
		buf.Set(cx-y, cy+x, c)
		buf.Set(cx-x, cy+y, c)
		buf.Set(cx-x, cy-y, c)
		buf.Set(cx-y, cy-x, c)
		buf.Set(cx+y, cy-x, c)
		buf.Set(cx+x, cy-y, c)
		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}

// DrawLine draws a one pixel Bresenham segment with per-channel max
// compositing so strokes stay visible over dense regions
func DrawLine(buf *PixBuffer, x0, y0, x1, y1 int, c RGB) {
	dx := absInt(x1 - x0)
	dy := -absInt(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		buf.MaxPx(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// DensityColor maps normalized density onto the dim-to-hot point ramp.
// Callers shape t before lookup; the points renderer feeds log-scaled
// densities so sparse regions stay visible next to hot spots.
func DensityColor(t float64) RGB {
	if t <= 0 {
		return RgbBackground
	}
	if t > 1 {
		t = 1
	}
	return Lerp(RgbPointDim, RgbPointHot, t)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
