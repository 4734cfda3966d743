package display

// quadrantChars maps a 4-bit subpixel mask to a block element.
// Bit order: 1=top-left, 2=top-right, 4=bottom-left, 8=bottom-right.
var quadrantChars = [16]rune{
	' ', '▘', '▝', '▀',
	'▖', '▌', '▞', '▛',
	'▗', '▚', '▐', '▜',
	'▄', '▙', '▟', '█',
}

// bestQuadrant picks the block element and color pair that best
// approximates a 2x2 pixel block. Each of the 16 fill patterns is
// scored by the squared error against its two average colors.
func bestQuadrant(px [4]RGB) (ch rune, fg, bg RGB) {
	bestErr := int64(-1)
	bestMask := 0
	for mask := 0; mask < 16; mask++ {
		f, b, e := patternColors(px, mask)
		if bestErr < 0 || e < bestErr {
			bestErr, bestMask = e, mask
			fg, bg = f, b
		}
	}
	return quadrantChars[bestMask], fg, bg
}

// patternColors averages the block pixels into foreground and
// background groups for a pattern and returns the total squared error
func patternColors(px [4]RGB, mask int) (RGB, RGB, int64) {
	var fSum, bSum [3]int
	fn, bn := 0, 0
	for i := 0; i < 4; i++ {
		if mask&(1<<i) != 0 {
			fSum[0] += int(px[i].R)
			fSum[1] += int(px[i].G)
			fSum[2] += int(px[i].B)
			fn++
		} else {
			bSum[0] += int(px[i].R)
			bSum[1] += int(px[i].G)
			bSum[2] += int(px[i].B)
			bn++
		}
	}

	var fg, bg RGB
	if fn > 0 {
		fg = RGB{uint8(fSum[0] / fn), uint8(fSum[1] / fn), uint8(fSum[2] / fn)}
	}
	if bn > 0 {
		bg = RGB{uint8(bSum[0] / bn), uint8(bSum[1] / bn), uint8(bSum[2] / bn)}
	}

	var errSum int64
	for i := 0; i < 4; i++ {
		if mask&(1<<i) != 0 {
			errSum += colorDistSq(px[i], fg)
		} else {
			errSum += colorDistSq(px[i], bg)
		}
	}
	return fg, bg, errSum
}

func colorDistSq(a, b RGB) int64 {
	dr := int64(a.R) - int64(b.R)
	dg := int64(a.G) - int64(b.G)
	db := int64(a.B) - int64(b.B)
	return dr*dr + dg*dg + db*db
}
