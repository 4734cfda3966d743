package render

// Tokyo Night derived palette, shared by the terminal and window
// surfaces. The web client carries its own copy of these values.
var (
	RgbBackground = RGB{R: 0x1A, G: 0x1B, B: 0x26} // plot background

	RgbPointDim = RGB{R: 0x3B, G: 0x42, B: 0x61} // sparse density
	RgbPointHot = RGB{R: 0xC8, G: 0xD3, B: 0xF5} // saturated density
	RgbPointNew = RGB{R: 0xFF, G: 0x9E, B: 0x64} // current position marker, orange

	RgbAnchor     = RGB{R: 0x12, G: 0x93, B: 0xD8} // anchor disc blue
	RgbAnchorEdge = RGB{R: 0x0A, G: 0x5A, B: 0x87} // anchor disc rim

	RgbHull = RGB{R: 0x9E, G: 0xCE, B: 0x6A} // convex hull outline

	RgbStatusBg     = RGB{R: 0x16, G: 0x16, B: 0x1E} // status line background
	RgbStatusText   = RGB{R: 0xA9, G: 0xB1, B: 0xD6} // status line default text
	RgbStatusAccent = RGB{R: 0xE0, G: 0xAF, B: 0x68} // counters and rate
	RgbStatusAlert  = RGB{R: 0xF7, G: 0x76, B: 0x8E} // paused and scrub markers
	RgbStatusFaint  = RGB{R: 0x56, G: 0x5F, B: 0x89} // muted and hints
)
