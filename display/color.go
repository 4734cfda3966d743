package display

import (
	"os"
	"strings"
)

// ColorMode defines the terminal color depth
type ColorMode uint8

const (
	ColorModeAuto ColorMode = iota
	ColorMode256
	ColorModeTrueColor
)

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// cubeValues are the 6 levels of the xterm 6x6x6 color cube
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

// cubeIndex maps a channel value to its nearest cube level
var cubeIndex [256]uint8

func init() {
	for v := 0; v < 256; v++ {
		best, bestDist := uint8(0), 1<<30
		for i, cv := range cubeValues {
			d := int(cv) - v
			if d < 0 {
				d = -d
			}
			if d < bestDist {
				best, bestDist = uint8(i), d
			}
		}
		cubeIndex[v] = best
	}
}

// To256 converts a 24-bit color to the nearest xterm-256 palette index
func (c RGB) To256() uint8 {
	// Grayscale ramp (232-255) beats the cube for neutral colors
	if c.R == c.G && c.G == c.B {
		if c.R < 8 {
			return 16 // cube black
		}
		if c.R > 248 {
			return 231 // cube white
		}
		return uint8(232 + (int(c.R)-8)/10)
	}
	return 16 + 36*cubeIndex[c.R] + 6*cubeIndex[c.G] + cubeIndex[c.B]
}

// DetectColorMode inspects the environment for true color support
func DetectColorMode() ColorMode {
	colorterm := strings.ToLower(os.Getenv("COLORTERM"))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		return ColorModeTrueColor
	}

	// Terminals that support true color without advertising via COLORTERM
	for _, v := range []string{"KITTY_WINDOW_ID", "KONSOLE_VERSION", "ITERM_SESSION_ID", "WEZTERM_PANE"} {
		if os.Getenv(v) != "" {
			return ColorModeTrueColor
		}
	}
	term := os.Getenv("TERM")
	if strings.HasPrefix(term, "alacritty") || strings.HasPrefix(term, "xterm-kitty") {
		return ColorModeTrueColor
	}

	return ColorMode256
}
