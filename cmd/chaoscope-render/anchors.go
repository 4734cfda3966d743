package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lixenwraith/chaoscope/geometry"
)

// defaultAnchors is the three-corner layout used when --anchors is not given
func defaultAnchors() []geometry.Vec2 {
	return []geometry.Vec2{
		{X: 0.5, Y: 0.1},
		{X: 0.1, Y: 0.9},
		{X: 0.9, Y: 0.9},
	}
}

// parseAnchors reads a semicolon-separated list of unit coordinates,
// e.g. "0.5,0.1;0.1,0.9;0.9,0.9". An empty string yields the default
// triangle.
func parseAnchors(s string) ([]geometry.Vec2, error) {
	if strings.TrimSpace(s) == "" {
		return defaultAnchors(), nil
	}

	parts := strings.Split(s, ";")
	anchors := make([]geometry.Vec2, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		coords := strings.Split(part, ",")
		if len(coords) != 2 {
			return nil, fmt.Errorf("anchor %q: want x,y", part)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(coords[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("anchor %q: %w", part, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(coords[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("anchor %q: %w", part, err)
		}
		if x < 0 || x > 1 || y < 0 || y > 1 {
			return nil, fmt.Errorf("anchor %q: coordinates must be within [0,1]", part)
		}
		anchors = append(anchors, geometry.Vec2{X: x, Y: y})
	}

	if len(anchors) == 0 {
		return nil, fmt.Errorf("no anchors in %q", s)
	}
	return anchors, nil
}
