// Package chaos implements the chaos-game walk: repeatedly move a
// fraction of the way toward a uniformly random anchor and emit the
// visited position. The visited points densify onto the attractor
// defined by the anchor configuration.
package chaos

import (
	"math/rand"

	"github.com/lixenwraith/chaoscope/geometry"
)

// DefaultRatio is the per-step contraction toward the chosen anchor.
// 0.5 (the midpoint) yields the Sierpinski triangle for three anchors.
const DefaultRatio = 0.5

// Game is a lazy, infinite point sequence over a fixed anchor snapshot.
// It cannot be restarted in place; when the anchor set changes, discard
// the Game and construct a new one.
type Game struct {
	anchors []geometry.Vec2
	cur     geometry.Vec2
	ratio   float64
	rng     *rand.Rand
	steps   uint64
}

// New builds a walk over a snapshot of anchors with its own seeded RNG.
// The current position starts on the first anchor, so every emitted
// point lies within the convex hull of the anchors from step one.
// Returns nil for an empty anchor slice; a nil Game means generation
// idles. A ratio outside (0,1) falls back to DefaultRatio.
func New(anchors []geometry.Vec2, ratio float64, seed int64) *Game {
	if len(anchors) == 0 {
		return nil
	}
	if ratio <= 0 || ratio >= 1 {
		ratio = DefaultRatio
	}
	snap := append([]geometry.Vec2(nil), anchors...)
	return &Game{
		anchors: snap,
		cur:     snap[0],
		ratio:   ratio,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Next advances the walk one step and returns the new position.
// The chosen anchor is uniform over the snapshot; with a single anchor
// the sequence collapses onto it immediately.
func (g *Game) Next() geometry.Vec2 {
	target := g.anchors[g.rng.Intn(len(g.anchors))]
	g.cur = g.cur.Lerp(target, g.ratio)
	g.steps++
	return g.cur
}

// Pos returns the current position without advancing
func (g *Game) Pos() geometry.Vec2 {
	return g.cur
}

// Steps returns how many points have been emitted
func (g *Game) Steps() uint64 {
	return g.steps
}

// Anchors returns a copy of the anchor snapshot the walk runs over
func (g *Game) Anchors() []geometry.Vec2 {
	return append([]geometry.Vec2(nil), g.anchors...)
}
