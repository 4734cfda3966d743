// Package anchor owns the ordered collection of user-placed fixed points
// that the chaos-game walk uses as attractor vertices.
package anchor

import (
	"github.com/lixenwraith/chaoscope/geometry"
)

// Set is an ordered anchor collection in unit space.
// Every successful mutation bumps the generation counter; observers
// compare generations to detect when accumulated output must be reset.
// Not safe for concurrent use; ownership stays with the frame loop.
type Set struct {
	pts []geometry.Vec2
	gen uint64
}

// NewSet creates an empty anchor set
func NewSet() *Set {
	return &Set{}
}

// Len returns the number of anchors
func (s *Set) Len() int {
	return len(s.pts)
}

// At returns the anchor at index i
func (s *Set) At(i int) geometry.Vec2 {
	return s.pts[i]
}

// Points returns a copy of the anchors in insertion order
func (s *Set) Points() []geometry.Vec2 {
	return append([]geometry.Vec2(nil), s.pts...)
}

// Generation returns the mutation counter, starting at 0 for a fresh set
func (s *Set) Generation() uint64 {
	return s.gen
}

// Add appends an anchor at p. Always succeeds; duplicates are allowed.
func (s *Set) Add(p geometry.Vec2) {
	s.pts = append(s.pts, p)
	s.gen++
}

// Nearest returns the index and distance of the anchor closest to p.
// Ties resolve to the earliest-inserted anchor. ok is false for an
// empty set.
func (s *Set) Nearest(p geometry.Vec2) (idx int, dist float64, ok bool) {
	if len(s.pts) == 0 {
		return 0, 0, false
	}
	idx = 0
	best := p.Dist2(s.pts[0])
	for i := 1; i < len(s.pts); i++ {
		if d := p.Dist2(s.pts[i]); d < best {
			best = d
			idx = i
		}
	}
	return idx, p.Dist(s.pts[idx]), true
}

// Remove deletes the anchor nearest to p if it lies within tol.
// Returns the removed anchor and true, or the zero value and false when
// the set is empty or nothing is in range. Misses do not bump the
// generation counter.
func (s *Set) Remove(p geometry.Vec2, tol float64) (geometry.Vec2, bool) {
	idx, dist, ok := s.Nearest(p)
	if !ok || dist > tol {
		return geometry.Vec2{}, false
	}
	removed := s.pts[idx]
	s.pts = append(s.pts[:idx], s.pts[idx+1:]...)
	s.gen++
	return removed, true
}

// Clear removes all anchors. No-op on an already empty set.
func (s *Set) Clear() {
	if len(s.pts) == 0 {
		return
	}
	s.pts = s.pts[:0]
	s.gen++
}

// Centroid returns the mean of all anchors, zero value when empty
func (s *Set) Centroid() geometry.Vec2 {
	return geometry.Centroid(s.pts)
}

// Hull returns the convex hull of the anchors in counterclockwise order
func (s *Set) Hull() []geometry.Vec2 {
	return geometry.ConvexHull(s.pts)
}
