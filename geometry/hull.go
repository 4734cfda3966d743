package geometry

import (
	"math"
	"sort"
)

// hullEps absorbs float rounding in orientation and containment tests
const hullEps = 1e-9

// TriArea returns twice the signed area of triangle abc
// Positive when c lies left of the directed line a->b
func TriArea(a, b, c Vec2) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// Ccw reports whether a, b, c make a strict left turn
func Ccw(a, b, c Vec2) bool {
	return TriArea(a, b, c) > 0
}

// ConvexHull returns the convex hull of pts in counterclockwise order
// using the monotone chain construction. Interior and collinear edge
// points are dropped. Degenerate inputs return what exists: the single
// point, or the two endpoints of a collinear set.
func ConvexHull(pts []Vec2) []Vec2 {
	if len(pts) <= 1 {
		return append([]Vec2(nil), pts...)
	}

	sorted := append([]Vec2(nil), pts...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X != sorted[j].X {
			return sorted[i].X < sorted[j].X
		}
		return sorted[i].Y < sorted[j].Y
	})

	// Lower then upper chain; last point of each is the first of the other
	hull := make([]Vec2, 0, 2*len(sorted))
	for _, p := range sorted {
		for len(hull) >= 2 && TriArea(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	lower := len(hull) + 1
	for i := len(sorted) - 2; i >= 0; i-- {
		p := sorted[i]
		for len(hull) >= lower && TriArea(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}

	return hull[:len(hull)-1]
}

// InHull reports whether p lies inside or on the hull boundary
// hull must be in counterclockwise order as produced by ConvexHull
func InHull(p Vec2, hull []Vec2) bool {
	switch len(hull) {
	case 0:
		return false
	case 1:
		return p.Dist2(hull[0]) <= hullEps
	case 2:
		return distToSegment(p, hull[0], hull[1]) <= hullEps
	}

	for i := range hull {
		a := hull[i]
		b := hull[(i+1)%len(hull)]
		if TriArea(a, b, p) < -hullEps {
			return false
		}
	}
	return true
}

// distToSegment returns the distance from p to segment ab
func distToSegment(p, a, b Vec2) float64 {
	ab := b.Sub(a)
	len2 := ab.X*ab.X + ab.Y*ab.Y
	if len2 == 0 {
		return p.Dist(a)
	}
	t := ((p.X-a.X)*ab.X + (p.Y-a.Y)*ab.Y) / len2
	t = math.Max(0, math.Min(1, t))
	return p.Dist(a.Add(ab.Scale(t)))
}
