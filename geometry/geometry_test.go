package geometry

import (
	"math"
	"testing"
)

func TestVec2_Lerp(t *testing.T) {
	a := Vec2{0, 0}
	b := Vec2{1, 2}

	mid := a.Lerp(b, 0.5)
	if mid.X != 0.5 || mid.Y != 1.0 {
		t.Errorf("Expected midpoint (0.5, 1.0), got (%v, %v)", mid.X, mid.Y)
	}

	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Expected t=0 to return start point, got %v", got)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Expected t=1 to return end point, got %v", got)
	}
}

func TestVec2_Dist(t *testing.T) {
	a := Vec2{0, 0}
	b := Vec2{3, 4}

	if d := a.Dist(b); math.Abs(d-5.0) > 1e-12 {
		t.Errorf("Expected distance 5.0, got %v", d)
	}
	if d2 := a.Dist2(b); d2 != 25.0 {
		t.Errorf("Expected squared distance 25.0, got %v", d2)
	}
}

func TestVec2_ToPixel_CornersAndClamp(t *testing.T) {
	if px, py := (Vec2{0, 0}).ToPixel(600, 400); px != 0 || py != 0 {
		t.Errorf("Expected origin to map to (0,0), got (%d,%d)", px, py)
	}
	if px, py := (Vec2{1, 1}).ToPixel(600, 400); px != 599 || py != 399 {
		t.Errorf("Expected (1,1) to map to (599,399), got (%d,%d)", px, py)
	}
	// Out-of-range input clamps instead of escaping the grid
	if px, py := (Vec2{-0.5, 2.0}).ToPixel(600, 400); px != 0 || py != 399 {
		t.Errorf("Expected clamped (0,399), got (%d,%d)", px, py)
	}
}

func TestFromPixel_RoundTrip(t *testing.T) {
	w, h := 600, 400
	for _, px := range []int{0, 1, 299, 598, 599} {
		v := FromPixel(px, 0, w, h)
		back, _ := v.ToPixel(w, h)
		if back != px {
			t.Errorf("Expected pixel %d to round-trip, got %d", px, back)
		}
	}
}

func TestCentroid(t *testing.T) {
	pts := []Vec2{{0, 0}, {1, 0}, {0.5, 1}}
	c := Centroid(pts)
	if math.Abs(c.X-0.5) > 1e-12 || math.Abs(c.Y-1.0/3.0) > 1e-12 {
		t.Errorf("Expected centroid (0.5, 0.333...), got (%v, %v)", c.X, c.Y)
	}

	if z := Centroid(nil); z != (Vec2{}) {
		t.Errorf("Expected zero centroid for empty input, got %v", z)
	}
}

func TestTriArea_Orientation(t *testing.T) {
	a := Vec2{0, 0}
	b := Vec2{1, 0}
	left := Vec2{0, 1}
	right := Vec2{0, -1}

	if TriArea(a, b, left) <= 0 {
		t.Error("Expected positive area for left turn")
	}
	if TriArea(a, b, right) >= 0 {
		t.Error("Expected negative area for right turn")
	}
	if TriArea(a, b, Vec2{2, 0}) != 0 {
		t.Error("Expected zero area for collinear points")
	}

	if !Ccw(a, b, left) {
		t.Error("Expected Ccw true for left turn")
	}
	if Ccw(a, b, right) {
		t.Error("Expected Ccw false for right turn")
	}
}

func TestConvexHull_Triangle(t *testing.T) {
	pts := []Vec2{{0, 0}, {1, 0}, {0.5, 1}}
	hull := ConvexHull(pts)

	if len(hull) != 3 {
		t.Fatalf("Expected 3 hull vertices, got %d", len(hull))
	}
	for _, p := range pts {
		if !InHull(p, hull) {
			t.Errorf("Expected vertex %v to lie on its own hull", p)
		}
	}
}

func TestConvexHull_DropsInteriorPoints(t *testing.T) {
	pts := []Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0.5, 0.5}, {0.2, 0.8}}
	hull := ConvexHull(pts)

	if len(hull) != 4 {
		t.Fatalf("Expected 4 hull vertices for square with interior points, got %d", len(hull))
	}
	for _, p := range hull {
		if p == (Vec2{0.5, 0.5}) || p == (Vec2{0.2, 0.8}) {
			t.Errorf("Expected interior point %v to be dropped from hull", p)
		}
	}
}

func TestConvexHull_Degenerate(t *testing.T) {
	single := ConvexHull([]Vec2{{0.3, 0.7}})
	if len(single) != 1 {
		t.Errorf("Expected single-point hull, got %d vertices", len(single))
	}

	// Collinear points reduce to the two endpoints
	line := ConvexHull([]Vec2{{0, 0}, {0.25, 0.25}, {0.5, 0.5}, {1, 1}})
	if len(line) != 2 {
		t.Fatalf("Expected 2 hull vertices for collinear input, got %d", len(line))
	}
	if !InHull(Vec2{0.5, 0.5}, line) {
		t.Error("Expected collinear midpoint to lie within segment hull")
	}
}

func TestInHull_Containment(t *testing.T) {
	hull := ConvexHull([]Vec2{{0, 0}, {1, 0}, {0.5, 1}})

	inside := []Vec2{{0.5, 0.5}, {0.5, 0.01}, {0.25, 0.25}}
	for _, p := range inside {
		if !InHull(p, hull) {
			t.Errorf("Expected %v inside triangle hull", p)
		}
	}

	outside := []Vec2{{-0.1, 0}, {0.5, 1.1}, {1, 1}, {0, 0.5}}
	for _, p := range outside {
		if InHull(p, hull) {
			t.Errorf("Expected %v outside triangle hull", p)
		}
	}

	// Boundary points count as contained
	if !InHull(Vec2{0.5, 0}, hull) {
		t.Error("Expected edge midpoint to count as contained")
	}
}
