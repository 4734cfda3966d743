package render

import (
	"testing"

	"github.com/lixenwraith/chaoscope/display"
)

func TestPixBufferSetAndAt(t *testing.T) {
	buf := NewPixBuffer(8, 6)
	c := RGB{R: 10, G: 20, B: 30}
	buf.Set(3, 2, c)

	if got := buf.At(3, 2); got != c {
		t.Errorf("At(3,2) = %v, want %v", got, c)
	}
	if got := buf.At(0, 0); got != RgbBackground {
		t.Errorf("Untouched pixel = %v, want background %v", got, RgbBackground)
	}
}

func TestPixBufferOutOfBoundsIgnored(t *testing.T) {
	buf := NewPixBuffer(4, 4)
	buf.Set(-1, 0, RGB{R: 255, G: 0, B: 0})
	buf.Set(4, 0, RGB{R: 255, G: 0, B: 0})
	buf.Set(0, 4, RGB{R: 255, G: 0, B: 0})
	buf.AddPx(99, 99, RGB{R: 255, G: 0, B: 0})
	buf.BlendPx(-5, -5, RGB{R: 255, G: 0, B: 0}, 0.5)
	buf.MaxPx(0, -1, RGB{R: 255, G: 0, B: 0})

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := buf.At(x, y); got != RgbBackground {
				t.Fatalf("Pixel (%d,%d) = %v, want untouched background", x, y, got)
			}
		}
	}
	if got := buf.At(-1, 0); got != RgbBackground {
		t.Errorf("Out of bounds At = %v, want background", got)
	}
}

func TestPixBufferClear(t *testing.T) {
	buf := NewPixBuffer(16, 16)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			buf.Set(x, y, RGB{R: uint8(x * 16), G: uint8(y * 16), B: 0})
		}
	}
	buf.Clear()

	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if got := buf.At(x, y); got != RgbBackground {
				t.Fatalf("After Clear pixel (%d,%d) = %v, want %v", x, y, got, RgbBackground)
			}
		}
	}
}

func TestPixBufferResize(t *testing.T) {
	buf := NewPixBuffer(10, 10)
	buf.Set(5, 5, RGB{R: 255, G: 255, B: 255})

	buf.Resize(4, 4)
	if buf.Width() != 4 || buf.Height() != 4 {
		t.Errorf("Dimensions after shrink = %dx%d, want 4x4", buf.Width(), buf.Height())
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := buf.At(x, y); got != RgbBackground {
				t.Fatalf("After shrink pixel (%d,%d) = %v, want background", x, y, got)
			}
		}
	}

	buf.Resize(20, 20)
	if len(buf.Pix()) != 400 {
		t.Errorf("Backing length after grow = %d, want 400", len(buf.Pix()))
	}
	if got := buf.At(19, 19); got != RgbBackground {
		t.Errorf("Grown pixel = %v, want background", got)
	}
}

func TestBlend(t *testing.T) {
	a := RGB{R: 0, G: 0, B: 0}
	b := RGB{R: 200, G: 100, B: 50}

	if got := Blend(a, b, 0); got != a {
		t.Errorf("Blend alpha 0 = %v, want %v", got, a)
	}
	if got := Blend(a, b, 1); got != b {
		t.Errorf("Blend alpha 1 = %v, want %v", got, b)
	}
	got := Blend(a, b, 0.5)
	if got.R != 100 || got.G != 50 || got.B != 25 {
		t.Errorf("Blend alpha 0.5 = %v, want {100 50 25}", got)
	}
}

func TestAddClamps(t *testing.T) {
	got := Add(RGB{R: 200, G: 200, B: 10}, RGB{R: 100, G: 55, B: 10})
	want := RGB{R: 255, G: 255, B: 20}
	if got != want {
		t.Errorf("Add = %v, want %v", got, want)
	}
}

func TestMaxPerChannel(t *testing.T) {
	got := Max(RGB{R: 10, G: 200, B: 30}, RGB{R: 20, G: 100, B: 30})
	want := RGB{R: 20, G: 200, B: 30}
	if got != want {
		t.Errorf("Max = %v, want %v", got, want)
	}
}

func TestScale(t *testing.T) {
	got := Scale(RGB{R: 100, G: 200, B: 50}, 0.5)
	want := RGB{R: 50, G: 100, B: 25}
	if got != want {
		t.Errorf("Scale 0.5 = %v, want %v", got, want)
	}
	if got := Scale(RGB{R: 200, G: 200, B: 200}, 2.0); got != (RGB{R: 255, G: 255, B: 255}) {
		t.Errorf("Scale 2.0 should clamp to white, got %v", got)
	}
}

func TestLerpEndpoints(t *testing.T) {
	a := RGB{R: 0, G: 100, B: 200}
	b := RGB{R: 200, G: 100, B: 0}
	if got := Lerp(a, b, -0.5); got != a {
		t.Errorf("Lerp t<0 = %v, want %v", got, a)
	}
	if got := Lerp(a, b, 1.5); got != b {
		t.Errorf("Lerp t>1 = %v, want %v", got, b)
	}
	mid := Lerp(a, b, 0.5)
	if mid.R != 100 || mid.G != 100 || mid.B != 100 {
		t.Errorf("Lerp midpoint = %v, want {100 100 100}", mid)
	}
}

func TestDensityColor(t *testing.T) {
	if got := DensityColor(0); got != RgbBackground {
		t.Errorf("DensityColor(0) = %v, want background", got)
	}
	if got := DensityColor(1); got != RgbPointHot {
		t.Errorf("DensityColor(1) = %v, want %v", got, RgbPointHot)
	}
	if got := DensityColor(5); got != RgbPointHot {
		t.Errorf("DensityColor above 1 should clamp to hot, got %v", got)
	}
	if got := DensityColor(0.5); got != Lerp(RgbPointDim, RgbPointHot, 0.5) {
		t.Errorf("DensityColor(0.5) = %v, want the ramp midpoint", got)
	}
	// The ramp brightens monotonically
	prev := DensityColor(0.1)
	for _, tt := range []float64{0.3, 0.6, 0.9} {
		cur := DensityColor(tt)
		if cur.R < prev.R || cur.G < prev.G || cur.B < prev.B {
			t.Errorf("Ramp not monotonic at t=%v: %v after %v", tt, cur, prev)
		}
		prev = cur
	}
}

func TestFillDisc(t *testing.T) {
	buf := NewPixBuffer(20, 20)
	c := RGB{R: 255, G: 0, B: 0}
	FillDisc(buf, 10, 10, 3, c)

	if got := buf.At(10, 10); got != c {
		t.Errorf("Disc center = %v, want %v", got, c)
	}
	if got := buf.At(10, 13); got != c {
		t.Errorf("Disc edge = %v, want %v", got, c)
	}
	if got := buf.At(13, 13); got != RgbBackground {
		t.Errorf("Disc corner overreach: (13,13) = %v, want background", got)
	}
}

func TestDrawRing(t *testing.T) {
	buf := NewPixBuffer(20, 20)
	c := RGB{R: 0, G: 255, B: 0}
	DrawRing(buf, 10, 10, 4, c)

	for _, p := range [][2]int{{14, 10}, {6, 10}, {10, 14}, {10, 6}} {
		if got := buf.At(p[0], p[1]); got != c {
			t.Errorf("Ring cardinal (%d,%d) = %v, want %v", p[0], p[1], got, c)
		}
	}
	if got := buf.At(10, 10); got != RgbBackground {
		t.Errorf("Ring center = %v, want hollow", got)
	}
}

func TestDrawLine(t *testing.T) {
	buf := NewPixBuffer(10, 10)
	c := RGB{R: 0, G: 0, B: 255}
	DrawLine(buf, 1, 1, 8, 8, c)

	if got := buf.At(1, 1); got != c {
		t.Errorf("Line start = %v, want %v", got, c)
	}
	if got := buf.At(8, 8); got != c {
		t.Errorf("Line end = %v, want %v", got, c)
	}
	if got := buf.At(4, 4); got != c {
		t.Errorf("Diagonal midpoint = %v, want %v", got, c)
	}
}

func TestDrawLineHorizontalAndVertical(t *testing.T) {
	buf := NewPixBuffer(10, 10)
	c := RGB{R: 200, G: 200, B: 200}
	DrawLine(buf, 0, 5, 9, 5, c)
	DrawLine(buf, 5, 0, 5, 9, c)

	for x := 0; x < 10; x++ {
		if got := buf.At(x, 5); got != c {
			t.Fatalf("Horizontal line missing pixel at x=%d", x)
		}
	}
	for y := 0; y < 10; y++ {
		if got := buf.At(5, y); got != c {
			t.Fatalf("Vertical line missing pixel at y=%d", y)
		}
	}
}

// ===== ORCHESTRATOR =====

type fakeBackend struct {
	pix     []display.RGB
	w, h    int
	segs    []display.Segment
	flushes int
}

func (f *fakeBackend) Size() (int, int)             { return f.w, f.h }
func (f *fakeBackend) Events() <-chan display.Event { return nil }
func (f *fakeBackend) Run(step func() error) error  { return nil }
func (f *fakeBackend) Close()                       {}

func (f *fakeBackend) Flush(pix []display.RGB, w, h int, segs []display.Segment) error {
	f.pix = append(f.pix[:0], pix...)
	f.w, f.h = w, h
	f.segs = append(f.segs[:0], segs...)
	f.flushes++
	return nil
}

type logRenderer struct {
	name    string
	log     *[]string
	visible bool
}

func (r *logRenderer) Render(ctx RenderContext, buf *PixBuffer) {
	*r.log = append(*r.log, r.name)
}

type toggleRenderer struct {
	logRenderer
}

func (r *toggleRenderer) IsVisible() bool { return r.visible }

func TestOrchestratorPriorityOrder(t *testing.T) {
	be := &fakeBackend{}
	o := NewOrchestrator(be, 8, 8)

	var log []string
	o.Register(&logRenderer{name: "overlay", log: &log}, PriorityOverlay)
	o.Register(&logRenderer{name: "points", log: &log}, PriorityPoints)
	o.Register(&logRenderer{name: "anchors", log: &log}, PriorityAnchors)
	o.Register(&logRenderer{name: "hull", log: &log}, PriorityHull)

	ctx := RenderContext{Width: 8, Height: 8}
	if err := o.RenderFrame(ctx); err != nil {
		t.Fatalf("RenderFrame failed: %v", err)
	}

	want := []string{"points", "hull", "anchors", "overlay"}
	if len(log) != len(want) {
		t.Fatalf("Rendered %d stages, want %d", len(log), len(want))
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("Stage %d = %q, want %q", i, log[i], want[i])
		}
	}
}

func TestOrchestratorSamePriorityKeepsRegistrationOrder(t *testing.T) {
	be := &fakeBackend{}
	o := NewOrchestrator(be, 8, 8)

	var log []string
	o.Register(&logRenderer{name: "first", log: &log}, PriorityPoints)
	o.Register(&logRenderer{name: "second", log: &log}, PriorityPoints)

	if err := o.RenderFrame(RenderContext{Width: 8, Height: 8}); err != nil {
		t.Fatalf("RenderFrame failed: %v", err)
	}
	if len(log) != 2 || log[0] != "first" || log[1] != "second" {
		t.Errorf("Execution order = %v, want [first second]", log)
	}
}

func TestOrchestratorVisibilityToggle(t *testing.T) {
	be := &fakeBackend{}
	o := NewOrchestrator(be, 8, 8)

	var log []string
	hidden := &toggleRenderer{logRenderer{name: "hidden", log: &log}}
	hidden.visible = false
	shown := &toggleRenderer{logRenderer{name: "shown", log: &log}}
	shown.visible = true

	o.Register(hidden, PriorityHull)
	o.Register(shown, PriorityAnchors)

	if err := o.RenderFrame(RenderContext{Width: 8, Height: 8}); err != nil {
		t.Fatalf("RenderFrame failed: %v", err)
	}
	if len(log) != 1 || log[0] != "shown" {
		t.Errorf("Execution log = %v, want [shown]", log)
	}
}

type fixedStatus struct {
	segs []display.Segment
}

func (s *fixedStatus) StatusSegments() []display.Segment { return s.segs }

func TestOrchestratorFlushesStatus(t *testing.T) {
	be := &fakeBackend{}
	o := NewOrchestrator(be, 4, 4)
	o.SetStatusSource(&fixedStatus{segs: []display.Segment{
		{Text: "anchors 3", Fg: RgbStatusText},
		{Text: " | paused", Fg: RgbStatusAlert, Bold: true},
	}})

	if err := o.RenderFrame(RenderContext{Width: 4, Height: 4}); err != nil {
		t.Fatalf("RenderFrame failed: %v", err)
	}

	if be.flushes != 1 {
		t.Fatalf("Flush count = %d, want 1", be.flushes)
	}
	if len(be.segs) != 2 || be.segs[0].Text != "anchors 3" || !be.segs[1].Bold {
		t.Errorf("Flushed segments = %+v", be.segs)
	}
	if len(be.pix) != 16 {
		t.Errorf("Flushed pixel count = %d, want 16", len(be.pix))
	}
}

func TestOrchestratorResizesToContext(t *testing.T) {
	be := &fakeBackend{}
	o := NewOrchestrator(be, 4, 4)

	if err := o.RenderFrame(RenderContext{Width: 6, Height: 5}); err != nil {
		t.Fatalf("RenderFrame failed: %v", err)
	}
	if be.w != 6 || be.h != 5 {
		t.Errorf("Flushed dimensions = %dx%d, want 6x5", be.w, be.h)
	}
	if len(be.pix) != 30 {
		t.Errorf("Flushed pixel count = %d, want 30", len(be.pix))
	}
}
