package display

import (
	"errors"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"github.com/lixenwraith/chaoscope/constants"
)

// Window is the ebiten desktop backend. The plot fills the window
// above a fixed-height status strip rendered with tinyfont.
type Window struct {
	events chan Event
	step   func() error

	plotW, plotH int
	lastX, lastY int

	frame          []byte // plot pixels, RGBA
	frameW, frameH int
	status         []Segment

	plotImg  *ebiten.Image
	strip    *image.RGBA
	stripImg *ebiten.Image
	chars    []rune
}

// NewWindow prepares a window backend with the default plot size
func NewWindow() *Window {
	return &Window{
		events: make(chan Event, 100),
		plotW:  constants.DefaultWindowPlotSize,
		plotH:  constants.DefaultWindowPlotSize,
		lastX:  -1,
		lastY:  -1,
	}
}

func (w *Window) Size() (int, int) { return w.plotW, w.plotH }

func (w *Window) Events() <-chan Event { return w.events }

// Run opens the window and drives step once per tick until it returns
// an error. ErrQuit and a closed window both end the loop cleanly.
func (w *Window) Run(step func() error) error {
	w.step = step
	ebiten.SetWindowTitle("chaoscope")
	ebiten.SetWindowSize(constants.DefaultWindowPlotSize, constants.DefaultWindowPlotSize+constants.StatusStripHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(constants.WindowTPS)
	return ebiten.RunGame(w)
}

func (w *Window) Close() {}

// Update implements ebiten.Game
func (w *Window) Update() error {
	w.pollInput()
	if err := w.step(); err != nil {
		if errors.Is(err, ErrQuit) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

func (w *Window) push(e Event) {
	select {
	case w.events <- e:
	default:
	}
}

func (w *Window) pollInput() {
	w.chars = ebiten.AppendInputChars(w.chars[:0])
	for _, r := range w.chars {
		w.push(Event{Type: EventKey, Key: KeyRune, Rune: r})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		w.push(Event{Type: EventKey, Key: KeyEscape})
	}

	mx, my := ebiten.CursorPosition()
	if mx < 0 || my < 0 || mx >= w.plotW || my >= w.plotH {
		return // outside plot area
	}
	if mx != w.lastX || my != w.lastY {
		w.lastX, w.lastY = mx, my
		w.push(Event{Type: EventMouse, Action: MouseActionMove, X: mx, Y: my})
	}

	buttons := [...]struct {
		eb ebiten.MouseButton
		b  MouseButton
	}{
		{ebiten.MouseButtonLeft, MouseBtnLeft},
		{ebiten.MouseButtonRight, MouseBtnRight},
		{ebiten.MouseButtonMiddle, MouseBtnMiddle},
	}
	for _, m := range buttons {
		if inpututil.IsMouseButtonJustPressed(m.eb) {
			w.push(Event{Type: EventMouse, Action: MouseActionPress, Button: m.b, X: mx, Y: my})
		}
		if inpututil.IsMouseButtonJustReleased(m.eb) {
			w.push(Event{Type: EventMouse, Action: MouseActionRelease, Button: m.b, X: mx, Y: my})
		}
	}

	if _, yoff := ebiten.Wheel(); yoff != 0 {
		btn := MouseBtnWheelDown
		if yoff > 0 {
			btn = MouseBtnWheelUp
		}
		w.push(Event{Type: EventMouse, Action: MouseActionPress, Button: btn, X: mx, Y: my})
	}
}

// Flush stores the composed frame for the next Draw
func (w *Window) Flush(pix []RGB, pw, ph int, status []Segment) error {
	need := pw * ph * 4
	if cap(w.frame) < need {
		w.frame = make([]byte, need)
	}
	w.frame = w.frame[:need]
	for i, c := range pix {
		j := i * 4
		w.frame[j+0] = c.R
		w.frame[j+1] = c.G
		w.frame[j+2] = c.B
		w.frame[j+3] = 0xFF
	}
	w.frameW, w.frameH = pw, ph
	w.status = append(w.status[:0], status...)
	return nil
}

// Draw implements ebiten.Game
func (w *Window) Draw(screen *ebiten.Image) {
	if w.frameW > 0 && w.frameH > 0 {
		if w.plotImg == nil || w.plotImg.Bounds().Dx() != w.frameW || w.plotImg.Bounds().Dy() != w.frameH {
			if w.plotImg != nil {
				w.plotImg.Deallocate()
			}
			w.plotImg = ebiten.NewImage(w.frameW, w.frameH)
		}
		w.plotImg.WritePixels(w.frame)
		screen.DrawImage(w.plotImg, nil)
	}
	w.drawStrip(screen)
}

// Layout implements ebiten.Game; the window maps 1:1 to plot pixels
// plus the status strip
func (w *Window) Layout(ow, oh int) (int, int) {
	ow = max(ow, 64)
	oh = max(oh, constants.StatusStripHeight+64)
	pw, ph := ow, oh-constants.StatusStripHeight
	if pw != w.plotW || ph != w.plotH {
		w.plotW, w.plotH = pw, ph
		w.push(Event{Type: EventResize, W: pw, H: ph})
	}
	return ow, oh
}

var stripFont = &proggy.TinySZ8pt7b

func (w *Window) drawStrip(screen *ebiten.Image) {
	sw, sh := w.plotW, constants.StatusStripHeight
	if w.strip == nil || w.strip.Bounds().Dx() != sw {
		w.strip = image.NewRGBA(image.Rect(0, 0, sw, sh))
		if w.stripImg != nil {
			w.stripImg.Deallocate()
		}
		w.stripImg = ebiten.NewImage(sw, sh)
	}

	bg := color.RGBA{statusBg.R, statusBg.G, statusBg.B, 0xFF}
	for i := 0; i < len(w.strip.Pix); i += 4 {
		w.strip.Pix[i+0] = bg.R
		w.strip.Pix[i+1] = bg.G
		w.strip.Pix[i+2] = bg.B
		w.strip.Pix[i+3] = 0xFF
	}

	d := &stripDisplayer{img: w.strip}
	x := int16(4)
	baseline := int16(sh - 5)
	for _, seg := range w.status {
		c := color.RGBA{seg.Fg.R, seg.Fg.G, seg.Fg.B, 0xFF}
		tinyfont.WriteLine(d, stripFont, x, baseline, seg.Text, c)
		_, outboxWidth := tinyfont.LineWidth(stripFont, seg.Text)
		x += int16(outboxWidth)
	}

	w.stripImg.WritePixels(w.strip.Pix)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(w.plotH))
	screen.DrawImage(w.stripImg, op)
}

// stripDisplayer adapts image.RGBA to the displayer tinyfont draws on
type stripDisplayer struct {
	img *image.RGBA
}

func (d *stripDisplayer) Size() (int16, int16) {
	b := d.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (d *stripDisplayer) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || int(x) >= d.img.Bounds().Dx() || int(y) >= d.img.Bounds().Dy() {
		return
	}
	d.img.SetRGBA(int(x), int(y), c)
}

func (d *stripDisplayer) Display() error { return nil }
