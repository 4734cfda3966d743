package display

import (
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/chaoscope/constants"
)

// statusBg matches render.RgbStatusBg, hardcoded to avoid import cycle
var statusBg = RGB{0x16, 0x16, 0x1E}

// Terminal renders frames into a tcell screen using 2x2 quadrant
// subpixels, so each character cell carries four plot pixels. The
// bottom cell row is reserved for the status line.
type Terminal struct {
	screen tcell.Screen
	mode   ColorMode
	events chan Event

	cols, rows int // character cells
	lastBtns   tcell.ButtonMask
}

// NewTerminal initializes the tcell screen with mouse reporting
func NewTerminal(mode ColorMode) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	if mode == ColorModeAuto {
		mode = DetectColorMode()
	}

	screen.EnableMouse()
	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()

	t := &Terminal{
		screen: screen,
		mode:   mode,
		events: make(chan Event, 100),
	}
	t.cols, t.rows = screen.Size()
	return t, nil
}

// Size returns plot dimensions in pixels: two per cell in each axis,
// minus the status row
func (t *Terminal) Size() (int, int) {
	rows := t.rows - 1
	if rows < 1 {
		rows = 1
	}
	return t.cols * 2, rows * 2
}

func (t *Terminal) Events() <-chan Event { return t.events }

// Run polls tcell events on a background goroutine and drives step at
// the frame interval. Consumers drain Events from inside step.
func (t *Terminal) Run(step func() error) error {
	go t.poll()

	ticker := time.NewTicker(constants.FrameUpdateInterval)
	defer ticker.Stop()

	for range ticker.C {
		if err := step(); err != nil {
			if errors.Is(err, ErrQuit) {
				return nil
			}
			return err
		}
	}
	return nil
}

func (t *Terminal) poll() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return // screen finalized
		}
		if e, ok := t.translate(ev); ok {
			select {
			case t.events <- e:
			default: // drop when consumer stalls
			}
		}
	}
}

func (t *Terminal) translate(ev tcell.Event) (Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape:
			return Event{Type: EventKey, Key: KeyEscape}, true
		case tcell.KeyCtrlC:
			return Event{Type: EventKey, Key: KeyCtrlC}, true
		case tcell.KeyRune:
			return Event{Type: EventKey, Key: KeyRune, Rune: ev.Rune()}, true
		}
		return Event{}, false

	case *tcell.EventResize:
		t.cols, t.rows = ev.Size()
		w, h := t.Size()
		return Event{Type: EventResize, W: w, H: h}, true

	case *tcell.EventMouse:
		return t.translateMouse(ev)
	}
	return Event{}, false
}

// translateMouse synthesizes press/release/move actions from tcell
// button masks. Events on the status row are dropped.
func (t *Terminal) translateMouse(ev *tcell.EventMouse) (Event, bool) {
	cx, cy := ev.Position()
	if cy >= t.rows-1 {
		return Event{}, false
	}
	e := Event{Type: EventMouse, X: cx * 2, Y: cy * 2}

	btns := ev.Buttons()
	switch {
	case btns&tcell.WheelUp != 0:
		e.Button, e.Action = MouseBtnWheelUp, MouseActionPress
	case btns&tcell.WheelDown != 0:
		e.Button, e.Action = MouseBtnWheelDown, MouseActionPress
	default:
		pressed := btns &^ t.lastBtns
		released := t.lastBtns &^ btns
		t.lastBtns = btns
		switch {
		case pressed&tcell.ButtonPrimary != 0:
			e.Button, e.Action = MouseBtnLeft, MouseActionPress
		case pressed&tcell.ButtonSecondary != 0:
			e.Button, e.Action = MouseBtnRight, MouseActionPress
		case pressed&tcell.ButtonMiddle != 0:
			e.Button, e.Action = MouseBtnMiddle, MouseActionPress
		case released&tcell.ButtonPrimary != 0:
			e.Button, e.Action = MouseBtnLeft, MouseActionRelease
		case released&tcell.ButtonSecondary != 0:
			e.Button, e.Action = MouseBtnRight, MouseActionRelease
		case released&tcell.ButtonMiddle != 0:
			e.Button, e.Action = MouseBtnMiddle, MouseActionRelease
		default:
			e.Action = MouseActionMove
		}
	}
	return e, true
}

// Flush converts the pixel frame to quadrant cells and presents it
// together with the status row
func (t *Terminal) Flush(pix []RGB, w, h int, status []Segment) error {
	cols := min(w/2, t.cols)
	rows := min(h/2, t.rows-1)

	for cy := 0; cy < rows; cy++ {
		top := (cy * 2) * w
		bot := (cy*2 + 1) * w
		for cx := 0; cx < cols; cx++ {
			px := [4]RGB{
				pix[top+cx*2], pix[top+cx*2+1],
				pix[bot+cx*2], pix[bot+cx*2+1],
			}
			ch, fg, bg := bestQuadrant(px)
			t.screen.SetContent(cx, cy, ch, nil, t.style(fg, bg))
		}
	}

	t.drawStatus(status)
	t.screen.Show()
	return nil
}

func (t *Terminal) style(fg, bg RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(t.color(fg)).Background(t.color(bg))
}

func (t *Terminal) color(c RGB) tcell.Color {
	if t.mode == ColorMode256 {
		return tcell.PaletteColor(int(c.To256()))
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (t *Terminal) drawStatus(segs []Segment) {
	row := t.rows - 1
	if row < 0 {
		return
	}
	bgc := t.color(statusBg)

	x := 0
	for _, seg := range segs {
		st := tcell.StyleDefault.Foreground(t.color(seg.Fg)).Background(bgc).Bold(seg.Bold)
		for _, r := range seg.Text {
			if x >= t.cols {
				break
			}
			t.screen.SetContent(x, row, r, nil, st)
			x++
		}
	}
	pad := tcell.StyleDefault.Background(bgc)
	for ; x < t.cols; x++ {
		t.screen.SetContent(x, row, ' ', nil, pad)
	}
}

// Close restores the terminal state
func (t *Terminal) Close() {
	t.screen.Fini()
}
