// Package display abstracts the interactive surfaces: a tcell terminal
// with subpixel quadrant cells and an ebiten desktop window. Backends
// translate native input into a shared event model and present frames
// composed by the render pipeline.
package display

// EventType identifies the kind of surface event
type EventType uint8

const (
	EventNone EventType = iota
	EventKey
	EventMouse
	EventResize
	EventClosed
	EventError
)

// Key identifies non-rune keys; rune keys carry KeyRune plus the rune
type Key uint8

const (
	KeyNone Key = iota
	KeyRune
	KeyEscape
	KeyCtrlC
)

// MouseButton represents mouse button identity
type MouseButton uint8

const (
	MouseBtnNone MouseButton = iota
	MouseBtnLeft
	MouseBtnMiddle
	MouseBtnRight
	MouseBtnWheelUp
	MouseBtnWheelDown
)

// MouseAction represents the type of mouse event
type MouseAction uint8

const (
	MouseActionNone MouseAction = iota
	MouseActionPress
	MouseActionRelease
	MouseActionMove
)

// Event is a surface event in plot-surface pixel coordinates.
// Mouse events outside the plot area are dropped by the backend.
type Event struct {
	Type   EventType
	Key    Key
	Rune   rune
	Button MouseButton
	Action MouseAction
	X, Y   int // mouse position, plot pixels
	W, H   int // new plot dimensions on resize
	Err    error
}

// String returns human-readable button name
func (b MouseButton) String() string {
	switch b {
	case MouseBtnLeft:
		return "Left"
	case MouseBtnMiddle:
		return "Middle"
	case MouseBtnRight:
		return "Right"
	case MouseBtnWheelUp:
		return "WheelUp"
	case MouseBtnWheelDown:
		return "WheelDown"
	default:
		return "None"
	}
}

// String returns human-readable action name
func (a MouseAction) String() string {
	switch a {
	case MouseActionPress:
		return "Press"
	case MouseActionRelease:
		return "Release"
	case MouseActionMove:
		return "Move"
	default:
		return "None"
	}
}

// String returns human-readable event type name
func (t EventType) String() string {
	switch t {
	case EventKey:
		return "Key"
	case EventMouse:
		return "Mouse"
	case EventResize:
		return "Resize"
	case EventClosed:
		return "Closed"
	case EventError:
		return "Error"
	default:
		return "None"
	}
}
