package display

import "errors"

// ErrQuit signals a clean shutdown when returned from a step callback
var ErrQuit = errors.New("quit requested")

// Segment is a styled run of status line text
type Segment struct {
	Text string
	Fg   RGB
	Bold bool
}

// Backend is an interactive surface. Size and Flush use plot-surface
// pixel dimensions; the status line is presented outside the plot area.
type Backend interface {
	// Size returns the current plot dimensions in pixels
	Size() (w, h int)

	// Events returns the surface input stream
	Events() <-chan Event

	// Run drives the frame loop, invoking step once per frame on the
	// surface goroutine until step returns an error. ErrQuit stops the
	// loop and returns nil.
	Run(step func() error) error

	// Flush presents a composed frame; pix is row-major w*h
	Flush(pix []RGB, w, h int, status []Segment) error

	// Close releases the surface
	Close()
}
