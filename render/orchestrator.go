package render

import (
	"github.com/lixenwraith/chaoscope/display"
)

type rendererEntry struct {
	renderer Renderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// Orchestrator coordinates the render pipeline
type Orchestrator struct {
	backend   display.Backend
	buffer    *PixBuffer
	renderers []rendererEntry
	regCount  int
	status    StatusSource
}

// NewOrchestrator creates an orchestrator with the given backend and dimensions
func NewOrchestrator(backend display.Backend, width, height int) *Orchestrator {
	return &Orchestrator{
		backend:   backend,
		buffer:    NewPixBuffer(width, height),
		renderers: make([]rendererEntry, 0, 8),
	}
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *Orchestrator) Register(r Renderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	// Insertion sort: find position and insert
	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// SetStatusSource installs the status line provider
func (o *Orchestrator) SetStatusSource(s StatusSource) {
	o.status = s
}

// Resize updates buffer dimensions
func (o *Orchestrator) Resize(width, height int) {
	o.buffer.Resize(width, height)
}

// Buffer exposes the compositor for tests and export
func (o *Orchestrator) Buffer() *PixBuffer {
	return o.buffer
}

// RenderFrame executes the render pipeline: clear, render all, flush
func (o *Orchestrator) RenderFrame(ctx RenderContext) error {
	if ctx.Width != o.buffer.width || ctx.Height != o.buffer.height {
		o.buffer.Resize(ctx.Width, ctx.Height)
	}

	o.buffer.Clear()

	for _, entry := range o.renderers {
		// Skip if renderer implements VisibilityToggle and is not visible
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.renderer.Render(ctx, o.buffer)
	}

	var segs []display.Segment
	if o.status != nil {
		segs = o.status.StatusSegments()
	}
	return o.backend.Flush(o.buffer.pix, o.buffer.width, o.buffer.height, segs)
}
