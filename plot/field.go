// Package plot accumulates chaos-game hits on a pixel density grid.
package plot

// Field is a W x H grid of hit counters with a running maximum.
// It is derived state: the owner can always rebuild it by replaying the
// retained point history, which is how resize and view scrubbing work.
type Field struct {
	w, h   int
	counts []uint32
	max    uint32
	marked uint64
}

// NewField creates a zeroed field with the given dimensions
func NewField(w, h int) *Field {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Field{
		w:      w,
		h:      h,
		counts: make([]uint32, w*h),
	}
}

// Width returns the horizontal cell count
func (f *Field) Width() int {
	return f.w
}

// Height returns the vertical cell count
func (f *Field) Height() int {
	return f.h
}

// Mark increments the counter at (x, y). Out-of-bounds marks are dropped.
func (f *Field) Mark(x, y int) {
	if x < 0 || x >= f.w || y < 0 || y >= f.h {
		return
	}
	idx := y*f.w + x
	f.counts[idx]++
	if f.counts[idx] > f.max {
		f.max = f.counts[idx]
	}
	f.marked++
}

// At returns the hit count at (x, y), zero when out of bounds
func (f *Field) At(x, y int) uint32 {
	if x < 0 || x >= f.w || y < 0 || y >= f.h {
		return 0
	}
	return f.counts[y*f.w+x]
}

// Max returns the largest cell count seen since the last clear
func (f *Field) Max() uint32 {
	return f.max
}

// Marked returns the total number of accepted marks since the last clear
func (f *Field) Marked() uint64 {
	return f.marked
}

// Counts exposes the backing counter slice in row-major order.
// Callers must treat the slice as read-only.
func (f *Field) Counts() []uint32 {
	return f.counts
}

// Clear zeroes all counters and the running maximum
func (f *Field) Clear() {
	clear(f.counts)
	f.max = 0
	f.marked = 0
}

// Resize adjusts dimensions, reallocating only if capacity is
// insufficient, and clears the field
func (f *Field) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	size := w * h
	if cap(f.counts) < size {
		f.counts = make([]uint32, size)
	} else {
		f.counts = f.counts[:size]
	}
	f.w = w
	f.h = h
	f.Clear()
}
