package canvas

import (
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

// Frame is one presented set of draw calls in the order they were issued.
type Frame struct {
	Entities []breakout.Entity
	Texts    []breakout.Text
}

func (f *Frame) reset() {
	f.Entities = f.Entities[:0]
	f.Texts = f.Texts[:0]
}

// DisplayList implements breakout.Display by recording draw calls into a
// back buffer. Present swaps it to the front, where drivers read it.
// Not safe for concurrent use; both drivers draw and paint on one goroutine.
type DisplayList struct {
	front     Frame
	back      Frame
	presented uint64
}

var _ breakout.Display = (*DisplayList)(nil)

// NewDisplayList creates an empty display list.
func NewDisplayList() *DisplayList {
	return &DisplayList{}
}

// DrawEntity records an entity draw in the back buffer.
func (l *DisplayList) DrawEntity(e breakout.Entity) {
	l.back.Entities = append(l.back.Entities, e)
}

// DrawText records a text draw in the back buffer.
func (l *DisplayList) DrawText(t breakout.Text) {
	l.back.Texts = append(l.back.Texts, t)
}

// Present makes the back buffer the visible frame and starts a new one.
func (l *DisplayList) Present() {
	l.front, l.back = l.back, l.front
	l.back.reset()
	l.presented++
}

// Front returns the last presented frame. The slices are reused after the
// next Present.
func (l *DisplayList) Front() Frame {
	return l.front
}

// Presented returns how many frames have been presented.
func (l *DisplayList) Presented() uint64 {
	return l.presented
}
