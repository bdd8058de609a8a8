package render

import (
	"github.com/lixenwraith/torus/raymarch"
	"github.com/lixenwraith/torus/terminal"
)

// Renderer composes raymarched frames into a terminal-sized cell buffer
type Renderer struct {
	ramp raymarch.Ramp
	tint *Tint
	buf  *RenderBuffer

	// Placement of the last composed frame
	offsetX int
	offsetY int
}

// NewRenderer creates a renderer for the given glyph ramp
func NewRenderer(ramp raymarch.Ramp, tint *Tint) *Renderer {
	return &Renderer{
		ramp: ramp,
		tint: tint,
		buf:  NewRenderBuffer(0, 0),
	}
}

// Buffer returns the composed cell buffer
func (r *Renderer) Buffer() *RenderBuffer {
	return r.buf
}

// Offset returns where the last frame was placed on screen
func (r *Renderer) Offset() (int, int) {
	return r.offsetX, r.offsetY
}

// Compose clears the buffer to the terminal size and draws frame centered in it
// Frame cells falling outside the terminal are dropped
func (r *Renderer) Compose(frame *raymarch.Frame, termWidth, termHeight int) {
	if w, h := r.buf.Size(); w != termWidth || h != termHeight {
		r.buf.Resize(termWidth, termHeight)
	} else {
		r.buf.Clear()
	}

	r.offsetX = centerOffset(termWidth, frame.Width)
	r.offsetY = centerOffset(termHeight, frame.Height)

	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			b := frame.At(x, y)
			r.buf.SetFgOnly(r.offsetX+x, r.offsetY+y, r.ramp.Glyph(b), r.tint.Color(b), terminal.AttrNone)
		}
	}
}

// Present flushes the composed buffer to the terminal
func (r *Renderer) Present(term terminal.Terminal) {
	r.buf.FlushToTerminal(term)
}

// centerOffset returns the leading margin that centers inner in outer, 0 when inner does not fit
func centerOffset(outer, inner int) int {
	if inner >= outer {
		return 0
	}
	return (outer - inner) / 2
}

// FitViewport clamps the requested viewport to the terminal size
func FitViewport(width, height, termWidth, termHeight int) (int, int) {
	return max(0, min(width, termWidth)), max(0, min(height, termHeight))
}
