package terminal

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTerminal(t *testing.T, w, h int) (*termImpl, *memBackend) {
	t.Helper()
	b := newMemBackend(w, h)
	term := newWithBackend(b, ColorModeTrueColor)
	require.NoError(t, term.Init())
	t.Cleanup(term.Fini)
	return term, b
}

func TestTerminal_InitEntersAltScreen(t *testing.T) {
	_, b := newTestTerminal(t, 10, 4)
	out := b.output()
	assert.Contains(t, out, string(csiAltScreenEnter))
	assert.Contains(t, out, string(csiCursorHide))
	assert.Contains(t, out, string(csiAutoWrapOff))
}

func TestTerminal_FiniRestores(t *testing.T) {
	b := newMemBackend(10, 4)
	term := newWithBackend(b, ColorModeTrueColor)
	require.NoError(t, term.Init())
	b.resetOutput()

	term.Fini()
	term.Fini() // Safe to call twice

	out := b.output()
	assert.Equal(t, 1, strings.Count(out, string(csiAltScreenExit)))
	assert.Contains(t, out, string(csiCursorShow))
	assert.True(t, b.finied)
}

func TestTerminal_FlushWritesGlyphs(t *testing.T) {
	term, b := newTestTerminal(t, 4, 2)
	b.resetOutput()

	cells := fillCells(4, 2, '@', RGB{255, 0, 255})
	term.Flush(cells, 4, 2)

	out := b.output()
	assert.Equal(t, 8, strings.Count(out, "@"))
	assert.Contains(t, out, "38;2;255;0;255")
}

func TestTerminal_FlushSkipsUnchangedRows(t *testing.T) {
	term, b := newTestTerminal(t, 6, 3)
	cells := fillCells(6, 3, '#', RGB{200, 200, 200})
	term.Flush(cells, 6, 3)
	b.resetOutput()

	// Identical frame emits only the trailing reset
	term.Flush(cells, 6, 3)
	assert.Equal(t, string(csiSGR0), b.output())

	// One changed cell: a single cursor move and glyph
	b.resetOutput()
	cells[1*6+2].Rune = '*'
	term.Flush(cells, 6, 3)
	out := b.output()
	assert.Contains(t, out, "\x1b[2;3H")
	assert.Equal(t, 1, strings.Count(out, "*"))
	assert.NotContains(t, out, "#")
}

func TestTerminal_FlushDropsStaleSize(t *testing.T) {
	term, b := newTestTerminal(t, 4, 2)
	b.resetOutput()

	term.Flush(fillCells(5, 2, 'x', RGBBlack), 5, 2)
	assert.Empty(t, b.output())
}

func TestTerminal_SyncForcesRedraw(t *testing.T) {
	term, b := newTestTerminal(t, 3, 1)
	cells := fillCells(3, 1, 'o', RGB{10, 20, 30})
	term.Flush(cells, 3, 1)

	term.Sync()
	b.resetOutput()
	term.Flush(cells, 3, 1)
	assert.Equal(t, 3, strings.Count(b.output(), "o"))
}

func TestTerminal_256ColorOutput(t *testing.T) {
	b := newMemBackend(1, 1)
	term := newWithBackend(b, ColorMode256)
	require.NoError(t, term.Init())
	defer term.Fini()
	b.resetOutput()

	term.Flush([]Cell{{Rune: 'x', Fg: RGB{255, 0, 255}}}, 1, 1)
	assert.Contains(t, b.output(), "38;5;201")
	assert.Equal(t, ColorMode256, term.ColorMode())
}

func TestTerminal_ResizeEvent(t *testing.T) {
	term, b := newTestTerminal(t, 10, 4)
	b.triggerResize(20, 8)

	ev := pollWithTimeout(t, term)
	assert.Equal(t, EventResize, ev.Type)
	assert.Equal(t, 20, ev.Width)
	assert.Equal(t, 8, ev.Height)
}

func TestTerminal_PostEvent(t *testing.T) {
	term, _ := newTestTerminal(t, 10, 4)
	term.PostEvent(Event{Type: EventClosed})
	assert.Equal(t, EventClosed, pollWithTimeout(t, term).Type)
}

func TestEmergencyReset_WritesRestoreSequences(t *testing.T) {
	var sb strings.Builder
	EmergencyReset(&sb)
	out := sb.String()
	assert.Contains(t, out, string(csiCursorShow))
	assert.Contains(t, out, string(csiAltScreenExit))
	assert.Contains(t, out, string(csiAutoWrapOn))
}

func TestRGBTo256(t *testing.T) {
	tests := []struct {
		name string
		c    RGB
		want uint8
	}{
		{"black", RGB{0, 0, 0}, 16},
		{"white", RGB{255, 255, 255}, 231},
		{"magenta", RGB{255, 0, 255}, 201},
		{"red", RGB{255, 0, 0}, 196},
		{"mid gray", RGB{128, 128, 128}, 244},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RGBTo256(tt.c))
		})
	}
}

func pollWithTimeout(t *testing.T, term Terminal) Event {
	t.Helper()
	ch := make(chan Event, 1)
	go func() { ch <- term.PollEvent() }()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}
