package terminal

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// tcellTerm implements Terminal on a tcell.Screen
type tcellTerm struct {
	screen    tcell.Screen
	colorMode ColorMode

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// NewTcell creates a terminal backed by tcell's terminfo-driven screen
func NewTcell(colorMode ColorMode) (Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return newTcellTerminal(screen, colorMode), nil
}

func newTcellTerminal(screen tcell.Screen, colorMode ColorMode) *tcellTerm {
	return &tcellTerm{
		screen:    screen,
		colorMode: colorMode,
	}
}

func (t *tcellTerm) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}
	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.HideCursor()
	t.screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	t.screen.Clear()
	t.initialized = true
	return nil
}

func (t *tcellTerm) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}
	t.screen.Fini()
	t.finalized = true
}

func (t *tcellTerm) Size() (int, int) {
	return t.screen.Size()
}

func (t *tcellTerm) ColorMode() ColorMode {
	return t.colorMode
}

// Flush copies cells into the tcell back buffer; tcell performs its own diffing on Show
func (t *tcellTerm) Flush(cells []Cell, width, height int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized || len(cells) < width*height {
		return
	}

	for y := 0; y < height; y++ {
		row := cells[y*width : (y+1)*width]
		for x, c := range row {
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			t.screen.SetContent(x, y, r, nil, t.style(c))
		}
	}
	t.screen.Show()
}

func (t *tcellTerm) Clear(bg RGB) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}
	t.screen.SetStyle(tcell.StyleDefault.Background(t.color(bg)))
	t.screen.Clear()
	t.screen.Show()
}

func (t *tcellTerm) Sync() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}
	t.screen.Sync()
}

// PollEvent translates tcell events, skipping kinds the renderer has no use for
func (t *tcellTerm) PollEvent() Event {
	for {
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			// Screen finalized
			return Event{Type: EventClosed}
		case *tcell.EventKey:
			return translateKey(ev)
		case *tcell.EventResize:
			w, h := ev.Size()
			return Event{Type: EventResize, Width: w, Height: h}
		case *tcell.EventInterrupt:
			if synthetic, ok := ev.Data().(Event); ok {
				return synthetic
			}
		case *tcell.EventError:
			return Event{Type: EventError, Err: ev}
		}
	}
}

func (t *tcellTerm) PostEvent(ev Event) {
	// Error means queue full; drop like the ANSI terminal
	_ = t.screen.PostEvent(tcell.NewEventInterrupt(ev))
}

// style converts a cell's colors and attributes to a tcell style
func (t *tcellTerm) style(c Cell) tcell.Style {
	st := tcell.StyleDefault.Foreground(t.color(c.Fg)).Background(t.color(c.Bg))
	if c.Attrs&AttrBold != 0 {
		st = st.Bold(true)
	}
	if c.Attrs&AttrDim != 0 {
		st = st.Dim(true)
	}
	if c.Attrs&AttrReverse != 0 {
		st = st.Reverse(true)
	}
	return st
}

func (t *tcellTerm) color(c RGB) tcell.Color {
	if t.colorMode == ColorModeTrueColor {
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	return tcell.PaletteColor(int(RGBTo256(c)))
}

// translateKey maps a tcell key event to a terminal Event
func translateKey(ev *tcell.EventKey) Event {
	out := Event{Type: EventKey}
	if ev.Modifiers()&tcell.ModAlt != 0 {
		out.Modifiers |= ModAlt
	}

	switch ev.Key() {
	case tcell.KeyRune:
		out.Key = KeyRune
		out.Rune = ev.Rune()
	case tcell.KeyEscape:
		out.Key = KeyEscape
	case tcell.KeyEnter:
		out.Key = KeyEnter
	case tcell.KeyTab:
		out.Key = KeyTab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		out.Key = KeyBackspace
	case tcell.KeyUp:
		out.Key = KeyUp
	case tcell.KeyDown:
		out.Key = KeyDown
	case tcell.KeyLeft:
		out.Key = KeyLeft
	case tcell.KeyRight:
		out.Key = KeyRight
	case tcell.KeyCtrlC:
		out.Key = KeyCtrlC
	case tcell.KeyCtrlD:
		out.Key = KeyCtrlD
	default:
		if k := ev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
			out.Key = KeyCtrl
			out.Rune = rune('a' + int(k-tcell.KeyCtrlA))
		} else {
			out.Key = KeyNone
		}
	}
	return out
}
