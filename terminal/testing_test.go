package terminal

import (
	"bytes"
	"io"
	"sync"
	"time"
)

// memBackend is an in-memory Backend recording output and replaying queued input
type memBackend struct {
	mu      sync.Mutex
	out     bytes.Buffer
	width   int
	height  int
	inputCh chan []byte
	resize  func(w, h int)
	inited  bool
	finied  bool
}

func newMemBackend(w, h int) *memBackend {
	return &memBackend{width: w, height: h, inputCh: make(chan []byte, 16)}
}

func (b *memBackend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.inited = true
	return nil
}

func (b *memBackend) Fini() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.finied = true
}

func (b *memBackend) Size() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.width, b.height
}

func (b *memBackend) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.out.Write(p)
}

func (b *memBackend) Read(stopCh <-chan struct{}) ([]byte, error) {
	select {
	case <-stopCh:
		return nil, nil
	case data, ok := <-b.inputCh:
		if !ok {
			return nil, io.EOF
		}
		return data, nil
	case <-time.After(10 * time.Millisecond):
		return nil, nil
	}
}

func (b *memBackend) SetResizeHandler(handler func(width, height int)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.resize = handler
}

// hangUp ends the input stream; later reads return io.EOF
func (b *memBackend) hangUp() {
	close(b.inputCh)
}

// triggerResize simulates SIGWINCH
func (b *memBackend) triggerResize(w, h int) {
	b.mu.Lock()
	b.width, b.height = w, h
	handler := b.resize
	b.mu.Unlock()
	handler(w, h)
}

func (b *memBackend) output() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.out.String()
}

func (b *memBackend) resetOutput() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.out.Reset()
}

func fillCells(w, h int, r rune, fg RGB) []Cell {
	cells := make([]Cell, w*h)
	for i := range cells {
		cells[i] = Cell{Rune: r, Fg: fg, Bg: RGBBlack}
	}
	return cells
}
