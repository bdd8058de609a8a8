package terminal

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/cespare/xxhash/v2"

	"github.com/lixenwraith/torus/parameter"
)

// cellHashSize is the serialized width of one cell for row hashing: rune(4) fg(3) bg(3) attr(1)
const cellHashSize = 11

// outputBuffer manages double-buffered terminal output with diffing
// Rows whose hash matches the front row are skipped without a cell scan
type outputBuffer struct {
	front     []Cell
	rowHash   []uint64
	rowValid  []bool
	scratch   []byte
	width     int
	height    int
	colorMode ColorMode
	writer    *bufio.Writer

	cursorX     int
	cursorY     int
	cursorValid bool

	// Style state for coalescing
	lastFg    RGB
	lastBg    RGB
	lastAttr  Attr
	lastValid bool
}

// newOutputBuffer creates a new output buffer
func newOutputBuffer(w io.Writer, colorMode ColorMode) *outputBuffer {
	return &outputBuffer{
		writer:    bufio.NewWriterSize(w, parameter.OutputBufferSize),
		colorMode: colorMode,
	}
}

// resize updates buffer dimensions and invalidates all rows
func (o *outputBuffer) resize(width, height int) {
	size := width * height
	if cap(o.front) < size {
		o.front = make([]Cell, size)
	} else {
		o.front = o.front[:size]
	}
	if cap(o.rowHash) < height {
		o.rowHash = make([]uint64, height)
		o.rowValid = make([]bool, height)
	} else {
		o.rowHash = o.rowHash[:height]
		o.rowValid = o.rowValid[:height]
	}
	if cap(o.scratch) < width*cellHashSize {
		o.scratch = make([]byte, width*cellHashSize)
	} else {
		o.scratch = o.scratch[:width*cellHashSize]
	}
	o.width = width
	o.height = height

	for i := range o.front {
		o.front[i] = Cell{Rune: 0}
	}
	o.invalidateRows()
	o.lastValid = false
	o.cursorValid = false
}

func (o *outputBuffer) invalidateRows() {
	for i := range o.rowValid {
		o.rowValid[i] = false
	}
}

// hashRow returns the xxhash of a row's serialized cells
func (o *outputBuffer) hashRow(row []Cell) uint64 {
	buf := o.scratch[:len(row)*cellHashSize]
	for i, c := range row {
		b := buf[i*cellHashSize:]
		binary.LittleEndian.PutUint32(b, uint32(c.Rune))
		b[4], b[5], b[6] = c.Fg.R, c.Fg.G, c.Fg.B
		b[7], b[8], b[9] = c.Bg.R, c.Bg.G, c.Bg.B
		b[10] = byte(c.Attrs)
	}
	return xxhash.Sum64(buf)
}

// cellEqual compares two cells; an empty cell only compares background
func cellEqual(a, b Cell) bool {
	if a.Rune != b.Rune || a.Attrs != b.Attrs {
		return false
	}
	if a.Rune == 0 {
		return a.Bg == b.Bg
	}
	return a.Fg == b.Fg && a.Bg == b.Bg
}

// flush writes cells to the terminal, diffing against the front buffer
func (o *outputBuffer) flush(cells []Cell, width, height int) {
	if width != o.width || height != o.height {
		o.resize(width, height)
	}

	if len(cells) < width*height {
		return
	}

	w := o.writer

	for y := 0; y < height; y++ {
		rowStart := y * width
		row := cells[rowStart : rowStart+width]

		h := o.hashRow(row)
		if o.rowValid[y] && o.rowHash[y] == h {
			continue
		}

		x := 0
		for x < width {
			idx := rowStart + x

			if cellEqual(cells[idx], o.front[idx]) {
				x++
				continue
			}

			// Position cursor once for this dirty region
			if !o.cursorValid || x != o.cursorX || y != o.cursorY {
				if o.cursorValid && y == o.cursorY && x > o.cursorX {
					writeCursorForward(w, x-o.cursorX)
				} else {
					writeCursorPos(w, x, y)
				}
				o.cursorX = x
				o.cursorY = y
				o.cursorValid = true
			}

			// Write all contiguous dirty cells, emitting style only when changed
			for x < width {
				cidx := rowStart + x
				c := cells[cidx]

				if cellEqual(c, o.front[cidx]) {
					break
				}

				o.writeStyle(w, c.Fg, c.Bg, c.Attrs)

				r := c.Rune
				if r == 0 {
					r = ' '
				}
				if r < 0x80 {
					w.WriteByte(byte(r))
				} else {
					w.WriteRune(r)
				}

				o.front[cidx] = c
				o.cursorX++
				x++
			}
		}

		o.rowHash[y] = h
		o.rowValid[y] = true
	}

	w.Write(csiSGR0)
	o.lastValid = false

	w.Flush()
}

// writeStyle emits a single combined SGR sequence when style changes
func (o *outputBuffer) writeStyle(w *bufio.Writer, fg, bg RGB, attr Attr) {
	if o.lastValid && fg == o.lastFg && bg == o.lastBg && attr == o.lastAttr {
		return
	}

	w.Write(csi)
	w.WriteByte('0')
	if attr&AttrBold != 0 {
		w.Write([]byte(";1"))
	}
	if attr&AttrDim != 0 {
		w.Write([]byte(";2"))
	}
	if attr&AttrReverse != 0 {
		w.Write([]byte(";7"))
	}
	o.writeColorInline(w, fg, true)
	o.writeColorInline(w, bg, false)
	w.WriteByte('m')

	o.lastFg = fg
	o.lastBg = bg
	o.lastAttr = attr
	o.lastValid = true
}

// writeColorInline writes color parameters (no CSI prefix, no 'm' suffix)
func (o *outputBuffer) writeColorInline(w *bufio.Writer, c RGB, fg bool) {
	if fg {
		w.Write([]byte(";38;"))
	} else {
		w.Write([]byte(";48;"))
	}
	if o.colorMode == ColorModeTrueColor {
		w.Write([]byte("2;"))
		writeInt(w, int(c.R))
		w.WriteByte(';')
		writeInt(w, int(c.G))
		w.WriteByte(';')
		writeInt(w, int(c.B))
		return
	}
	w.Write([]byte("5;"))
	writeInt(w, int(RGBTo256(c)))
}

// writeBgFull writes a complete background sequence
func (o *outputBuffer) writeBgFull(w *bufio.Writer, bg RGB) {
	if o.colorMode == ColorModeTrueColor {
		w.Write(csiBgRGB)
		writeInt(w, int(bg.R))
		w.WriteByte(';')
		writeInt(w, int(bg.G))
		w.WriteByte(';')
		writeInt(w, int(bg.B))
		w.WriteByte('m')
		return
	}
	w.Write(csiBg256)
	writeInt(w, int(RGBTo256(bg)))
	w.WriteByte('m')
}

// forceFullRedraw clears front buffer to force complete redraw
func (o *outputBuffer) forceFullRedraw() {
	for i := range o.front {
		o.front[i] = Cell{Rune: 0}
	}
	o.invalidateRows()
	o.lastValid = false
	o.cursorValid = false
}

// clear writes a clear screen with specified background
func (o *outputBuffer) clear(bg RGB) {
	w := o.writer
	w.Write(csiSGR0)
	o.writeBgFull(w, bg)
	w.Write(csiClear)

	o.lastValid = false
	o.cursorValid = false
	w.Flush()

	for i := range o.front {
		o.front[i] = Cell{Rune: ' ', Bg: bg}
	}
	o.invalidateRows()
}
