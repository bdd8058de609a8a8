package raymarch

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"runtime/debug"

	"golang.org/x/sync/errgroup"
)

// ErrWorkerPanic wraps a panic recovered in a row worker
var ErrWorkerPanic = errors.New("raymarch worker panicked")

// Frame is one evaluated viewport, row-major brightness values
// Written once by RenderFrame, then only read
type Frame struct {
	Width      int
	Height     int
	ElapsedMs  int64
	Brightness []float64
}

// At returns the brightness at (x, y)
func (f *Frame) At(x, y int) float64 {
	return f.Brightness[y*f.Width+x]
}

// Glyphs returns the frame mapped through ramp, one string per row
func (f *Frame) Glyphs(ramp Ramp) []string {
	rows := make([]string, f.Height)
	line := make([]rune, f.Width)
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			line[x] = ramp.Glyph(f.At(x, y))
		}
		rows[y] = string(line)
	}
	return rows
}

// RenderFrame evaluates every pixel of a width x height viewport in parallel
// Rows are independent work items; cancellation of ctx abandons the frame and returns ctx's error
// A panicking row is returned as an error wrapping ErrWorkerPanic
func (m *Marcher) RenderFrame(ctx context.Context, width, height int, elapsedMs int64) (*Frame, error) {
	if width <= 0 || height <= 0 {
		return &Frame{ElapsedMs: elapsedMs}, nil
	}

	frame := &Frame{
		Width:      width,
		Height:     height,
		ElapsedMs:  elapsedMs,
		Brightness: make([]float64, width*height),
	}

	t := SceneTime(elapsedMs)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for y := 0; y < height; y++ {
		g.Go(func() (err error) {
			// A panicking row becomes the frame error
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("%w: row %d: %v\n%s", ErrWorkerPanic, y, r, debug.Stack())
				}
			}()

			if err := gctx.Err(); err != nil {
				return err
			}
			row := frame.Brightness[y*width : (y+1)*width]
			for x := range row {
				row[x] = m.UVBrightness(PixelUV(x, y, width, height), t)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return frame, nil
}
