package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/lixenwraith/torus/parameter"
	"github.com/lixenwraith/torus/raymarch"
)

var (
	frames = flag.Int("frames", 30, "frames per viewport")
	preset = flag.String("preset", "all", "viewport preset: tiny|small|normal|big|all")
	dump   = flag.Int64("dump", -1, "print the frame at this elapsed ms as text and exit")
	hd     = flag.Bool("hd", false, "use the extended charset for -dump")
)

func main() {
	flag.Parse()

	sizes, err := selectPresets(*preset)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	m := raymarch.New(raymarch.DefaultParams())

	if *dump >= 0 {
		if err := dumpFrame(os.Stdout, m, sizes[0], *dump, raymarch.SelectRamp(*hd)); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	fmt.Println("torus raymarch benchmark")
	fmt.Println("========================")
	fmt.Printf("GOMAXPROCS=%d frames=%d\n", runtime.GOMAXPROCS(0), *frames)
	fmt.Println("Run with: go test -bench=. -benchmem ./cmd/torus-bench/")
	fmt.Println()
	fmt.Printf("%-8s %9s %12s %12s %8s\n", "Preset", "Cells", "Serial", "Parallel", "Speedup")

	for _, size := range sizes {
		serial := timeFrames(*frames, func(ms int64) { serialFrame(m, size.Width, size.Height, ms) })
		parallel := timeFrames(*frames, func(ms int64) {
			_, _ = m.RenderFrame(context.Background(), size.Width, size.Height, ms)
		})
		fmt.Printf("%-8s %9d %12v %12v %7.2fx\n",
			size.Name, size.Width*size.Height, serial, parallel, float64(serial)/float64(parallel))
	}
}

// selectPresets resolves the -preset flag
func selectPresets(name string) ([]parameter.ViewportSize, error) {
	if name == "all" {
		return parameter.ViewportPresets, nil
	}
	for _, p := range parameter.ViewportPresets {
		if strings.EqualFold(p.Name, name) {
			return []parameter.ViewportSize{p}, nil
		}
	}
	return nil, fmt.Errorf("unknown preset %q", name)
}

// timeFrames returns the mean duration of n calls, advancing scene time one frame interval per call
func timeFrames(n int, render func(ms int64)) time.Duration {
	if n <= 0 {
		return 0
	}
	step := parameter.FrameUpdateInterval.Milliseconds()
	start := time.Now()
	for i := 0; i < n; i++ {
		render(int64(i) * step)
	}
	return time.Since(start) / time.Duration(n)
}

// serialFrame evaluates every pixel on the calling goroutine
func serialFrame(m *raymarch.Marcher, w, h int, ms int64) []float64 {
	out := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out[y*w+x] = m.ComputeBrightness(x, y, w, h, ms)
		}
	}
	return out
}

// dumpFrame writes one frame as glyph rows
func dumpFrame(w io.Writer, m *raymarch.Marcher, size parameter.ViewportSize, ms int64, ramp raymarch.Ramp) error {
	frame, err := m.RenderFrame(context.Background(), size.Width, size.Height, ms)
	if err != nil {
		return err
	}
	for _, row := range frame.Glyphs(ramp) {
		if _, err := fmt.Fprintln(w, row); err != nil {
			return err
		}
	}
	return nil
}
