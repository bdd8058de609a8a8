// Package engine drives the frame loop: tick, raymarch, compose, present, and react to input
package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/torus/parameter"
	"github.com/lixenwraith/torus/raymarch"
	"github.com/lixenwraith/torus/render"
	"github.com/lixenwraith/torus/terminal"
)

// ErrInputClosed is returned when the terminal event stream ends unexpectedly
var ErrInputClosed = errors.New("terminal input closed")

// LoopConfig holds the loop's static settings
type LoopConfig struct {
	// Requested viewport in cells, clamped to the terminal on every resize
	Width  int
	Height int

	// Interval is the frame period
	Interval time.Duration
}

// Loop renders frames on a ticker until a key is pressed or the context ends
type Loop struct {
	term     terminal.Terminal
	events   <-chan terminal.Event
	marcher  *raymarch.Marcher
	renderer *render.Renderer
	clock    *Clock
	logger   *zap.Logger
	cfg      LoopConfig

	termWidth  int
	termHeight int
	viewWidth  int
	viewHeight int

	frames     uint64
	statsStart time.Time
	statsWork  time.Duration
}

// NewLoop wires the collaborators; events is the terminal's input stream
func NewLoop(term terminal.Terminal, events <-chan terminal.Event, marcher *raymarch.Marcher,
	renderer *render.Renderer, clock *Clock, logger *zap.Logger, cfg LoopConfig) *Loop {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Interval <= 0 {
		cfg.Interval = parameter.FrameUpdateInterval
	}
	return &Loop{
		term:     term,
		events:   events,
		marcher:  marcher,
		renderer: renderer,
		clock:    clock,
		logger:   logger,
		cfg:      cfg,
	}
}

// Viewport returns the current clamped viewport size
func (l *Loop) Viewport() (int, int) {
	return l.viewWidth, l.viewHeight
}

// Frames returns the number of frames presented so far
func (l *Loop) Frames() uint64 {
	return l.frames
}

// Run blocks until a key press, input closure, input error or ctx cancellation
// A key press and cancellation are clean exits and return nil
func (l *Loop) Run(ctx context.Context) error {
	l.resize(l.term.Size())
	l.statsStart = time.Now()

	l.logger.Debug("loop started",
		zap.Int("viewport_width", l.viewWidth),
		zap.Int("viewport_height", l.viewHeight),
		zap.Int("term_width", l.termWidth),
		zap.Int("term_height", l.termHeight),
		zap.Duration("interval", l.cfg.Interval),
	)

	// First frame without waiting a full tick
	if err := l.renderFrame(ctx); err != nil {
		return l.exit(ctx, err)
	}

	ticker := time.NewTicker(l.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return l.exit(ctx, ctx.Err())

		case ev, ok := <-l.events:
			if !ok {
				return ErrInputClosed
			}
			switch ev.Type {
			case terminal.EventKey:
				l.logger.Debug("quit on key",
					zap.Stringer("key", ev.Key),
					zap.String("rune", string(ev.Rune)),
					zap.Uint64("frames", l.frames),
				)
				return nil
			case terminal.EventResize:
				l.resize(ev.Width, ev.Height)
				l.term.Sync()
				l.logger.Debug("resize",
					zap.Int("term_width", ev.Width),
					zap.Int("term_height", ev.Height),
					zap.Int("viewport_width", l.viewWidth),
					zap.Int("viewport_height", l.viewHeight),
				)
			case terminal.EventError:
				return fmt.Errorf("terminal input: %w", ev.Err)
			case terminal.EventClosed:
				return ErrInputClosed
			}

		case <-ticker.C:
			if err := l.renderFrame(ctx); err != nil {
				return l.exit(ctx, err)
			}
		}
	}
}

// exit maps cancellation to a clean return
func (l *Loop) exit(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		l.logger.Debug("loop cancelled", zap.Uint64("frames", l.frames))
		return nil
	}
	return err
}

// resize records the terminal size and re-clamps the viewport to it
func (l *Loop) resize(termWidth, termHeight int) {
	l.termWidth, l.termHeight = termWidth, termHeight
	l.viewWidth, l.viewHeight = render.FitViewport(l.cfg.Width, l.cfg.Height, termWidth, termHeight)
}

// renderFrame raymarches the viewport at the clock's current time and presents it
func (l *Loop) renderFrame(ctx context.Context) error {
	start := time.Now()

	frame, err := l.marcher.RenderFrame(ctx, l.viewWidth, l.viewHeight, l.clock.ElapsedMs())
	if err != nil {
		return err
	}

	l.renderer.Compose(frame, l.termWidth, l.termHeight)
	l.renderer.Present(l.term)

	l.frames++
	l.statsWork += time.Since(start)

	if l.frames%parameter.StatsLogInterval == 0 {
		wall := time.Since(l.statsStart)
		l.logger.Debug("frame stats",
			zap.Uint64("frames", l.frames),
			zap.Int64("elapsed_ms", frame.ElapsedMs),
			zap.Duration("avg_frame", l.statsWork/parameter.StatsLogInterval),
			zap.Float64("fps", float64(parameter.StatsLogInterval)/wall.Seconds()),
		)
		l.statsStart = time.Now()
		l.statsWork = 0
	}
	return nil
}
