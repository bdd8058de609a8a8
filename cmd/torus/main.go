package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"go.uber.org/zap"

	"github.com/lixenwraith/torus/config"
	"github.com/lixenwraith/torus/engine"
	"github.com/lixenwraith/torus/parameter"
	"github.com/lixenwraith/torus/raymarch"
	"github.com/lixenwraith/torus/render"
	"github.com/lixenwraith/torus/terminal"
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if rendering crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mTORUS CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	os.Exit(run(os.Args[1:]))
}

// run returns the process exit code; deferred cleanup completes before main exits
func run(args []string) int {
	cfg, err := config.Load(args, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "torus: %v\n", err)
		return 2
	}

	logger, logFile, err := setupLogging(cfg.Debug, parameter.LogDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "torus: %v\n", err)
		return 1
	}
	if logFile != nil {
		defer logFile.Close()
	}
	defer logger.Sync()

	colorMode := cfg.ColorMode()
	logger.Info("starting",
		zap.Stringer("config", cfg),
		zap.Stringer("color_mode", colorMode),
		zap.String("config_path", cfg.ConfigPath),
	)

	term, err := newTerminal(cfg.Backend, colorMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create terminal: %v\n", err)
		return 1
	}

	svc := terminal.NewService(term)
	if err := svc.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	// Normal exit terminal cleanup; Stop is idempotent
	defer svc.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loop := engine.NewLoop(
		term,
		svc.Events(),
		raymarch.New(raymarch.DefaultParams()),
		render.NewRenderer(cfg.Ramp(), render.NewTint(cfg.Tint)),
		engine.NewClock(engine.NewMonotonicTimeProvider()),
		logger,
		engine.LoopConfig{
			Width:    cfg.Width,
			Height:   cfg.Height,
			Interval: cfg.FrameInterval(),
		},
	)

	if err := loop.Run(ctx); err != nil {
		// Restore the screen before printing
		svc.Stop()
		logger.Error("loop failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "torus: %v\n", err)
		return 1
	}

	logger.Info("exit", zap.Uint64("frames", loop.Frames()))
	return 0
}

// newTerminal constructs the selected backend
func newTerminal(backend config.Backend, colorMode terminal.ColorMode) (terminal.Terminal, error) {
	switch backend {
	case config.BackendTcell:
		return terminal.NewTcell(colorMode)
	default:
		return terminal.New(colorMode), nil
	}
}
