// Package config builds the runtime configuration from defaults, an optional YAML file and command-line flags
package config

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/torus/parameter"
	"github.com/lixenwraith/torus/raymarch"
	"github.com/lixenwraith/torus/terminal"
)

// Backend selects the terminal implementation
type Backend string

const (
	BackendANSI  Backend = "ansi"
	BackendTcell Backend = "tcell"
)

// ColorChoice is the requested color mode before environment detection
type ColorChoice string

const (
	ColorAuto      ColorChoice = "auto"
	ColorTrueColor ColorChoice = "truecolor"
	Color256       ColorChoice = "256"
)

// customViewport names a viewport given by explicit width and height
const customViewport = "custom"

// Config is the resolved runtime configuration, immutable after Load returns
type Config struct {
	// Viewport is the preset name, or "custom" for explicit dimensions
	Viewport string
	Width    int
	Height   int

	// Extended selects the 70-glyph ramp
	Extended bool
	// CustomRamp overrides both built-in ramps when non-empty
	CustomRamp string

	Backend Backend
	Color   ColorChoice
	Tint    bool
	FPS     int
	Debug   bool

	// ConfigPath is the YAML file that was loaded, empty if none
	ConfigPath string
}

// Default returns the configuration used with no file and no flags
func Default() *Config {
	return &Config{
		Viewport: parameter.ViewportNormal.Name,
		Width:    parameter.ViewportNormal.Width,
		Height:   parameter.ViewportNormal.Height,
		Backend:  BackendANSI,
		Color:    ColorAuto,
		FPS:      parameter.DefaultFPS,
	}
}

// Load parses args (without the program name), overlays the config file they name
// and validates the result
// Precedence: defaults, then file, then explicitly set flags
func Load(args []string, output io.Writer) (*Config, error) {
	fs := flag.NewFlagSet("torus", flag.ContinueOnError)
	fs.SetOutput(output)

	var (
		tiny    = fs.Bool("tiny", false, fmt.Sprintf("tiny viewport (%dx%d)", parameter.ViewportTiny.Width, parameter.ViewportTiny.Height))
		small   = fs.Bool("small", false, fmt.Sprintf("small viewport (%dx%d)", parameter.ViewportSmall.Width, parameter.ViewportSmall.Height))
		big     = fs.Bool("big", false, fmt.Sprintf("big viewport (%dx%d)", parameter.ViewportBig.Width, parameter.ViewportBig.Height))
		hd      = fs.Bool("hd", false, "extended 70-glyph charset")
		path    = fs.String("config", "", "YAML config file")
		backend = fs.String("backend", string(BackendANSI), "terminal backend: ansi, tcell")
		color   = fs.String("color", string(ColorAuto), "color mode: auto, truecolor, 256")
		tint    = fs.Bool("tint", false, "tint glyphs by brightness")
		fps     = fs.Int("fps", parameter.DefaultFPS, "frames per second")
		debug   = fs.Bool("debug", false, "write debug log to "+parameter.LogDir+"/"+parameter.LogFileName)
	)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	cfg := Default()

	if *path != "" {
		fc, err := loadFile(*path)
		if err != nil {
			return nil, err
		}
		if err := fc.apply(cfg); err != nil {
			return nil, err
		}
		cfg.ConfigPath = *path
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	// When several presets are given the smallest wins
	switch {
	case *tiny:
		cfg.applyPreset(parameter.ViewportTiny)
	case *small:
		cfg.applyPreset(parameter.ViewportSmall)
	case *big:
		cfg.applyPreset(parameter.ViewportBig)
	}

	if set["hd"] {
		cfg.Extended = *hd
	}
	if set["backend"] {
		cfg.Backend = Backend(*backend)
	}
	if set["color"] {
		cfg.Color = ColorChoice(*color)
	}
	if set["tint"] {
		cfg.Tint = *tint
	}
	if set["fps"] {
		cfg.FPS = *fps
	}
	if set["debug"] {
		cfg.Debug = *debug
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field, returning an error wrapping one of the package sentinels
func (c *Config) Validate() error {
	if c.Width < parameter.MinViewportDim || c.Width > parameter.MaxViewportDim ||
		c.Height < parameter.MinViewportDim || c.Height > parameter.MaxViewportDim {
		return fmt.Errorf("%w: %dx%d outside %d..%d", ErrInvalidViewport,
			c.Width, c.Height, parameter.MinViewportDim, parameter.MaxViewportDim)
	}

	switch c.Backend {
	case BackendANSI, BackendTcell:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Backend)
	}

	switch c.Color {
	case ColorAuto, ColorTrueColor, Color256:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownColorMode, c.Color)
	}

	if c.FPS < 1 || c.FPS > parameter.MaxFPS {
		return fmt.Errorf("%w: %d not in 1..%d", ErrInvalidFPS, c.FPS, parameter.MaxFPS)
	}

	if c.CustomRamp != "" {
		if err := validateRamp(c.CustomRamp); err != nil {
			return err
		}
	}
	return nil
}

// validateRamp requires at least two distinct single-cell glyphs
func validateRamp(s string) error {
	glyphs := []rune(s)
	if len(glyphs) < 2 {
		return fmt.Errorf("%w: need at least 2 glyphs, got %d", ErrInvalidRamp, len(glyphs))
	}
	seen := make(map[rune]bool, len(glyphs))
	for i, r := range glyphs {
		if w := runewidth.RuneWidth(r); w != 1 {
			return fmt.Errorf("%w: glyph %q at %d has display width %d", ErrInvalidRamp, r, i, w)
		}
		if seen[r] {
			return fmt.Errorf("%w: duplicate glyph %q at %d", ErrInvalidRamp, r, i)
		}
		seen[r] = true
	}
	return nil
}

// Ramp returns the glyph ramp in effect
func (c *Config) Ramp() raymarch.Ramp {
	if c.CustomRamp != "" {
		return raymarch.Ramp(c.CustomRamp)
	}
	return raymarch.SelectRamp(c.Extended)
}

// ColorMode resolves the color choice, detecting from the environment for auto
func (c *Config) ColorMode() terminal.ColorMode {
	switch c.Color {
	case ColorTrueColor:
		return terminal.ColorModeTrueColor
	case Color256:
		return terminal.ColorMode256
	default:
		return terminal.DetectColorMode()
	}
}

// FrameInterval returns the ticker period for the configured frame rate
func (c *Config) FrameInterval() time.Duration {
	if c.FPS <= 0 {
		return parameter.FrameUpdateInterval
	}
	return time.Second / time.Duration(c.FPS)
}

func (c *Config) applyPreset(p parameter.ViewportSize) {
	c.Viewport = p.Name
	c.Width, c.Height = p.Width, p.Height
}

// lookupPreset finds a viewport preset by case-insensitive name
func lookupPreset(name string) (parameter.ViewportSize, error) {
	for _, p := range parameter.ViewportPresets {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return parameter.ViewportSize{}, fmt.Errorf("%w: unknown preset %q", ErrInvalidViewport, name)
}

// String renders the config for the debug log
func (c *Config) String() string {
	return fmt.Sprintf("viewport=%s(%dx%d) hd=%t backend=%s color=%s tint=%t fps=%d",
		c.Viewport, c.Width, c.Height, c.Extended, c.Backend, c.Color, c.Tint, c.FPS)
}
