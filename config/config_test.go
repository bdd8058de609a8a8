package config

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/torus/parameter"
	"github.com/lixenwraith/torus/raymarch"
	"github.com/lixenwraith/torus/terminal"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "torus.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(nil, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "normal", cfg.Viewport)
	assert.Equal(t, 75, cfg.Width)
	assert.Equal(t, 30, cfg.Height)
	assert.False(t, cfg.Extended)
	assert.Equal(t, BackendANSI, cfg.Backend)
	assert.Equal(t, ColorAuto, cfg.Color)
	assert.Equal(t, parameter.DefaultFPS, cfg.FPS)
	assert.False(t, cfg.Debug)
	assert.Equal(t, raymarch.StandardRamp(), cfg.Ramp())
}

func TestLoad_ViewportFlags(t *testing.T) {
	tests := []struct {
		flag string
		want parameter.ViewportSize
	}{
		{"-tiny", parameter.ViewportTiny},
		{"-small", parameter.ViewportSmall},
		{"--big", parameter.ViewportBig},
	}
	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			cfg, err := Load([]string{tt.flag}, io.Discard)
			require.NoError(t, err)
			assert.Equal(t, tt.want.Name, cfg.Viewport)
			assert.Equal(t, tt.want.Width, cfg.Width)
			assert.Equal(t, tt.want.Height, cfg.Height)
		})
	}
}

func TestLoad_SeveralViewportFlagsSmallestWins(t *testing.T) {
	cfg, err := Load([]string{"-big", "-small", "-tiny"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "tiny", cfg.Viewport)

	cfg, err = Load([]string{"-big", "-small"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "small", cfg.Viewport)
}

func TestLoad_HDSelectsExtendedRamp(t *testing.T) {
	cfg, err := Load([]string{"-hd"}, io.Discard)
	require.NoError(t, err)
	assert.True(t, cfg.Extended)
	assert.Equal(t, raymarch.ExtendedRamp(), cfg.Ramp())
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"backend", []string{"-backend", "curses"}, ErrUnknownBackend},
		{"color", []string{"-color", "16"}, ErrUnknownColorMode},
		{"fps zero", []string{"-fps", "0"}, ErrInvalidFPS},
		{"fps too high", []string{"-fps", "1000"}, ErrInvalidFPS},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.args, io.Discard)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoad_UnknownFlag(t *testing.T) {
	_, err := Load([]string{"-nope"}, io.Discard)
	assert.Error(t, err)
}

func TestLoad_PositionalArgumentRejected(t *testing.T) {
	_, err := Load([]string{"extra"}, io.Discard)
	assert.Error(t, err)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
viewport: small
hd: true
backend: tcell
color: "256"
tint: true
fps: 60
`)
	cfg, err := Load([]string{"-config", path}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "small", cfg.Viewport)
	assert.Equal(t, 60, cfg.Width)
	assert.True(t, cfg.Extended)
	assert.Equal(t, BackendTcell, cfg.Backend)
	assert.Equal(t, terminal.ColorMode256, cfg.ColorMode())
	assert.True(t, cfg.Tint)
	assert.Equal(t, 60, cfg.FPS)
	assert.Equal(t, path, cfg.ConfigPath)
}

func TestLoad_FlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, "viewport: small\nfps: 60\nbackend: tcell\n")

	cfg, err := Load([]string{"-config", path, "-big", "-fps", "15"}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "big", cfg.Viewport)
	assert.Equal(t, 15, cfg.FPS)
	// Unset flags leave file values alone
	assert.Equal(t, BackendTcell, cfg.Backend)
}

func TestLoad_FileCustomDimensions(t *testing.T) {
	path := writeConfig(t, "width: 50\nheight: 20\n")
	cfg, err := Load([]string{"-config", path}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "custom", cfg.Viewport)
	assert.Equal(t, 50, cfg.Width)
	assert.Equal(t, 20, cfg.Height)
}

func TestLoad_FileErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{"unknown preset", "viewport: huge\n", ErrInvalidViewport},
		{"zero width", "width: 0\n", ErrInvalidViewport},
		{"ramp too short", "ramp: \"#\"\n", ErrInvalidRamp},
		{"wide glyph", "ramp: \" .全\"\n", ErrInvalidRamp},
		{"duplicate glyph", "ramp: \" ..#\"\n", ErrInvalidRamp},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]string{"-config", writeConfig(t, tt.content)}, io.Discard)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoad_FileUnknownKey(t *testing.T) {
	_, err := Load([]string{"-config", writeConfig(t, "colour: 256\n")}, io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "colour")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load([]string{"-config", filepath.Join(t.TempDir(), "absent.yaml")}, io.Discard)
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := Load([]string{"-config", writeConfig(t, "")}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, Default().Width, cfg.Width)
}

func TestConfig_CustomRamp(t *testing.T) {
	cfg, err := Load([]string{"-config", writeConfig(t, "ramp: \" .oO@\"\n")}, io.Discard)
	require.NoError(t, err)

	ramp := cfg.Ramp()
	assert.Equal(t, raymarch.Ramp(" .oO@"), ramp)
	assert.Equal(t, '@', ramp.Glyph(1))
}

func TestConfig_FrameInterval(t *testing.T) {
	cfg := Default()
	assert.Equal(t, time.Second/30, cfg.FrameInterval())
	cfg.FPS = 0
	assert.Equal(t, parameter.FrameUpdateInterval, cfg.FrameInterval())
}

func TestConfig_ColorMode(t *testing.T) {
	cfg := Default()
	cfg.Color = ColorTrueColor
	assert.Equal(t, terminal.ColorModeTrueColor, cfg.ColorMode())

	t.Setenv("COLORTERM", "")
	t.Setenv("TERM", "xterm-256color")
	t.Setenv("KITTY_WINDOW_ID", "")
	t.Setenv("KONSOLE_VERSION", "")
	t.Setenv("ITERM_SESSION_ID", "")
	t.Setenv("ALACRITTY_WINDOW_ID", "")
	t.Setenv("WEZTERM_PANE", "")
	cfg.Color = ColorAuto
	assert.Equal(t, terminal.ColorMode256, cfg.ColorMode())
}

func TestConfig_String(t *testing.T) {
	s := Default().String()
	assert.True(t, strings.HasPrefix(s, "viewport=normal(75x30)"))
}
