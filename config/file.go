package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the command-line flags; nil fields keep the default
type fileConfig struct {
	Viewport *string `yaml:"viewport"`
	Width    *int    `yaml:"width"`
	Height   *int    `yaml:"height"`
	HD       *bool   `yaml:"hd"`
	Ramp     *string `yaml:"ramp"`
	Backend  *string `yaml:"backend"`
	Color    *string `yaml:"color"`
	Tint     *bool   `yaml:"tint"`
	FPS      *int    `yaml:"fps"`
	Debug    *bool   `yaml:"debug"`
}

// loadFile reads a YAML config file
func loadFile(path string) (*fileConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	fc, err := decodeFile(f)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return fc, nil
}

// decodeFile decodes YAML, rejecting unknown keys; an empty document is valid
func decodeFile(r io.Reader) (*fileConfig, error) {
	var fc fileConfig
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return &fc, nil
}

// apply overlays set file values onto cfg
func (fc *fileConfig) apply(cfg *Config) error {
	if fc.Viewport != nil {
		preset, err := lookupPreset(*fc.Viewport)
		if err != nil {
			return err
		}
		cfg.applyPreset(preset)
	}
	if fc.Width != nil {
		cfg.Viewport = customViewport
		cfg.Width = *fc.Width
	}
	if fc.Height != nil {
		cfg.Viewport = customViewport
		cfg.Height = *fc.Height
	}
	if fc.HD != nil {
		cfg.Extended = *fc.HD
	}
	if fc.Ramp != nil {
		cfg.CustomRamp = *fc.Ramp
	}
	if fc.Backend != nil {
		cfg.Backend = Backend(*fc.Backend)
	}
	if fc.Color != nil {
		cfg.Color = ColorChoice(*fc.Color)
	}
	if fc.Tint != nil {
		cfg.Tint = *fc.Tint
	}
	if fc.FPS != nil {
		cfg.FPS = *fc.FPS
	}
	if fc.Debug != nil {
		cfg.Debug = *fc.Debug
	}
	return nil
}
