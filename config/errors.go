package config

import "errors"

var (
	ErrInvalidViewport  = errors.New("invalid viewport")
	ErrUnknownBackend   = errors.New("unknown backend")
	ErrUnknownColorMode = errors.New("unknown color mode")
	ErrInvalidFPS       = errors.New("invalid fps")
	ErrInvalidRamp      = errors.New("invalid glyph ramp")
)
