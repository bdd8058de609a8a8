//go:build !unix

package terminal

import "errors"

// ErrNotTerminal is returned by Init when stdin is not a terminal
var ErrNotTerminal = errors.New("stdin is not a terminal")

var errUnsupported = errors.New("ansi backend requires a unix terminal, use the tcell backend")

type unsupportedBackend struct{}

func newBackend() Backend { return unsupportedBackend{} }

func (unsupportedBackend) Init() error { return errUnsupported }
func (unsupportedBackend) Fini() {}
func (unsupportedBackend) Size() (int, int) { return 80, 24 }
func (unsupportedBackend) Write(p []byte) (int, error) { return len(p), nil }
func (unsupportedBackend) Read(<-chan struct{}) ([]byte, error) { return nil, errUnsupported }
func (unsupportedBackend) SetResizeHandler(func(width, height int)) {}
