//go:build unix

package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/lixenwraith/torus/parameter"
)

// ErrNotTerminal is returned by Init when stdin is not a terminal
var ErrNotTerminal = errors.New("stdin is not a terminal")

// fallback size when TIOCGWINSZ fails
const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

// ttyBackend drives stdin/stdout of a unix tty
type ttyBackend struct {
	in    *os.File
	out   *os.File
	saved *term.State
	buf   []byte

	// SIGWINCH watcher, nil until SetResizeHandler
	winchStop chan struct{}
	winchDone chan struct{}
}

func newBackend() Backend {
	return &ttyBackend{
		in:  os.Stdin,
		out: os.Stdout,
		buf: make([]byte, 256),
	}
}

func (b *ttyBackend) inFd() int  { return int(b.in.Fd()) }
func (b *ttyBackend) outFd() int { return int(b.out.Fd()) }

func (b *ttyBackend) Init() error {
	if !term.IsTerminal(b.inFd()) {
		return ErrNotTerminal
	}
	state, err := term.MakeRaw(b.inFd())
	if err != nil {
		return fmt.Errorf("raw mode: %w", err)
	}
	b.saved = state
	return nil
}

func (b *ttyBackend) Fini() {
	if b.winchStop != nil {
		close(b.winchStop)
		<-b.winchDone
		b.winchStop = nil
	}
	if b.saved != nil {
		_ = term.Restore(b.inFd(), b.saved)
		b.saved = nil
	}
}

func (b *ttyBackend) Size() (int, int) {
	return windowSize(b.outFd())
}

func (b *ttyBackend) Write(p []byte) (int, error) {
	return b.out.Write(p)
}

// Read waits at most InputPollTimeout for input so that a pending lone ESC can be flushed
// and stopCh is observed. A zero-byte read means the tty hung up and is reported as io.EOF
func (b *ttyBackend) Read(stopCh <-chan struct{}) ([]byte, error) {
	timeout := int(parameter.InputPollTimeout.Milliseconds())

	for {
		select {
		case <-stopCh:
			return nil, nil
		default:
		}

		ready, err := b.pollIn(timeout)
		if err != nil {
			return nil, err
		}
		if !ready {
			return nil, nil
		}

		n, err := unix.Read(b.inFd(), b.buf)
		switch {
		case err == unix.EINTR || err == unix.EAGAIN:
			continue
		case err != nil:
			return nil, err
		case n == 0:
			return nil, io.EOF
		}

		data := make([]byte, n)
		copy(data, b.buf[:n])
		return data, nil
	}
}

// pollIn reports whether stdin is readable within timeoutMs, retrying on EINTR
// POLLHUP without POLLIN still counts as readable so the following read sees EOF
func (b *ttyBackend) pollIn(timeoutMs int) (bool, error) {
	fds := []unix.PollFd{{Fd: int32(b.inFd()), Events: unix.POLLIN}}
	for {
		n, err := unix.Poll(fds, timeoutMs)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return false, fmt.Errorf("poll stdin: %w", err)
		}
		return n > 0, nil
	}
}

// SetResizeHandler starts a SIGWINCH watcher calling handler with the new size
func (b *ttyBackend) SetResizeHandler(handler func(width, height int)) {
	b.winchStop = make(chan struct{})
	b.winchDone = make(chan struct{})
	go b.watchResize(handler)
}

func (b *ttyBackend) watchResize(handler func(width, height int)) {
	defer close(b.winchDone)

	defer func() {
		if r := recover(); r != nil {
			EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mRESIZE WATCHER CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	winch := make(chan os.Signal, 1)
	signal.Notify(winch, syscall.SIGWINCH)
	defer signal.Stop(winch)

	for {
		select {
		case <-b.winchStop:
			return
		case <-winch:
			if w, h := b.Size(); w > 0 && h > 0 {
				handler(w, h)
			}
		}
	}
}

// windowSize queries the tty size, falling back to 80x24
func windowSize(fd int) (int, int) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 || ws.Row == 0 {
		return fallbackWidth, fallbackHeight
	}
	return int(ws.Col), int(ws.Row)
}
