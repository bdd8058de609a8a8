package terminal

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"

	"github.com/lixenwraith/torus/parameter"
)

// Service owns a Terminal's lifecycle and pumps its events into a channel
type Service struct {
	term    Terminal
	eventCh chan Event
	stopCh  chan struct{}
	doneCh  chan struct{}
	mu      sync.Mutex
	running bool
}

// NewService wraps an uninitialized terminal
func NewService(term Terminal) *Service {
	return &Service{
		term:    term,
		eventCh: make(chan Event, parameter.EventQueueSize),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

// Start initializes the terminal and launches the input polling goroutine
func (s *Service) Start() error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	if err := s.term.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}

	s.mu.Lock()
	s.running = true
	s.mu.Unlock()

	go s.pollLoop()
	return nil
}

// pollLoop forwards input events until stop, an input error or the input closing
// Error and close events are forwarded before the loop exits
func (s *Service) pollLoop() {
	defer close(s.doneCh)

	defer func() {
		if r := recover(); r != nil {
			EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mTERMINAL POLL CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	for {
		select {
		case <-s.stopCh:
			return
		default:
		}

		ev := s.term.PollEvent()

		// The close Stop posts to unblock PollEvent is not forwarded
		select {
		case <-s.stopCh:
			return
		default:
		}

		select {
		case s.eventCh <- ev:
		case <-s.stopCh:
			return
		}

		if ev.Type == EventError || ev.Type == EventClosed {
			return
		}
	}
}

// Stop signals the poller, restores the terminal and waits for the poller to exit
func (s *Service) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.mu.Unlock()

	close(s.stopCh)

	// Synthetic close unblocks PollEvent
	s.term.PostEvent(Event{Type: EventClosed})

	<-s.doneCh

	s.term.Fini()
}

// Terminal returns the wrapped terminal instance
func (s *Service) Terminal() Terminal {
	return s.term
}

// Events returns the input event channel
func (s *Service) Events() <-chan Event {
	return s.eventCh
}
