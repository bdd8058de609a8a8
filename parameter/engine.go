package parameter

import "time"

// Frame Loop & Engine Timing
const (
	// FrameUpdateInterval is the default rendering interval (~30 FPS)
	FrameUpdateInterval = 33 * time.Millisecond

	// DefaultFPS is the frame rate used when neither config file nor flag sets one
	DefaultFPS = 30

	// MaxFPS caps the requested frame rate; the terminal cannot absorb more
	MaxFPS = 240

	// EventQueueSize is the buffered capacity of the input event channel
	EventQueueSize = 256

	// InputPollTimeout is the stdin poll timeout, bounds shutdown latency of the input reader
	InputPollTimeout = 100 * time.Millisecond

	// InputStopTimeout is how long Fini waits for a stuck reader before proceeding
	InputStopTimeout = 100 * time.Millisecond

	// StatsLogInterval is the number of frames between debug frame statistics
	StatsLogInterval = 300
)

// Output Buffering
const (
	// OutputBufferSize is the bufio size for terminal writes (128KB)
	OutputBufferSize = 131072
)
