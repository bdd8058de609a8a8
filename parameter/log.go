package parameter

// Debug Logging
const (
	// LogDir is the directory created for debug logs, relative to the working directory
	LogDir = "logs"

	// LogFileName is the debug log file inside LogDir
	LogFileName = "torus.log"

	// MaxLogSize triggers rotation of an existing log file at startup (10MB)
	MaxLogSize = 10 * 1024 * 1024
)
