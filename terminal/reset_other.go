//go:build !linux

package terminal

// resetTerminalMode is a no-op where termios ioctls differ; the alt-screen and SGR resets still apply
func resetTerminalMode() {}
