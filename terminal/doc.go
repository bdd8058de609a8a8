// Package terminal provides the character-cell display used by the renderer.
//
// Two implementations share the Terminal interface:
//   - the direct ANSI terminal: raw mode via x/term, stdin polling and SIGWINCH
//     via x/sys/unix, double-buffered output with row hashing and cell diffing
//   - a tcell-backed terminal for environments where terminfo handling is preferred
//
// Both restore the terminal on Fini; EmergencyReset covers panics.
package terminal
