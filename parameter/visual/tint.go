package visual

import (
	"github.com/lixenwraith/torus/terminal"
)

// Glyph tint colors
var (
	RgbBlack   = terminal.RGB{R: 0, G: 0, B: 0}
	RgbMagenta = terminal.RGB{R: 255, G: 0, B: 255}

	// RgbTintDark is the color of the darkest lit glyph when tinting, floored to stay visible
	RgbTintDark = terminal.RGB{R: 70, G: 0, B: 90}

	// RgbTintBright is the color of the brightest glyph when tinting
	RgbTintBright = terminal.RGB{R: 255, G: 120, B: 255}
)
