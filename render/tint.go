package render

import (
	"github.com/lixenwraith/torus/parameter/visual"
)

// tintLUTSize is the number of pre-computed tint steps over brightness [0, 1]
const tintLUTSize = 256

// Tint maps glyph brightness to a foreground color
// Pre-computed once; the frame loop only indexes
type Tint struct {
	enabled bool
	flat    RGB
	lut     [tintLUTSize]RGB
}

// NewTint builds the brightness gradient between the dark and bright tint colors
// With enabled false every glyph gets the flat magenta foreground
func NewTint(enabled bool) *Tint {
	t := &Tint{
		enabled: enabled,
		flat:    visual.RgbMagenta,
	}
	for i := 0; i < tintLUTSize; i++ {
		t.lut[i] = LerpLab(visual.RgbTintDark, visual.RgbTintBright, float64(i)/float64(tintLUTSize-1))
	}
	return t
}

// Enabled reports whether brightness tinting is on
func (t *Tint) Enabled() bool {
	return t.enabled
}

// Color returns the foreground for brightness; NaN and negative values take the darkest step
func (t *Tint) Color(brightness float64) RGB {
	if !t.enabled {
		return t.flat
	}
	if !(brightness > 0) {
		return t.lut[0]
	}
	if brightness >= 1 {
		return t.lut[tintLUTSize-1]
	}
	return t.lut[int(brightness*float64(tintLUTSize-1))]
}
