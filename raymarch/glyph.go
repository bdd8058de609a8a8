package raymarch

import (
	"math"

	"github.com/lixenwraith/torus/parameter/visual"
)

// Ramp is a glyph sequence ordered dark to bright
type Ramp []rune

var (
	standardRamp = Ramp(visual.RampStandard)
	extendedRamp = Ramp(visual.RampExtended)
)

// StandardRamp returns the 10-glyph ramp
func StandardRamp() Ramp {
	return standardRamp
}

// ExtendedRamp returns the 70-glyph ramp
func ExtendedRamp() Ramp {
	return extendedRamp
}

// SelectRamp returns the extended ramp when extended is set, otherwise the standard one
func SelectRamp(extended bool) Ramp {
	if extended {
		return extendedRamp
	}
	return standardRamp
}

// Index maps brightness to floor(b*len), clamped to [0, len-1]
// NaN and negative brightness map to 0, as does every brightness on an empty ramp
func (r Ramp) Index(brightness float64) int {
	n := len(r)
	if n == 0 {
		return 0
	}
	f := math.Floor(brightness * float64(n))
	// Negated compare also catches NaN
	if !(f >= 0) {
		return 0
	}
	if f >= float64(n-1) {
		return n - 1
	}
	return int(f)
}

// Glyph returns the glyph for brightness; an empty ramp draws blanks
func (r Ramp) Glyph(brightness float64) rune {
	if len(r) == 0 {
		return ' '
	}
	return r[r.Index(brightness)]
}

// BrightnessToGlyph maps brightness to a glyph of the standard or extended ramp
func BrightnessToGlyph(brightness float64, extended bool) rune {
	return SelectRamp(extended).Glyph(brightness)
}
