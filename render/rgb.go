package render

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/torus/terminal"
)

// RGB is an alias to terminal.RGB for colors, allowing render package to extend functionality
type RGB = terminal.RGB

// LerpLab interpolates between two colors in CIE L*a*b*, giving perceptually even steps
func LerpLab(a, b RGB, t float64) RGB {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	mixed := toColorful(a).BlendLab(toColorful(b), t).Clamped()
	r, g, bl := mixed.RGB255()
	return RGB{R: r, G: g, B: bl}
}

func toColorful(c RGB) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}
