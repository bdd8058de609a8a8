package raymarch

import (
	"github.com/lixenwraith/torus/parameter"
	"github.com/lixenwraith/torus/vmath"
)

// Params holds the tunables injected into a Marcher at construction
type Params struct {
	MaxSteps      int
	MinDistance   float64
	FarClip       float64
	NormalEpsilon float64

	LightPosition   vmath.Vec3
	CameraPosition  vmath.Vec3
	CameraDirection vmath.Vec3
}

// DefaultParams returns the reference scene configuration
func DefaultParams() Params {
	return Params{
		MaxSteps:        parameter.MarchMaxSteps,
		MinDistance:     parameter.MarchMinDistance,
		FarClip:         parameter.MarchFarClip,
		NormalEpsilon:   parameter.NormalEpsilon,
		LightPosition:   vec3From(parameter.LightPosition),
		CameraPosition:  vec3From(parameter.CameraPosition),
		CameraDirection: vec3From(parameter.CameraDirection),
	}
}

func vec3From(a [3]float64) vmath.Vec3 {
	return vmath.V3(a[0], a[1], a[2])
}
