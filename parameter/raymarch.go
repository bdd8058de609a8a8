package parameter

import "math"

// Sphere Tracing
const (
	// MarchMaxSteps is the iteration cap; exhausting it counts as a hit at the last depth
	MarchMaxSteps = 100

	// MarchMinDistance is the surface threshold: a distance below it terminates with a hit
	MarchMinDistance = 0.01

	// MarchFarClip is the depth beyond which the ray is a miss
	MarchFarClip = 10.0

	// NormalEpsilon is the central-difference step for gradient estimation
	NormalEpsilon = 1e-4

	// MissDepth is the depth reported for a ray that leaves the far clip
	MissDepth = -1.0
)

// Torus Scene
const (
	// TorusMajorRadius is the distance from the torus center to the tube center
	TorusMajorRadius = 0.5

	// TorusMinorRadius is the tube radius
	TorusMinorRadius = 0.25

	// TorusTilt is the fixed Euler X angle
	TorusTilt = math.Pi / 3.5

	// TorusSpinRate multiplies scene time (seconds) into the Euler Y angle
	TorusSpinRate = 2.0
)

// Light & Camera (world space)
var (
	LightPosition   = [3]float64{1.0, 2.0, -1.0}
	CameraPosition  = [3]float64{-0.5, 0.5, 3.0}
	CameraDirection = [3]float64{0.0, 0.0, -1.0}
)
