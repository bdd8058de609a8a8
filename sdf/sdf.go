// Package sdf provides the analytic signed-distance fields of the scene.
//
// All functions are pure: they read no shared state and may be called
// concurrently from any number of goroutines.
package sdf

import (
	"github.com/lixenwraith/torus/parameter"
	"github.com/lixenwraith/torus/vmath"
)

// Torus is a torus centered at the origin with its hole along the local Y axis
type Torus struct {
	Major float64 // center to tube center
	Minor float64 // tube radius
}

// SceneTorus is the torus rendered by the scene
var SceneTorus = Torus{Major: parameter.TorusMajorRadius, Minor: parameter.TorusMinorRadius}

// Distance returns the signed distance from p to the torus whose local axes are given by rot
func (t Torus) Distance(p vmath.Vec3, rot vmath.Mat3) float64 {
	local := rot.MulVec(p)
	q := vmath.V2(vmath.V2Mag(vmath.V2(local.X, local.Z))-t.Major, local.Y)
	return vmath.V2Mag(q) - t.Minor
}

// Sphere is a sphere at Center
type Sphere struct {
	Center vmath.Vec3
	Radius float64
}

// Distance returns the signed distance from p to the sphere surface
func (s Sphere) Distance(p vmath.Vec3) float64 {
	return vmath.V3Mag(vmath.V3Sub(p, s.Center)) - s.Radius
}

// SceneAngles returns the torus Euler angles at scene time t (seconds)
func SceneAngles(t float64) vmath.Vec3 {
	return vmath.V3(parameter.TorusTilt, parameter.TorusSpinRate*t, 0)
}

// SceneRotation returns the torus rotation matrix at scene time t
// The angle is derived from t on every call, never stored
func SceneRotation(t float64) vmath.Mat3 {
	return vmath.EulerRotation(SceneAngles(t))
}

// SceneDistance returns the signed distance from p to the scene at time t (seconds)
func SceneDistance(p vmath.Vec3, t float64) float64 {
	return SceneTorus.Distance(p, SceneRotation(t))
}
