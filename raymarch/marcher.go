// Package raymarch sphere-traces camera rays against the scene distance field
// and turns the result into a diffuse brightness and a glyph.
package raymarch

import (
	"github.com/lixenwraith/torus/camera"
	"github.com/lixenwraith/torus/parameter"
	"github.com/lixenwraith/torus/sdf"
	"github.com/lixenwraith/torus/vmath"
)

// DistanceFunc is a scene distance field evaluated at point p and time t (seconds)
type DistanceFunc func(p vmath.Vec3, t float64) float64

// Marcher evaluates per-pixel brightness; it holds no mutable state after construction
type Marcher struct {
	params Params
	camera *camera.Camera
	scene  DistanceFunc
}

// New creates a Marcher over the torus scene
func New(params Params) *Marcher {
	return NewWithScene(params, sdf.SceneDistance)
}

// NewWithScene creates a Marcher over an arbitrary distance field
func NewWithScene(params Params, scene DistanceFunc) *Marcher {
	return &Marcher{
		params: params,
		camera: camera.New(params.CameraPosition, params.CameraDirection),
		scene:  scene,
	}
}

// Params returns the construction parameters
func (m *Marcher) Params() Params {
	return m.params
}

// Camera returns the marcher's camera
func (m *Marcher) Camera() *camera.Camera {
	return m.camera
}

// March sphere-traces from origin along dir and returns the hit depth, or MissDepth past the far clip
// Depth is in multiples of dir, which need not be unit length
// Exhausting MaxSteps returns the last depth as a hit
func (m *Marcher) March(origin, dir vmath.Vec3, t float64) float64 {
	depth := 0.0
	for i := 0; i < m.params.MaxSteps; i++ {
		dist := m.scene(vmath.V3Add(origin, vmath.V3Scale(dir, depth)), t)
		if dist < m.params.MinDistance {
			return depth
		}

		depth += dist

		if depth > m.params.FarClip {
			return parameter.MissDepth
		}
	}
	return depth
}

// EstimateNormal returns the normalized central-difference gradient of the scene at p
func (m *Marcher) EstimateNormal(p vmath.Vec3, t float64) vmath.Vec3 {
	e := m.params.NormalEpsilon
	dx := vmath.V3(e, 0, 0)
	dy := vmath.V3(0, e, 0)
	dz := vmath.V3(0, 0, e)

	return vmath.V3Normalize(vmath.V3(
		m.scene(vmath.V3Add(p, dx), t)-m.scene(vmath.V3Sub(p, dx), t),
		m.scene(vmath.V3Add(p, dy), t)-m.scene(vmath.V3Sub(p, dy), t),
		m.scene(vmath.V3Add(p, dz), t)-m.scene(vmath.V3Sub(p, dz), t),
	))
}

// Diffuse returns the unclamped cosine term between normal and the light-to-point direction
// Result lies in [-1, 1]
func (m *Marcher) Diffuse(p, normal vmath.Vec3) float64 {
	lightDir := vmath.V3Normalize(vmath.V3Sub(p, m.params.LightPosition))
	return vmath.V3Dot(normal, lightDir)
}

// UVBrightness returns the brightness of the view-plane point uv at time t (seconds)
// A miss is exactly 0
func (m *Marcher) UVBrightness(uv vmath.Vec2, t float64) float64 {
	origin := m.camera.Position()
	ray := m.camera.Unproject(uv)

	depth := m.March(origin, ray, t)
	if depth <= 0 {
		return 0
	}

	p := vmath.V3Add(origin, vmath.V3Scale(ray, depth))
	return m.Diffuse(p, m.EstimateNormal(p, t))
}

// ComputeBrightness returns the brightness of pixel (px, py) in a width x height viewport
// elapsedMs is the animation clock in milliseconds
func (m *Marcher) ComputeBrightness(px, py, width, height int, elapsedMs int64) float64 {
	return m.UVBrightness(PixelUV(px, py, width, height), SceneTime(elapsedMs))
}

// PixelUV maps a pixel to unit-square view-plane coordinates, (0,0) at the top-left cell
func PixelUV(px, py, width, height int) vmath.Vec2 {
	return vmath.V2(float64(px)/float64(width), float64(py)/float64(height))
}

// SceneTime converts elapsed milliseconds to scene seconds
func SceneTime(elapsedMs int64) float64 {
	return float64(elapsedMs) / 1000.0
}

var defaultMarcher = New(DefaultParams())

// ComputeBrightness evaluates a pixel with the reference parameters
func ComputeBrightness(px, py, width, height int, elapsedMs int64) float64 {
	return defaultMarcher.ComputeBrightness(px, py, width, height, elapsedMs)
}
