package raymarch

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/torus/parameter"
	"github.com/lixenwraith/torus/sdf"
	"github.com/lixenwraith/torus/vmath"
)

func TestMarch_HitAlongAxis(t *testing.T) {
	m := New(DefaultParams())
	depth := m.March(vmath.V3(0, 0, 5), vmath.V3(0, 0, -1), 0)
	assert.InDelta(t, 4.25, depth, 0.01)
}

func TestMarch_MissAwayFromScene(t *testing.T) {
	m := New(DefaultParams())
	depth := m.March(vmath.V3(0, 0, 5), vmath.V3(0, 0, 1), 0)
	assert.Equal(t, parameter.MissDepth, depth)
}

func TestMarch_FarClipShorterThanSurface(t *testing.T) {
	params := DefaultParams()
	params.FarClip = 2
	m := New(params)
	assert.Equal(t, parameter.MissDepth, m.March(vmath.V3(0, 0, 5), vmath.V3(0, 0, -1), 0))
}

func TestMarch_ThroughHole(t *testing.T) {
	// Looking down the local Y axis at t=0: rotate the torus axis into world space
	rot := sdf.SceneRotation(0)
	axis := rot.Transpose().MulVec(vmath.AxisY)
	origin := vmath.V3Scale(axis, 4)
	dir := vmath.V3Scale(axis, -1)

	m := New(DefaultParams())
	assert.Equal(t, parameter.MissDepth, m.March(origin, dir, 0))
}

func TestMarch_ExhaustionIsImplicitHit(t *testing.T) {
	params := DefaultParams()
	params.MaxSteps = 3
	constant := func(vmath.Vec3, float64) float64 { return 0.5 }

	m := NewWithScene(params, constant)
	assert.InDelta(t, 1.5, m.March(vmath.Vec3{}, vmath.V3(1, 0, 0), 0), 1e-12)
}

func TestMarch_UnnormalizedDirectionScalesDepth(t *testing.T) {
	m := New(DefaultParams())
	unit := m.March(vmath.V3(0, 0, 5), vmath.V3(0, 0, -1), 0)
	half := m.March(vmath.V3(0, 0, 5), vmath.V3(0, 0, -0.5), 0)

	// Steps are world distances added to depth, so a shorter direction needs more depth
	require.Greater(t, half, 0.0)
	assert.InDelta(t, unit*2, half, 0.03)
}

func TestMarch_LongDirectionOvershoots(t *testing.T) {
	// Step sizes are not rescaled by |dir|; a long direction can skip past the surface
	m := New(DefaultParams())
	assert.Equal(t, parameter.MissDepth, m.March(vmath.V3(0, 0, 5), vmath.V3(0, 0, -2), 0))
}

func TestEstimateNormal_Sphere(t *testing.T) {
	sphere := sdf.Sphere{Radius: 1}
	scene := func(p vmath.Vec3, _ float64) float64 { return sphere.Distance(p) }
	m := NewWithScene(DefaultParams(), scene)

	points := []vmath.Vec3{
		vmath.V3(1, 0, 0),
		vmath.V3(0, -1, 0),
		vmath.V3Normalize(vmath.V3(1, 2, -3)),
	}
	for _, p := range points {
		n := m.EstimateNormal(p, 0)
		assert.InDelta(t, 1.0, vmath.V3Mag(n), 1e-9)
		assert.InDelta(t, p.X, n.X, 1e-6)
		assert.InDelta(t, p.Y, n.Y, 1e-6)
		assert.InDelta(t, p.Z, n.Z, 1e-6)
	}
}

func TestDiffuse_Range(t *testing.T) {
	m := New(DefaultParams())
	light := m.Params().LightPosition

	p := vmath.Vec3{}
	toward := vmath.V3Normalize(vmath.V3Sub(p, light))
	assert.InDelta(t, 1.0, m.Diffuse(p, toward), 1e-12)
	assert.InDelta(t, -1.0, m.Diffuse(p, vmath.V3Scale(toward, -1)), 1e-12)
}

func TestComputeBrightness_CornerMiss(t *testing.T) {
	// Top-left ray passes more than 2 units from the torus
	assert.Equal(t, 0.0, ComputeBrightness(0, 0, 75, 30, 0))
}

func TestComputeBrightness_FrameRangeAndCoverage(t *testing.T) {
	const w, h = 40, 15
	hits := 0
	for _, ms := range []int64{0, 250, 1000} {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				b := ComputeBrightness(x, y, w, h, ms)
				require.False(t, math.IsNaN(b), "NaN at (%d,%d) t=%d", x, y, ms)
				require.GreaterOrEqual(t, b, -1.0-1e-9)
				require.LessOrEqual(t, b, 1.0+1e-9)
				if b != 0 {
					hits++
				}
			}
		}
	}
	assert.Positive(t, hits, "torus should be visible")
}

func TestComputeBrightness_Deterministic(t *testing.T) {
	a := ComputeBrightness(37, 14, 75, 30, 1234)
	b := ComputeBrightness(37, 14, 75, 30, 1234)
	assert.Equal(t, math.Float64bits(a), math.Float64bits(b))
}

func TestPixelUV(t *testing.T) {
	assert.Equal(t, vmath.V2(0, 0), PixelUV(0, 0, 10, 4))
	assert.Equal(t, vmath.V2(0.5, 0.5), PixelUV(5, 2, 10, 4))
	assert.Equal(t, vmath.V2(0.9, 0.75), PixelUV(9, 3, 10, 4))
}

func TestSceneTime(t *testing.T) {
	assert.Equal(t, 0.0, SceneTime(0))
	assert.Equal(t, 1.5, SceneTime(1500))
}
