package camera

import (
	"github.com/lixenwraith/torus/vmath"
)

// Camera is a viewpoint with a view plane spanned by e1 and e2
// Invariant: e1, e2 are unit length, mutually orthogonal, and orthogonal to the normalized direction
type Camera struct {
	position  vmath.Vec3
	direction vmath.Vec3

	// e2 carries the axis-derived candidate and e1 its cross with forward;
	// Unproject offsets x along e1 and y along e2, so both sites move together
	e1 vmath.Vec3
	e2 vmath.Vec3
}

// basisAxes is the fixed candidate order for view-plane selection; first seen wins ties
var basisAxes = [3]vmath.Vec3{vmath.AxisX, vmath.AxisY, vmath.AxisZ}

// New creates a camera at position looking along direction
// direction must be non-zero; it is kept unnormalized since it sets the field of view
func New(position, direction vmath.Vec3) *Camera {
	c := &Camera{
		position:  position,
		direction: direction,
	}
	c.updateProjection()
	return c
}

// Position returns the camera origin
func (c *Camera) Position() vmath.Vec3 {
	return c.position
}

// Direction returns the forward vector as given at construction
func (c *Camera) Direction() vmath.Vec3 {
	return c.direction
}

// SetDirection replaces the forward vector and recomputes the basis
func (c *Camera) SetDirection(direction vmath.Vec3) {
	c.direction = direction
	c.updateProjection()
}

// Basis returns the view-plane pair (e1, e2)
func (c *Camera) Basis() (e1, e2 vmath.Vec3) {
	return c.e1, c.e2
}

// Unproject returns the ray direction through uv, where (0.5, 0.5) is the image center
// The result is not unit length: march depths are measured in multiples of it
func (c *Camera) Unproject(uv vmath.Vec2) vmath.Vec3 {
	ray := vmath.V3Add(c.direction, vmath.V3Scale(c.e1, uv.X-0.5))
	return vmath.V3Add(ray, vmath.V3Scale(c.e2, uv.Y-0.5))
}

// updateProjection derives e1, e2 from the current direction
func (c *Camera) updateProjection() {
	n := vmath.V3Normalize(c.direction)

	// Pick the world axis least parallel to n to keep the cross product well conditioned
	candidate := vmath.V3Cross(n, basisAxes[0])
	best := 0.0
	for _, axis := range basisAxes {
		e := vmath.V3Cross(n, axis)
		if l := vmath.V3Mag(e); l > best {
			candidate = e
			best = l
		}
	}
	candidate = vmath.V3Normalize(candidate)

	c.e2 = candidate
	c.e1 = vmath.V3Cross(candidate, n)
}
