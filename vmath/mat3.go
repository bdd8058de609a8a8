package vmath

import (
	"math"
)

// Mat3 is a row-major 3x3 matrix
type Mat3 [3]Vec3

// EulerRotation builds the intrinsic XYZ rotation matrix for angles (x, y, z)
// Row layout is fixed; the torus orientation depends on it exactly
func EulerRotation(angles Vec3) Mat3 {
	cx, sx := math.Cos(angles.X), math.Sin(angles.X)
	cy, sy := math.Cos(angles.Y), math.Sin(angles.Y)
	cz, sz := math.Cos(angles.Z), math.Sin(angles.Z)

	return Mat3{
		{cx * cy, cx*sy*sz - sx*cz, cx*sy*cz + sx*sz},
		{sx * cy, sx*sy*sz + cx*cz, sx*sy*cz - cx*sz},
		{-sy, cy * sz, cy * cz},
	}
}

// MulVec returns the matrix-vector product m·v
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		V3Dot(m[0], v),
		V3Dot(m[1], v),
		V3Dot(m[2], v),
	}
}

// Transpose returns mᵀ, which is the inverse for rotation matrices
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		{m[0].X, m[1].X, m[2].X},
		{m[0].Y, m[1].Y, m[2].Y},
		{m[0].Z, m[1].Z, m[2].Z},
	}
}
