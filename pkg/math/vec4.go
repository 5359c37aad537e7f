package math

import "math"

// Vec4 is a point in 4D space. W is the fourth spatial axis, not a
// homogeneous coordinate.
type Vec4 struct {
	X, Y, Z, W float64
}

// Scale returns v * scalar.
func (v Vec4) Scale(s float64) Vec4 {
	return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// XYZ drops the W component.
func (v Vec4) XYZ() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// WithXYZ returns v with its first three components replaced.
func (v Vec4) WithXYZ(p Vec3) Vec4 {
	return Vec4{p.X, p.Y, p.Z, v.W}
}

// RotateYW rotates v within the Y-W plane. X and Z are unchanged.
func (v Vec4) RotateYW(angle float64) Vec4 {
	s, c := math.Sincos(angle)
	return Vec4{
		X: v.X,
		Y: v.Y*c - v.W*s,
		Z: v.Z,
		W: v.Y*s + v.W*c,
	}
}

// ApproxEqual reports whether every component differs by at most eps.
func (v Vec4) ApproxEqual(other Vec4, eps float64) bool {
	return math.Abs(v.X-other.X) <= eps &&
		math.Abs(v.Y-other.Y) <= eps &&
		math.Abs(v.Z-other.Z) <= eps &&
		math.Abs(v.W-other.W) <= eps
}
