package math

import "math"

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v * scalar.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Length returns the magnitude.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// RotateEuler rotates v around Z, then Y, then X.
// Angles are in radians.
func (v Vec3) RotateEuler(rx, ry, rz float64) Vec3 {
	sx, cx := math.Sincos(rx)
	sy, cy := math.Sincos(ry)
	sz, cz := math.Sincos(rz)

	// Z
	x1 := sz*v.Y + cz*v.X
	y1 := cz*v.Y - sz*v.X
	// Y
	z2 := cy*v.Z + sy*x1
	// X
	return Vec3{
		X: cy*x1 - sy*v.Z,
		Y: sx*z2 + cx*y1,
		Z: cx*z2 - sx*y1,
	}
}

// InverseRotateEuler undoes RotateEuler with the same angles.
func (v Vec3) InverseRotateEuler(rx, ry, rz float64) Vec3 {
	sx, cx := math.Sincos(rx)
	sy, cy := math.Sincos(ry)
	sz, cz := math.Sincos(rz)

	y1 := cx*v.Y - sx*v.Z
	z2 := sx*v.Y + cx*v.Z

	x1 := cy*v.X + sy*z2
	z := -sy*v.X + cy*z2

	return Vec3{
		X: cz*x1 - sz*y1,
		Y: sz*x1 + cz*y1,
		Z: z,
	}
}
