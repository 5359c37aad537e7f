// Package camera provides the dual pinhole camera rig used to project
// 4D geometry down to the screen.
package camera

import (
	"github.com/Faultbox/hypercube/pkg/math"
)

// Default focal lengths of the rig.
const (
	DefaultFocalLength  = 35.0
	DefaultWFocalLength = 12.0
)

// Rig holds two pinhole configurations: FocalLength drives the 3D to 2D
// stage and WFocalLength the 4D to 3D stage.
//
// New fixes Z and W at -(focal length²) of their stage.
type Rig struct {
	FocalLength  float64
	WFocalLength float64

	// Pinhole location
	X, Y, Z, W float64

	// Camera orientation (radians)
	RotX, RotY, RotZ float64
}

// New creates a rig with the given focal lengths, the pinhole on the axis
// and no rotation.
func New(focalLength, wFocalLength float64) *Rig {
	return &Rig{
		FocalLength:  focalLength,
		WFocalLength: wFocalLength,
		Z:            -(focalLength * focalLength),
		W:            -(wFocalLength * wFocalLength),
	}
}

// Default returns the standard 35/12 rig.
func Default() *Rig {
	return New(DefaultFocalLength, DefaultWFocalLength)
}

// WithOrientation returns a copy of the rig rotated by the given angles.
func (r *Rig) WithOrientation(rotX, rotY, rotZ float64) *Rig {
	c := *r
	c.RotX, c.RotY, c.RotZ = rotX, rotY, rotZ
	return &c
}

// Position returns the pinhole location in 4D space.
func (r *Rig) Position() math.Vec4 {
	return math.Vec4{X: r.X, Y: r.Y, Z: r.Z, W: r.W}
}

// Translation returns the pinhole position pre-scaled by the 3D focal
// length, in the same units as a constructed vertex.
func (r *Rig) Translation() math.Vec3 {
	return math.Vec3{
		X: r.X / r.FocalLength,
		Y: r.Y / r.FocalLength,
		Z: r.Z / r.FocalLength,
	}
}

// PinholeOffsetW is the W shift applied before the 4D perspective divide.
func (r *Rig) PinholeOffsetW() float64 {
	return r.W / r.WFocalLength
}

// Orientation returns the camera's own rotation angles.
func (r *Rig) Orientation() math.Vec3 {
	return math.Vec3{X: r.RotX, Y: r.RotY, Z: r.RotZ}
}

// HasOrientation reports whether any orientation angle is non-zero.
func (r *Rig) HasOrientation() bool {
	return r.RotX != 0 || r.RotY != 0 || r.RotZ != 0
}
