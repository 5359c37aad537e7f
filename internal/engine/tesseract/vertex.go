// Package tesseract holds the geometry of the 4D hypercube: its fixed
// corner and face tables and the per-vertex rotate/project pipeline.
package tesseract

import (
	"github.com/Faultbox/hypercube/internal/engine/camera"
	"github.com/Faultbox/hypercube/pkg/math"
)

// Rotation is a set of angles in radians. W turns the Y-W plane; X, Y and Z
// are the Euler angles of the 3D rotation.
type Rotation struct {
	X, Y, Z, W float64
}

// IsZero reports whether every angle is exactly zero.
func (r Rotation) IsZero() bool {
	return r.X == 0 && r.Y == 0 && r.Z == 0 && r.W == 0
}

// Vertex is one corner of the solid for a single frame. It starts in
// object space divided by the rig's focal length, is rotated in place and
// finally projected to a screen point. Project overwrites the working
// coordinates, so a vertex cannot be rotated after it.
type Vertex struct {
	cam       *camera.Rig
	loc       math.Vec4
	screen    math.Vec2
	projected bool
}

// NewVertex creates a vertex at (x, y, z, w) in object space.
func NewVertex(cam *camera.Rig, x, y, z, w float64) Vertex {
	return Vertex{
		cam: cam,
		loc: math.Vec4{X: x, Y: y, Z: z, W: w}.Scale(1 / cam.FocalLength),
	}
}

// Loc returns the current working coordinates.
func (v *Vertex) Loc() math.Vec4 {
	return v.loc
}

// Rotate turns the vertex by wr in the Y-W plane, then by the Euler angles
// (xr, yr, zr) in 3D. W is only touched by the first step.
func (v *Vertex) Rotate(xr, yr, zr, wr float64) {
	if v.projected {
		panic("tesseract: Rotate called on a projected vertex")
	}
	v.loc = v.loc.RotateYW(wr)
	v.loc = v.loc.WithXYZ(v.loc.XYZ().RotateEuler(xr, yr, zr))
}

// InverseRotate undoes Rotate with the same angles.
func (v *Vertex) InverseRotate(xr, yr, zr, wr float64) {
	if v.projected {
		panic("tesseract: InverseRotate called on a projected vertex")
	}
	v.loc = v.loc.WithXYZ(v.loc.XYZ().InverseRotateEuler(xr, yr, zr))
	v.loc = v.loc.RotateYW(-wr)
}

// Project runs the two perspective stages and stores the screen point.
// A zero depth at either stage is not guarded; the result is Inf or NaN.
func (v *Vertex) Project() math.Vec2 {
	if v.projected {
		return v.screen
	}
	cam := v.cam

	// 4D -> 3D through the W pinhole
	v.loc.W -= cam.PinholeOffsetW()
	k := -cam.WFocalLength / v.loc.W
	v.loc.X *= k
	v.loc.Y *= k
	v.loc.Z *= k

	// camera space
	d := v.loc.XYZ().Sub(cam.Translation()).RotateEuler(cam.RotX, cam.RotY, cam.RotZ)

	// 3D -> 2D
	f := cam.FocalLength
	v.screen = math.Vec2{
		X: f / d.Z * d.X * f,
		Y: f / d.Z * d.Y * f,
	}
	v.projected = true
	return v.screen
}

// Screen returns the projected point. It is zero until Project is called.
func (v *Vertex) Screen() math.Vec2 {
	return v.screen
}

// Projected reports whether Project has run.
func (v *Vertex) Projected() bool {
	return v.projected
}
