package tesseract

import (
	"github.com/Faultbox/hypercube/internal/engine/camera"
	"github.com/Faultbox/hypercube/pkg/math"
)

// Mesh is the solid instantiated for one frame.
type Mesh struct {
	Vertices []Vertex
	Faces    []Face
}

// Build instantiates the solid at the given edge length.
func Build(cam *camera.Rig, edge float64) *Mesh {
	return &Mesh{
		Vertices: Vertices(cam, edge),
		Faces:    Faces(),
	}
}

// Transform rotates every vertex by rot and projects it. Rotation is
// skipped when every angle is zero.
func (m *Mesh) Transform(rot Rotation) {
	rotate := !rot.IsZero()
	for i := range m.Vertices {
		v := &m.Vertices[i]
		if rotate {
			v.Rotate(rot.X, rot.Y, rot.Z, rot.W)
		}
		v.Project()
	}
}

// Polygon returns the projected points of a face in drawing order.
func (m *Mesh) Polygon(f Face) [FaceSize]math.Vec2 {
	var pts [FaceSize]math.Vec2
	for i, idx := range f.Indices {
		pts[i] = m.Vertices[idx].Screen()
	}
	return pts
}
