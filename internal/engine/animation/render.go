package animation

import (
	"github.com/Faultbox/hypercube/internal/engine/camera"
	"github.com/Faultbox/hypercube/internal/engine/draw"
	"github.com/Faultbox/hypercube/internal/engine/tesseract"
)

// Render draws one frame on a surface whose origin is centred: it clears
// the surface, sizes the solid from the surface width, rotates and
// projects every vertex and strokes every face.
func Render(s draw.Surface, cam *camera.Rig, rot tesseract.Rotation, edgeDivisor float64) *tesseract.Mesh {
	draw.ClearAll(s)

	width, _ := s.Size()
	mesh := tesseract.Build(cam, tesseract.EdgeLength(float64(width), edgeDivisor))
	mesh.Transform(rot)

	for _, f := range mesh.Faces {
		pts := mesh.Polygon(f)
		draw.ShowFace(s, pts[:])
	}
	return mesh
}

// Commands renders one frame into a recorder of the given size and
// returns the draw calls.
func Commands(width, height int, cam *camera.Rig, rot tesseract.Rotation, edgeDivisor float64) []draw.Command {
	rec := draw.NewRecorder(width, height)
	Render(rec, cam, rot, edgeDivisor)
	return rec.Commands
}
