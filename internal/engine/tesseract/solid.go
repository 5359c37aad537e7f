package tesseract

import (
	"github.com/Faultbox/hypercube/internal/engine/camera"
)

// Topology sizes of the solid.
const (
	VertexCount = 16
	FaceCount   = 12
	FaceSize    = 4
)

// DefaultEdgeDivisor sets the edge length to a fifth of the viewport width.
const DefaultEdgeDivisor = 5.0

// Face is a closed quadrilateral given by four vertex indices in drawing
// order.
type Face struct {
	Indices [FaceSize]int

	// NoCull exempts the face from back-face culling. Nothing culls yet, so
	// the flag is carried but never read by the renderer.
	NoCull bool
}

// corners holds the sign of each component of the 16 corners, in units of
// half an edge. The first eight sit at W=+1, the last eight at W=-1.
var corners = [VertexCount][4]float64{
	{-1, 1, -1, 1},
	{1, 1, -1, 1},
	{1, 1, 1, 1},
	{-1, 1, 1, 1},
	{-1, -1, -1, 1},
	{1, -1, -1, 1},
	{1, -1, 1, 1},
	{-1, -1, 1, 1},
	{-1, 1, -1, -1},
	{1, 1, -1, -1},
	{1, 1, 1, -1},
	{-1, 1, 1, -1},
	{-1, -1, -1, -1},
	{1, -1, -1, -1},
	{1, -1, 1, -1},
	{-1, -1, 1, -1},
}

var faces = [FaceCount]Face{
	// outer cube
	{Indices: [4]int{0, 1, 2, 3}},
	{Indices: [4]int{4, 7, 6, 5}},
	{Indices: [4]int{0, 4, 5, 1}},
	{Indices: [4]int{2, 6, 7, 3}},
	// inner cube
	{Indices: [4]int{8, 9, 10, 11}},
	{Indices: [4]int{12, 15, 14, 13}},
	{Indices: [4]int{8, 12, 13, 9}},
	{Indices: [4]int{10, 14, 15, 11}},
	// connecting faces
	{Indices: [4]int{0, 1, 9, 8}},
	{Indices: [4]int{2, 3, 11, 10}},
	{Indices: [4]int{4, 7, 15, 12}},
	{Indices: [4]int{6, 5, 13, 14}},
}

// Faces returns a copy of the face table.
func Faces() []Face {
	out := make([]Face, FaceCount)
	copy(out, faces[:])
	return out
}

// EdgeLength derives the edge length from the viewport width.
func EdgeLength(viewportWidth, divisor float64) float64 {
	if divisor <= 0 {
		divisor = DefaultEdgeDivisor
	}
	return viewportWidth / divisor
}

// Corners returns the 16 corner positions for the given edge length.
func Corners(edge float64) [VertexCount][4]float64 {
	var out [VertexCount][4]float64
	h := edge / 2
	for i, c := range corners {
		out[i] = [4]float64{c[0] * h, c[1] * h, c[2] * h, c[3] * h}
	}
	return out
}

// Vertices builds fresh vertices for one frame.
func Vertices(cam *camera.Rig, edge float64) []Vertex {
	out := make([]Vertex, 0, VertexCount)
	for _, c := range Corners(edge) {
		out = append(out, NewVertex(cam, c[0], c[1], c[2], c[3]))
	}
	return out
}
