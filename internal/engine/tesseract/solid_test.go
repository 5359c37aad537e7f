package tesseract

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/hypercube/internal/engine/camera"
)

func TestTopology(t *testing.T) {
	m := Build(camera.Default(), 100)

	if len(m.Vertices) != VertexCount {
		t.Fatalf("expected %d vertices, got %d", VertexCount, len(m.Vertices))
	}
	if len(m.Faces) != FaceCount {
		t.Fatalf("expected %d faces, got %d", FaceCount, len(m.Faces))
	}

	used := make(map[int]bool)
	for i, f := range m.Faces {
		seen := make(map[int]bool)
		for _, idx := range f.Indices {
			if idx < 0 || idx >= len(m.Vertices) {
				t.Errorf("face %d: index %d out of range", i, idx)
			}
			if seen[idx] {
				t.Errorf("face %d: index %d repeated", i, idx)
			}
			seen[idx] = true
			used[idx] = true
		}
		if f.NoCull {
			t.Errorf("face %d: NoCull set", i)
		}
	}
	if len(used) != VertexCount {
		t.Errorf("faces reference %d distinct vertices, want %d", len(used), VertexCount)
	}
}

func TestFacesArePlanarQuads(t *testing.T) {
	c := Corners(2)
	for i, f := range Faces() {
		// Two axes stay constant across a 2-face of the hypercube.
		constant := 0
		for axis := 0; axis < 4; axis++ {
			same := true
			for _, idx := range f.Indices[1:] {
				if c[idx][axis] != c[f.Indices[0]][axis] {
					same = false
				}
			}
			if same {
				constant++
			}
		}
		if constant != 2 {
			t.Errorf("face %d: %d constant axes, want 2", i, constant)
		}

		// Consecutive corners, including the closing pair, share an edge.
		for k := 0; k < FaceSize; k++ {
			a := c[f.Indices[k]]
			b := c[f.Indices[(k+1)%FaceSize]]
			diff := 0
			for axis := 0; axis < 4; axis++ {
				if a[axis] != b[axis] {
					diff++
				}
			}
			if diff != 1 {
				t.Errorf("face %d: corners %d and %d differ in %d axes", i, f.Indices[k], f.Indices[(k+1)%FaceSize], diff)
			}
		}
	}
}

func TestCornersAreDistinctHalfEdges(t *testing.T) {
	c := Corners(10)
	seen := make(map[[4]float64]bool)
	for i, p := range c {
		for axis, v := range p {
			if gomath.Abs(v) != 5 {
				t.Errorf("corner %d axis %d = %v, want ±5", i, axis, v)
			}
		}
		if seen[p] {
			t.Errorf("corner %d duplicated: %v", i, p)
		}
		seen[p] = true
	}
}

func TestFacesReturnsCopy(t *testing.T) {
	f := Faces()
	f[0].Indices[0] = 99
	if Faces()[0].Indices[0] != 0 {
		t.Error("Faces() exposed the shared table")
	}
}

func TestEdgeLength(t *testing.T) {
	tests := []struct {
		width, divisor, want float64
	}{
		{1000, 5, 200},
		{1920, 5, 384},
		{500, 2, 250},
		{1000, 0, 200},
		{1000, -1, 200},
	}

	for _, tt := range tests {
		if got := EdgeLength(tt.width, tt.divisor); got != tt.want {
			t.Errorf("EdgeLength(%v, %v) = %v, want %v", tt.width, tt.divisor, got, tt.want)
		}
	}
}

func TestResizeScalesEdgeNotTopology(t *testing.T) {
	cam := camera.Default()
	small := Build(cam, EdgeLength(800, DefaultEdgeDivisor))
	large := Build(cam, EdgeLength(1600, DefaultEdgeDivisor))

	if EdgeLength(1600, DefaultEdgeDivisor) != 2*EdgeLength(800, DefaultEdgeDivisor) {
		t.Error("edge length not proportional to width")
	}
	for i := range small.Vertices {
		a, b := small.Vertices[i].Loc(), large.Vertices[i].Loc()
		if !b.ApproxEqual(a.Scale(2), 1e-12) {
			t.Errorf("vertex %d: %v not twice %v", i, b, a)
		}
	}
	for i := range small.Faces {
		if small.Faces[i] != large.Faces[i] {
			t.Errorf("face %d changed with size", i)
		}
	}
}
