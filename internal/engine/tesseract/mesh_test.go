package tesseract

import (
	"testing"

	"github.com/Faultbox/hypercube/internal/engine/camera"
)

func TestTransformProjectsEveryVertex(t *testing.T) {
	m := Build(camera.Default(), 300)
	m.Transform(Rotation{Y: 0.4, W: 1.1})

	for i := range m.Vertices {
		if !m.Vertices[i].Projected() {
			t.Errorf("vertex %d not projected", i)
		}
		if !m.Vertices[i].Screen().IsFinite() {
			t.Errorf("vertex %d: non-finite screen point %v", i, m.Vertices[i].Screen())
		}
	}
}

func TestTransformZeroRotationMatchesPlainProjection(t *testing.T) {
	cam := camera.Default()
	m := Build(cam, 10)
	m.Transform(Rotation{})

	for i, c := range Corners(10) {
		v := NewVertex(cam, c[0], c[1], c[2], c[3])
		if got, want := m.Vertices[i].Screen(), v.Project(); got != want {
			t.Errorf("vertex %d: got %v, want %v", i, got, want)
		}
	}

	// corner 2 is (5, 5, 5, 5)
	want := -14700.0 / 2963.0
	got := m.Vertices[2].Screen()
	if d := got.X - want; d > 1e-9 || d < -1e-9 {
		t.Errorf("corner 2 X = %v, want %v", got.X, want)
	}
}

func TestPolygonOrder(t *testing.T) {
	m := Build(camera.Default(), 50)
	m.Transform(Rotation{Y: 0.2})

	f := m.Faces[5]
	pts := m.Polygon(f)
	for i, idx := range f.Indices {
		if pts[i] != m.Vertices[idx].Screen() {
			t.Errorf("point %d = %v, want vertex %d %v", i, pts[i], idx, m.Vertices[idx].Screen())
		}
	}
}

func TestRotationIsZero(t *testing.T) {
	if !(Rotation{}).IsZero() {
		t.Error("zero rotation not reported as zero")
	}
	if (Rotation{W: 1e-300}).IsZero() {
		t.Error("tiny W angle reported as zero")
	}
}
