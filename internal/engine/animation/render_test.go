package animation

import (
	"testing"

	"github.com/Faultbox/hypercube/internal/engine/camera"
	"github.com/Faultbox/hypercube/internal/engine/draw"
	"github.com/Faultbox/hypercube/internal/engine/tesseract"
)

func TestRenderCommandCounts(t *testing.T) {
	cmds := Commands(1000, 800, camera.Default(), tesseract.Rotation{Y: 0.3, W: 0.9}, tesseract.DefaultEdgeDivisor)

	counts := map[draw.Op]int{}
	for _, c := range cmds {
		counts[c.Op]++
	}

	want := map[draw.Op]int{
		draw.OpClearRect: 1,
		draw.OpBeginPath: tesseract.FaceCount,
		draw.OpMoveTo:    tesseract.FaceCount,
		draw.OpLineTo:    tesseract.FaceCount * (tesseract.FaceSize - 1),
		draw.OpClosePath: tesseract.FaceCount,
		draw.OpStroke:    tesseract.FaceCount,
	}
	for op, n := range want {
		if counts[op] != n {
			t.Errorf("%v: got %d, want %d", op, counts[op], n)
		}
	}
	if cmds[0].Op != draw.OpClearRect {
		t.Errorf("first command = %v, want clearRect", cmds[0].Op)
	}
}

func TestRenderClearsFullExtent(t *testing.T) {
	cmds := Commands(640, 360, camera.Default(), tesseract.Rotation{}, tesseract.DefaultEdgeDivisor)
	want := []float64{-320, -180, 640, 360}
	for i, v := range want {
		if cmds[0].Args[i] != v {
			t.Fatalf("clearRect args = %v, want %v", cmds[0].Args, want)
		}
	}
}

func TestRenderZeroRotationGolden(t *testing.T) {
	// width 50 with divisor 5 gives edge 10, so corner 2 sits at (5,5,5,5).
	mesh := Render(draw.NewRecorder(50, 50), camera.Default(), tesseract.Rotation{}, 5)

	want := -14700.0 / 2963.0
	got := mesh.Vertices[2].Screen()
	if d := got.X - want; d > 1e-9 || d < -1e-9 {
		t.Errorf("corner 2 = %v, want (%v, %v)", got, want, want)
	}
}

func TestRenderTracksViewportWidth(t *testing.T) {
	cam := camera.Default()
	rec := draw.NewRecorder(500, 500)
	small := Render(rec, cam, tesseract.Rotation{}, 5)

	draw.Centre(rec, 1000, 500)
	rec.Reset()
	large := Render(rec, cam, tesseract.Rotation{}, 5)

	if len(small.Vertices) != len(large.Vertices) || len(small.Faces) != len(large.Faces) {
		t.Fatal("topology changed with viewport size")
	}
	for i := range small.Faces {
		if small.Faces[i] != large.Faces[i] {
			t.Errorf("face %d changed", i)
		}
	}

	// The object-space corners double with the width.
	for i, c := range tesseract.Corners(100) {
		d := tesseract.Corners(200)[i]
		for axis := range c {
			if d[axis] != 2*c[axis] {
				t.Fatalf("corner %d not scaled", i)
			}
		}
	}
	if rec.Count(draw.OpStroke) != tesseract.FaceCount {
		t.Errorf("strokes after resize = %d", rec.Count(draw.OpStroke))
	}
}
