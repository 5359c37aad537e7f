package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/hypercube/internal/config"
	"github.com/Faultbox/hypercube/internal/engine/draw"
	"github.com/Faultbox/hypercube/internal/export"
)

func TestCameraFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Camera.RotZ = 0.25
	cam := Camera(cfg.Camera)

	if cam.FocalLength != 35 || cam.WFocalLength != 12 {
		t.Errorf("unexpected focal lengths %v/%v", cam.FocalLength, cam.WFocalLength)
	}
	if cam.Z != -35*35 || cam.W != -12*12 {
		t.Errorf("unexpected position z=%v w=%v", cam.Z, cam.W)
	}
	if cam.RotZ != 0.25 {
		t.Errorf("expected rot_z 0.25, got %v", cam.RotZ)
	}
}

func TestApplyStyle(t *testing.T) {
	rec := draw.NewRecorder(10, 10)
	ApplyStyle(rec, config.Default().Style)

	if len(rec.Commands) != 3 {
		t.Fatalf("expected 3 style commands, got %d", len(rec.Commands))
	}
	if rec.Commands[0].Op != draw.OpStrokeColor || rec.Commands[0].Color != draw.ColorWhite {
		t.Errorf("unexpected stroke color command %+v", rec.Commands[0])
	}
	if rec.Commands[1].Op != draw.OpStrokeWidth || rec.Commands[1].Args[0] != 3 {
		t.Errorf("unexpected stroke width command %+v", rec.Commands[1])
	}
	if f := rec.Commands[2].Filter; rec.Commands[2].Op != draw.OpFilter || f.Blur != 4 || f.Contrast != 1 {
		t.Errorf("unexpected filter command %+v", rec.Commands[2])
	}
}

func TestBackgroundDefaultsToBlack(t *testing.T) {
	if got := Background(config.StyleConfig{}); got != draw.ColorBlack {
		t.Errorf("expected black, got %+v", got)
	}
	if got := Background(config.StyleConfig{Background: []float32{1, 0, 0}}); got != (draw.Color{R: 1, A: 1}) {
		t.Errorf("expected opaque red, got %+v", got)
	}
}

func testExportConfig(t *testing.T, frames int) *config.Config {
	cfg := config.Default()
	cfg.Graphics.Width = 64
	cfg.Graphics.Height = 48
	cfg.Style.Blur = 1
	cfg.Export.OutputDir = filepath.Join(t.TempDir(), "out")
	cfg.Export.Format = export.FormatPNG
	cfg.Export.Frames = frames
	return cfg
}

func TestRenderFramesWritesSequence(t *testing.T) {
	cfg := testExportConfig(t, 3)

	n, err := RenderFrames(context.Background(), cfg)
	if err != nil {
		t.Fatalf("RenderFrames: %v", err)
	}
	if n != 3 {
		t.Errorf("expected 3 frames, got %d", n)
	}

	entries, err := os.ReadDir(cfg.Export.OutputDir)
	if err != nil {
		t.Fatalf("read output dir: %v", err)
	}
	want := []string{"hypercube_00000.png", "hypercube_00001.png", "hypercube_00002.png"}
	if len(entries) != len(want) {
		t.Fatalf("expected %d files, got %d", len(want), len(entries))
	}
	for i, e := range entries {
		if e.Name() != want[i] {
			t.Errorf("file %d = %s, want %s", i, e.Name(), want[i])
		}
	}
}

func TestRenderFramesNoneRequested(t *testing.T) {
	cfg := testExportConfig(t, 0)
	n, err := RenderFrames(context.Background(), cfg)
	if err != nil || n != 0 {
		t.Errorf("expected 0, nil; got %d, %v", n, err)
	}
}

func TestRenderFramesCancelled(t *testing.T) {
	cfg := testExportConfig(t, 5)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	n, err := RenderFrames(ctx, cfg)
	if err == nil {
		t.Error("expected context error")
	}
	if n != 0 {
		t.Errorf("expected no frames after cancel, got %d", n)
	}
}
