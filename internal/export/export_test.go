package export

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	img.SetRGBA(1, 1, color.RGBA{10, 20, 30, 255})
	return img
}

func TestNewFrameWriterRejectsFormat(t *testing.T) {
	if _, err := NewFrameWriter(t.TempDir(), "x", "gif"); err == nil {
		t.Error("expected error for gif format")
	}
}

func TestFilename(t *testing.T) {
	dir := t.TempDir()
	fw, err := NewFrameWriter(dir, "hypercube", FormatWebP)
	if err != nil {
		t.Fatalf("NewFrameWriter: %v", err)
	}

	tests := []struct {
		n    int
		want string
	}{
		{0, "hypercube_00000.webp"},
		{42, "hypercube_00042.webp"},
		{123456, "hypercube_123456.webp"},
	}
	for _, tt := range tests {
		if got := fw.Filename(tt.n); got != filepath.Join(dir, tt.want) {
			t.Errorf("Filename(%d) = %s, want %s", tt.n, got, tt.want)
		}
	}

	noDir, _ := NewFrameWriter("", "", FormatPNG)
	if got := noDir.Filename(1); got != "frame_00001.png" {
		t.Errorf("expected default prefix without dir, got %s", got)
	}
}

func TestWriteFramePNG(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	fw, err := NewFrameWriter(dir, "f", FormatPNG)
	if err != nil {
		t.Fatalf("NewFrameWriter: %v", err)
	}

	name, err := fw.WriteFrame(3, testImage())
	if err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}
	if fw.Written() != 1 {
		t.Errorf("Written() = %d, want 1", fw.Written())
	}

	f, err := os.Open(name)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	r, g, b, _ := img.At(1, 1).RGBA()
	if r>>8 != 10 || g>>8 != 20 || b>>8 != 30 {
		t.Errorf("pixel mismatch: %d %d %d", r>>8, g>>8, b>>8)
	}
}

func TestWriteFrameWebP(t *testing.T) {
	fw, err := NewFrameWriter(t.TempDir(), "f", FormatWebP)
	if err != nil {
		t.Fatalf("NewFrameWriter: %v", err)
	}

	name, err := fw.WriteFrame(0, testImage())
	if err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}

	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(data) < 12 || !bytes.Equal(data[0:4], []byte("RIFF")) || !bytes.Equal(data[8:12], []byte("WEBP")) {
		t.Errorf("not a WebP container: % x", data[:min(len(data), 12)])
	}
}
