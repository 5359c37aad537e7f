// Package export writes rendered frames to disk as numbered WebP or PNG
// files.
package export

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/HugoSmits86/nativewebp"
	"go.uber.org/zap"

	"github.com/Faultbox/hypercube/internal/logger"
)

// Supported formats.
const (
	FormatWebP = "webp"
	FormatPNG  = "png"
)

// FrameWriter saves a frame sequence as prefix_00000.ext, prefix_00001.ext
// and so on.
type FrameWriter struct {
	outputDir string
	prefix    string
	format    string
	written   int
}

// NewFrameWriter creates the output directory and returns a writer.
func NewFrameWriter(outputDir, prefix, format string) (*FrameWriter, error) {
	switch format {
	case FormatWebP, FormatPNG:
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
	if prefix == "" {
		prefix = "frame"
	}

	if outputDir != "" {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return nil, fmt.Errorf("creating output dir: %w", err)
		}
	}

	return &FrameWriter{
		outputDir: outputDir,
		prefix:    prefix,
		format:    format,
	}, nil
}

// Filename returns the path frame n is written to.
func (fw *FrameWriter) Filename(n int) string {
	filename := fmt.Sprintf("%s_%05d.%s", fw.prefix, n, fw.format)
	if fw.outputDir != "" {
		filename = filepath.Join(fw.outputDir, filename)
	}
	return filename
}

// Written returns how many frames were saved.
func (fw *FrameWriter) Written() int {
	return fw.written
}

// WriteFrame encodes img as frame n.
func (fw *FrameWriter) WriteFrame(n int, img image.Image) (string, error) {
	filename := fw.Filename(n)

	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	buf := bufio.NewWriter(file)
	if err := encode(buf, img, fw.format); err != nil {
		return "", err
	}
	if err := buf.Flush(); err != nil {
		return "", fmt.Errorf("writing %s: %w", filename, err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", filename, err)
	}

	fw.written++
	logger.Debug("frame written", zap.String("file", filename), zap.Int("frame", n))
	return filename, nil
}

func encode(w *bufio.Writer, img image.Image, format string) error {
	switch format {
	case FormatWebP:
		if err := nativewebp.Encode(w, img, nil); err != nil {
			return fmt.Errorf("encoding WebP: %w", err)
		}
	case FormatPNG:
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("encoding PNG: %w", err)
		}
	}
	return nil
}
