// Package draw defines the 2D drawing surface the animation strokes onto,
// plus the path and stroke geometry shared by its implementations.
package draw

// Surface is a canvas-like drawing target. Coordinates are in pixels with
// Y pointing down, relative to the origin set by Translate.
type Surface interface {
	// Size reports the surface size in pixels.
	Size() (width, height int)
	// Resize changes the pixel size. The origin resets to the top-left.
	Resize(width, height int)
	// Translate moves the coordinate origin by (x, y).
	Translate(x, y float64)

	SetStrokeColor(c Color)
	SetStrokeWidth(w float64)
	// SetFilter sets the post effect applied to the whole surface.
	SetFilter(f Filter)

	// ClearRect clears a rectangle to the background.
	ClearRect(x, y, w, h float64)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	// Stroke outlines the current path with the stroke color and width.
	Stroke()
}

// Filter is a whole-surface blur followed by a contrast adjustment.
type Filter struct {
	Blur     float64 // gaussian radius in pixels, 0 disables
	Contrast float64 // 1 leaves the image unchanged, 0 is flat grey
}

// NoFilter leaves the surface untouched.
var NoFilter = Filter{Contrast: 1}

// IsIdentity reports whether the filter leaves pixels unchanged.
func (f Filter) IsIdentity() bool {
	return f.Blur <= 0 && f.Contrast == 1
}

// Centre resizes s and moves its origin to the middle. It is the handler
// for viewport resize notifications.
func Centre(s Surface, width, height int) {
	s.Resize(width, height)
	s.Translate(float64(width)/2, float64(height)/2)
}

// ClearAll clears the full extent of a surface whose origin is centred.
func ClearAll(s Surface) {
	w, h := s.Size()
	s.ClearRect(-float64(w)/2, -float64(h)/2, float64(w), float64(h))
}
