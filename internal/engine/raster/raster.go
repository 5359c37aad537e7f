// Package raster is a software draw.Surface that rasterizes strokes into
// an in-memory image, for headless rendering and tests.
package raster

import (
	"image"
	"image/color"
	stdmath "math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/Faultbox/hypercube/internal/engine/draw"
	"github.com/Faultbox/hypercube/pkg/math"
)

var _ draw.Surface = (*Surface)(nil)

// Surface draws into an RGBA canvas Supersample times larger than its
// reported size. Image downsamples and applies the filter.
type Surface struct {
	width, height int
	supersample   int
	origin        math.Vec2
	background    color.RGBA

	strokeColor draw.Color
	strokeWidth float64
	filter      draw.Filter
	path        draw.Path

	canvas *image.RGBA
	raster *vector.Rasterizer
}

// New creates a surface of the given size. supersample below 1 means 1.
func New(width, height, supersample int, background draw.Color) *Surface {
	if supersample < 1 {
		supersample = 1
	}
	s := &Surface{
		supersample: supersample,
		background:  premultiply(background),
		strokeColor: draw.ColorBlack,
		strokeWidth: 1,
		filter:      draw.NoFilter,
		raster:      vector.NewRasterizer(0, 0),
	}
	s.Resize(width, height)
	return s
}

// Size reports the surface size in output pixels.
func (s *Surface) Size() (int, int) {
	return s.width, s.height
}

// Resize reallocates the canvas filled with the background. The origin
// returns to the top-left; stroke style and filter are kept.
func (s *Surface) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	s.width, s.height = width, height
	s.origin = math.Vec2{}
	s.canvas = image.NewRGBA(image.Rect(0, 0, width*s.supersample, height*s.supersample))
	xdraw.Draw(s.canvas, s.canvas.Bounds(), image.NewUniform(s.background), image.Point{}, xdraw.Src)
}

// Translate moves the origin by (x, y).
func (s *Surface) Translate(x, y float64) {
	s.origin = s.origin.Add(math.Vec2{X: x, Y: y})
}

func (s *Surface) SetStrokeColor(c draw.Color) { s.strokeColor = c }
func (s *Surface) SetStrokeWidth(w float64)    { s.strokeWidth = w }
func (s *Surface) SetFilter(f draw.Filter)     { s.filter = f }

// ClearRect fills a rectangle with the background.
func (s *Surface) ClearRect(x, y, w, h float64) {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	lo := s.toCanvas(math.Vec2{X: x, Y: y})
	hi := s.toCanvas(math.Vec2{X: x + w, Y: y + h})
	r := image.Rect(
		int(stdmath.Floor(lo.X)), int(stdmath.Floor(lo.Y)),
		int(stdmath.Ceil(hi.X)), int(stdmath.Ceil(hi.Y)),
	).Intersect(s.canvas.Bounds())
	if r.Empty() {
		return
	}
	xdraw.Draw(s.canvas, r, image.NewUniform(s.background), image.Point{}, xdraw.Src)
}

func (s *Surface) BeginPath()          { s.path.Begin() }
func (s *Surface) MoveTo(x, y float64) { s.path.MoveTo(x, y) }
func (s *Surface) LineTo(x, y float64) { s.path.LineTo(x, y) }
func (s *Surface) ClosePath()          { s.path.Close() }

// Stroke composites the outline of the current path over the canvas.
// Overlapping segment quads share winding, so joins are not painted twice.
func (s *Surface) Stroke() {
	quads := draw.StrokeQuads(&s.path, s.strokeWidth)
	if len(quads) == 0 {
		return
	}

	b := s.canvas.Bounds()
	if b.Empty() {
		return
	}
	s.raster.Reset(b.Dx(), b.Dy())
	limit := float64(4 * (b.Dx() + b.Dy()))
	for _, q := range quads {
		if !s.inReach(q, limit) {
			continue
		}
		p := s.toCanvas(q[0])
		s.raster.MoveTo(float32(p.X), float32(p.Y))
		for _, v := range q[1:] {
			p = s.toCanvas(v)
			s.raster.LineTo(float32(p.X), float32(p.Y))
		}
		s.raster.ClosePath()
	}
	s.raster.DrawOp = xdraw.Over
	s.raster.Draw(s.canvas, b, image.NewUniform(s.strokeColor.NRGBA()), image.Point{})
}

// Image returns the surface at output resolution with the filter applied.
func (s *Surface) Image() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	if s.supersample == 1 {
		copy(out.Pix, s.canvas.Pix)
	} else {
		xdraw.CatmullRom.Scale(out, out.Bounds(), s.canvas, s.canvas.Bounds(), xdraw.Src, nil)
	}
	return applyFilter(out, s.filter)
}

// inReach reports whether every corner of q lies within limit canvas
// pixels of the canvas. The rasterizer walks every row a quad spans, so
// quads from near-singular projections are dropped.
func (s *Surface) inReach(q draw.Quad, limit float64) bool {
	for _, v := range q {
		p := s.toCanvas(v)
		if stdmath.Abs(p.X) > limit || stdmath.Abs(p.Y) > limit {
			return false
		}
	}
	return true
}

// toCanvas maps an origin-relative point to canvas pixels.
func (s *Surface) toCanvas(p math.Vec2) math.Vec2 {
	return s.origin.Add(p).Scale(float64(s.supersample))
}

func premultiply(c draw.Color) color.RGBA {
	r, g, b, a := c.NRGBA().RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}
