// Package renderer provides an OpenGL implementation of draw.Surface.
//
// Strokes are tessellated into triangles and drawn into an offscreen
// framebuffer. Present runs the filter as two post passes (horizontal
// blur, then vertical blur with contrast) into the default framebuffer.
package renderer

import (
	"fmt"
	stdmath "math"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/hypercube/internal/engine/draw"
	"github.com/Faultbox/hypercube/internal/engine/framebuffer"
	"github.com/Faultbox/hypercube/internal/engine/shader"
	"github.com/Faultbox/hypercube/internal/logger"
	"github.com/Faultbox/hypercube/pkg/math"
)

var _ draw.Surface = (*Surface)(nil)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	Background draw.Color
}

// Surface draws onto the current OpenGL context.
// IMPORTANT: Must be created AFTER the OpenGL context exists, and used
// only from the thread that owns it.
type Surface struct {
	width, height int
	origin        math.Vec2
	background    draw.Color

	strokeColor draw.Color
	strokeWidth float64
	filter      draw.Filter
	path        draw.Path

	lineShader *shader.Program
	postShader *shader.Program

	// Stroke triangles, refilled on every Stroke
	lineVAO uint32
	lineVBO uint32

	// Fullscreen quad for the post passes
	quadVAO uint32
	quadVBO uint32

	scene *framebuffer.Framebuffer
	blurH *framebuffer.Framebuffer
}

// New creates a GL surface of the given size with its origin at the
// top-left.
func New(cfg Config) (*Surface, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	s := &Surface{
		width:       cfg.Width,
		height:      cfg.Height,
		background:  cfg.Background,
		strokeColor: draw.ColorBlack,
		strokeWidth: 1,
		filter:      draw.NoFilter,
	}

	var err error
	if s.lineShader, err = shader.Compile("line", lineVertexSrc, lineFragmentSrc); err != nil {
		return nil, fmt.Errorf("create line shader: %w", err)
	}
	if s.postShader, err = shader.Compile("post", postVertexSrc, postFragmentSrc); err != nil {
		s.Close()
		return nil, fmt.Errorf("create post shader: %w", err)
	}

	s.createLineBuffers()
	s.createQuadBuffers()

	if s.scene, err = framebuffer.New(int32(cfg.Width), int32(cfg.Height)); err != nil {
		s.Close()
		return nil, fmt.Errorf("create scene target: %w", err)
	}
	if s.blurH, err = framebuffer.New(int32(cfg.Width), int32(cfg.Height)); err != nil {
		s.Close()
		return nil, fmt.Errorf("create blur target: %w", err)
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	s.scene.Bind()
	gl.ClearColor(s.background.R, s.background.G, s.background.B, s.background.A)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	return s, nil
}

func (s *Surface) createLineBuffers() {
	gl.GenVertexArrays(1, &s.lineVAO)
	gl.BindVertexArray(s.lineVAO)

	gl.GenBuffers(1, &s.lineVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.lineVBO)

	// Position attribute (location = 0): x, y in surface pixels
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, nil)
	gl.EnableVertexAttribArray(0)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

func (s *Surface) createQuadBuffers() {
	// Position (NDC) + UV, triangle strip
	vertices := []float32{
		-1, -1, 0, 0,
		1, -1, 1, 0,
		-1, 1, 0, 1,
		1, 1, 1, 1,
	}

	gl.GenVertexArrays(1, &s.quadVAO)
	gl.BindVertexArray(s.quadVAO)

	gl.GenBuffers(1, &s.quadVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.quadVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 4*4, nil)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 4*4, unsafe.Pointer(uintptr(2*4)))
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

// Close releases GL resources.
func (s *Surface) Close() {
	logger.Info("closing renderer")
	if s.lineVAO != 0 {
		gl.DeleteVertexArrays(1, &s.lineVAO)
	}
	if s.lineVBO != 0 {
		gl.DeleteBuffers(1, &s.lineVBO)
	}
	if s.quadVAO != 0 {
		gl.DeleteVertexArrays(1, &s.quadVAO)
	}
	if s.quadVBO != 0 {
		gl.DeleteBuffers(1, &s.quadVBO)
	}
	if s.scene != nil {
		s.scene.Destroy()
	}
	if s.blurH != nil {
		s.blurH.Destroy()
	}
	if s.lineShader != nil {
		s.lineShader.Delete()
	}
	if s.postShader != nil {
		s.postShader.Delete()
	}
}

// Size reports the surface size in pixels.
func (s *Surface) Size() (int, int) {
	return s.width, s.height
}

// Resize reallocates the offscreen targets. The origin returns to the
// top-left; stroke style and filter are kept.
func (s *Surface) Resize(width, height int) {
	s.width = width
	s.height = height
	s.origin = math.Vec2{}
	s.scene.Resize(int32(width), int32(height))
	s.blurH.Resize(int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Translate moves the origin by (x, y).
func (s *Surface) Translate(x, y float64) {
	s.origin = s.origin.Add(math.Vec2{X: x, Y: y})
}

func (s *Surface) SetStrokeColor(c draw.Color) { s.strokeColor = c }
func (s *Surface) SetStrokeWidth(w float64)    { s.strokeWidth = w }
func (s *Surface) SetFilter(f draw.Filter)     { s.filter = f }

// ClearRect clears a rectangle of the offscreen target to the background.
func (s *Surface) ClearRect(x, y, w, h float64) {
	x0, y0, x1, y1 := pixelRect(s.origin, x, y, w, h, s.width, s.height)
	if x1 <= x0 || y1 <= y0 {
		return
	}

	s.scene.Bind()
	gl.Enable(gl.SCISSOR_TEST)
	// GL scissor rows count from the bottom
	gl.Scissor(int32(x0), int32(s.height-y1), int32(x1-x0), int32(y1-y0))
	gl.ClearColor(s.background.R, s.background.G, s.background.B, s.background.A)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.Disable(gl.SCISSOR_TEST)
}

func (s *Surface) BeginPath()          { s.path.Begin() }
func (s *Surface) MoveTo(x, y float64) { s.path.MoveTo(x, y) }
func (s *Surface) LineTo(x, y float64) { s.path.LineTo(x, y) }
func (s *Surface) ClosePath()          { s.path.Close() }

// Stroke draws the current path as triangles into the offscreen target.
func (s *Surface) Stroke() {
	vertices := draw.Triangles(draw.StrokeQuads(&s.path, s.strokeWidth))
	if len(vertices) == 0 {
		return
	}

	s.scene.Bind()
	s.lineShader.Use()
	s.lineShader.SetMat4("uProjection", projection(s.width, s.height, s.origin))
	c := s.strokeColor
	s.lineShader.SetVec4("uColor", c.R, c.G, c.B, c.A)

	gl.BindVertexArray(s.lineVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.lineVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(vertices)/2))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

// Present composites the offscreen target onto the default framebuffer
// with the current filter applied.
func (s *Surface) Present() {
	sigma, contrast := postParams(s.filter)
	width, height := s.scene.Size()

	gl.Disable(gl.BLEND)
	s.postShader.Use()
	s.postShader.SetInt("uTexture", 0)
	gl.BindVertexArray(s.quadVAO)

	// An identity filter is a single copy to screen
	source := s.scene
	if !s.filter.IsIdentity() {
		// Horizontal blur
		s.blurH.Bind()
		s.scene.BindTexture(0)
		s.postShader.SetVec2("uDirection", 1/float32(width), 0)
		s.postShader.SetFloat("uSigma", sigma)
		s.postShader.SetFloat("uContrast", 1)
		gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
		source = s.blurH
	} else {
		sigma = 0
	}

	// Vertical blur and contrast to screen
	source.Unbind()
	gl.Viewport(0, 0, width, height)
	source.BindTexture(0)
	s.postShader.SetVec2("uDirection", 0, 1/float32(height))
	s.postShader.SetFloat("uSigma", sigma)
	s.postShader.SetFloat("uContrast", contrast)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)

	gl.BindVertexArray(0)
	gl.Enable(gl.BLEND)
}

// projection maps surface pixels (origin-relative, Y down) to clip space.
func projection(width, height int, origin math.Vec2) math.Mat4 {
	return math.ScreenOrtho(width, height).Mul(math.Translate(float32(origin.X), float32(origin.Y), 0))
}

// pixelRect converts an origin-relative rectangle to clamped integer
// pixel bounds, Y down.
func pixelRect(origin math.Vec2, x, y, w, h float64, width, height int) (x0, y0, x1, y1 int) {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	x0 = clampInt(int(stdmath.Floor(origin.X+x)), 0, width)
	y0 = clampInt(int(stdmath.Floor(origin.Y+y)), 0, height)
	x1 = clampInt(int(stdmath.Ceil(origin.X+x+w)), 0, width)
	y1 = clampInt(int(stdmath.Ceil(origin.Y+y+h)), 0, height)
	return x0, y0, x1, y1
}

// postParams turns a filter into shader uniforms.
func postParams(f draw.Filter) (sigma, contrast float32) {
	sigma = float32(f.Blur)
	if sigma < 0 {
		sigma = 0
	}
	return sigma, float32(f.Contrast)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
