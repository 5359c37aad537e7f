package draw

import "github.com/Faultbox/hypercube/pkg/math"

// ShowFace strokes a closed polygon through the given projected points in
// order. The points must already be in surface coordinates.
func ShowFace(s Surface, pts []math.Vec2) {
	if len(pts) == 0 {
		return
	}
	s.BeginPath()
	s.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		s.LineTo(p.X, p.Y)
	}
	s.ClosePath()
	s.Stroke()
}
