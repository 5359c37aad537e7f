package draw

import "github.com/Faultbox/hypercube/pkg/math"

// Quad is a convex quadrilateral in drawing order.
type Quad [4]math.Vec2

// StrokeQuads expands each segment of the path into a rectangle of the
// given width, extended by half the width past both ends so corners meet
// without gaps. Segments with non-finite or coincident endpoints are
// dropped.
func StrokeQuads(p *Path, width float64) []Quad {
	if width <= 0 {
		return nil
	}
	half := width / 2
	segs := p.Segments()
	quads := make([]Quad, 0, len(segs))
	for _, s := range segs {
		a, b := s[0], s[1]
		if !a.IsFinite() || !b.IsFinite() {
			continue
		}
		dir := b.Sub(a).Normalize()
		if dir == (math.Vec2{}) {
			continue
		}
		along := dir.Scale(half)
		n := dir.Perp().Scale(half)
		a = a.Sub(along)
		b = b.Add(along)
		quads = append(quads, Quad{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)})
	}
	return quads
}

// Triangles flattens quads into a triangle list of x, y pairs, two
// triangles per quad.
func Triangles(quads []Quad) []float32 {
	out := make([]float32, 0, len(quads)*12)
	for _, q := range quads {
		for _, i := range [6]int{0, 1, 2, 0, 2, 3} {
			out = append(out, float32(q[i].X), float32(q[i].Y))
		}
	}
	return out
}
