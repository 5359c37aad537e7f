package draw

import "github.com/Faultbox/hypercube/pkg/math"

// Subpath is a run of connected points.
type Subpath struct {
	Points []math.Vec2
	Closed bool
}

// Path accumulates MoveTo/LineTo/ClosePath calls the way a canvas path
// does. Surfaces embed it and turn the result into pixels on Stroke.
type Path struct {
	subpaths []Subpath
}

// Begin discards the current path.
func (p *Path) Begin() {
	p.subpaths = p.subpaths[:0]
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.subpaths = append(p.subpaths, Subpath{Points: []math.Vec2{{X: x, Y: y}}})
}

// LineTo extends the current subpath. Without one it acts as MoveTo.
func (p *Path) LineTo(x, y float64) {
	if len(p.subpaths) == 0 {
		p.MoveTo(x, y)
		return
	}
	last := &p.subpaths[len(p.subpaths)-1]
	last.Points = append(last.Points, math.Vec2{X: x, Y: y})
}

// Close marks the current subpath closed and starts a new one at its
// first point.
func (p *Path) Close() {
	if len(p.subpaths) == 0 {
		return
	}
	last := &p.subpaths[len(p.subpaths)-1]
	if last.Closed {
		return
	}
	last.Closed = true
	start := last.Points[0]
	p.subpaths = append(p.subpaths, Subpath{Points: []math.Vec2{start}})
}

// Subpaths returns the subpaths that have at least one segment.
func (p *Path) Subpaths() []Subpath {
	out := make([]Subpath, 0, len(p.subpaths))
	for _, sp := range p.subpaths {
		if len(sp.Points) > 1 {
			out = append(out, sp)
		}
	}
	return out
}

// Segments returns every line segment of the path, closing segments
// included.
func (p *Path) Segments() [][2]math.Vec2 {
	var segs [][2]math.Vec2
	for _, sp := range p.Subpaths() {
		for i := 1; i < len(sp.Points); i++ {
			segs = append(segs, [2]math.Vec2{sp.Points[i-1], sp.Points[i]})
		}
		if sp.Closed {
			segs = append(segs, [2]math.Vec2{sp.Points[len(sp.Points)-1], sp.Points[0]})
		}
	}
	return segs
}
