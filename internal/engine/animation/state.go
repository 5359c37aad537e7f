// Package animation drives the rotating hypercube: it advances rotation
// with wall-clock time and redraws the solid once per frame.
package animation

import (
	stdmath "math"

	"github.com/Faultbox/hypercube/internal/engine/tesseract"
	"github.com/Faultbox/hypercube/pkg/math"
)

// Default angular speeds in radians per second.
const (
	DefaultSpeedY = 0.05
	DefaultSpeedW = 0.03
)

// Speeds are the angular speeds of the driven angles.
type Speeds struct {
	Y float64 // 3D yaw
	W float64 // Y-W plane
}

// DefaultSpeeds returns the standard speeds.
func DefaultSpeeds() Speeds {
	return Speeds{Y: DefaultSpeedY, W: DefaultSpeedW}
}

// State is the only data carried from one frame to the next.
type State struct {
	Rotation tesseract.Rotation

	last    float64
	started bool
}

// Advance moves the clock to t milliseconds and turns the driven angles.
// The first call only records t. A clock that runs backwards counts as no
// elapsed time. A non-finite t is ignored and not recorded. Returns the
// elapsed seconds used.
func (s *State) Advance(t float64, sp Speeds) float64 {
	if stdmath.IsNaN(t) || stdmath.IsInf(t, 0) {
		return 0
	}
	dt := 0.0
	if s.started {
		dt = (t - s.last) / 1000
		if dt < 0 || stdmath.IsInf(dt, 0) {
			dt = 0
		}
	}
	s.last = t
	s.started = true

	s.Rotation.Y = math.WrapAngle(s.Rotation.Y - sp.Y*dt)
	s.Rotation.W = math.WrapAngle(s.Rotation.W - sp.W*dt)
	return dt
}

// Last returns the timestamp of the previous Advance.
func (s *State) Last() float64 {
	return s.last
}
