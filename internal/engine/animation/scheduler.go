package animation

// Scheduler invokes a callback once per display refresh with a
// monotonically increasing timestamp in milliseconds. A callback that
// wants another frame requests it again from inside itself.
type Scheduler interface {
	RequestFrame(cb func(ms float64))
}

// StepScheduler is a Scheduler with a synthetic clock advancing by a fixed
// step each frame. It has no display and runs frames when Step is called.
type StepScheduler struct {
	StepMS  float64
	now     float64
	pending func(ms float64)
}

// NewStepScheduler creates a scheduler ticking at fps frames per second.
func NewStepScheduler(fps float64) *StepScheduler {
	if fps <= 0 {
		fps = 60
	}
	return &StepScheduler{StepMS: 1000 / fps}
}

// RequestFrame queues cb for the next Step.
func (s *StepScheduler) RequestFrame(cb func(ms float64)) {
	s.pending = cb
}

// Pending reports whether a frame is queued.
func (s *StepScheduler) Pending() bool {
	return s.pending != nil
}

// Now returns the timestamp the next frame will receive.
func (s *StepScheduler) Now() float64 {
	return s.now
}

// Step runs the queued frame, if any, and advances the clock. It reports
// whether a frame ran.
func (s *StepScheduler) Step() bool {
	cb := s.pending
	if cb == nil {
		return false
	}
	s.pending = nil
	cb(s.now)
	s.now += s.StepMS
	return true
}
