package animation

import (
	gomath "math"
	"math/rand"
	"testing"

	"github.com/Faultbox/hypercube/pkg/math"
)

func TestAdvanceFirstFrameIsStill(t *testing.T) {
	var s State
	dt := s.Advance(123456, DefaultSpeeds())

	if dt != 0 {
		t.Errorf("first dt = %v, want 0", dt)
	}
	if !s.Rotation.IsZero() {
		t.Errorf("rotation changed on first frame: %+v", s.Rotation)
	}
	if s.Last() != 123456 {
		t.Errorf("Last() = %v, want 123456", s.Last())
	}
}

func TestAdvanceUsesElapsedSeconds(t *testing.T) {
	var s State
	sp := Speeds{Y: 0.5, W: 0.25}
	s.Advance(1000, sp)
	dt := s.Advance(3000, sp)

	if dt != 2 {
		t.Fatalf("dt = %v, want 2", dt)
	}
	wantY := math.WrapAngle(-1)
	wantW := math.WrapAngle(-0.5)
	if gomath.Abs(s.Rotation.Y-wantY) > 1e-12 {
		t.Errorf("Y = %v, want %v", s.Rotation.Y, wantY)
	}
	if gomath.Abs(s.Rotation.W-wantW) > 1e-12 {
		t.Errorf("W = %v, want %v", s.Rotation.W, wantW)
	}
	if s.Rotation.X != 0 || s.Rotation.Z != 0 {
		t.Errorf("undriven angles moved: %+v", s.Rotation)
	}
}

func TestAdvanceBackwardsClock(t *testing.T) {
	var s State
	sp := DefaultSpeeds()
	s.Advance(5000, sp)
	s.Advance(6000, sp)
	before := s.Rotation

	if dt := s.Advance(4000, sp); dt != 0 {
		t.Errorf("backwards dt = %v, want 0", dt)
	}
	if s.Rotation != before {
		t.Errorf("rotation changed on backwards clock: %+v -> %+v", before, s.Rotation)
	}
}

func TestAdvanceKeepsAnglesWrapped(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	sp := Speeds{Y: 3.7, W: -11.3}

	var s State
	t0 := 0.0
	for i := 0; i < 5000; i++ {
		// mix of tiny, normal and huge gaps
		switch i % 3 {
		case 0:
			t0 += rng.Float64()
		case 1:
			t0 += rng.Float64() * 50
		default:
			t0 += rng.Float64() * 1e9
		}
		s.Advance(t0, sp)
		for _, a := range []float64{s.Rotation.Y, s.Rotation.W} {
			if a < 0 || a >= math.TwoPi {
				t.Fatalf("step %d: angle %v outside [0, 2π)", i, a)
			}
		}
	}
}

func TestAdvanceHugeDelta(t *testing.T) {
	var s State
	sp := DefaultSpeeds()
	s.Advance(0, sp)
	s.Advance(1e15, sp)

	if s.Rotation.Y < 0 || s.Rotation.Y >= math.TwoPi {
		t.Errorf("Y = %v outside [0, 2π)", s.Rotation.Y)
	}
	if s.Rotation.W < 0 || s.Rotation.W >= math.TwoPi {
		t.Errorf("W = %v outside [0, 2π)", s.Rotation.W)
	}
}

func TestAdvanceIgnoresNonFiniteClock(t *testing.T) {
	var s State
	sp := DefaultSpeeds()
	s.Advance(0, sp)
	s.Advance(20000, sp)
	before := s.Rotation
	if before.Y == 0 || before.W == 0 {
		t.Fatalf("angles did not advance: %+v", before)
	}

	for _, bad := range []float64{gomath.NaN(), gomath.Inf(1), gomath.Inf(-1)} {
		if dt := s.Advance(bad, sp); dt != 0 {
			t.Errorf("Advance(%v) dt = %v, want 0", bad, dt)
		}
		if s.Rotation != before {
			t.Errorf("Advance(%v) changed rotation: %+v -> %+v", bad, before, s.Rotation)
		}
		if s.Last() != 20000 {
			t.Errorf("Advance(%v) recorded Last() = %v", bad, s.Last())
		}
	}

	// The next valid frame advances from the last valid one
	dt := s.Advance(20016, sp)
	if gomath.Abs(dt-0.016) > 1e-12 {
		t.Errorf("dt after bad frames = %v, want 0.016", dt)
	}
	wantY := math.WrapAngle(before.Y - sp.Y*dt)
	if gomath.Abs(s.Rotation.Y-wantY) > 1e-12 {
		t.Errorf("Y = %v, want %v", s.Rotation.Y, wantY)
	}
}
