package animation

import (
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/hypercube/internal/engine/camera"
	"github.com/Faultbox/hypercube/internal/engine/draw"
	"github.com/Faultbox/hypercube/internal/logger"
)

// Config holds driver settings.
type Config struct {
	Speeds      Speeds
	EdgeDivisor float64
}

// Driver advances the rotation and redraws the solid on every frame the
// scheduler hands it. It runs until Stop is called.
type Driver struct {
	config  Config
	surface draw.Surface
	camera  *camera.Rig
	sched   Scheduler

	state   State
	stopped atomic.Bool
	frames  atomic.Uint64

	// OnFrame, when set, runs after each drawn frame.
	OnFrame func(frame uint64, ms float64)

	fpsCount int
	fpsTimer time.Time
}

// NewDriver creates a driver. Nothing is drawn until Start.
func NewDriver(cfg Config, s draw.Surface, cam *camera.Rig, sched Scheduler) *Driver {
	return &Driver{
		config:  cfg,
		surface: s,
		camera:  cam,
		sched:   sched,
	}
}

// Start requests the first frame.
func (d *Driver) Start() {
	d.stopped.Store(false)
	d.fpsTimer = time.Now()
	logger.Debug("animation started",
		zap.Float64("speed_y", d.config.Speeds.Y),
		zap.Float64("speed_w", d.config.Speeds.W),
	)
	d.sched.RequestFrame(d.Frame)
}

// Stop keeps the driver from requesting further frames. A frame already
// running completes. Safe to call from any goroutine.
func (d *Driver) Stop() {
	if d.stopped.CompareAndSwap(false, true) {
		logger.Debug("animation stopped", zap.Uint64("frames", d.frames.Load()))
	}
}

// Stopped reports whether Stop was called.
func (d *Driver) Stopped() bool {
	return d.stopped.Load()
}

// State returns a copy of the rotation state.
func (d *Driver) State() State {
	return d.state
}

// Frames returns how many frames have been drawn. Safe to call from any
// goroutine.
func (d *Driver) Frames() uint64 {
	return d.frames.Load()
}

// Frame is the scheduler callback: advance, draw, reschedule.
func (d *Driver) Frame(ms float64) {
	if d.stopped.Load() {
		return
	}

	d.state.Advance(ms, d.config.Speeds)
	Render(d.surface, d.camera, d.state.Rotation, d.config.EdgeDivisor)
	frame := d.frames.Add(1)

	if d.OnFrame != nil {
		d.OnFrame(frame, ms)
	}
	d.countFPS()

	if !d.stopped.Load() {
		d.sched.RequestFrame(d.Frame)
	}
}

func (d *Driver) countFPS() {
	d.fpsCount++
	if time.Since(d.fpsTimer) >= time.Second {
		logger.Debug("fps",
			zap.Int("count", d.fpsCount),
			zap.Float64("ry", d.state.Rotation.Y),
			zap.Float64("rw", d.state.Rotation.W),
		)
		d.fpsCount = 0
		d.fpsTimer = time.Now()
	}
}
