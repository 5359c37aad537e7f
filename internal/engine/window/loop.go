package window

import (
	"context"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/hypercube/internal/logger"
)

// RequestFrame queues cb to run on the next loop iteration with the SDL
// tick count in milliseconds. Only the latest request is kept.
func (w *Window) RequestFrame(cb func(ms float64)) {
	w.pending = cb
}

// OnResize registers a handler for drawable size changes. Handlers run
// on the loop thread before the next frame callback.
func (w *Window) OnResize(fn func(width, height int)) {
	w.onResize = append(w.onResize, fn)
}

// OnFrameEnd registers a handler that runs after each frame callback and
// before the buffer swap.
func (w *Window) OnFrameEnd(fn func()) {
	w.onFrame = append(w.onFrame, fn)
}

// Run pumps events and runs queued frames until the window is closed,
// ctx is cancelled or no frame is pending.
func (w *Window) Run(ctx context.Context) error {
	logger.Info("frame loop started")
	for {
		if err := ctx.Err(); err != nil {
			logger.Info("frame loop cancelled")
			return err
		}

		if w.input.Update() {
			logger.Info("window closed")
			return nil
		}
		if width, height, ok := w.input.LastResize(); ok {
			// Event sizes are in screen units; the drawable may be larger on HiDPI
			dw, dh := w.GetSize()
			logger.Debug("window resized",
				zap.Int("width", width),
				zap.Int("height", height),
				zap.Int("drawable_width", dw),
				zap.Int("drawable_height", dh),
			)
			for _, fn := range w.onResize {
				fn(dw, dh)
			}
		}

		cb := w.pending
		if cb == nil {
			logger.Info("frame loop idle, exiting")
			return nil
		}
		w.pending = nil
		cb(float64(sdl.GetTicks()))

		for _, fn := range w.onFrame {
			fn()
		}
		w.SwapBuffers()
	}
}
