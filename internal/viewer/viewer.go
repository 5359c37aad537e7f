// Package viewer shows the animation in an SDL2 window with an OpenGL
// surface.
package viewer

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/hypercube/internal/app"
	"github.com/Faultbox/hypercube/internal/config"
	"github.com/Faultbox/hypercube/internal/engine/animation"
	"github.com/Faultbox/hypercube/internal/engine/draw"
	"github.com/Faultbox/hypercube/internal/engine/renderer"
	"github.com/Faultbox/hypercube/internal/engine/window"
	"github.com/Faultbox/hypercube/internal/logger"
)

// Viewer shows the animation in a window until it is closed.
type Viewer struct {
	config  *config.Config
	window  *window.Window
	surface *renderer.Surface
	driver  *animation.Driver
}

// New opens the window and prepares the GL surface.
func New(cfg *config.Config) (*Viewer, error) {
	logger.Info("initializing viewer",
		zap.String("title", cfg.Graphics.Title),
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	v := &Viewer{config: cfg}

	// Create window (this also creates OpenGL context)
	var err error
	v.window, err = window.New(window.Config{
		Title:      cfg.Graphics.Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The drawable can differ from the requested size (HiDPI, fullscreen)
	width, height := v.window.GetSize()

	// Create surface (AFTER window, since OpenGL context must exist)
	v.surface, err = renderer.New(renderer.Config{
		Width:      width,
		Height:     height,
		Background: app.Background(cfg.Style),
	})
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	draw.Centre(v.surface, width, height)
	app.ApplyStyle(v.surface, cfg.Style)

	v.window.OnResize(func(w, h int) {
		draw.Centre(v.surface, w, h)
	})
	v.window.OnFrameEnd(v.surface.Present)

	v.driver = animation.NewDriver(app.DriverConfig(cfg.Animation), v.surface, app.Camera(cfg.Camera), v.window)

	logger.Info("viewer initialized successfully")
	return v, nil
}

// Run animates until the window closes or ctx is cancelled.
func (v *Viewer) Run(ctx context.Context) error {
	v.driver.Start()
	defer v.driver.Stop()

	err := v.window.Run(ctx)
	logger.Info("viewer stopped", zap.Uint64("frames", v.driver.Frames()))
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("frame loop: %w", err)
	}
	return nil
}

// Close releases the surface and the window.
func (v *Viewer) Close() {
	logger.Info("closing viewer")
	if v.surface != nil {
		v.surface.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}
