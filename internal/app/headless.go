package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/hypercube/internal/config"
	"github.com/Faultbox/hypercube/internal/engine/animation"
	"github.com/Faultbox/hypercube/internal/engine/draw"
	"github.com/Faultbox/hypercube/internal/engine/raster"
	"github.com/Faultbox/hypercube/internal/export"
	"github.com/Faultbox/hypercube/internal/logger"
)

// RenderFrames draws cfg.Export.Frames frames on a software surface at a
// fixed frame rate and writes each one to disk. It returns the number of
// frames written.
func RenderFrames(ctx context.Context, cfg *config.Config) (int, error) {
	if cfg.Export.Frames <= 0 {
		logger.Warn("no frames requested")
		return 0, nil
	}

	writer, err := export.NewFrameWriter(cfg.Export.OutputDir, cfg.Export.Prefix, cfg.Export.Format)
	if err != nil {
		return 0, fmt.Errorf("creating frame writer: %w", err)
	}

	width, height := cfg.Graphics.Width, cfg.Graphics.Height
	surface := raster.New(width, height, cfg.Export.Supersample, Background(cfg.Style))
	draw.Centre(surface, width, height)
	ApplyStyle(surface, cfg.Style)

	sched := animation.NewStepScheduler(cfg.Export.FPS)
	driver := animation.NewDriver(DriverConfig(cfg.Animation), surface, Camera(cfg.Camera), sched)

	var writeErr error
	driver.OnFrame = func(frame uint64, ms float64) {
		if _, err := writer.WriteFrame(int(frame-1), surface.Image()); err != nil {
			writeErr = fmt.Errorf("frame %d: %w", frame-1, err)
			driver.Stop()
			return
		}
		if int(frame) >= cfg.Export.Frames {
			driver.Stop()
		}
	}

	logger.Info("rendering frames",
		zap.Int("frames", cfg.Export.Frames),
		zap.Float64("fps", cfg.Export.FPS),
		zap.Int("width", width),
		zap.Int("height", height),
		zap.String("format", cfg.Export.Format),
		zap.String("output_dir", cfg.Export.OutputDir),
	)

	driver.Start()
	for sched.Pending() {
		if err := ctx.Err(); err != nil {
			driver.Stop()
			return writer.Written(), err
		}
		sched.Step()
	}

	if writeErr != nil {
		return writer.Written(), writeErr
	}
	logger.Info("frames written", zap.Int("count", writer.Written()))
	return writer.Written(), nil
}
