// Package main renders the hypercube animation to numbered image files
// without a display.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Faultbox/hypercube/internal/app"
	"github.com/Faultbox/hypercube/internal/config"
	"github.com/Faultbox/hypercube/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if saved, err := config.SaveRequested(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	} else if saved {
		return
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	n, err := app.RenderFrames(ctx, cfg)
	if err != nil {
		logger.Error("render failed", zap.Error(err), zap.Int("written", n))
		os.Exit(1)
	}

	logger.Info("render complete", zap.Int("frames", n), zap.String("dir", cfg.Export.OutputDir))
}
