// Package app turns configuration into the camera, style and driver
// settings, and runs the headless frame exporter.
package app

import (
	"github.com/Faultbox/hypercube/internal/config"
	"github.com/Faultbox/hypercube/internal/engine/animation"
	"github.com/Faultbox/hypercube/internal/engine/camera"
	"github.com/Faultbox/hypercube/internal/engine/draw"
)

// Camera builds the pinhole rig from config.
func Camera(c config.CameraConfig) *camera.Rig {
	return camera.New(c.FocalLength, c.WFocalLength).WithOrientation(c.RotX, c.RotY, c.RotZ)
}

// DriverConfig converts the animation section.
func DriverConfig(c config.AnimationConfig) animation.Config {
	return animation.Config{
		Speeds:      animation.Speeds{Y: c.SpeedY, W: c.SpeedW},
		EdgeDivisor: c.EdgeDivisor,
	}
}

// Background returns the clear color.
func Background(c config.StyleConfig) draw.Color {
	if len(c.Background) == 0 {
		return draw.ColorBlack
	}
	return draw.FromSlice(c.Background)
}

// ApplyStyle sets stroke color, width and filter on a surface.
func ApplyStyle(s draw.Surface, c config.StyleConfig) {
	s.SetStrokeColor(draw.FromSlice(c.StrokeColor))
	s.SetStrokeWidth(c.LineWidth)
	s.SetFilter(draw.Filter{Blur: c.Blur, Contrast: c.Contrast})
}
