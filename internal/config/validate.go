package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/hypercube/internal/export"
)

// Validate reports every setting that cannot produce a picture.
func (c *Config) Validate() error {
	var errs []error
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics: size %dx%d must be positive", c.Graphics.Width, c.Graphics.Height))
	}
	if c.Camera.FocalLength <= 0 {
		errs = append(errs, fmt.Errorf("camera: focal_length %v must be positive", c.Camera.FocalLength))
	}
	if c.Camera.WFocalLength <= 0 {
		errs = append(errs, fmt.Errorf("camera: w_focal_length %v must be positive", c.Camera.WFocalLength))
	}
	if c.Animation.EdgeDivisor <= 0 {
		errs = append(errs, fmt.Errorf("animation: edge_divisor %v must be positive", c.Animation.EdgeDivisor))
	}
	if c.Style.LineWidth < 0 || c.Style.Blur < 0 || c.Style.Contrast < 0 {
		errs = append(errs, errors.New("style: line_width, blur and contrast must not be negative"))
	}
	switch c.Export.Format {
	case export.FormatWebP, export.FormatPNG:
	default:
		errs = append(errs, fmt.Errorf("export: unknown format %q", c.Export.Format))
	}
	if c.Export.Frames < 0 || c.Export.FPS <= 0 || c.Export.Supersample < 1 {
		errs = append(errs, errors.New("export: frames must be >= 0, fps > 0, supersample >= 1"))
	}
	return errors.Join(errs...)
}
