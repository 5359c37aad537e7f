// Package config handles loading and saving hypercube settings.
package config

import "github.com/Faultbox/hypercube/internal/export"

// Config holds all settings.
type Config struct {
	Graphics  GraphicsConfig  `yaml:"graphics"`
	Camera    CameraConfig    `yaml:"camera"`
	Animation AnimationConfig `yaml:"animation"`
	Style     StyleConfig     `yaml:"style"`
	Export    ExportConfig    `yaml:"export"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// GraphicsConfig holds window settings.
type GraphicsConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// CameraConfig holds the pinhole rig.
type CameraConfig struct {
	FocalLength  float64 `yaml:"focal_length"`   // 3D to 2D stage
	WFocalLength float64 `yaml:"w_focal_length"` // 4D to 3D stage
	RotX         float64 `yaml:"rot_x"`
	RotY         float64 `yaml:"rot_y"`
	RotZ         float64 `yaml:"rot_z"`
}

// AnimationConfig holds rotation speeds (radians per second) and sizing.
type AnimationConfig struct {
	SpeedY      float64 `yaml:"speed_y"`
	SpeedW      float64 `yaml:"speed_w"`
	EdgeDivisor float64 `yaml:"edge_divisor"` // edge length = width / divisor
}

// StyleConfig holds stroke and filter settings.
type StyleConfig struct {
	StrokeColor []float32 `yaml:"stroke_color"` // RGB or RGBA, 0..1
	Background  []float32 `yaml:"background"`
	LineWidth   float64   `yaml:"line_width"`
	Blur        float64   `yaml:"blur"`
	Contrast    float64   `yaml:"contrast"`
}

// ExportConfig holds headless rendering settings.
type ExportConfig struct {
	OutputDir   string  `yaml:"output_dir"`
	Prefix      string  `yaml:"prefix"`
	Format      string  `yaml:"format"` // webp or png
	Frames      int     `yaml:"frames"`
	FPS         float64 `yaml:"fps"`
	Supersample int     `yaml:"supersample"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Title:      "Hypercube",
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Camera: CameraConfig{
			FocalLength:  35,
			WFocalLength: 12,
		},
		Animation: AnimationConfig{
			SpeedY:      0.05,
			SpeedW:      0.03,
			EdgeDivisor: 5,
		},
		Style: StyleConfig{
			StrokeColor: []float32{1, 1, 1, 1},
			Background:  []float32{0, 0, 0, 1},
			LineWidth:   3,
			Blur:        4,
			Contrast:    1,
		},
		Export: ExportConfig{
			OutputDir:   "frames",
			Prefix:      "hypercube",
			Format:      export.FormatWebP,
			Frames:      120,
			FPS:         30,
			Supersample: 1,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
