// Package config holds the window layout constants and the YAML settings
// file for the visualizer.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// Control strip below the canvas
	ControlHeight = 120
	ButtonWidth   = 110
	ButtonHeight  = 32
	ButtonGap     = 12

	// StatusHeight is reserved above the buttons for the status line.
	StatusHeight = 20
)

type Config struct {
	Canvas  CanvasConfig  `yaml:"canvas"`
	Visual  VisualConfig  `yaml:"visual"`
	Audio   AudioConfig   `yaml:"audio"`
	Logging LoggingConfig `yaml:"logging"`
}

type CanvasConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// ControlRegionRatio times Height is the y below which drags are ignored.
	ControlRegionRatio float64 `yaml:"control_region_ratio"`
	BorderWidth        float64 `yaml:"border_width"`
}

type VisualConfig struct {
	Mode             string  `yaml:"mode"`
	ReactivityWindow int     `yaml:"reactivity_window"`
	LoudThreshold    float64 `yaml:"loud_threshold"`
}

type AudioConfig struct {
	File string `yaml:"file"`
	// TapRingSize is how many stereo frames the level tap keeps.
	TapRingSize int `yaml:"tap_ring_size"`
	// LevelWindow is how many of those frames one level reading covers.
	LevelWindow     int     `yaml:"level_window"`
	SmoothingFactor float64 `yaml:"smoothing_factor"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the settings of the original sketch: an 800x400 canvas
// with the playhead border 3 pixels wide.
func Default() *Config {
	return &Config{
		Canvas: CanvasConfig{
			Width:              800,
			Height:             400,
			ControlRegionRatio: 1.2,
			BorderWidth:        3,
		},
		Visual: VisualConfig{
			Mode:             "linear",
			ReactivityWindow: 3,
			LoudThreshold:    0.3,
		},
		Audio: AudioConfig{
			TapRingSize:     8192,
			LevelWindow:     1024,
			SmoothingFactor: 0,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every problem at once.
func (c *Config) Validate() error {
	var errs []error
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		errs = append(errs, fmt.Errorf("canvas size %dx%d must be positive", c.Canvas.Width, c.Canvas.Height))
	}
	if c.Canvas.BorderWidth < 0 || c.Canvas.BorderWidth >= float64(c.Canvas.Width) {
		errs = append(errs, fmt.Errorf("border_width %v out of range", c.Canvas.BorderWidth))
	}
	if c.Canvas.ControlRegionRatio <= 0 {
		errs = append(errs, errors.New("control_region_ratio must be positive"))
	}
	if c.Visual.ReactivityWindow < 1 {
		errs = append(errs, errors.New("reactivity_window must be at least 1"))
	}
	if c.Visual.LoudThreshold < 0 || c.Visual.LoudThreshold > 1 {
		errs = append(errs, fmt.Errorf("loud_threshold %v outside [0,1]", c.Visual.LoudThreshold))
	}
	switch strings.ToLower(c.Visual.Mode) {
	case "linear", "circular":
	default:
		errs = append(errs, fmt.Errorf("unknown mode %q", c.Visual.Mode))
	}
	if c.Audio.TapRingSize < 1 || c.Audio.LevelWindow < 1 || c.Audio.LevelWindow > c.Audio.TapRingSize {
		errs = append(errs, fmt.Errorf("level_window %d must be within tap_ring_size %d", c.Audio.LevelWindow, c.Audio.TapRingSize))
	}
	if c.Audio.SmoothingFactor < 0 || c.Audio.SmoothingFactor >= 1 {
		errs = append(errs, fmt.Errorf("smoothing_factor %v outside [0,1)", c.Audio.SmoothingFactor))
	}
	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// ControlRegionY is the y coordinate below which pointer drags are ignored.
func (c *Config) ControlRegionY() float64 {
	return float64(c.Canvas.Height) * c.Canvas.ControlRegionRatio
}

// StatusY is the top of the status line, just below the canvas.
func (c *Config) StatusY() int {
	return c.Canvas.Height
}

// ButtonsY is the top of the button row. It sits below the status line and
// below the control region so clicks on buttons never move the playhead.
func (c *Config) ButtonsY() int {
	return max(c.StatusY()+StatusHeight, int(c.ControlRegionY())) + ButtonGap/2
}

// WindowHeight leaves room for the control strip below the canvas.
func (c *Config) WindowHeight() int {
	return max(c.Canvas.Height+ControlHeight, c.ButtonsY()+ButtonHeight+ButtonGap/2)
}

func (c *Config) LogLevel() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.Logging.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("logging level: %w", err)
	}
	return l, nil
}
