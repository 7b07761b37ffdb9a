// Package config holds the application settings: built-in defaults, an
// optional YAML file and command-line overrides applied by main.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"ChartAnimator/internal/state"
)

var ErrInvalid = errors.New("invalid config")

type Window struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

type Config struct {
	Speed         float64 `yaml:"speed"`
	CaptureRadius float64 `yaml:"capture_radius"`
	FrameRate     int     `yaml:"frame_rate"`
	Window        Window  `yaml:"window"`
	Image         string  `yaml:"image"`
	WatchBackdrop bool    `yaml:"watch_backdrop"`
}

func Default() Config {
	return Config{
		Speed:         state.DefaultSpeed,
		CaptureRadius: state.DefaultCaptureRadius,
		FrameRate:     60,
		Window:        Window{Width: 1024, Height: 768},
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	log.Printf("[CONFIG] Loaded %s", path)
	return cfg, nil
}

// Validate clamps the speed into the supported range and rejects values
// that cannot be used.
func (c *Config) Validate() error {
	c.Speed = state.ClampSpeed(c.Speed)
	if c.CaptureRadius <= 0 {
		return fmt.Errorf("%w: capture_radius must be positive, got %v", ErrInvalid, c.CaptureRadius)
	}
	if c.FrameRate <= 0 {
		return fmt.Errorf("%w: frame_rate must be positive, got %d", ErrInvalid, c.FrameRate)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size must be positive, got %vx%v", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	return nil
}

// FrameInterval is the time between animation frames.
func (c Config) FrameInterval() time.Duration {
	if c.FrameRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.FrameRate)
}
