// Package config loads the editor configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Eirenarch/TypedBezier/internal/editor"
	"github.com/Eirenarch/TypedBezier/pkg/bezier"
)

// Defaults used when a field is absent from the file.
const (
	DefaultStep          = 0.01
	DefaultHitRadius     = 2.0
	DefaultDoubleClick   = 400 * time.Millisecond
	DefaultGridDivisions = 8
)

var (
	ErrInvalidStep        = errors.New("step must be in [1/1024, 1]")
	ErrInvalidHitRadius   = errors.New("hit_radius must be positive")
	ErrInvalidDoubleClick = errors.New("double_click must not be negative")
	ErrInvalidGrid        = errors.New("grid_divisions must not be negative")
)

// PointConfig is one control point in the file.
type PointConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Config is the editor configuration.
type Config struct {
	Step          float64       `yaml:"step"`
	HitRadius     float64       `yaml:"hit_radius"`
	DoubleClick   time.Duration `yaml:"double_click"`
	GridDivisions int           `yaml:"grid_divisions"`
	Script        string        `yaml:"script,omitempty"`
	ControlPoints []PointConfig `yaml:"control_points,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Step:          DefaultStep,
		HitRadius:     DefaultHitRadius,
		DoubleClick:   DefaultDoubleClick,
		GridDivisions: DefaultGridDivisions,
	}
}

// Load reads and validates the file at path. Fields missing from the file
// keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates YAML configuration data.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	switch {
	case !(c.Step >= editor.MinStep && c.Step <= editor.MaxStep):
		return fmt.Errorf("%w, got %v", ErrInvalidStep, c.Step)
	case !(c.HitRadius > 0):
		return fmt.Errorf("%w, got %v", ErrInvalidHitRadius, c.HitRadius)
	case c.DoubleClick < 0:
		return fmt.Errorf("%w, got %v", ErrInvalidDoubleClick, c.DoubleClick)
	case c.GridDivisions < 0:
		return fmt.Errorf("%w, got %d", ErrInvalidGrid, c.GridDivisions)
	}
	return nil
}

// Points converts the configured control points.
func (c *Config) Points() []bezier.Point {
	pts := make([]bezier.Point, len(c.ControlPoints))
	for i, p := range c.ControlPoints {
		pts[i] = bezier.Pt(p.X, p.Y)
	}
	return pts
}

// Curve builds a curve from the configured control points.
func (c *Config) Curve() *bezier.Curve {
	return bezier.New(c.Points()...)
}

// Marshal encodes the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
