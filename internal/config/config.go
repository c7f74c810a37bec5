// Package config provides YAML-based configuration loading for the pong
// simulation and its front-ends.
package config

import (
	"errors"
	"fmt"
)

// PongConfig contains all tunable parameters of a game session.
type PongConfig struct {
	Field   FieldConfig   `yaml:"field"`
	Ball    BallConfig    `yaml:"ball"`
	Paddles PaddlesConfig `yaml:"paddles"`
	Font    FontConfig    `yaml:"font"`
	Display DisplayConfig `yaml:"display"`
}

// FieldConfig defines the play field bounds.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BallConfig defines the ball size and its launch and hit physics.
type BallConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	ServeSpeed float64 `yaml:"serve_speed"`
	LaunchX    float64 `yaml:"launch_x"`
	LaunchY    float64 `yaml:"launch_y"`
	SpeedUp    float64 `yaml:"speed_up"`
	Spin       float64 `yaml:"spin"`
}

// PaddlesConfig defines paddle dimensions and placement.
type PaddlesConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Inset  float64 `yaml:"inset"` // Distance from the field edge to the paddle center
}

// FontConfig defines how score digits are drawn.
type FontConfig struct {
	Pixel float64 `yaml:"pixel"`
	Top   float64 `yaml:"top"`
}

// DisplayConfig defines front-end timing.
type DisplayConfig struct {
	FPS  int   `yaml:"fps"`
	Seed int64 `yaml:"seed"` // 0 means seed from the clock
}

// Validate reports every parameter that would make the simulation meaningless.
func (c PongConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("field.width", c.Field.Width)
	positive("field.height", c.Field.Height)
	positive("ball.width", c.Ball.Width)
	positive("ball.height", c.Ball.Height)
	positive("ball.serve_speed", c.Ball.ServeSpeed)
	positive("ball.speed_up", c.Ball.SpeedUp)
	positive("paddles.width", c.Paddles.Width)
	positive("paddles.height", c.Paddles.Height)
	positive("font.pixel", c.Font.Pixel)
	positive("display.fps", float64(c.Display.FPS))

	if c.Paddles.Inset < 0 {
		errs = append(errs, fmt.Errorf("paddles.inset must not be negative, got %v", c.Paddles.Inset))
	}
	if c.Ball.LaunchX == 0 && c.Ball.LaunchY == 0 {
		errs = append(errs, errors.New("ball.launch_x and ball.launch_y cannot both be zero"))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}
