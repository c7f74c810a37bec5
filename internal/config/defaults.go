package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the default Pong configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Field: FieldConfig{
			Width:  800,
			Height: 600,
		},
		Ball: BallConfig{
			Width:      10,
			Height:     10,
			ServeSpeed: 200,
			LaunchX:    300,
			LaunchY:    400,
			SpeedUp:    1.08,
			Spin:       300,
		},
		Paddles: PaddlesConfig{
			Width:  15,
			Height: 100,
			Inset:  40,
		},
		Font: FontConfig{
			Pixel: 10,
			Top:   20,
		},
		Display: DisplayConfig{
			FPS:  60,
			Seed: 0,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultPongYAML
}
