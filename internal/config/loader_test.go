package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, DefaultPongConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pong.yaml")
	data := []byte("field:\n  width: 1024\nball:\n  speed_up: 1.5\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1024.0, cfg.Field.Width)
	assert.Equal(t, 1.5, cfg.Ball.SpeedUp)
	// Unset keys keep their defaults
	assert.Equal(t, 600.0, cfg.Field.Height)
	assert.Equal(t, 100.0, cfg.Paddles.Height)
}

func TestLoadCustomPathMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadCustomPathInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("field: [1, 2"), 0o600))

	_, err := Load(path)
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultPongConfig(), cfg)
}

func TestLoadLocalConfigsDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "pong.yaml"), []byte("display:\n  fps: 30\n"), 0o600))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Display.FPS)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*PongConfig)
		wantErr string
	}{
		{"defaults", func(*PongConfig) {}, ""},
		{"zero width", func(c *PongConfig) { c.Field.Width = 0 }, "field.width"},
		{"negative paddle", func(c *PongConfig) { c.Paddles.Height = -1 }, "paddles.height"},
		{"zero serve speed", func(c *PongConfig) { c.Ball.ServeSpeed = 0 }, "ball.serve_speed"},
		{"negative serve speed", func(c *PongConfig) { c.Ball.ServeSpeed = -200 }, "ball.serve_speed"},
		{"negative inset", func(c *PongConfig) { c.Paddles.Inset = -1 }, "paddles.inset"},
		{"zero inset", func(c *PongConfig) { c.Paddles.Inset = 0 }, ""},
		{"zero fps", func(c *PongConfig) { c.Display.FPS = 0 }, "display.fps"},
		{"no launch", func(c *PongConfig) { c.Ball.LaunchX, c.Ball.LaunchY = 0, 0 }, "cannot both be zero"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultPongConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}
