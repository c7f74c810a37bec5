// pong is a paddle-and-ball game with terminal, desktop and headless front-ends.
//
// Usage:
//
//	pong play                      - Play in the terminal
//	pong play --frontend window    - Play in a desktop window
//	pong play --frontend headless  - Self-play without a display
//	pong frontends                 - List available front-ends
//	pong config                    - Print the default configuration
//
// Global flags:
//
//	--config <path>     - Custom configuration YAML
//	--width, --height   - Override the field size
//	--fps <rate>        - Set tick rate
//	--seed <value>      - Set RNG seed for reproducible serves and spin
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pong/internal/config"

	// Import front-ends to register them
	_ "github.com/vovakirdan/pong/internal/platform/headless"
	_ "github.com/vovakirdan/pong/internal/platform/tui"
	_ "github.com/vovakirdan/pong/internal/platform/window"
)

var (
	// Global flags
	flagConfig   string
	flagWidth    float64
	flagHeight   float64
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Pong - the classic paddle game",
	Long: `Pong is the classic two-paddle game. You move the left paddle with
the mouse (or keys in the terminal); the right paddle follows the ball.

Available commands:
  play       - Start a game
  frontends  - Show all available front-ends
  config     - Print the default configuration

Examples:
  pong play
  pong play --frontend window --sound
  pong play --frontend headless --duration 30s --log-level debug
  pong config > ~/.pong/pong.yaml`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.Float64Var(&flagWidth, "width", 0, "Field width (0 = from config)")
	pf.Float64Var(&flagHeight, "height", 0, "Field height (0 = from config)")
	pf.IntVar(&flagFPS, "fps", 0, "Tick rate in frames per second (0 = from config)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = from config, random when unset there)")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(frontendsCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the configuration and applies flag overrides.
func loadConfig() (config.PongConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.PongConfig{}, err
	}
	applyOverrides(&cfg, flagWidth, flagHeight, flagFPS, flagSeed)
	if err := cfg.Validate(); err != nil {
		return config.PongConfig{}, err
	}
	return cfg, nil
}

// applyOverrides copies non-zero flag values into cfg.
func applyOverrides(cfg *config.PongConfig, width, height float64, fps int, seed int64) {
	if width > 0 {
		cfg.Field.Width = width
	}
	if height > 0 {
		cfg.Field.Height = height
	}
	if fps > 0 {
		cfg.Display.FPS = fps
	}
	if seed != 0 {
		cfg.Display.Seed = seed
	}
}

// newLogger builds the process logger. Without a log file, logs go to
// fallback, which may be io.Discard. The returned closer releases the file.
func newLogger(level, path string, fallback io.Writer) (*log.Logger, func() error, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}

	w := fallback
	closer := func() error { return nil }
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %s: %w", path, err)
		}
		w = f
		closer = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "pong",
		Level:           lvl,
	})
	return logger, closer, nil
}
