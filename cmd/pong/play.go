package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pong/internal/core"
	"github.com/vovakirdan/pong/internal/registry"
)

var (
	flagFrontend string
	flagSound    bool
	flagDuration time.Duration
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game on the chosen front-end.

Controls (terminal):
  Mouse        - Move paddle
  Up/Down/W/S  - Move paddle
  Click/Space  - Serve
  P            - Pause
  Q/Ctrl+C     - Quit

Controls (window):
  Mouse        - Move paddle
  Click/Space  - Serve
  P            - Pause
  Q/Esc        - Quit

Examples:
  pong play
  pong play --frontend window --sound
  pong play --frontend headless --duration 10s
  pong play --config ./my-pong.yaml --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagFrontend, "frontend", "terminal", "Front-end to run (see 'pong frontends')")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
	playCmd.Flags().DurationVar(&flagDuration, "duration", 0, "Stop after this long (0 = until quit)")
}

// checkFrontend reports an unknown front-end before any setup work is done.
func checkFrontend(id string) error {
	if !registry.Exists(id) {
		return fmt.Errorf("unknown frontend %q (run 'pong frontends' to see available front-ends)", id)
	}
	return nil
}

func runPlay(cmd *cobra.Command, _ []string) error {
	if err := checkFrontend(flagFrontend); err != nil {
		return err
	}
	frontend, err := registry.Create(flagFrontend)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The terminal front-end owns the screen, so its logs need a file.
	var fallback io.Writer = os.Stderr
	if flagFrontend == "terminal" {
		fallback = io.Discard
	}
	logger, closeLog, err := newLogger(flagLogLevel, flagLogFile, fallback)
	if err != nil {
		return err
	}
	defer closeLog()

	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.TickRate = cfg.Display.FPS
	rt.Seed = cfg.Display.Seed

	opts := registry.Options{
		Game:     cfg,
		Runtime:  rt,
		Logger:   logger,
		Sound:    flagSound,
		Duration: flagDuration,
	}

	logger.Debug("starting", "frontend", frontend.ID(), "field_w", cfg.Field.Width, "field_h", cfg.Field.Height)
	if err := frontend.Run(cmd.Context(), opts); err != nil {
		return fmt.Errorf("%s: %w", frontend.ID(), err)
	}
	return nil
}
