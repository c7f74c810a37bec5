// Package window provides a desktop front-end for the pong simulation built
// on Ebiten. The pointer drives the left paddle and a click serves.
package window

import (
	"context"
	"errors"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/pong/internal/audio"
	"github.com/vovakirdan/pong/internal/config"
	"github.com/vovakirdan/pong/internal/pong"
	"github.com/vovakirdan/pong/internal/registry"
)

// Controls is the input sampled from the window for one frame.
type Controls struct {
	PointerX float64 // Cursor position in field coordinates
	PointerY float64
	Click    bool    // Serve requested
	Pause    bool    // Pause toggle requested
	Quit     bool
}

// Game implements ebiten.Game on top of a simulation.
type Game struct {
	sim    *pong.Simulation
	driver *pong.Driver
	input  *pong.Input
	font   pong.Font
	ctx    context.Context
	now    func() time.Time
	dirty  bool
}

// NewGame creates a window session. The simulation marks the frame dirty on
// every update; Draw repaints only dirty frames.
func NewGame(ctx context.Context, game config.PongConfig, seed int64, logger *log.Logger, events func(pong.Event)) *Game {
	g := &Game{
		font:  pong.NewFont(game.Font),
		ctx:   ctx,
		now:   time.Now,
		dirty: true,
	}
	g.sim = pong.New(game,
		pong.WithRand(pong.NewRand(seed)),
		pong.WithLogger(logger),
		pong.WithEvents(events),
		pong.WithRenderer(pong.RendererFunc(func(*pong.Simulation) { g.dirty = true })),
	)
	g.driver = pong.NewDriver(g.sim)
	g.input = pong.NewInput(g.sim)
	return g
}

// Step applies one frame of input and advances the simulation.
// It reports false when the session should end.
func (g *Game) Step(c Controls) bool {
	if c.Quit || g.ctx.Err() != nil {
		return false
	}
	if c.Pause {
		g.driver.SetPaused(!g.driver.Paused())
		g.dirty = true
	}

	// The logical screen is the field, so the surface height is the field
	// height. A cursor outside the window does not move the paddle.
	if g.overField(c.PointerX, c.PointerY) {
		g.input.PointerMoved(c.PointerY, g.sim.Field().Y)
	}
	if c.Click {
		g.input.Activate()
	}

	g.driver.Tick(g.now())
	return true
}

func (g *Game) overField(x, y float64) bool {
	f := g.sim.Field()
	return x >= 0 && x <= f.X && y >= 0 && y <= f.Y
}

// Update samples the mouse and keyboard.
func (g *Game) Update() error {
	x, y := ebiten.CursorPosition()
	c := Controls{
		PointerX: float64(x),
		PointerY: float64(y),
		Click: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
			inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Pause: inpututil.IsKeyJustPressed(ebiten.KeyP),
		Quit:  ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape),
	}
	if !g.Step(c) {
		return ebiten.Termination
	}
	return nil
}

// Draw repaints the field when the simulation signaled a change.
func (g *Game) Draw(screen *ebiten.Image) {
	if !g.dirty {
		return
	}
	g.dirty = false

	pong.Paint(imageCanvas{screen}, g.sim, g.font)
	if g.driver.Paused() {
		ebitenutil.DebugPrint(screen, "PAUSED - press P to resume")
	} else if g.sim.Ball().Parked() {
		ebitenutil.DebugPrint(screen, "Click or press Space to serve")
	}
}

// Layout keeps the logical screen equal to the field.
func (g *Game) Layout(_, _ int) (int, int) {
	f := g.sim.Field()
	return int(f.X), int(f.Y)
}

// Simulation exposes the running simulation.
func (g *Game) Simulation() *pong.Simulation {
	return g.sim
}

// imageCanvas draws onto an Ebiten image.
type imageCanvas struct {
	img *ebiten.Image
}

func (c imageCanvas) FillRect(x, y, w, h float64, col color.Color) {
	vector.DrawFilledRect(c.img, float32(x), float32(y), float32(w), float32(h), col, false)
}

// Frontend runs sessions in a desktop window.
type Frontend struct{}

// ID returns the registry identifier.
func (Frontend) ID() string { return "window" }

// Title returns a human-readable description.
func (Frontend) Title() string { return "Desktop window (Ebiten, mouse)" }

// Run opens the window and blocks until it is closed or ctx is done.
func (Frontend) Run(ctx context.Context, opts registry.Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	if opts.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Duration)
		defer cancel()
	}

	player := audio.Open(opts.Sound, logger)
	defer player.Close()

	game := NewGame(ctx, opts.Game, opts.Runtime.Seed, logger, player.Handle)

	ebiten.SetWindowSize(int(opts.Game.Field.Width), int(opts.Game.Field.Height))
	ebiten.SetWindowTitle("Pong")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(opts.Game.Display.FPS)
	ebiten.SetScreenClearedEveryFrame(false)

	logger.Info("window session started", "width", opts.Game.Field.Width, "height", opts.Game.Field.Height)
	err := ebiten.RunGame(game)

	left, right := game.sim.Scores()
	logger.Info("window session ended", "left", left, "right", right)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

func init() {
	registry.Register("window", func() registry.Frontend {
		return Frontend{}
	})
}
