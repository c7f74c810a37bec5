package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pong/internal/audio"
	"github.com/vovakirdan/pong/internal/config"
	"github.com/vovakirdan/pong/internal/core"
	"github.com/vovakirdan/pong/internal/pong"
	"github.com/vovakirdan/pong/internal/registry"
)

// statusRows is the number of terminal rows below the field.
const statusRows = 1

// Model is the Bubble Tea model for a terminal game session.
type Model struct {
	sim      *pong.Simulation
	driver   *pong.Driver
	input    *pong.Input
	screen   *core.Screen
	canvas   *ScreenCanvas
	font     pong.Font
	keys     KeyMap
	help     help.Model
	config   core.RuntimeConfig
	nudge    float64 // Paddle step per key press, in field units
	quitting bool
}

// NewModel creates a session whose field is stretched over the terminal.
// events, when not nil, receives every gameplay event. A zero seed draws
// from the clock.
func NewModel(game config.PongConfig, cfg core.RuntimeConfig, logger *log.Logger, events func(pong.Event)) Model {
	screen := core.NewScreen(cfg.ScreenW, fieldRows(cfg.ScreenH))
	canvas := NewScreenCanvas(screen, core.NewVector(game.Field.Width, game.Field.Height))
	font := pong.NewFont(game.Font)

	sim := pong.New(game,
		pong.WithRand(pong.NewRand(cfg.Seed)),
		pong.WithLogger(logger),
		pong.WithEvents(events),
		pong.WithRenderer(pong.RendererFunc(func(s *pong.Simulation) {
			pong.Paint(canvas, s, font)
		})),
	)
	pong.Paint(canvas, sim, font)

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		sim:    sim,
		driver: pong.NewDriver(sim),
		input:  pong.NewInput(sim),
		screen: screen,
		canvas: canvas,
		font:   font,
		keys:   DefaultKeyMap(),
		help:   h,
		config: cfg,
		nudge:  game.Paddles.Height / 4,
	}
}

// fieldRows returns how many terminal rows the field gets.
func fieldRows(height int) int {
	return max(height-statusRows, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		m.driver.Tick(time.Time(msg))
		return m, tickCmd(m.config.TickRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Pause):
		m.driver.SetPaused(!m.driver.Paused())
	case key.Matches(msg, m.keys.Serve):
		m.input.Activate()
	case key.Matches(msg, m.keys.Up):
		m.input.Nudge(-m.nudge)
	case key.Matches(msg, m.keys.Down):
		m.input.Nudge(m.nudge)
	}
	return m, nil
}

// handleMouse maps pointer motion to the left paddle and a left click to a serve.
// Pointer rows are measured at the cell center.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	rows := m.screen.Height()
	if msg.Y < rows {
		m.input.PointerMoved(float64(msg.Y)+0.5, float64(rows))
	}
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.input.Activate()
	}
	return m, nil
}

// handleResize processes window resize events. The game keeps its state;
// only the mapping onto cells changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, fieldRows(msg.Height))
	m.help.Width = msg.Width
	m.repaint()
	return m, nil
}

// repaint redraws the field outside of an Update, e.g. after a resize.
func (m Model) repaint() {
	pong.Paint(m.canvas, m.sim, m.font)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	rows := m.screen.Height()
	switch {
	case m.driver.Paused():
		drawMessage(m.screen, rows*2/3, "PAUSED", "press p to resume")
	case m.sim.Ball().Parked():
		drawMessage(m.screen, rows*2/3, "PONG", "click or press space to serve")
	}

	left, right := m.sim.Scores()
	status := statusStyle.Render(fmt.Sprintf(" %d : %d  ", left, right)) + m.help.View(m.keys)
	return RenderScreen(m.screen) + "\n" + status
}

// Simulation exposes the running simulation.
func (m Model) Simulation() *pong.Simulation {
	return m.sim
}

// Frontend runs sessions in the terminal.
type Frontend struct{}

// ID returns the registry identifier.
func (Frontend) ID() string { return "terminal" }

// Title returns a human-readable description.
func (Frontend) Title() string { return "Terminal (Bubble Tea, mouse or keyboard)" }

// Run plays a session until the user quits or ctx is done.
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

	model := NewModel(opts.Game, opts.Runtime, logger, player.Handle)
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx),
	)

	logger.Info("terminal session started", "cols", opts.Runtime.ScreenW, "rows", opts.Runtime.ScreenH)
	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		left, right := fm.sim.Scores()
		logger.Info("terminal session ended", "left", left, "right", right)
	}
	if err != nil && ctx.Err() != nil {
		// Session ended by timeout or interrupt, not by failure
		return nil
	}
	return err
}

func init() {
	registry.Register("terminal", func() registry.Frontend {
		return Frontend{}
	})
}
