package tui

import (
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/pong/internal/config"
	"github.com/vovakirdan/pong/internal/core"
	"github.com/vovakirdan/pong/internal/pong"
)

func newTestModel(t *testing.T, events func(pong.Event)) Model {
	t.Helper()
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 42}
	return NewModel(config.DefaultPongConfig(), cfg, log.New(io.Discard), events)
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm
}

func TestMouseMotionMovesLeftPaddle(t *testing.T) {
	m := newTestModel(t, nil)

	// 24 field rows; row 5 center is 5.5/24 of the height
	m = update(t, m, tea.MouseMsg{X: 3, Y: 5, Action: tea.MouseActionMotion})

	assert.InDelta(t, 600*5.5/24, m.Simulation().Paddle(0).Box.Center.Y, 1e-9)
	assert.True(t, m.Simulation().Ball().Parked())
}

func TestMouseOnStatusRowIgnored(t *testing.T) {
	m := newTestModel(t, nil)
	m = update(t, m, tea.MouseMsg{Y: 24, Action: tea.MouseActionMotion})
	assert.Equal(t, 300.0, m.Simulation().Paddle(0).Box.Center.Y)
}

func TestClickServes(t *testing.T) {
	var kinds []pong.EventKind
	m := newTestModel(t, func(e pong.Event) { kinds = append(kinds, e.Kind) })

	m = update(t, m, tea.MouseMsg{Y: 12, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	assert.False(t, m.Simulation().Ball().Parked())
	assert.Equal(t, []pong.EventKind{pong.EventServe}, kinds)
}

func TestKeys(t *testing.T) {
	m := newTestModel(t, nil)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 275.0, m.Simulation().Paddle(0).Box.Center.Y)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	assert.Equal(t, 300.0, m.Simulation().Paddle(0).Box.Center.Y)

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.False(t, m.Simulation().Ball().Parked())

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, next.View())
}

func TestTicksAdvanceBall(t *testing.T) {
	m := newTestModel(t, nil)
	m.Simulation().Ball().Velocity = core.NewVector(100, 0)
	base := time.Unix(500, 0)

	m = update(t, m, TickMsg(base))
	m = update(t, m, TickMsg(base.Add(100*time.Millisecond)))

	assert.InDelta(t, 410, m.Simulation().Ball().Box.Center.X, 1e-9)
}

func TestPauseStopsTicks(t *testing.T) {
	m := newTestModel(t, nil)
	m.Simulation().Ball().Velocity = core.NewVector(100, 0)
	base := time.Unix(500, 0)

	m = update(t, m, TickMsg(base))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	m = update(t, m, TickMsg(base.Add(time.Second)))

	assert.Equal(t, 400.0, m.Simulation().Ball().Box.Center.X)
	assert.Contains(t, m.View(), "PAUSED")
}

func TestViewShowsFieldAndStatus(t *testing.T) {
	m := newTestModel(t, nil)
	view := m.View()

	lines := strings.Split(view, "\n")
	require.GreaterOrEqual(t, len(lines), 25)
	assert.Contains(t, view, string(FillRune))
	assert.Contains(t, view, "0 : 0")
	assert.Contains(t, view, "serve")
}

func TestResizeKeepsScores(t *testing.T) {
	m := newTestModel(t, nil)
	m.Simulation().Paddle(0).Score = 3

	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 41})

	assert.Equal(t, 120, m.screen.Width())
	assert.Equal(t, 40, m.screen.Height())
	left, _ := m.Simulation().Scores()
	assert.Equal(t, 3, left)
	assert.Contains(t, m.View(), "3 : 0")
}

func TestSeedReachesSimulation(t *testing.T) {
	a := newTestModel(t, nil)
	b := newTestModel(t, nil)

	a = update(t, a, tea.KeyMsg{Type: tea.KeySpace})
	b = update(t, b, tea.KeyMsg{Type: tea.KeySpace})

	assert.Equal(t, a.Simulation().Ball().Velocity, b.Simulation().Ball().Velocity)
}

func TestZeroSeedLeftToSimulation(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60}
	m := NewModel(config.DefaultPongConfig(), cfg, log.New(io.Discard), nil)
	assert.Zero(t, m.config.Seed)

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})

	assert.False(t, m.Simulation().Ball().Parked())
	assert.InDelta(t, 200, m.Simulation().Ball().Velocity.Len(), 1e-9)
}
