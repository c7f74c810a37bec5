package tui

import (
	"image/color"
	"math"

	"github.com/vovakirdan/pong/internal/core"
)

// FillRune is drawn for every foreground cell.
const FillRune = '█'

// ScreenCanvas stretches the field over a whole Screen.
// A field rectangle covers every cell it touches, so thin shapes never vanish.
type ScreenCanvas struct {
	screen *core.Screen
	field  core.Vector
}

// NewScreenCanvas maps a field of the given size onto screen.
func NewScreenCanvas(screen *core.Screen, field core.Vector) *ScreenCanvas {
	return &ScreenCanvas{screen: screen, field: field}
}

// CellRect converts a field rectangle to the cells it touches, clipped to
// the screen.
func (c *ScreenCanvas) CellRect(x, y, w, h float64) core.Rect {
	sx := float64(c.screen.Width()) / c.field.X
	sy := float64(c.screen.Height()) / c.field.Y

	x0 := max(int(math.Floor(x*sx)), 0)
	y0 := max(int(math.Floor(y*sy)), 0)
	x1 := min(int(math.Ceil((x+w)*sx)), c.screen.Width())
	y1 := min(int(math.Ceil((y+h)*sy)), c.screen.Height())

	return core.NewRect(x0, y0, max(x1-x0, 0), max(y1-y0, 0))
}

// FillRect paints a field rectangle. Black paints blank cells.
func (c *ScreenCanvas) FillRect(x, y, w, h float64, col color.Color) {
	r := c.CellRect(x, y, w, h)
	if isBlack(col) {
		c.screen.DrawRect(r, ' ', core.ColorDefault)
		return
	}
	c.screen.DrawRect(r, FillRune, core.ColorBrightWhite)
}

func isBlack(col color.Color) bool {
	r, g, b, _ := col.RGBA()
	return r == 0 && g == 0 && b == 0
}
