package pong

import (
	"image/color"

	"github.com/vovakirdan/pong/internal/config"
)

// Glyph grid dimensions in cells.
const (
	GlyphCols = 3
	GlyphRows = 5
)

// digitGlyphs holds the 3x5 bitmaps of 0-9, row by row, '1' = filled.
var digitGlyphs = [10]string{
	"111101101101111",
	"010010010010010",
	"111001111100111",
	"111001111001111",
	"101101111001001",
	"111100111001111",
	"111100111101111",
	"111001001001001",
	"111101111101111",
	"111101111001111",
}

// Font draws decimal digits as blocks of square cells.
type Font struct {
	Pixel float64 // Side of one glyph cell
	Top   float64 // y of the score line
}

// NewFont builds a font from its configuration.
func NewFont(cfg config.FontConfig) Font {
	return Font{Pixel: cfg.Pixel, Top: cfg.Top}
}

// Advance returns the horizontal distance between consecutive characters:
// three cells of glyph plus one cell of spacing.
func (f Font) Advance() float64 {
	return f.Pixel * (GlyphCols + 1)
}

// Glyph returns the bitmap for r. Anything that is not a decimal digit is
// drawn as 0.
func Glyph(r rune) string {
	if r < '0' || r > '9' {
		return digitGlyphs[0]
	}
	return digitGlyphs[r-'0']
}

// DrawText draws text with its top-left corner at (x, y).
func (f Font) DrawText(c Canvas, text string, x, y float64, col color.Color) {
	pos := 0
	for _, r := range text {
		f.drawGlyph(c, Glyph(r), x+float64(pos)*f.Advance(), y, col)
		pos++
	}
}

func (f Font) drawGlyph(c Canvas, glyph string, x, y float64, col color.Color) {
	for i, cell := range glyph {
		if cell != '1' {
			continue
		}
		c.FillRect(
			x+float64(i%GlyphCols)*f.Pixel,
			y+float64(i/GlyphCols)*f.Pixel,
			f.Pixel, f.Pixel, col)
	}
}
