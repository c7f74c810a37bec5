package pong

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/pong/internal/config"
)

type fill struct {
	x, y, w, h float64
	c          color.Color
}

// recorder is a Canvas that remembers every call.
type recorder struct {
	fills []fill
}

func (r *recorder) FillRect(x, y, w, h float64, c color.Color) {
	r.fills = append(r.fills, fill{x, y, w, h, c})
}

func countOnes(s string) int {
	n := 0
	for _, r := range s {
		if r == '1' {
			n++
		}
	}
	return n
}

func TestGlyphs(t *testing.T) {
	for d := '0'; d <= '9'; d++ {
		g := Glyph(d)
		require.Len(t, g, GlyphCols*GlyphRows, "digit %c", d)
		for _, r := range g {
			require.Contains(t, "01", string(r), "digit %c", d)
		}
	}
	assert.Equal(t, Glyph('0'), Glyph('x'))
	assert.Equal(t, "010010010010010", Glyph('1'))
}

func TestFontDrawText(t *testing.T) {
	f := Font{Pixel: 10}
	var rec recorder

	f.DrawText(&rec, "17", 100, 20, Foreground)

	require.Len(t, rec.fills, countOnes(Glyph('1'))+countOnes(Glyph('7')))
	// First cell of '1' is column 1, row 0
	assert.Equal(t, fill{110, 20, 10, 10, Foreground}, rec.fills[0])
	// '7' starts one advance (4 cells) to the right; its first cell is column 0
	assert.Equal(t, fill{140, 20, 10, 10, Foreground}, rec.fills[countOnes(Glyph('1'))])
	assert.Equal(t, 40.0, f.Advance())
}

func TestPaintOrder(t *testing.T) {
	s := newTestSim(t)
	var rec recorder

	Paint(&rec, s, NewFont(config.DefaultPongConfig().Font))

	zeros := countOnes(Glyph('0'))
	require.Len(t, rec.fills, 1+1+2*zeros+2)

	assert.Equal(t, fill{0, 0, 800, 600, Background}, rec.fills[0])
	assert.Equal(t, fill{395, 295, 10, 10, Foreground}, rec.fills[1])
	assert.Equal(t, fill{32.5, 250, 15, 100, Foreground}, rec.fills[len(rec.fills)-2])
	assert.Equal(t, fill{752.5, 250, 15, 100, Foreground}, rec.fills[len(rec.fills)-1])
}

func TestScoreOrigin(t *testing.T) {
	s := newTestSim(t)
	f := Font{Pixel: 10, Top: 20}

	x, y := ScoreOrigin(s, f, 0, "0")
	assert.InDelta(t, 800.0/3-20, x, 1e-9)
	assert.Equal(t, 20.0, y)

	x, _ = ScoreOrigin(s, f, 1, "12")
	assert.InDelta(t, 1600.0/3-40, x, 1e-9)
}
