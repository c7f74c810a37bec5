package pong

import (
	"image/color"
	"strconv"

	"github.com/vovakirdan/pong/internal/core"
)

// Palette used by Paint.
var (
	Background color.Color = color.Black
	Foreground color.Color = color.White
)

// Canvas is a drawing surface in field coordinates.
type Canvas interface {
	FillRect(x, y, w, h float64, c color.Color)
}

// Paint draws the whole game: background, ball, scores and paddles.
func Paint(c Canvas, s *Simulation, f Font) {
	field := s.Field()
	c.FillRect(0, 0, field.X, field.Y, Background)

	fillBox(c, s.Ball().Box, Foreground)
	paintScores(c, s, f)
	for i := range 2 {
		fillBox(c, s.Paddle(i).Box, Foreground)
	}
}

// ScoreOrigin returns where the score text of paddle i starts. Scores are
// centered on the one-third and two-thirds marks of the field width.
func ScoreOrigin(s *Simulation, f Font, i int, text string) (x, y float64) {
	align := s.Field().X / 3
	width := f.Advance() * float64(len(text))
	return align*float64(i+1) - width/2, f.Top
}

func paintScores(c Canvas, s *Simulation, f Font) {
	for i := range 2 {
		text := strconv.Itoa(s.Paddle(i).Score)
		x, y := ScoreOrigin(s, f, i, text)
		f.DrawText(c, text, x, y, Foreground)
	}
}

func fillBox(c Canvas, b core.Box, col color.Color) {
	size := b.Size()
	c.FillRect(b.Left(), b.Top(), size.X, size.Y, col)
}
