// Package tui is the terminal front end: a tcell renderer for the board,
// a key decoder producing board commands, and the input loop tying them
// to a board.Board.
package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/minegrid/board"
)

// View is the read-only slice of a board the renderer needs.
// Hazard positions are deliberately absent: only visible state is drawn.
type View interface {
	Size() int
	Cell(p board.Pos) (board.Cell, error)
	Cursor() board.Pos
	HazardCount() int
	FlagCount() int
}

// Theme holds the styles used for each cell kind.
type Theme struct {
	Hidden   tcell.Style
	Flag     tcell.Style
	Exploded tcell.Style
	Open     tcell.Style
	Status   tcell.Style
	// Counts colours the digits 1..8; index 0 is unused.
	Counts [9]tcell.Color
}

// DefaultTheme returns the classic palette: blue 1, green 2, red 3 and so on.
func DefaultTheme() Theme {
	return Theme{
		Hidden:   tcell.StyleDefault.Foreground(tcell.ColorGray),
		Flag:     tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
		Exploded: tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorRed).Bold(true),
		Open:     tcell.StyleDefault,
		Status:   tcell.StyleDefault.Bold(true),
		Counts: [9]tcell.Color{
			tcell.ColorDefault,
			tcell.ColorBlue,
			tcell.ColorGreen,
			tcell.ColorRed,
			tcell.ColorNavy,
			tcell.ColorMaroon,
			tcell.ColorTeal,
			tcell.ColorPurple,
			tcell.ColorGray,
		},
	}
}

// Renderer draws a View onto a tcell screen. Each cell takes two columns;
// the status line sits one row below the grid.
type Renderer struct {
	screen tcell.Screen
	theme  Theme
}

// NewRenderer returns a Renderer with DefaultTheme.
func NewRenderer(s tcell.Screen) *Renderer {
	return &Renderer{screen: s, theme: DefaultTheme()}
}

// Draw clears the screen, paints every cell with the cursor shown in
// reverse video, writes the status line and flushes.
func (r *Renderer) Draw(v View, message string) {
	r.screen.Clear()
	size := v.Size()
	cursor := v.Cursor()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			p := board.Pos{Row: row, Col: col}
			c, err := v.Cell(p)
			if err != nil {
				continue
			}
			glyph, style := r.glyph(c)
			if p == cursor {
				style = style.Reverse(true)
			}
			r.screen.SetContent(col*2, row, glyph, nil, style)
		}
	}

	status := fmt.Sprintf("hazards %d  flags %d", v.HazardCount(), v.FlagCount())
	if message != "" {
		status += "  " + message
	}
	r.text(0, size+1, status, r.theme.Status)
	r.screen.Show()
}

// glyph picks the rune and style for a cell; the switch covers every kind.
func (r *Renderer) glyph(c board.Cell) (rune, tcell.Style) {
	switch c.Kind() {
	case board.Unrevealed:
		return '.', r.theme.Hidden
	case board.Flagged:
		return 'F', r.theme.Flag
	case board.Exploded:
		return '*', r.theme.Exploded
	case board.Revealed:
		n, _ := c.Count()
		if n == 0 {
			return ' ', r.theme.Open
		}
		return rune('0' + n), r.theme.Open.Foreground(r.theme.Counts[n])
	default:
		return '?', r.theme.Open
	}
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
