package tui

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/minegrid/board"
)

// Decode maps one key press to a board command:
//
//	arrows, w/a/s/d, h/j/k/l   move
//	space, enter               reveal
//	f                          flag
//	q, esc, ctrl-c             quit
//
// Everything else decodes to board.InvalidCommand.
func Decode(ev *tcell.EventKey) board.Command {
	if ev == nil {
		return board.InvalidCommand
	}
	switch ev.Key() {
	case tcell.KeyUp:
		return board.MoveUp
	case tcell.KeyDown:
		return board.MoveDown
	case tcell.KeyLeft:
		return board.MoveLeft
	case tcell.KeyRight:
		return board.MoveRight
	case tcell.KeyEnter:
		return board.Reveal
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return board.Quit
	case tcell.KeyRune:
		return decodeRune(ev.Rune())
	}
	return board.InvalidCommand
}

func decodeRune(r rune) board.Command {
	switch unicode.ToLower(r) {
	case 'w', 'k':
		return board.MoveUp
	case 's', 'j':
		return board.MoveDown
	case 'a', 'h':
		return board.MoveLeft
	case 'd', 'l':
		return board.MoveRight
	case ' ':
		return board.Reveal
	case 'f':
		return board.ToggleFlag
	case 'q':
		return board.Quit
	}
	return board.InvalidCommand
}
