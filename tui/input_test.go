package tui_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/minegrid/board"
	"github.com/katalvlaran/minegrid/tui"
)

// TestDecode covers every binding plus a few unbound keys.
func TestDecode(t *testing.T) {
	cases := []struct {
		name string
		key  tcell.Key
		r    rune
		want board.Command
	}{
		{"ArrowUp", tcell.KeyUp, 0, board.MoveUp},
		{"ArrowDown", tcell.KeyDown, 0, board.MoveDown},
		{"ArrowLeft", tcell.KeyLeft, 0, board.MoveLeft},
		{"ArrowRight", tcell.KeyRight, 0, board.MoveRight},
		{"W", tcell.KeyRune, 'w', board.MoveUp},
		{"K", tcell.KeyRune, 'k', board.MoveUp},
		{"S", tcell.KeyRune, 's', board.MoveDown},
		{"J", tcell.KeyRune, 'j', board.MoveDown},
		{"A", tcell.KeyRune, 'a', board.MoveLeft},
		{"H", tcell.KeyRune, 'h', board.MoveLeft},
		{"D", tcell.KeyRune, 'd', board.MoveRight},
		{"L", tcell.KeyRune, 'l', board.MoveRight},
		{"UpperCase", tcell.KeyRune, 'D', board.MoveRight},
		{"Space", tcell.KeyRune, ' ', board.Reveal},
		{"Enter", tcell.KeyEnter, 0, board.Reveal},
		{"Flag", tcell.KeyRune, 'f', board.ToggleFlag},
		{"Q", tcell.KeyRune, 'q', board.Quit},
		{"Esc", tcell.KeyEscape, 0, board.Quit},
		{"CtrlC", tcell.KeyCtrlC, 0, board.Quit},
		{"Digit", tcell.KeyRune, '7', board.InvalidCommand},
		{"Z", tcell.KeyRune, 'z', board.InvalidCommand},
		{"Tab", tcell.KeyTab, 0, board.InvalidCommand},
		{"F1", tcell.KeyF1, 0, board.InvalidCommand},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ev := tcell.NewEventKey(tc.key, tc.r, tcell.ModNone)
			assert.Equal(t, tc.want, tui.Decode(ev))
		})
	}
	assert.Equal(t, board.InvalidCommand, tui.Decode(nil))
}
