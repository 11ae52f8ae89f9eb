package board

import (
	"github.com/sirupsen/logrus"
)

// Apply executes one player command against the board and returns exactly
// one Signal:
//
//   - MoveUp/MoveDown/MoveLeft/MoveRight: step the cursor, clamped at the edges → Continue.
//   - Reveal: on an Unrevealed cursor cell, explode a hazard (→ Loss) or reveal
//     its count and flood from zero-count cells (→ Continue); no-op otherwise.
//   - ToggleFlag: Unrevealed ↔ Flagged; no-op on other kinds → Continue.
//   - Quit: → Terminate, nothing is evaluated.
//   - anything else: → Invalid, nothing changes.
//
// Once a hazard has exploded the board is frozen: every valid command other
// than Quit returns Loss without touching state.
func (b *Board) Apply(cmd Command) Signal {
	switch cmd {
	case MoveUp, MoveDown, MoveLeft, MoveRight, Reveal, ToggleFlag:
	case Quit:
		return Terminate
	default:
		return Invalid
	}
	if b.exploded {
		return Loss
	}

	switch cmd {
	case MoveUp:
		b.move(-1, 0)
	case MoveDown:
		b.move(1, 0)
	case MoveLeft:
		b.move(0, -1)
	case MoveRight:
		b.move(0, 1)
	case Reveal:
		return b.reveal()
	case ToggleFlag:
		b.toggleFlag()
	}

	return Continue
}

func (b *Board) move(dRow, dCol int) {
	b.cursor = b.grid.Clamp(b.cursor.Add([2]int{dRow, dCol}))
}

func (b *Board) reveal() Signal {
	p := b.cursor
	i := b.grid.Index(p)
	switch b.cells[i].Kind() {
	case Unrevealed:
	case Revealed, Flagged, Exploded:
		return Continue
	}

	if b.hazards[i] {
		b.cells[i] = ExplodedCell()
		b.exploded = true
		b.log.WithFields(logrus.Fields{"row": p.Row, "col": p.Col}).Info("hazard revealed")
		return Loss
	}

	n := b.hazardsAround(p)
	b.cells[i] = RevealedCell(n)
	b.log.WithFields(logrus.Fields{"row": p.Row, "col": p.Col, "count": n}).Debug("cell revealed")
	if n == 0 {
		if _, err := b.FloodReveal(p); err != nil {
			b.log.WithError(err).Error("flood reveal failed")
		}
	}

	return Continue
}

func (b *Board) toggleFlag() {
	i := b.grid.Index(b.cursor)
	switch b.cells[i].Kind() {
	case Unrevealed:
		b.cells[i] = FlaggedCell()
	case Flagged:
		b.cells[i] = UnrevealedCell()
	case Revealed, Exploded:
	}
}
