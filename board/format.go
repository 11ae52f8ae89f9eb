package board

import (
	"strconv"
	"strings"
)

// String draws the visible board as a boxed text grid:
//
//	+ - + - +
//	| # | 1 |
//	+ - + - +
//
// '#' is unrevealed, blank is a zero count, digits are counts,
// 'F' is a flag and '*' the exploded hazard.
func (b *Board) String() string {
	return b.Dump(false)
}

// Dump is String with the option to expose hazards: when showHazards is set,
// unrevealed and flagged hazards are drawn as 'x'.
func (b *Board) Dump(showHazards bool) string {
	size := b.Size()
	var sb strings.Builder
	line := strings.Repeat("+ - ", size) + "+\n"

	sb.WriteString(line)
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			i := b.grid.Index(Pos{Row: r, Col: c})
			sb.WriteString("| ")
			sb.WriteByte(b.glyph(b.cells[i], showHazards && b.hazards[i]))
			sb.WriteByte(' ')
		}
		sb.WriteString("|\n")
		sb.WriteString(line)
	}

	return sb.String()
}

func (b *Board) glyph(c Cell, hazard bool) byte {
	switch c.Kind() {
	case Unrevealed, Flagged:
		if hazard {
			return 'x'
		}
		if c.Kind() == Flagged {
			return 'F'
		}
		return '#'
	case Revealed:
		n, _ := c.Count()
		if n == 0 {
			return ' '
		}
		return strconv.Itoa(n)[0]
	case Exploded:
		return '*'
	default:
		return '?'
	}
}
