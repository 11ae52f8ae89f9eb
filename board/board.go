package board

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"

	"github.com/katalvlaran/minegrid/gridgraph"
)

// Board owns the hazard layout, the visible cell states and the cursor.
// All mutation goes through Randomize and Apply; accessors return values,
// never views into the underlying arrays. A Board is not safe for
// concurrent use: one dispatcher drives it turn by turn.
type Board struct {
	grid     *gridgraph.Grid
	hazards  []bool // row-major, fixed after placement
	cells    []Cell // row-major visible state
	cursor   Pos
	placed   bool
	exploded bool

	log logrus.FieldLogger
	rng *rand.Rand
}

// New builds a cfg.Size square board and places hazards exactly once
// with probability cfg.DensityNum/cfg.DensityDen per cell.
// The cursor starts at (0,0); nothing guarantees that cell is safe.
func New(cfg Config, opts ...Option) (*Board, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	b, err := newEmpty(cfg.Size, opts)
	if err != nil {
		return nil, err
	}
	if err := b.Randomize(cfg.DensityNum, cfg.DensityDen); err != nil {
		return nil, err
	}

	return b, nil
}

// FromLayout builds a board from an explicit square hazard layout,
// hazards[row][col]. The layout is copied; later edits to it have no effect.
// Returns ErrEmptyLayout or ErrNonSquare for unusable layouts.
func FromLayout(hazards [][]bool, opts ...Option) (*Board, error) {
	rows, cols, err := gridgraph.Shape(hazards)
	if err != nil {
		if errors.Is(err, gridgraph.ErrEmptyGrid) {
			return nil, ErrEmptyLayout
		}
		return nil, fmt.Errorf("%w: %w", ErrNonSquare, err)
	}
	if rows != cols {
		return nil, fmt.Errorf("%w: %d×%d", ErrNonSquare, rows, cols)
	}
	b, err := newEmpty(rows, opts)
	if err != nil {
		return nil, err
	}
	for r, row := range hazards {
		for c, h := range row {
			b.hazards[b.grid.Index(Pos{Row: r, Col: c})] = h
		}
	}
	b.placed = true
	b.logPlacement()

	return b, nil
}

// newEmpty returns an all-Unrevealed, hazard-free board with the cursor at (0,0).
func newEmpty(size int, opts []Option) (*Board, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	g, err := gridgraph.Square(size, gridgraph.GridOptions{Conn: gridgraph.Conn8})
	if err != nil {
		return nil, err
	}
	b := &Board{
		grid:    g,
		hazards: make([]bool, g.Area()),
		cells:   make([]Cell, g.Area()),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.log == nil {
		b.log = discardLogger()
	}
	if b.rng == nil {
		b.rng = timeSeeded()
	}

	return b, nil
}

// Size returns the side length of the grid.
func (b *Board) Size() int {
	return b.grid.Rows
}

// Cell returns the visible state at p.
func (b *Board) Cell(p Pos) (Cell, error) {
	i, err := b.lookup(p)
	if err != nil {
		return Cell{}, err
	}
	return b.cells[i], nil
}

// HasHazard reports whether p holds a hazard.
// Renderers should rely on Cell instead; this is the raw layout.
func (b *Board) HasHazard(p Pos) (bool, error) {
	i, err := b.lookup(p)
	if err != nil {
		return false, err
	}
	return b.hazards[i], nil
}

// Cursor returns the player's current focus.
func (b *Board) Cursor() Pos {
	return b.cursor
}

// SetCursor moves the focus to p. Out-of-bounds positions are rejected
// and leave the cursor unchanged.
func (b *Board) SetCursor(p Pos) error {
	if _, err := b.lookup(p); err != nil {
		return err
	}
	b.cursor = p
	return nil
}

// HazardCount returns the number of hazards on the board.
func (b *Board) HazardCount() int {
	n := 0
	for _, h := range b.hazards {
		if h {
			n++
		}
	}
	return n
}

// FlagCount returns the number of Flagged cells.
func (b *Board) FlagCount() int {
	n := 0
	for _, c := range b.cells {
		if c.Kind() == Flagged {
			n++
		}
	}
	return n
}

// Outcome reports Lost once a hazard exploded, Won once IsWon holds,
// InProgress otherwise.
func (b *Board) Outcome() Outcome {
	switch {
	case b.exploded:
		return Lost
	case b.IsWon():
		return Won
	default:
		return InProgress
	}
}

func (b *Board) lookup(p Pos) (int, error) {
	i, err := b.grid.Lookup(p)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrOutOfBounds, err)
	}
	return i, nil
}

func (b *Board) logPlacement() {
	b.log.WithFields(logrus.Fields{
		"size":     b.Size(),
		"hazards":  b.HazardCount(),
		"openings": b.Openings(),
	}).Debug("hazards placed")
}
