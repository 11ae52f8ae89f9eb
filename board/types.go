package board

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/minegrid/gridgraph"
)

// Sentinel errors for board construction and queries.
var (
	// ErrInvalidSize indicates a non-positive grid size.
	ErrInvalidSize = errors.New("board: size must be at least 1")
	// ErrInvalidDensity indicates a hazard density outside [0, 1] or a non-positive denominator.
	ErrInvalidDensity = errors.New("board: density must satisfy 0 <= numerator <= denominator, denominator > 0")
	// ErrEmptyLayout indicates an explicit hazard layout with no rows or columns.
	ErrEmptyLayout = errors.New("board: hazard layout is empty")
	// ErrNonSquare indicates an explicit hazard layout that is not square.
	ErrNonSquare = errors.New("board: hazard layout must be square")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("board: coordinate out of bounds")
	// ErrAlreadyPlaced indicates a second hazard placement on the same board.
	ErrAlreadyPlaced = errors.New("board: hazards already placed")
	// ErrFloodOrigin indicates a flood started on a hazard or a numbered cell.
	ErrFloodOrigin = errors.New("board: flood origin must be a non-hazard cell with no adjacent hazards")
)

// Pos addresses a cell by row and column.
type Pos = gridgraph.Pos

// Reference defaults: a 20×20 grid where each cell is a hazard with
// probability 1/(DefaultDifficultyOffset-DefaultDifficulty) = 1/7.
const (
	DefaultSize             = 20
	DefaultDifficulty       = 1
	DefaultDifficultyOffset = 8
)

// Kind is the discriminant of a Cell.
type Kind uint8

const (
	// Unrevealed is the initial state of every cell.
	Unrevealed Kind = iota
	// Revealed cells carry their hazard-neighbor count.
	Revealed
	// Flagged cells are player-marked and revert to Unrevealed on toggle.
	Flagged
	// Exploded marks the hazard cell that ended the game.
	Exploded
)

// String returns the Kind name.
func (k Kind) String() string {
	switch k {
	case Unrevealed:
		return "Unrevealed"
	case Revealed:
		return "Revealed"
	case Flagged:
		return "Flagged"
	case Exploded:
		return "Exploded"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Cell is the visible state of one grid coordinate.
// The count payload is only meaningful when Kind() == Revealed.
// The zero value is an Unrevealed cell.
type Cell struct {
	kind  Kind
	count uint8
}

// UnrevealedCell returns a hidden cell.
func UnrevealedCell() Cell { return Cell{kind: Unrevealed} }

// FlaggedCell returns a player-flagged cell.
func FlaggedCell() Cell { return Cell{kind: Flagged} }

// ExplodedCell returns the terminal marker for a revealed hazard.
func ExplodedCell() Cell { return Cell{kind: Exploded} }

// RevealedCell returns a revealed cell showing count adjacent hazards (0..8).
func RevealedCell(count int) Cell { return Cell{kind: Revealed, count: uint8(count)} }

// Kind returns the cell's discriminant.
func (c Cell) Kind() Kind { return c.kind }

// Count returns the hazard-neighbor count and true for Revealed cells,
// and (0, false) for every other kind.
func (c Cell) Count() (int, bool) {
	if c.kind != Revealed {
		return 0, false
	}
	return int(c.count), true
}

// String renders the cell as Kind or Revealed(n).
func (c Cell) String() string {
	if n, ok := c.Count(); ok {
		return fmt.Sprintf("Revealed(%d)", n)
	}
	return c.kind.String()
}

// Command is one decoded player input.
type Command int

const (
	// InvalidCommand is any input outside the command set; it is the zero value.
	InvalidCommand Command = iota
	MoveUp
	MoveDown
	MoveLeft
	MoveRight
	Reveal
	ToggleFlag
	Quit
)

var commandNames = [...]string{"Invalid", "MoveUp", "MoveDown", "MoveLeft", "MoveRight", "Reveal", "ToggleFlag", "Quit"}

func (c Command) String() string {
	if c < 0 || int(c) >= len(commandNames) {
		return fmt.Sprintf("Command(%d)", int(c))
	}
	return commandNames[c]
}

// Signal is the continuation verdict of one Apply call.
type Signal int

const (
	// Continue means the turn was consumed and play goes on.
	Continue Signal = iota
	// Loss means a hazard was revealed.
	Loss
	// Terminate means the player quit; no win/loss evaluation follows.
	Terminate
	// Invalid means the input was rejected without consuming a turn.
	Invalid
)

func (s Signal) String() string {
	switch s {
	case Continue:
		return "Continue"
	case Loss:
		return "Loss"
	case Terminate:
		return "Terminate"
	case Invalid:
		return "Invalid"
	default:
		return fmt.Sprintf("Signal(%d)", int(s))
	}
}

// Outcome summarises the board's game state.
type Outcome int

const (
	InProgress Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Config holds the construction parameters of a Board.
type Config struct {
	// Size is the side length of the square grid.
	Size int
	// DensityNum / DensityDen is the per-cell hazard probability.
	DensityNum, DensityDen int
}

// DefaultConfig returns the reference configuration: 20×20 at density 1/7.
func DefaultConfig() Config {
	num, den := DensityFor(DefaultDifficulty, DefaultDifficultyOffset)
	return Config{Size: DefaultSize, DensityNum: num, DensityDen: den}
}

// DensityFor converts a difficulty level into the density fraction 1/(offset-difficulty).
func DensityFor(difficulty, offset int) (num, den int) {
	return 1, offset - difficulty
}

// Validate reports ErrInvalidSize or ErrInvalidDensity for unusable parameters.
func (c Config) Validate() error {
	if c.Size < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidSize, c.Size)
	}
	return validateDensity(c.DensityNum, c.DensityDen)
}

func validateDensity(num, den int) error {
	if den <= 0 || num < 0 || num > den {
		return fmt.Errorf("%w: got %d/%d", ErrInvalidDensity, num, den)
	}
	return nil
}
