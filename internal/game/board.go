package game

import (
	"errors"
	"fmt"
	"iter"
)

// PlayerMark represents the mark of a player (X, O) or an empty cell.
type PlayerMark string

const (
	// Player marks
	None    PlayerMark = ""
	PlayerX PlayerMark = "X"
	PlayerO PlayerMark = "O"

	// Board boundaries
	BorderMin = 0
	BorderMax = 2

	// Size is the number of rows and columns on the board.
	Size = BorderMax - BorderMin + 1
)

var (
	ErrInvalidCoordinate = errors.New("coordinate out of range")
	ErrCellOccupied      = errors.New("cell already occupied")
	ErrInvalidMark       = errors.New("invalid player mark")
)

// Valid reports whether m is one of the two player marks.
func (m PlayerMark) Valid() bool {
	return m == PlayerX || m == PlayerO
}

// Opponent returns the other player's mark. None has no opponent.
func (m PlayerMark) Opponent() PlayerMark {
	switch m {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return None
	}
}

func (m PlayerMark) String() string {
	if m == None {
		return "-"
	}
	return string(m)
}

// Position addresses a single cell by zero-based row and column.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// InBounds reports whether the position lies on the board.
func (p Position) InBounds() bool {
	return p.Row >= BorderMin && p.Row <= BorderMax && p.Col >= BorderMin && p.Col <= BorderMax
}

// Snapshot is an immutable copy of the board contents, suitable for rendering.
type Snapshot [Size][Size]PlayerMark

// Rows converts the snapshot to a slice of slices, the shape used on the wire.
func (s Snapshot) Rows() [][]PlayerMark {
	board := make([][]PlayerMark, Size)
	for i := range s {
		board[i] = make([]PlayerMark, Size)
		copy(board[i], s[i][:])
	}
	return board
}

// Board is the 3x3 grid. The zero value is an empty board.
type Board struct {
	cells [Size][Size]PlayerMark
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewBoardFrom builds a board from raw cell values, rejecting anything that
// is not None, X or O.
func NewBoardFrom(cells [Size][Size]PlayerMark) (*Board, error) {
	for r := range cells {
		for c, cell := range cells[r] {
			if cell != None && !cell.Valid() {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrInvalidMark, cell, r, c)
			}
		}
	}
	return &Board{cells: cells}, nil
}

// Get returns the content of the cell at row, col.
func (b *Board) Get(row, col int) (PlayerMark, error) {
	if err := checkBounds(row, col); err != nil {
		return None, err
	}
	return b.cells[row][col], nil
}

// Set places mark on an empty cell.
func (b *Board) Set(row, col int, mark PlayerMark) error {
	if err := checkBounds(row, col); err != nil {
		return err
	}
	if !mark.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidMark, mark)
	}
	if b.cells[row][col] != None {
		return fmt.Errorf("%w: (%d,%d) holds %s", ErrCellOccupied, row, col, b.cells[row][col])
	}

	b.cells[row][col] = mark
	return nil
}

// Clear empties a single cell. Look-ahead code uses it to undo trial moves.
func (b *Board) Clear(row, col int) error {
	if err := checkBounds(row, col); err != nil {
		return err
	}
	b.cells[row][col] = None
	return nil
}

// Reset empties every cell.
func (b *Board) Reset() {
	b.cells = [Size][Size]PlayerMark{}
}

// IsFull reports whether no empty cell remains.
func (b *Board) IsFull() bool {
	for r := range b.cells {
		for _, cell := range b.cells[r] {
			if cell == None {
				return false
			}
		}
	}
	return true
}

// Occupied returns the number of non-empty cells.
func (b *Board) Occupied() int {
	n := 0
	for r := range b.cells {
		for _, cell := range b.cells[r] {
			if cell != None {
				n++
			}
		}
	}
	return n
}

// EmptyCells yields the empty cells in row-major order. The sequence reads the
// board lazily, so a caller may place a trial mark on the yielded cell as long
// as it clears it again before resuming the iteration.
func (b *Board) EmptyCells() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for r := range Size {
			for c := range Size {
				if b.cells[r][c] != None {
					continue
				}
				if !yield(Position{Row: r, Col: c}) {
					return
				}
			}
		}
	}
}

// Snapshot returns a copy of the board contents.
func (b *Board) Snapshot() Snapshot {
	return Snapshot(b.cells)
}

// at reads a cell without bounds checking; callers iterate fixed tables.
func (b *Board) at(p Position) PlayerMark {
	return b.cells[p.Row][p.Col]
}

func checkBounds(row, col int) error {
	if !(Position{Row: row, Col: col}).InBounds() {
		return fmt.Errorf("%w: (%d,%d)", ErrInvalidCoordinate, row, col)
	}
	return nil
}
