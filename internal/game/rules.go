package game

// Line is three cell positions forming a row, column or diagonal.
type Line [Size]Position

// Lines holds every winning line in evaluation order: rows top to bottom,
// columns left to right, then the main and anti diagonals.
var Lines = [8]Line{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// OutcomeKind classifies the state of a round.
type OutcomeKind int

const (
	InProgress OutcomeKind = iota
	Win
	Draw
)

func (k OutcomeKind) String() string {
	switch k {
	case InProgress:
		return "in_progress"
	case Win:
		return "win"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}

// Outcome is the result of evaluating a board. Winner and Line are only set
// when Kind is Win.
type Outcome struct {
	Kind   OutcomeKind
	Winner PlayerMark
	Line   Line
}

// Over reports whether the round has finished.
func (o Outcome) Over() bool {
	return o.Kind != InProgress
}

func (o Outcome) String() string {
	if o.Kind == Win {
		return o.Winner.String() + " wins"
	}
	return o.Kind.String()
}

// Cells returns the contents of the three cells of l.
func (b *Board) Cells(l Line) [Size]PlayerMark {
	return [Size]PlayerMark{b.at(l[0]), b.at(l[1]), b.at(l[2])}
}

// Winner returns the first completed line under the Lines order.
func Winner(b *Board) (mark PlayerMark, line Line, ok bool) {
	for _, l := range Lines {
		cells := b.Cells(l)
		if cells[0] != None && cells[0] == cells[1] && cells[1] == cells[2] {
			return cells[0], l, true
		}
	}
	return None, Line{}, false
}

// IsDraw checks if the board is full without a completed line.
func IsDraw(b *Board) bool {
	if _, _, ok := Winner(b); ok {
		return false
	}
	return b.IsFull()
}

// Status evaluates the board.
func Status(b *Board) Outcome {
	if mark, line, ok := Winner(b); ok {
		return Outcome{Kind: Win, Winner: mark, Line: line}
	}
	if b.IsFull() {
		return Outcome{Kind: Draw}
	}
	return Outcome{Kind: InProgress}
}
