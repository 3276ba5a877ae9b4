package cli

import (
	"fmt"
	"io"
	"strings"

	"ctchen222/tictactoe/internal/game"
)

const (
	colorReset = "\x1b[0m"
	colorWin   = "\x1b[1;32m"
)

// renderBoard draws the board with 1-based row and column labels. Cells on
// the winning line are bracketed, and coloured when color is set.
func renderBoard(w io.Writer, board game.Snapshot, outcome game.Outcome, color bool) {
	winning := map[game.Position]bool{}
	if outcome.Kind == game.Win {
		for _, p := range outcome.Line {
			winning[p] = true
		}
	}

	var sb strings.Builder
	sb.WriteString("     1   2   3\n")
	for r := range game.Size {
		if r > 0 {
			sb.WriteString("    ---+---+---\n")
		}
		fmt.Fprintf(&sb, "%d   ", r+1)
		for c := range game.Size {
			if c > 0 {
				sb.WriteByte('|')
			}
			sb.WriteString(cell(board[r][c], winning[game.Position{Row: r, Col: c}], color))
		}
		sb.WriteByte('\n')
	}
	io.WriteString(w, sb.String())
}

func cell(mark game.PlayerMark, win, color bool) string {
	s := " " + mark.String() + " "
	if mark == game.None {
		s = "   "
	}
	if !win {
		return s
	}
	s = "[" + mark.String() + "]"
	if color {
		s = colorWin + s + colorReset
	}
	return s
}

// outcomeMessage is the line shown when a round ends.
func outcomeMessage(o game.Outcome, computer game.PlayerMark) string {
	switch o.Kind {
	case game.Win:
		if o.Winner == computer {
			return fmt.Sprintf("Computer (%s) wins!", o.Winner)
		}
		return fmt.Sprintf("Player %s wins!", o.Winner)
	case game.Draw:
		return "It's a draw!"
	default:
		return ""
	}
}
