package bot

import (
	"math/rand/v2"

	"ctchen222/tictactoe/internal/game"
)

// Heuristic will win if it can, block if it must, otherwise move randomly.
// It only looks at single lines, so forks go unnoticed.
type Heuristic struct {
	fallback *Random
}

// NewHeuristic returns a Heuristic whose random fallback draws from rng (see
// NewRandom).
func NewHeuristic(rng *rand.Rand) *Heuristic {
	return &Heuristic{fallback: NewRandom(rng)}
}

func (s *Heuristic) ChooseMove(board *game.Board, mark game.PlayerMark) (game.Position, error) {
	if err := checkMark(mark); err != nil {
		return game.Position{}, err
	}
	if board.IsFull() {
		return game.Position{}, ErrNoLegalMove
	}

	// 1. Win: Check if the bot can win in the next move
	if p, canWin := findWinningMove(board, mark); canWin {
		return p, nil
	}

	// 2. Block: Check if the opponent is about to win and block them
	if p, canBlock := findWinningMove(board, mark.Opponent()); canBlock {
		return p, nil
	}

	// 3. Random: Otherwise, make a random move
	return s.fallback.ChooseMove(board, mark)
}

// findWinningMove checks if a player has a potential winning move (two in a
// row with an empty third), scanning lines in game.Lines order.
func findWinningMove(board *game.Board, mark game.PlayerMark) (game.Position, bool) {
	for _, line := range game.Lines {
		cells := board.Cells(line)
		own, empty := 0, -1
		for i, cell := range cells {
			switch cell {
			case mark:
				own++
			case game.None:
				empty = i
			}
		}
		if own == 2 && empty >= 0 {
			return line[empty], true
		}
	}
	return game.Position{}, false
}
