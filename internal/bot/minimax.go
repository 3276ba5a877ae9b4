package bot

import (
	"math"

	"ctchen222/tictactoe/internal/game"
)

const (
	scoreWin  = 1
	scoreDraw = 0
	scoreLoss = -1
)

// Exhaustive plays perfectly by searching the whole remaining game tree with
// plain minimax. Trial marks are placed on the caller's board and cleared
// again before ChooseMove returns.
type Exhaustive struct{}

func (Exhaustive) ChooseMove(board *game.Board, mark game.PlayerMark) (game.Position, error) {
	if err := checkMark(mark); err != nil {
		return game.Position{}, err
	}
	if board.IsFull() {
		return game.Position{}, ErrNoLegalMove
	}

	var best game.Position
	bestScore := math.MinInt

	// Ties keep the first move found in row-major order.
	for p := range board.EmptyCells() {
		score := tryMove(board, p, mark, func() int {
			return minimax(board, mark, false)
		})
		if score > bestScore {
			bestScore = score
			best = p
		}
	}

	return best, nil
}

// minimax scores the board from bot's point of view. maximizing is true when
// bot is the side to move.
func minimax(board *game.Board, bot game.PlayerMark, maximizing bool) int {
	if winner, _, ok := game.Winner(board); ok {
		if winner == bot {
			return scoreWin
		}
		return scoreLoss
	}
	if board.IsFull() {
		return scoreDraw
	}

	if maximizing {
		maxEval := math.MinInt
		for p := range board.EmptyCells() {
			eval := tryMove(board, p, bot, func() int {
				return minimax(board, bot, false)
			})
			maxEval = max(maxEval, eval)
		}
		return maxEval
	}

	minEval := math.MaxInt
	opponent := bot.Opponent()
	for p := range board.EmptyCells() {
		eval := tryMove(board, p, opponent, func() int {
			return minimax(board, bot, true)
		})
		minEval = min(minEval, eval)
	}
	return minEval
}

// tryMove places mark at p, evaluates, and always clears p again.
func tryMove(board *game.Board, p game.Position, mark game.PlayerMark, eval func() int) int {
	// p comes from EmptyCells and mark was validated by the caller.
	_ = board.Set(p.Row, p.Col, mark)
	defer board.Clear(p.Row, p.Col)
	return eval()
}
