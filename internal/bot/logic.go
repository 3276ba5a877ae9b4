package bot

import (
	"errors"
	"fmt"
	"strings"

	"ctchen222/tictactoe/internal/game"
)

var (
	ErrNoLegalMove       = errors.New("no legal move: board is full")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
)

// Strategy picks a move for mark on board. Implementations may place trial
// marks while searching but must leave the board as they found it.
//
//go:generate mockgen -destination=mocks/mock_strategy.go -package=mocks . Strategy
type Strategy interface {
	ChooseMove(board *game.Board, mark game.PlayerMark) (game.Position, error)
}

// Difficulty selects which Strategy drives the computer player.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// ParseDifficulty accepts easy, medium or hard in any letter case.
func ParseDifficulty(s string) (Difficulty, error) {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(s))); d {
	case Easy, Medium, Hard:
		return d, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
	}
}

// ForDifficulty returns a fresh Strategy for the difficulty tier.
func ForDifficulty(d Difficulty) (Strategy, error) {
	switch d {
	case Easy:
		return NewRandom(nil), nil
	case Medium:
		return NewHeuristic(nil), nil
	case Hard:
		return Exhaustive{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDifficulty, d)
	}
}

// CalculateNextMove determines the bot's next move based on the specified difficulty.
func CalculateNextMove(board *game.Board, botMark game.PlayerMark, difficulty string) (game.Position, error) {
	d, err := ParseDifficulty(difficulty)
	if err != nil {
		return game.Position{}, err
	}
	strategy, err := ForDifficulty(d)
	if err != nil {
		return game.Position{}, err
	}
	return strategy.ChooseMove(board, botMark)
}

func checkMark(mark game.PlayerMark) error {
	if !mark.Valid() {
		return fmt.Errorf("%w: %q", game.ErrInvalidMark, mark)
	}
	return nil
}
