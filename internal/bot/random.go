package bot

import (
	"math/rand/v2"
	"slices"

	"ctchen222/tictactoe/internal/game"
)

// Random makes a completely random move.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a Random strategy drawing from rng. A nil rng uses the
// package-level generator, which is safe for concurrent use; a non-nil one is
// not and must not be shared between goroutines.
func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

func (s *Random) ChooseMove(board *game.Board, mark game.PlayerMark) (game.Position, error) {
	if err := checkMark(mark); err != nil {
		return game.Position{}, err
	}

	availableMoves := slices.Collect(board.EmptyCells())
	if len(availableMoves) == 0 {
		return game.Position{}, ErrNoLegalMove
	}

	return availableMoves[s.intN(len(availableMoves))], nil
}

func (s *Random) intN(n int) int {
	if s == nil || s.rng == nil {
		return rand.IntN(n)
	}
	return s.rng.IntN(n)
}
