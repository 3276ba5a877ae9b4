package player

import (
	"fmt"

	"ctchen222/tictactoe/internal/bot"
	"ctchen222/tictactoe/internal/game"
)

// Player is a named seat at the board whose moves come from a strategy.
type Player struct {
	Name     string
	Strategy bot.Strategy
}

// New returns a Player using strategy s.
func New(name string, s bot.Strategy) *Player {
	return &Player{Name: name, Strategy: s}
}

// FromDifficulty builds a computer player named after its difficulty tier.
func FromDifficulty(name string) (*Player, error) {
	d, err := bot.ParseDifficulty(name)
	if err != nil {
		return nil, err
	}
	s, err := bot.ForDifficulty(d)
	if err != nil {
		return nil, err
	}
	return New(string(d), s), nil
}

// Move asks the player's strategy for a move as mark.
func (p *Player) Move(board *game.Board, mark game.PlayerMark) (game.Position, error) {
	pos, err := p.Strategy.ChooseMove(board, mark)
	if err != nil {
		return game.Position{}, fmt.Errorf("player %s: %w", p.Name, err)
	}
	return pos, nil
}

func (p *Player) String() string {
	return p.Name
}
