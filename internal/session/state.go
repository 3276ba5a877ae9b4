package session

import (
	"context"
	"log/slog"

	"ctchen222/tictactoe/internal/game"
)

// NewRound abandons the current round, if any, and starts a fresh one with X
// to move. The tally is kept.
func (s *Session) NewRound() error {
	if s.phase == Ended {
		return ErrSessionEnded
	}
	s.resetRound(context.Background())
	return nil
}

// PlayAgain starts the next round once the current one is over.
func (s *Session) PlayAgain() error {
	switch s.phase {
	case Ended:
		return ErrSessionEnded
	case AwaitingMove:
		return ErrRoundInProgress
	}
	s.resetRound(context.Background())
	return nil
}

// Decline ends the session after a finished round.
func (s *Session) Decline() error {
	switch s.phase {
	case Ended:
		return ErrSessionEnded
	case AwaitingMove:
		return ErrRoundInProgress
	}
	s.phase = Ended
	slog.InfoContext(context.Background(), "session ended", "session.id", s.id, "tally", s.tally.String())
	return nil
}

// ResetTally zeroes the score without touching the board.
func (s *Session) ResetTally() error {
	if s.phase == Ended {
		return ErrSessionEnded
	}
	s.tally = game.ScoreTally{}
	return nil
}

// resetRound clears the board for a new round.
func (s *Session) resetRound(ctx context.Context) {
	_, span := s.tracer.Start(ctx, "session.resetRound")
	defer span.End()

	s.board.Reset()
	s.active = game.PlayerX
	s.phase = AwaitingMove
	s.outcome = game.Outcome{}
	slog.DebugContext(ctx, "new round", "session.id", s.id)
}
