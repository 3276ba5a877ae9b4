package session

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"ctchen222/tictactoe/internal/game"
)

// Move is a single placement and the board outcome right after it.
type Move struct {
	Mark     game.PlayerMark
	Position game.Position
	Outcome  game.Outcome
}

// TurnOutcome reports the player's move and, in PlayerVsComputer mode, the
// computer's immediate reply.
type TurnOutcome struct {
	Move
	Computer *Move
}

// Final returns the outcome after the last placement of the turn.
func (t TurnOutcome) Final() game.Outcome {
	if t.Computer != nil {
		return t.Computer.Outcome
	}
	return t.Outcome
}

// PlaceMark places the active player's mark at row, col. When the other mark
// belongs to the computer it replies before PlaceMark returns. On error the
// board, active mark and tally are left as they were.
func (s *Session) PlaceMark(ctx context.Context, row, col int) (TurnOutcome, error) {
	ctx, span := s.tracer.Start(ctx, "session.PlaceMark", trace.WithAttributes(
		attribute.String("session.id", s.id),
		attribute.Int("move.row", row),
		attribute.Int("move.col", col),
	))
	defer span.End()

	switch s.phase {
	case Ended:
		span.RecordError(ErrSessionEnded)
		span.SetStatus(codes.Error, "Session ended")
		return TurnOutcome{}, ErrSessionEnded
	case RoundOver:
		err := fmt.Errorf("%w: %w", ErrInvalidMove, ErrRoundOver)
		slog.WarnContext(ctx, "move after round ended", "session.id", s.id)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Move after round ended")
		return TurnOutcome{}, err
	}

	mark := s.active
	if err := s.board.Set(row, col, mark); err != nil {
		err = fmt.Errorf("%w: %w", ErrInvalidMove, err)
		slog.WarnContext(ctx, "invalid move from player", "session.id", s.id, "move.row", row, "move.col", col, "error", err)
		span.SetAttributes(attribute.Bool("move.valid", false))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Invalid move")
		return TurnOutcome{}, err
	}
	span.SetAttributes(attribute.Bool("move.valid", true))

	turn := TurnOutcome{Move: Move{
		Mark:     mark,
		Position: game.Position{Row: row, Col: col},
		Outcome:  game.Status(s.board),
	}}

	if !turn.Outcome.Over() && s.strategy != nil {
		reply, err := s.computerTurn(ctx, mark.Opponent())
		if err != nil {
			// Undo the player's mark so the turn is all or nothing.
			_ = s.board.Clear(row, col)
			span.RecordError(err)
			span.SetStatus(codes.Error, "Computer move failed")
			return TurnOutcome{}, err
		}
		turn.Computer = &reply
	}

	s.metrics.recordMove(ctx, mark, actorHuman)
	if turn.Computer != nil {
		s.metrics.recordMove(ctx, turn.Computer.Mark, actorComputer)
	}

	final := turn.Final()
	if final.Over() {
		s.finishRound(ctx, final)
	} else if turn.Computer == nil {
		s.active = mark.Opponent()
	}

	span.SetAttributes(attribute.String("round.outcome", final.Kind.String()))
	return turn, nil
}

// computerTurn asks the strategy for a move and applies it.
func (s *Session) computerTurn(ctx context.Context, mark game.PlayerMark) (Move, error) {
	ctx, span := s.tracer.Start(ctx, "session.computerTurn", trace.WithAttributes(
		attribute.String("session.id", s.id),
		attribute.String("bot.difficulty", string(s.cfg.Difficulty)),
	))
	defer span.End()

	start := time.Now()
	p, err := s.strategy.ChooseMove(s.board, mark)
	s.metrics.recordComputerMove(ctx, string(s.cfg.Difficulty), time.Since(start))
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrComputerMove, err)
		slog.ErrorContext(ctx, "strategy could not choose a move", "session.id", s.id, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Strategy failed")
		return Move{}, err
	}

	if err := s.board.Set(p.Row, p.Col, mark); err != nil {
		err = fmt.Errorf("%w: strategy chose %v: %w", ErrComputerMove, p, err)
		slog.ErrorContext(ctx, "strategy chose an illegal move", "session.id", s.id, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Illegal computer move")
		return Move{}, err
	}

	span.SetAttributes(attribute.Int("move.row", p.Row), attribute.Int("move.col", p.Col))
	slog.DebugContext(ctx, "computer moved", "session.id", s.id, "move.row", p.Row, "move.col", p.Col)

	return Move{Mark: mark, Position: p, Outcome: game.Status(s.board)}, nil
}

func (s *Session) finishRound(ctx context.Context, o game.Outcome) {
	s.outcome = o
	s.phase = RoundOver
	s.tally.Record(o)
	s.metrics.recordRound(ctx, o)
	slog.InfoContext(ctx, "round finished", "session.id", s.id, "round.outcome", o.String(), "tally", s.tally.String())
}
