package session

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"ctchen222/tictactoe/internal/game"
)

const (
	actorHuman    = "human"
	actorComputer = "computer"
)

type instruments struct {
	moves        metric.Int64Counter
	rounds       metric.Int64Counter
	computerMove metric.Float64Histogram
}

func newInstruments(mp metric.MeterProvider) (*instruments, error) {
	meter := mp.Meter(instrumentationName)

	moves, err := meter.Int64Counter("tictactoe.moves",
		metric.WithDescription("Marks placed on the board"),
		metric.WithUnit("{move}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create moves counter: %w", err)
	}

	rounds, err := meter.Int64Counter("tictactoe.rounds",
		metric.WithDescription("Finished rounds by outcome"),
		metric.WithUnit("{round}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create rounds counter: %w", err)
	}

	computerMove, err := meter.Float64Histogram("tictactoe.computer_move.duration",
		metric.WithDescription("Time the computer spent choosing a move"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create computer move histogram: %w", err)
	}

	return &instruments{moves: moves, rounds: rounds, computerMove: computerMove}, nil
}

func (i *instruments) recordMove(ctx context.Context, mark game.PlayerMark, actor string) {
	i.moves.Add(ctx, 1, metric.WithAttributes(
		attribute.String("mark", string(mark)),
		attribute.String("actor", actor),
	))
}

func (i *instruments) recordRound(ctx context.Context, o game.Outcome) {
	outcome := o.Kind.String()
	if o.Kind == game.Win {
		outcome = string(o.Winner) + "_win"
	}
	i.rounds.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

func (i *instruments) recordComputerMove(ctx context.Context, difficulty string, d time.Duration) {
	i.computerMove.Record(ctx, d.Seconds(), metric.WithAttributes(attribute.String("difficulty", difficulty)))
}
