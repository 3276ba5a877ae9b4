package match

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"ctchen222/tictactoe/internal/game"
	"ctchen222/tictactoe/internal/player"
)

var tracer = otel.Tracer("ctchen222/tictactoe/internal/match")

var ErrNoRounds = errors.New("rounds must be positive")

// Runner plays independent rounds between two computer players. X always
// moves first.
type Runner struct {
	x, o    *player.Player
	workers int
}

type Option func(*Runner)

// WithWorkers bounds the number of rounds played at once. Values below one
// fall back to GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(r *Runner) { r.workers = n }
}

func NewRunner(x, o *player.Player, opts ...Option) *Runner {
	r := &Runner{x: x, o: o}
	for _, opt := range opts {
		opt(r)
	}
	if r.workers < 1 {
		r.workers = runtime.GOMAXPROCS(0)
	}
	return r
}

// Play runs rounds games and returns the combined tally. It stops scheduling
// new rounds once ctx is cancelled or a strategy fails.
func (r *Runner) Play(ctx context.Context, rounds int) (game.ScoreTally, error) {
	ctx, span := tracer.Start(ctx, "match.Play", trace.WithAttributes(
		attribute.String("match.x", r.x.Name),
		attribute.String("match.o", r.o.Name),
		attribute.Int("match.rounds", rounds),
		attribute.Int("match.workers", r.workers),
	))
	defer span.End()

	if rounds < 1 {
		span.SetStatus(codes.Error, "No rounds")
		return game.ScoreTally{}, fmt.Errorf("%w: got %d", ErrNoRounds, rounds)
	}

	var (
		mu    sync.Mutex
		tally game.ScoreTally
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i := range rounds {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			outcome, err := r.playRound(r.x, r.o)
			if err != nil {
				return fmt.Errorf("round %d: %w", i+1, err)
			}
			mu.Lock()
			tally.Record(outcome)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		slog.ErrorContext(ctx, "match aborted", "match.x", r.x.Name, "match.o", r.o.Name, "tally", tally.String(), "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Match aborted")
		return tally, err
	}
	// Cancellation may stop the loop before any goroutine sees it.
	if err := ctx.Err(); err != nil && tally.Rounds() < rounds {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Match cancelled")
		return tally, err
	}

	slog.InfoContext(ctx, "match finished", "match.x", r.x.Name, "match.o", r.o.Name, "match.rounds", rounds, "tally", tally.String())
	return tally, nil
}

// playRound plays a single game on a fresh board.
func (r *Runner) playRound(x, o *player.Player) (game.Outcome, error) {
	board := game.NewBoard()
	seats := [2]*player.Player{x, o}
	mark := game.PlayerX

	for turn := 0; ; turn++ {
		current := seats[turn%2]
		p, err := current.Move(board, mark)
		if err != nil {
			return game.Outcome{}, err
		}
		if err := board.Set(p.Row, p.Col, mark); err != nil {
			return game.Outcome{}, fmt.Errorf("player %s: %w", current.Name, err)
		}

		if outcome := game.Status(board); outcome.Over() {
			return outcome, nil
		}
		mark = mark.Opponent()
	}
}
