package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"ctchen222/tictactoe/internal/bot"
	"ctchen222/tictactoe/internal/game"
	"ctchen222/tictactoe/internal/validator"
)

const instrumentationName = "ctchen222/tictactoe/internal/session"

var (
	ErrInvalidMove     = errors.New("invalid move")
	ErrRoundOver       = errors.New("round is over")
	ErrRoundInProgress = errors.New("round still in progress")
	ErrSessionEnded    = errors.New("session has ended")
	ErrInvalidConfig   = errors.New("invalid session config")
	ErrComputerMove    = errors.New("computer failed to move")
)

// Mode selects who controls the O mark.
type Mode string

const (
	PlayerVsPlayer   Mode = "pvp"
	PlayerVsComputer Mode = "pvc"
)

// ParseMode accepts pvp or pvc in any letter case.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case PlayerVsPlayer, PlayerVsComputer:
		return m, nil
	default:
		return "", fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, s)
	}
}

// Config is fixed for the lifetime of a session.
type Config struct {
	Mode       Mode           `json:"mode" validate:"required,oneof=pvp pvc"`
	Difficulty bot.Difficulty `json:"difficulty,omitempty" validate:"omitempty,oneof=easy medium hard"`
}

// Phase is the coarse state of a session.
type Phase string

const (
	AwaitingMove Phase = "awaiting_move"
	RoundOver    Phase = "round_over"
	Ended        Phase = "ended"
)

// State describes where the session currently is. Active is only set while
// awaiting a move; Outcome is only meaningful once the round is over.
type State struct {
	Phase   Phase
	Active  game.PlayerMark
	Outcome game.Outcome
}

// Session owns one board and the running score for a single player (or a
// pair sharing a screen). It is not safe for concurrent use.
type Session struct {
	id       string
	cfg      Config
	board    *game.Board
	tally    game.ScoreTally
	phase    Phase
	active   game.PlayerMark
	outcome  game.Outcome
	strategy bot.Strategy

	tracer  trace.Tracer
	metrics *instruments
}

type options struct {
	id             string
	strategy       bot.Strategy
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
}

// Option customises a Session at construction time.
type Option func(*options)

// WithID overrides the generated session ID.
func WithID(id string) Option {
	return func(o *options) { o.id = id }
}

// WithStrategy replaces the strategy derived from the configured difficulty.
func WithStrategy(s bot.Strategy) Option {
	return func(o *options) { o.strategy = s }
}

func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) { o.tracerProvider = tp }
}

func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *options) { o.meterProvider = mp }
}

// New validates cfg and returns a session awaiting X's first move.
func New(cfg Config, opts ...Option) (*Session, error) {
	if err := validator.GetValidator().Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if cfg.Mode == PlayerVsComputer && cfg.Difficulty == "" {
		return nil, fmt.Errorf("%w: difficulty is required against the computer", ErrInvalidConfig)
	}

	o := options{
		tracerProvider: otel.GetTracerProvider(),
		meterProvider:  otel.GetMeterProvider(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.id == "" {
		o.id = uuid.NewString()
	}

	strategy := o.strategy
	if cfg.Mode == PlayerVsComputer && strategy == nil {
		s, err := bot.ForDifficulty(cfg.Difficulty)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		strategy = s
	}
	if cfg.Mode == PlayerVsPlayer {
		strategy = nil
	}

	m, err := newInstruments(o.meterProvider)
	if err != nil {
		return nil, err
	}

	return &Session{
		id:       o.id,
		cfg:      cfg,
		board:    game.NewBoard(),
		phase:    AwaitingMove,
		active:   game.PlayerX,
		strategy: strategy,
		tracer:   o.tracerProvider.Tracer(instrumentationName),
		metrics:  m,
	}, nil
}

func (s *Session) ID() string { return s.id }

func (s *Session) Config() Config { return s.cfg }

// ComputerMark returns the mark played by the computer, or game.None when
// both marks are human.
func (s *Session) ComputerMark() game.PlayerMark {
	if s.strategy == nil {
		return game.None
	}
	return game.PlayerO
}

func (s *Session) Board() game.Snapshot { return s.board.Snapshot() }

func (s *Session) Tally() game.ScoreTally { return s.tally }

func (s *Session) State() State {
	st := State{Phase: s.phase, Outcome: s.outcome}
	if s.phase == AwaitingMove {
		st.Active = s.active
	}
	return st
}
