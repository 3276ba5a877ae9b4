package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"ctchen222/tictactoe/internal/api/models"
	"ctchen222/tictactoe/internal/session"
	"ctchen222/tictactoe/pkg/proto"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionService defines the session operations exposed over HTTP.
type SessionService interface {
	Create(ctx context.Context, req *proto.CreateSessionRequest) (proto.SessionMessage, error)
	Get(ctx context.Context, id string) (proto.SessionMessage, error)
	Move(ctx context.Context, id string, row, col int) (proto.MoveResponse, error)
	NewRound(ctx context.Context, id string) (proto.SessionMessage, error)
	PlayAgain(ctx context.Context, id string) (proto.SessionMessage, error)
	Decline(ctx context.Context, id string) (proto.SessionMessage, error)
	ResetTally(ctx context.Context, id string) (proto.SessionMessage, error)
	Delete(ctx context.Context, id string) error
}

// entry serialises access to one session.
type entry struct {
	mu sync.Mutex
	s  *session.Session
}

type sessionService struct {
	mu       sync.RWMutex
	sessions map[string]*entry
	opts     []session.Option
}

// NewSessionService returns an in-memory registry. opts are applied to every
// session it creates.
func NewSessionService(opts ...session.Option) SessionService {
	return &sessionService{
		sessions: make(map[string]*entry),
		opts:     opts,
	}
}

func (r *sessionService) Create(ctx context.Context, req *proto.CreateSessionRequest) (proto.SessionMessage, error) {
	s, err := session.New(models.SessionConfig(*req), r.opts...)
	if err != nil {
		return proto.SessionMessage{}, err
	}

	r.mu.Lock()
	r.sessions[s.ID()] = &entry{s: s}
	r.mu.Unlock()

	slog.InfoContext(ctx, "session created", "session.id", s.ID(), "game.mode", req.Mode, "game.difficulty", req.Difficulty)
	return models.NewSession(s), nil
}

func (r *sessionService) Get(ctx context.Context, id string) (proto.SessionMessage, error) {
	var msg proto.SessionMessage
	err := r.with(id, func(s *session.Session) error {
		msg = models.NewSession(s)
		return nil
	})
	return msg, err
}

func (r *sessionService) Move(ctx context.Context, id string, row, col int) (proto.MoveResponse, error) {
	var resp proto.MoveResponse
	err := r.with(id, func(s *session.Session) error {
		turn, err := s.PlaceMark(ctx, row, col)
		if err != nil {
			return err
		}
		resp = proto.MoveResponse{Turn: models.NewTurn(turn), Session: models.NewSession(s)}
		return nil
	})
	return resp, err
}

func (r *sessionService) NewRound(ctx context.Context, id string) (proto.SessionMessage, error) {
	return r.apply(id, (*session.Session).NewRound)
}

func (r *sessionService) PlayAgain(ctx context.Context, id string) (proto.SessionMessage, error) {
	return r.apply(id, (*session.Session).PlayAgain)
}

func (r *sessionService) Decline(ctx context.Context, id string) (proto.SessionMessage, error) {
	return r.apply(id, (*session.Session).Decline)
}

func (r *sessionService) ResetTally(ctx context.Context, id string) (proto.SessionMessage, error) {
	return r.apply(id, (*session.Session).ResetTally)
}

func (r *sessionService) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	delete(r.sessions, id)
	slog.InfoContext(ctx, "session deleted", "session.id", id)
	return nil
}

// apply runs op on the session and returns its updated view.
func (r *sessionService) apply(id string, op func(*session.Session) error) (proto.SessionMessage, error) {
	var msg proto.SessionMessage
	err := r.with(id, func(s *session.Session) error {
		if err := op(s); err != nil {
			return err
		}
		msg = models.NewSession(s)
		return nil
	})
	return msg, err
}

// with looks up id and runs fn while holding that session's lock.
func (r *sessionService) with(id string, fn func(*session.Session) error) error {
	r.mu.RLock()
	e, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.s)
}
