package models

import (
	"ctchen222/tictactoe/internal/bot"
	"ctchen222/tictactoe/internal/game"
	"ctchen222/tictactoe/internal/session"
	"ctchen222/tictactoe/pkg/proto"
)

// NewOutcome converts a game outcome to its wire form.
func NewOutcome(o game.Outcome) proto.OutcomeMessage {
	msg := proto.OutcomeMessage{Kind: o.Kind.String()}
	if o.Kind == game.Win {
		msg.Winner = o.Winner
		msg.Line = o.Line[:]
	}
	return msg
}

func NewMove(m session.Move) proto.MoveMessage {
	return proto.MoveMessage{
		Mark:     m.Mark,
		Position: m.Position,
		Outcome:  NewOutcome(m.Outcome),
	}
}

func NewTurn(t session.TurnOutcome) proto.TurnMessage {
	msg := proto.TurnMessage{Move: NewMove(t.Move)}
	if t.Computer != nil {
		reply := NewMove(*t.Computer)
		msg.Computer = &reply
	}
	return msg
}

// NewSession snapshots s for the wire.
func NewSession(s *session.Session) proto.SessionMessage {
	cfg := s.Config()
	st := s.State()
	return proto.SessionMessage{
		ID:         s.ID(),
		Mode:       string(cfg.Mode),
		Difficulty: string(cfg.Difficulty),
		Board:      s.Board().Rows(),
		Phase:      string(st.Phase),
		Next:       st.Active,
		Outcome:    NewOutcome(st.Outcome),
		Tally:      s.Tally(),
	}
}

// SessionConfig maps a create request onto a session config.
func SessionConfig(req proto.CreateSessionRequest) session.Config {
	return session.Config{
		Mode:       session.Mode(req.Mode),
		Difficulty: bot.Difficulty(req.Difficulty),
	}
}
