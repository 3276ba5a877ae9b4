package proto

import "ctchen222/tictactoe/internal/game"

// CreateSessionRequest starts a new session.
type CreateSessionRequest struct {
	Mode       string `json:"mode" binding:"required,oneof=pvp pvc"`
	Difficulty string `json:"difficulty,omitempty" binding:"omitempty,oneof=easy medium hard"`
}

// MoveRequest places the active player's mark. Coordinates are zero-based.
type MoveRequest struct {
	Row *int `json:"row" binding:"required"`
	Col *int `json:"col" binding:"required"`
}

// OutcomeMessage describes the state of the round on the wire.
type OutcomeMessage struct {
	Kind   string          `json:"kind"`
	Winner game.PlayerMark `json:"winner,omitempty"`
	Line   []game.Position `json:"line,omitempty"`
}

// MoveMessage is a single placement.
type MoveMessage struct {
	Mark     game.PlayerMark `json:"mark"`
	Position game.Position   `json:"position"`
	Outcome  OutcomeMessage  `json:"outcome"`
}

// TurnMessage is the player's move and the computer's reply, if any.
type TurnMessage struct {
	Move     MoveMessage  `json:"move"`
	Computer *MoveMessage `json:"computer,omitempty"`
}

// SessionMessage is the full view of a session.
type SessionMessage struct {
	ID         string              `json:"id"`
	Mode       string              `json:"mode"`
	Difficulty string              `json:"difficulty,omitempty"`
	Board      [][]game.PlayerMark `json:"board"`
	Phase      string              `json:"phase"`
	Next       game.PlayerMark     `json:"next,omitempty"`
	Outcome    OutcomeMessage      `json:"outcome"`
	Tally      game.ScoreTally     `json:"tally"`
}

// MoveResponse is returned after a successful move.
type MoveResponse struct {
	Turn    TurnMessage    `json:"turn"`
	Session SessionMessage `json:"session"`
}
