package response

import (
	"errors"
	"net/http"

	"ctchen222/tictactoe/internal/api/service"
	"ctchen222/tictactoe/internal/game"
	"ctchen222/tictactoe/internal/session"
)

type Error struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Extras  string `json:"extras"`
}

func (e Error) Error() string {
	return e.Extras
}

func NewError(code int, message string) Error {
	return Error{
		Success: false,
		Code:    code,
		Extras:  message,
	}
}

// FromError maps domain errors to an HTTP status.
func FromError(err error) Error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		code = http.StatusNotFound
	case errors.Is(err, session.ErrInvalidConfig),
		errors.Is(err, game.ErrInvalidCoordinate):
		code = http.StatusBadRequest
	case errors.Is(err, game.ErrCellOccupied),
		errors.Is(err, session.ErrRoundOver),
		errors.Is(err, session.ErrRoundInProgress),
		errors.Is(err, session.ErrSessionEnded):
		code = http.StatusConflict
	}
	return NewError(code, err.Error())
}
