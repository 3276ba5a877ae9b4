package controller

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"ctchen222/tictactoe/internal/api/response"
	"ctchen222/tictactoe/internal/api/service"
	"ctchen222/tictactoe/pkg/proto"
)

// SessionController handles session-related HTTP requests.
type SessionController struct {
	sessionService service.SessionService
}

// NewSessionController creates a new SessionController.
func NewSessionController(sessionService service.SessionService) *SessionController {
	return &SessionController{
		sessionService: sessionService,
	}
}

// Create handles POST /api/sessions.
func (sc *SessionController) Create(c *gin.Context) {
	var req proto.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	msg, err := sc.sessionService.Create(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponseFrom(c, err)
		return
	}

	response.SuccessResponseStatus(c, http.StatusCreated, msg)
}

// Get handles GET /api/sessions/:id.
func (sc *SessionController) Get(c *gin.Context) {
	msg, err := sc.sessionService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.ErrorResponseFrom(c, err)
		return
	}

	response.SuccessResponse(c, msg)
}

// Move handles POST /api/sessions/:id/moves.
func (sc *SessionController) Move(c *gin.Context) {
	var req proto.MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := sc.sessionService.Move(c.Request.Context(), c.Param("id"), *req.Row, *req.Col)
	if err != nil {
		response.ErrorResponseFrom(c, err)
		return
	}

	response.SuccessResponse(c, resp)
}

// NewRound handles POST /api/sessions/:id/rounds.
func (sc *SessionController) NewRound(c *gin.Context) {
	sc.update(c, sc.sessionService.NewRound)
}

// PlayAgain handles POST /api/sessions/:id/play-again.
func (sc *SessionController) PlayAgain(c *gin.Context) {
	sc.update(c, sc.sessionService.PlayAgain)
}

// Decline handles POST /api/sessions/:id/decline.
func (sc *SessionController) Decline(c *gin.Context) {
	sc.update(c, sc.sessionService.Decline)
}

// ResetTally handles DELETE /api/sessions/:id/tally.
func (sc *SessionController) ResetTally(c *gin.Context) {
	sc.update(c, sc.sessionService.ResetTally)
}

// Delete handles DELETE /api/sessions/:id.
func (sc *SessionController) Delete(c *gin.Context) {
	if err := sc.sessionService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.ErrorResponseFrom(c, err)
		return
	}

	response.SuccessResponse(c, gin.H{"message": "Session deleted"})
}

func (sc *SessionController) update(c *gin.Context, op func(ctx context.Context, id string) (proto.SessionMessage, error)) {
	msg, err := op(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.ErrorResponseFrom(c, err)
		return
	}

	response.SuccessResponse(c, msg)
}
