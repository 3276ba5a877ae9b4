package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Success bool `json:"success"`
	Code    int  `json:"code"`
	Extras  any  `json:"extras"`
}

func NewResponse(success bool, code int, extras any) Response {
	return Response{
		Success: success,
		Code:    code,
		Extras:  extras,
	}
}

// SuccessResponse returns a JSON response with a success message with no type limitation
func SuccessResponse(c *gin.Context, extras any) {
	SuccessResponseStatus(c, http.StatusOK, extras)
}

// SuccessResponseStatus is SuccessResponse with an explicit status, e.g. 201.
func SuccessResponseStatus(c *gin.Context, code int, extras any) {
	c.JSON(code, NewResponse(true, code, extras))
}

func ErrorResponse(c *gin.Context, code int, message string) {
	c.JSON(
		code,
		NewResponse(
			false,
			code,
			map[string]any{
				"message": message,
			},
		))
}

// ErrorResponseFrom writes err using the status chosen by FromError.
func ErrorResponseFrom(c *gin.Context, err error) {
	e := FromError(err)
	_ = c.Error(err)
	ErrorResponse(c, e.Code, e.Extras)
}
