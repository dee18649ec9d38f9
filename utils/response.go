package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scribeapp/scribe/apperror"
)

// JSONResponse defines the uniform structure for API responses.
type JSONResponse struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Respond writes a JSON response with the given status code.
func Respond(ctx *gin.Context, status int, code int, message string, data interface{}) {
	ctx.JSON(status, JSONResponse{
		Code:    code,
		Message: message,
		Data:    data,
	})
}

// Success returns a standard success response.
func Success(ctx *gin.Context, data interface{}) {
	Respond(ctx, http.StatusOK, 0, "success", data)
}

// Error returns a standard error response.
func Error(ctx *gin.Context, status int, code int, message string) {
	Respond(ctx, status, code, message, nil)
}

// Fail translates a service-layer error into a response, using the apperror
// taxonomy when available and the fallback otherwise. The error is recorded
// on the gin context so the transaction middleware rolls back.
func Fail(ctx *gin.Context, err error, fallbackCode int, fallbackMessage string) {
	_ = ctx.Error(err)

	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		Error(ctx, appErr.StatusCode(), fallbackCode, appErr.Message)
		return
	}
	Error(ctx, http.StatusInternalServerError, fallbackCode, fallbackMessage)
}
