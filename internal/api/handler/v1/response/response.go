// Package response renders the API's JSON envelope. Every route answers
// {"success":true,"data":...} or {"success":false,"error":{...}}; errors
// never escape a handler unwrapped.
package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Err struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`

	cause error
}

func (e *Err) Error() string {
	return fmt.Sprintf("%v - %v: %v", e.StatusCode, e.Code, e.Message)
}

func (e *Err) Unwrap() error {
	return e.cause
}

func ErrBadRequest(err error) *Err {
	return &Err{
		StatusCode: http.StatusBadRequest,
		Code:       "BAD_REQUEST",
		Message:    err.Error(),
		cause:      err,
	}
}

func ErrWrongCredentials(err error) *Err {
	return &Err{
		StatusCode: http.StatusUnauthorized,
		Code:       "WRONG_CREDENTIALS",
		Message:    "wrong email or password",
		cause:      err,
	}
}

func ErrUnauthorized(message string) *Err {
	return &Err{
		StatusCode: http.StatusUnauthorized,
		Code:       "UNAUTHORIZED",
		Message:    message,
		cause:      errors.New(message),
	}
}

func ErrPermissionDenied(err error) *Err {
	return &Err{
		StatusCode: http.StatusForbidden,
		Code:       "PERMISSION_DENIED",
		Message:    err.Error(),
		cause:      err,
	}
}

func ErrNotFound(resource, key string, value any) *Err {
	message := fmt.Sprintf("%v with %v (%v) is not found", resource, key, value)

	return &Err{
		StatusCode: http.StatusNotFound,
		Code:       "NOT_FOUND",
		Message:    message,
		cause:      errors.New(message),
	}
}

// ErrUnprocessable reports a request that was well-formed but could not be
// acted on, e.g. a page that loaded but yielded no product details.
func ErrUnprocessable(err error) *Err {
	return &Err{
		StatusCode: http.StatusUnprocessableEntity,
		Code:       "UNPROCESSABLE",
		Message:    err.Error(),
		cause:      err,
	}
}

// ErrBadGateway reports an upstream dependency failure the client can see,
// e.g. an unreachable product page.
func ErrBadGateway(err error) *Err {
	return &Err{
		StatusCode: http.StatusBadGateway,
		Code:       "BAD_GATEWAY",
		Message:    err.Error(),
		cause:      err,
	}
}

func ErrInternalServerError(err error) *Err {
	return &Err{
		StatusCode: http.StatusInternalServerError,
		Code:       "INTERNAL_ERROR",
		Message:    "internal error",
		cause:      err,
	}
}

type envelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
	Error   *Err `json:"error,omitempty"`
}

// OK renders the success envelope.
func OK(ctx *gin.Context, statusCode int, data any) {
	ctx.JSON(statusCode, envelope{
		Success: true,
		Data:    data,
	})
}

// RenderErr renders the failure envelope. Server-side faults keep their
// cause in the log only; the client sees a generic message.
func RenderErr(ctx *gin.Context, err *Err) {
	if err.StatusCode >= http.StatusInternalServerError {
		zap.L().Error("server-side error occurred",
			zap.Int("status", err.StatusCode),
			zap.String("request_id", requestid.Get(ctx)),
			zap.String("path", ctx.FullPath()),
			zap.Error(err.cause),
		)
	}

	ctx.JSON(err.StatusCode, envelope{
		Success: false,
		Error:   err,
	})
}
