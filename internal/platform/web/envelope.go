// Package web holds the response envelope and HTTP plumbing shared by the
// API handlers.
package web

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Failure is the body of every unsuccessful response.
type Failure struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func ErrorBody(message string) *Failure {
	return &Failure{Success: false, Error: message}
}

func NotFoundBody(what string, id interface{}) *Failure {
	return ErrorBody(fmt.Sprintf("%s with ID %v not found", what, id))
}

// Fail writes a failure envelope with the given status.
func Fail(c echo.Context, status int, message string) error {
	return c.JSON(status, ErrorBody(message))
}

// Timestamp renders t in RFC 3339, or nil for the zero time.
func Timestamp(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.Format(time.RFC3339Nano)
	return &s
}

// ErrorHandler renders any error that escapes a handler (including echo's own
// 404/405 and recovered panics) as a failure envelope. Status defaults to 500.
func ErrorHandler(logger zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := err.Error()
		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			message = fmt.Sprint(he.Message)
			if he.Internal != nil {
				logger.Debug().Err(he.Internal).Int("status", status).Msg("internal error detail")
			}
		}
		if status >= http.StatusInternalServerError {
			logger.Error().Err(err).Str("path", c.Request().URL.Path).Msg("request failed")
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, ErrorBody(message))
		}
		if writeErr != nil {
			logger.Error().Err(writeErr).Msg("failed to write error response")
		}
	}
}
