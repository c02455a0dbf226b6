package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"grubdash/internal/core/application/pipeline"
	"grubdash/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

const internalErrorMessage = "Internal server error"

// HTTPErrorHandler renders every error as {"status": code, "message": text}.
// Pipeline failures keep their status and message; routing errors name the
// path; anything else is logged and becomes a 500.
func HTTPErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		status, message := describe(ctx, err)
		if status == http.StatusInternalServerError {
			logUnexpected(ctx, logger, err)
		}

		var writeErr error
		if ctx.Request().Method == http.MethodHead {
			writeErr = ctx.NoContent(status)
		} else {
			writeErr = ctx.JSON(status, servers.Error{Status: status, Message: message})
		}
		if writeErr != nil {
			logger.ErrorContext(ctx.Request().Context(), "Failed to write error response", "error", writeErr)
		}
	}
}

// StatusOf returns the status code err is rendered with.
func StatusOf(err error) int {
	if f, ok := pipeline.AsFailure(err); ok {
		return f.Status
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	return http.StatusInternalServerError
}

func describe(ctx echo.Context, err error) (int, string) {
	if f, ok := pipeline.AsFailure(err); ok {
		return f.Status, f.Message
	}

	var he *echo.HTTPError
	if !errors.As(err, &he) {
		return http.StatusInternalServerError, internalErrorMessage
	}

	switch {
	case errors.Is(he, echo.ErrNotFound):
		return he.Code, fmt.Sprintf("Path not found: %s", ctx.Request().RequestURI)
	case errors.Is(he, echo.ErrMethodNotAllowed):
		return he.Code, fmt.Sprintf("%s not allowed for %s", ctx.Request().Method, ctx.Request().RequestURI)
	case he.Code >= http.StatusInternalServerError:
		return he.Code, internalErrorMessage
	}
	if msg, ok := he.Message.(string); ok {
		return he.Code, msg
	}
	return he.Code, fmt.Sprint(he.Message)
}
