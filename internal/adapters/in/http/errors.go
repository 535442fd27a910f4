package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"depot/internal/core/application/allocation"
	"depot/internal/generated/servers"
	"depot/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

var clientErrors = []error{
	errs.ErrValueIsRequired,
	errs.ErrValueIsInvalid,
	errs.ErrValueIsOutOfRange,
	allocation.ErrSlotNotAvailable,
	allocation.ErrNoFreeSlots,
	allocation.ErrWarehouseNotFound,
}

func isClientError(err error) bool {
	for _, target := range clientErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// fail answers 400 with the error text for invalid input and allocation
// failures. Anything else is logged and answered with a bare 500.
func (s *Server) fail(ctx echo.Context, err error) error {
	if isClientError(err) {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	s.logger.ErrorContext(ctx.Request().Context(), "Request failed",
		"method", ctx.Request().Method,
		"route", ctx.Path(),
		"error", err,
	)
	return ctx.JSON(http.StatusInternalServerError, servers.Error{
		Code:    http.StatusInternalServerError,
		Message: "Internal server error",
	})
}

// ErrorHandler renders errors that escaped a handler, such as binding and
// routing errors, in the same {code, message} shape.
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := "Internal server error"

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			code = httpErr.Code
			message = fmt.Sprint(httpErr.Message)
		}
		if code >= http.StatusInternalServerError {
			logger.ErrorContext(ctx.Request().Context(), "Unhandled error", "route", ctx.Path(), "error", err)
		}

		var writeErr error
		if ctx.Request().Method == http.MethodHead {
			writeErr = ctx.NoContent(code)
		} else {
			writeErr = ctx.JSON(code, servers.Error{Code: int32(code), Message: message})
		}
		if writeErr != nil {
			logger.ErrorContext(ctx.Request().Context(), "Failed to write error response", "error", writeErr)
		}
	}
}
