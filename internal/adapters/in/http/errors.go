package http

import (
	"errors"
	"fmt"
	"net/http"

	"telecom/internal/generated/servers"
	"telecom/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const internalErrorMessage = "Internal server error"

// errorResponse classifies err into a status code and the public error envelope.
// Unclassified errors never leak their text.
func errorResponse(err error) (int, servers.Error) {
	var (
		httpErr       *echo.HTTPError
		validationErr validator.ValidationErrors
	)

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, servers.Error{Error: servers.NotFound, Message: err.Error()}
	case errors.Is(err, errs.ErrObjectAlreadyExists),
		errors.Is(err, errs.ErrOperationInProgress):
		return http.StatusConflict, servers.Error{Error: servers.Conflict, Message: err.Error()}
	case errors.Is(err, errs.ErrTransitionIsNotAllowed),
		errors.Is(err, errs.ErrObjectIsStale),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, servers.Error{Error: servers.BadRequest, Message: err.Error()}
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, servers.Error{Error: servers.BadRequest, Message: validationErr.Error()}
	case errors.As(err, &httpErr):
		return httpErr.Code, servers.Error{Error: kindForStatus(httpErr.Code), Message: httpErrorMessage(httpErr)}
	default:
		return http.StatusInternalServerError, servers.Error{
			Error:   servers.InternalServerError,
			Message: internalErrorMessage,
		}
	}
}

func kindForStatus(code int) servers.ErrorError {
	switch {
	case code == http.StatusNotFound:
		return servers.NotFound
	case code == http.StatusConflict:
		return servers.Conflict
	case code == http.StatusTooManyRequests:
		return servers.TooManyRequests
	case code == http.StatusServiceUnavailable:
		return servers.ServiceUnavailable
	case code >= http.StatusInternalServerError:
		return servers.InternalServerError
	default:
		return servers.BadRequest
	}
}

func httpErrorMessage(httpErr *echo.HTTPError) string {
	if httpErr.Code >= http.StatusInternalServerError {
		return internalErrorMessage
	}
	if msg, ok := httpErr.Message.(string); ok {
		return msg
	}
	return fmt.Sprint(httpErr.Message)
}

// NewErrorHandler renders every error returned by a handler or middleware as
// the JSON error envelope. Server errors are logged with their details.
func NewErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := errorResponse(err)
		if code >= http.StatusInternalServerError {
			logger.Error("request failed",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(code)
		} else {
			writeErr = c.JSON(code, body)
		}
		if writeErr != nil {
			logger.Warn("failed to write error response", zap.Error(writeErr))
		}
	}
}
