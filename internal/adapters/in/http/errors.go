package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"wastecollection/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorHandler writes every error as an Error body. Domain errors are mapped
// by kind; storage and unknown failures are logged and answered with a
// generic 500 that carries no internal detail.
func ErrorHandler(log *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, message := statusOf(err)
		if status >= http.StatusInternalServerError {
			log.ErrorContext(c.Request().Context(), "request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
				"error", err,
			)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, Error{Code: status, Message: message})
		}
		if err != nil {
			log.ErrorContext(c.Request().Context(), "write error response", "error", err)
		}
	}
}

func statusOf(err error) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Code >= http.StatusInternalServerError {
			return he.Code, http.StatusText(he.Code)
		}
		if msg, ok := he.Message.(string); ok {
			return he.Code, msg
		}
		return he.Code, fmt.Sprint(he.Message)
	}

	switch errs.KindOf(err) {
	case errs.KindValidation, errs.KindInvalidTransition:
		return http.StatusBadRequest, flatten(err)
	case errs.KindNotFound:
		return http.StatusNotFound, flatten(err)
	case errs.KindConflict:
		return http.StatusConflict, flatten(err)
	default:
		return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
	}
}

// flatten puts errors.Join output on one line.
func flatten(err error) string {
	return strings.ReplaceAll(err.Error(), "\n", "; ")
}
