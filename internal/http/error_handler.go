package http

import (
	"errors"

	"github.com/labstack/echo/v4"

	errs "task-manager.com/task-manager/internal/errors"
)

// ErrorHandler translates every error into the {"error": message} body the
// API uses. Unexpected errors are logged with their real cause and surfaced
// as an opaque 500.
func ErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := errs.StatusCode(err)
		message := errs.ErrInternal.Message

		var appErr *errs.Exception
		var httpErr *echo.HTTPError
		switch {
		case errors.As(err, &appErr):
			message = appErr.Message
		case errors.As(err, &httpErr):
			status = httpErr.Code
			if msg, ok := httpErr.Message.(string); ok {
				message = msg
			}
		default:
			c.Logger().Error(err)
		}

		if jsonErr := c.JSON(status, echo.Map{"error": message}); jsonErr != nil {
			c.Logger().Error(jsonErr)
		}
	}
}
