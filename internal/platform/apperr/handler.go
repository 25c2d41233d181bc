package apperr

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// HTTPErrorHandler returns an echo error handler that renders taxonomy
// errors as {"detail": ...} with their mapped status code. echo.HTTPError
// values (binder failures, 404 routes) pass through with their own status;
// anything else becomes an opaque 500.
func HTTPErrorHandler(logger zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		detail := "internal server error"

		if e, ok := As(err); ok {
			status = e.Status
			detail = e.Detail
			if e.Kind == KindIO {
				logger.Error().Err(err).Msg("store failure")
				detail = "internal server error"
			}
		} else if he, ok := err.(*echo.HTTPError); ok {
			status = he.Code
			if msg, ok := he.Message.(string); ok {
				detail = msg
			} else {
				detail = http.StatusText(he.Code)
			}
		} else {
			logger.Error().Err(err).Msg("unhandled error")
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, map[string]string{"detail": detail})
	}
}
