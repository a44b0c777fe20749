package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/fitgym/backend/pkg/logging"
	"github.com/labstack/echo/v4"
)

func fail(c echo.Context, code int, msg string) error {
	return c.JSON(code, echo.Map{"error": msg})
}

// ErrorHandler renders errors that reach echo as {"error": "..."} bodies.
func ErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		msg := http.StatusText(code)

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			msg = fmt.Sprint(he.Message)
		} else {
			logging.FromContext(c.Request().Context()).Error("unhandled_error", "error", err)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = fail(c, code, msg)
		}
		if err != nil {
			e.Logger.Error(err)
		}
	}
}
