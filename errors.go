package cmsconsole

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eringen/cmsconsole/api"
	"github.com/eringen/cmsconsole/views"
)

// httpErrorHandler sends rejected sessions back to the login screen and
// renders the console's own 404 and 500 pages.
func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	if errors.Is(err, api.ErrUnauthorized) {
		if cerr := clearSession(c); cerr != nil {
			a.Logger.Warn("clear session", slog.String("error", cerr.Error()))
		}
		if rerr := a.redirect(c, "/login?expired=1"); rerr != nil {
			a.Logger.Error("redirect to login", slog.String("error", rerr.Error()))
		}
		return
	}

	code := http.StatusInternalServerError
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
	}

	switch {
	case code == http.StatusNotFound:
		if rerr := RenderStatus(c, code, views.NotFound()); rerr != nil {
			a.Logger.Error("render not found page", slog.String("error", rerr.Error()))
		}
	case code >= http.StatusInternalServerError:
		a.Logger.Error("request failed",
			slog.String("method", c.Request().Method),
			slog.String("path", c.Request().URL.Path),
			slog.String("request_id", api.RequestIDFromContext(c.Request().Context())),
			slog.String("error", err.Error()),
		)
		if rerr := RenderStatus(c, code, views.ServerError()); rerr != nil {
			a.Logger.Error("render error page", slog.String("error", rerr.Error()))
		}
	default:
		a.Echo.DefaultHTTPErrorHandler(err, c)
	}
}
