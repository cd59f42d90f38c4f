package cmsconsole

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/eringen/cmsconsole/views"
)

const flashesKey = "flashes"

// Render writes a templ component as an HTTP 200 HTML response.
func Render(c echo.Context, cmp templ.Component) error {
	return RenderStatus(c, http.StatusOK, cmp)
}

// RenderStatus writes a templ component with a specific HTTP status code.
func RenderStatus(c echo.Context, code int, cmp templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	return cmp.Render(c.Request().Context(), c.Response().Writer)
}

// isHTMX reports a fragment request from console.js.
func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}

// renderShell renders body inside the signed-in layout. Fragment requests
// get body alone, followed by any toasts.
func (a *App) renderShell(c echo.Context, title, active string, body templ.Component) error {
	if isHTMX(c) {
		return Render(c, templ.Join(body, views.Toasts(takeFlashes(c))))
	}
	return Render(c, views.Layout(a.page(c, title, active), body))
}

// renderBare renders body inside the signed-out layout.
func (a *App) renderBare(c echo.Context, title string, body templ.Component) error {
	return Render(c, views.Bare(a.page(c, title, ""), body))
}

func (a *App) page(c echo.Context, title, active string) views.Page {
	return views.Page{
		Title:   title,
		Active:  active,
		Email:   sessionEmail(c),
		CSRF:    CsrfToken(c),
		Flashes: takeFlashes(c),
	}
}

// redirect sends the browser to path, carrying queued flashes across in the
// session. Fragment requests are redirected with HX-Redirect.
func (a *App) redirect(c echo.Context, path string) error {
	if err := persistFlashes(c); err != nil {
		c.Logger().Errorf("persist flashes: %v", err)
	}
	if isHTMX(c) {
		c.Response().Header().Set("HX-Redirect", path)
		return c.NoContent(http.StatusNoContent)
	}
	return c.Redirect(http.StatusSeeOther, path)
}

// flashNotifier turns service announcements into toasts on the next render.
type flashNotifier struct {
	c echo.Context
}

func (n flashNotifier) Success(msg string) { queueFlash(n.c, "success", msg) }

func (n flashNotifier) Error(msg string) { queueFlash(n.c, "error", msg) }

func queueFlash(c echo.Context, kind, msg string) {
	queued, _ := c.Get(flashesKey).([]views.Flash)
	c.Set(flashesKey, append(queued, views.Flash{Kind: kind, Message: msg}))
}

// takeFlashes returns the flashes left by a redirect followed by the ones
// queued during this request.
func takeFlashes(c echo.Context) []views.Flash {
	var out []views.Flash
	if sess, err := session.Get(sessionName, c); err == nil {
		for _, kind := range []string{"success", "error"} {
			for _, f := range sess.Flashes(kind) {
				if msg, ok := f.(string); ok {
					out = append(out, views.Flash{Kind: kind, Message: msg})
				}
			}
		}
		if len(out) > 0 {
			if err := sess.Save(c.Request(), c.Response()); err != nil {
				c.Logger().Errorf("save session: %v", err)
			}
		}
	}
	queued, _ := c.Get(flashesKey).([]views.Flash)
	c.Set(flashesKey, nil)
	return append(out, queued...)
}

func persistFlashes(c echo.Context) error {
	queued, _ := c.Get(flashesKey).([]views.Flash)
	if len(queued) == 0 {
		return nil
	}
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return err
	}
	for _, f := range queued {
		sess.AddFlash(f.Message, f.Kind)
	}
	c.Set(flashesKey, nil)
	return sess.Save(c.Request(), c.Response())
}
