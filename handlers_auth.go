package cmsconsole

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/eringen/cmsconsole/content"
	"github.com/eringen/cmsconsole/views"
)

const sessionExpiredMessage = "Your session has expired. Please sign in again."

func (a *App) handleLoginPage(c echo.Context) error {
	if sessionToken(c) != "" && c.QueryParam("expired") == "" {
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	}
	var form views.LoginForm
	if c.QueryParam("expired") != "" {
		form.Error = sessionExpiredMessage
	}
	return a.renderBare(c, "Sign in", views.Login(form, CsrfToken(c)))
}

func (a *App) handleLogin(c echo.Context) error {
	ip := c.RealIP()
	if !a.loginLimiter.Check(ip) {
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}

	var creds content.Credentials
	if err := c.Bind(&creds); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid login form").SetInternal(err)
	}

	auth := content.NewAuth(a.API, content.WithLogger(a.Logger))
	token, res := auth.Login(c.Request().Context(), creds)
	if !res.Success {
		form := views.LoginForm{Email: creds.Email, Fields: res.Fields}
		if res.Fields == nil {
			a.loginLimiter.Record(ip)
			form.Error = res.Error
		}
		return a.renderBare(c, "Sign in", views.Login(form, CsrfToken(c)))
	}

	a.loginLimiter.Reset(ip)
	if err := a.setSession(c, token, strings.TrimSpace(creds.Email)); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (a *App) handleSignupPage(c echo.Context) error {
	return a.renderBare(c, "Sign up", views.Signup(views.SignupForm{}, CsrfToken(c)))
}

func (a *App) handleSignup(c echo.Context) error {
	var draft content.SignupDraft
	if err := c.Bind(&draft); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid signup form").SetInternal(err)
	}
	form := views.SignupForm{Name: draft.Name, Email: draft.Email}

	img, err := readImage(c, "profilePicture")
	switch {
	case isImageRejection(err):
		form.Fields = content.ValidationErrors{{Field: "profilePicture", Message: imageError(err)}}
		return a.renderBare(c, "Sign up", views.Signup(form, CsrfToken(c)))
	case err != nil:
		return echo.NewHTTPError(http.StatusBadRequest, "invalid profile picture").SetInternal(err)
	}
	draft.ProfilePicture = img

	auth := content.NewAuth(a.API, content.WithLogger(a.Logger), content.WithNotifier(flashNotifier{c}))
	res := auth.Register(c.Request().Context(), draft)
	if !res.Success {
		form.Error = res.Error
		form.Fields = res.Fields
		if res.Fields != nil {
			form.Error = ""
		}
		return a.renderBare(c, "Sign up", views.Signup(form, CsrfToken(c)))
	}
	return a.redirect(c, "/login")
}

func (a *App) handleLogout(c echo.Context) error {
	if err := clearSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/login")
}
