package content

import (
	"context"
	"log/slog"
	"strings"

	"github.com/eringen/cmsconsole/api"
)

const (
	loginFailed  = "Invalid email or password. Please try again."
	signupFailed = "An error occurred during signup. Please try again."
)

// Auth performs login and registration against the CMS.
type Auth struct {
	base
}

// NewAuth returns an Auth using r.
func NewAuth(r Requester, opts ...Option) *Auth {
	return &Auth{base: newBase(r, opts)}
}

// Login exchanges credentials for a session token. Any API failure is
// reported with the same generic message.
func (a *Auth) Login(ctx context.Context, creds Credentials) (string, Result) {
	if errs := ValidateCredentials(creds); errs != nil {
		return "", invalid(errs)
	}
	var resp api.LoginResponse
	req := api.LoginRequest{Email: strings.TrimSpace(creds.Email), Password: creds.Password}
	if err := a.api.Post(ctx, "/api/admin/login", api.JSON(req), &resp); err != nil {
		a.logger.WarnContext(ctx, "login failed", slog.String("email", req.Email), slog.String("error", err.Error()))
		return "", Result{Error: loginFailed, Err: err}
	}
	if resp.Token == "" {
		a.logger.WarnContext(ctx, "login response without token", slog.String("email", req.Email))
		return "", Result{Error: loginFailed}
	}
	return resp.Token, succeeded()
}

// Register creates an admin account. The caller sends the user to the
// login screen on success.
func (a *Auth) Register(ctx context.Context, d SignupDraft) Result {
	if errs := ValidateSignup(d); errs != nil {
		return invalid(errs)
	}
	if err := a.api.Post(ctx, "/api/admin/register", SignupPayload(d), nil); err != nil {
		a.logger.WarnContext(ctx, "signup failed", slog.String("email", d.Email), slog.String("error", err.Error()))
		return Result{Error: signupFailed, Err: err}
	}
	a.notify.Success("Account created. Please sign in.")
	return succeeded()
}
