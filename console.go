// Package cmsconsole is the admin console for a remote content-management
// API, built with Go, Echo, and templ. It serves blog, career and contact
// screens and talks to the CMS on behalf of the signed-in admin.
//
// The browser only ever talks to the console. Every screen builds its
// resource service from the content package for the duration of one request,
// bound to the session token, and renders it with the views package.
package cmsconsole

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/eringen/cmsconsole/activity"
	"github.com/eringen/cmsconsole/api"
	"github.com/eringen/cmsconsole/content"
)

// App is the central console application. It wires together the CMS
// client, the activity store, caches, handlers and middleware.
type App struct {
	Config   Config
	Echo     *echo.Echo
	API      *api.Client
	Activity *activity.Store
	Stats    *StatsCache
	Logger   *slog.Logger
	Registry *prometheus.Registry

	loginLimiter *LoginLimiter
	guard        *content.Guard
	httpMetrics  *httpMetrics
	httpClient   *http.Client
	stopPruner   func()
	newSessionID func() string
}

// New creates a console with the given configuration. Nothing is opened
// until Init or Start.
func New(cfg Config, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:       cfg,
		Echo:         echo.New(),
		Registry:     prometheus.NewRegistry(),
		newSessionID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.Logger == nil {
		a.Logger = NewLogger(cfg.LogLevel)
	}
	a.Echo.HideBanner = true
	return a
}

// Init validates the configuration and builds every dependency, middleware
// and route. Start calls it; tests call it directly and drive a.Echo.
func (a *App) Init() error {
	if a.Config.APIBaseURL == "" {
		return fmt.Errorf("cmsconsole: APIBaseURL is required")
	}
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("cmsconsole: SessionSecret is required")
	}

	store, err := activity.Open(a.Config.ActivityDatabasePath)
	if err != nil {
		return fmt.Errorf("cmsconsole: init activity store: %w", err)
	}
	a.Activity = store

	a.Registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	a.httpMetrics = newHTTPMetrics(a.Registry)

	clientOpts := []api.Option{
		api.WithTimeout(a.Config.APITimeout),
		api.WithLogger(a.Logger),
		api.WithMetrics(api.NewMetrics(a.Registry)),
		api.WithUnauthorizedHandler(func(ctx context.Context) {
			a.Logger.InfoContext(ctx, "cms rejected session token", slog.String("request_id", api.RequestIDFromContext(ctx)))
		}),
	}
	if a.httpClient != nil {
		clientOpts = append(clientOpts, api.WithHTTPClient(a.httpClient))
	}
	a.API = api.New(a.Config.APIBaseURL, a.Config.APIKey, clientOpts...)

	a.Stats = NewStatsCache(a.loadStats, a.Config.StatsCacheTTL)
	a.loginLimiter = NewLoginLimiter(5, time.Minute)
	a.guard = content.NewGuard()

	a.setupMiddleware()
	a.setupRoutes()
	return nil
}

// Start initializes the console and serves until the server stops.
func (a *App) Start() error {
	if err := a.Init(); err != nil {
		return err
	}
	a.stopPruner = a.startActivityPruner(24 * time.Hour)

	a.Logger.Info("console listening", slog.String("addr", a.Config.Addr), slog.String("api", a.Config.APIBaseURL))
	if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully.
func (a *App) Shutdown(ctx context.Context) error {
	return a.Echo.Shutdown(ctx)
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Embedded console assets (console.js, console.css).
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	e.GET("/public/*", echo.WrapHandler(http.StripPrefix("/public/", http.FileServer(http.FS(embeddedFS)))))

	e.GET("/healthz", handleHealth)
	if a.Config.MetricsToken != "" {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(a.Registry, promhttp.HandlerOpts{})), a.metricsAuth())
	}

	// Public routes
	e.GET("/login", a.handleLoginPage)
	e.POST("/login", a.handleLogin)
	e.GET("/sign-up", a.handleSignupPage)
	e.POST("/sign-up", a.handleSignup)

	// Signed-in routes
	g := e.Group("", a.requireSession)
	g.POST("/logout", a.handleLogout)
	g.GET("/", a.handleDashboard)
	g.GET("/dashboard", a.handleDashboard)

	g.GET("/blogs", a.handleBlogs)
	g.GET("/blogs/new", a.handleBlogNew)
	g.POST("/blogs", a.handleBlogCreate)
	g.GET("/blogs/:id", a.handleBlogDetail)
	g.GET("/blogs/:id/edit", a.handleBlogEdit)
	g.POST("/blogs/:id", a.handleBlogUpdate)
	g.DELETE("/blogs/:id", a.handleBlogDelete)

	g.GET("/career", a.handleCareers)
	g.GET("/career/new", a.handleCareerNew)
	g.POST("/career", a.handleCareerCreate)
	g.GET("/career/:id", a.handleCareerDetail)
	g.GET("/career/:id/edit", a.handleCareerEdit)
	g.POST("/career/:id", a.handleCareerUpdate)
	g.DELETE("/career/:id", a.handleCareerDelete)

	g.GET("/contacts", a.handleContacts)
	g.GET("/contacts/:id", a.handleContacts)
	g.DELETE("/contacts/:id", a.handleContactDelete)

	g.GET("/widgets/multiselect/:field", handleMultiSelectWidget)
	g.GET("/widgets/select/:field", handleSelectWidget)
	g.POST("/widgets/image-preview", handleImagePreview)
	g.POST("/widgets/editor", handleEditorWidget)
}

func (a *App) startActivityPruner(every time.Duration) (stop func()) {
	ticker := time.NewTicker(every)
	done := make(chan struct{})
	prune := func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		n, err := a.Activity.Prune(ctx, time.Now().Add(-a.Config.ActivityRetention))
		if err != nil {
			a.Logger.Error("prune activity", slog.String("error", err.Error()))
			return
		}
		if n > 0 {
			a.Logger.Info("pruned activity", slog.Int64("removed", n))
		}
	}
	go func() {
		prune()
		for {
			select {
			case <-ticker.C:
				prune()
			case <-done:
				return
			}
		}
	}()
	return func() {
		ticker.Stop()
		close(done)
	}
}

// Close cleans up resources. Call this when the console is shutting down.
func (a *App) Close() error {
	if a.stopPruner != nil {
		a.stopPruner()
	}
	if a.loginLimiter != nil {
		a.loginLimiter.Stop()
	}
	if a.Activity != nil {
		return a.Activity.Close()
	}
	return nil
}

// metricsAuth requires "Authorization: Bearer <MetricsToken>".
func (a *App) metricsAuth() echo.MiddlewareFunc {
	want := []byte(a.Config.MetricsToken)
	return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		Validator: func(key string, c echo.Context) (bool, error) {
			return subtle.ConstantTimeCompare([]byte(key), want) == 1, nil
		},
		ErrorHandler: func(err error, c echo.Context) error {
			return echo.ErrUnauthorized.WithInternal(err)
		},
	})
}

func handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
