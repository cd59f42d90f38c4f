package cmsconsole

import (
	"context"
	"errors"
	"log/slog"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"github.com/eringen/cmsconsole/api"
	"github.com/eringen/cmsconsole/content"
	"github.com/eringen/cmsconsole/views"
)

const recentActivityLimit = 10

func (a *App) handleDashboard(c echo.Context) error {
	ctx := c.Request().Context()
	d := views.Dashboard{}

	stats, err := a.Stats.Get(ctx)
	switch {
	case errors.Is(err, api.ErrUnauthorized):
		return err
	case err != nil:
		a.Logger.ErrorContext(ctx, "load dashboard stats", slog.String("error", err.Error()))
		d.Err = "Failed to load dashboard statistics. Please try again later."
	default:
		d.Stats = stats
	}

	recent, err := a.Activity.Recent(ctx, recentActivityLimit)
	if err != nil {
		a.Logger.WarnContext(ctx, "load recent activity", slog.String("error", err.Error()))
	}
	d.Recent = recent

	return a.renderShell(c, "Dashboard", "dashboard", views.DashboardPage(d))
}

// loadStats counts blogs, careers and contacts with the caller's token.
// The three endpoints are queried concurrently.
func (a *App) loadStats(ctx context.Context) (views.DashboardStats, error) {
	var stats views.DashboardStats
	g, ctx := errgroup.WithContext(ctx)
	opts := content.WithLogger(a.Logger)

	g.Go(func() error {
		b := content.NewBlogs(a.API, opts)
		b.SetPageSize(1)
		if err := b.FetchBlogs(ctx, 1); err != nil {
			return err
		}
		stats.Blogs = b.TotalItems
		return nil
	})
	g.Go(func() error {
		cs := content.NewCareers(a.API, opts)
		if err := cs.FetchCareers(ctx); err != nil {
			return err
		}
		stats.Careers = len(cs.Careers)
		return nil
	})
	g.Go(func() error {
		cs := content.NewContacts(a.API, nil, opts)
		if err := cs.FetchContacts(ctx); err != nil {
			return err
		}
		stats.Contacts = len(cs.Contacts)
		return nil
	})

	if err := g.Wait(); err != nil {
		return views.DashboardStats{}, err
	}
	return stats, nil
}
