package cmsconsole

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/eringen/cmsconsole/activity"
	"github.com/eringen/cmsconsole/api"
	"github.com/eringen/cmsconsole/content"
	"github.com/eringen/cmsconsole/views"
)

// serviceOptions binds a resource service to the request: its
// announcements become toasts and its logs carry the request id.
func (a *App) serviceOptions(c echo.Context) []content.Option {
	logger := a.Logger.With(slog.String("request_id", api.RequestIDFromContext(c.Request().Context())))
	return []content.Option{content.WithNotifier(flashNotifier{c}), content.WithLogger(logger)}
}

// record appends an admin action to the activity log. Failures are logged,
// never shown.
func (a *App) record(c echo.Context, action, resource string, id int64, summary string) {
	err := a.Activity.Record(c.Request().Context(), activity.Entry{
		Actor:      sessionEmail(c),
		Action:     action,
		Resource:   resource,
		ResourceID: id,
		Summary:    summary,
	})
	if err != nil {
		a.Logger.Warn("record activity", slog.String("action", action), slog.String("resource", resource), slog.String("error", err.Error()))
	}
}

// acquire takes the session's mutation slot. When another submission is
// still running it queues the busy toast and returns ok false.
func (a *App) acquire(c echo.Context) (release func(), ok bool) {
	release, err := a.guard.Acquire(sessionID(c))
	if err != nil {
		queueFlash(c, "error", content.BusyMessage)
		return nil, false
	}
	return release, true
}

func (a *App) blogs(c echo.Context) *content.Blogs {
	b := content.NewBlogs(a.API, a.serviceOptions(c)...)
	b.SetPageSize(a.Config.BlogsPageSize)
	return b
}

// loadBlogs fetches one page. A failed fetch is shown in the list; only a
// rejected session is returned as an error.
func (a *App) loadBlogs(c echo.Context, page int) (*content.Blogs, error) {
	b := a.blogs(c)
	if err := b.FetchBlogs(c.Request().Context(), page); errors.Is(err, api.ErrUnauthorized) {
		return nil, err
	}
	return b, nil
}

func (a *App) renderBlogs(c echo.Context, b *content.Blogs, overlay templ.Component) error {
	return a.renderShell(c, "Blogs", "blogs", views.BlogsPage(b, CsrfToken(c), overlay))
}

func (a *App) handleBlogs(c echo.Context) error {
	b, err := a.loadBlogs(c, pageParam(c))
	if err != nil {
		return err
	}
	if isHTMX(c) {
		return Render(c, views.BlogsList(b, CsrfToken(c)))
	}
	return a.renderBlogs(c, b, nil)
}

func (a *App) handleBlogNew(c echo.Context) error {
	page := pageParam(c)
	b, err := a.loadBlogs(c, page)
	if err != nil {
		return err
	}
	return a.renderBlogs(c, b, views.BlogModal(views.BlogForm{Page: page}, CsrfToken(c)))
}

// blogFor loads the page holding post id, or answers 404.
func (a *App) blogFor(c echo.Context) (*content.Blogs, api.BlogPost, error) {
	id, err := idParam(c)
	if err != nil {
		return nil, api.BlogPost{}, err
	}
	b, err := a.loadBlogs(c, pageParam(c))
	if err != nil {
		return nil, api.BlogPost{}, err
	}
	post, ok := b.Find(id)
	if !ok {
		return nil, api.BlogPost{}, echo.ErrNotFound
	}
	return b, post, nil
}

func (a *App) handleBlogDetail(c echo.Context) error {
	b, post, err := a.blogFor(c)
	if err != nil {
		return err
	}
	return a.renderBlogs(c, b, views.BlogDetail(post, b.CurrentPage))
}

func (a *App) handleBlogEdit(c echo.Context) error {
	b, post, err := a.blogFor(c)
	if err != nil {
		return err
	}
	form := views.BlogForm{ID: post.ID, Page: b.CurrentPage, Draft: content.DraftFromBlog(post), Image: post.Image}
	return a.renderBlogs(c, b, views.BlogModal(form, CsrfToken(c)))
}

func (a *App) handleBlogCreate(c echo.Context) error {
	return a.saveBlog(c, 0)
}

func (a *App) handleBlogUpdate(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	return a.saveBlog(c, id)
}

// saveBlog creates (id 0) or updates a post. Failures re-open the modal
// with the submitted draft.
func (a *App) saveBlog(c echo.Context, id int64) error {
	page := pageParam(c)
	draft, imageErr, err := bindBlogDraft(c)
	if err != nil {
		return err
	}
	form := views.BlogForm{ID: id, Page: page, Draft: draft}

	b := a.blogs(c)
	b.CurrentPage = page
	if imageErr != "" {
		form.Fields = content.ValidationErrors{{Field: "image", Message: imageErr}}
		return a.reopenBlogModal(c, b, form)
	}

	release, ok := a.acquire(c)
	if !ok {
		return a.redirect(c, fmt.Sprintf("/blogs?page=%d", page))
	}
	defer release()

	var res content.Result
	if id == 0 {
		res = b.CreateBlog(c.Request().Context(), draft)
	} else {
		res = b.UpdateBlog(c.Request().Context(), id, draft)
	}
	if res.Expired() {
		return res.Err
	}
	if !res.Success {
		form.Error, form.Fields = res.Error, res.Fields
		if res.Fields != nil {
			form.Error = ""
		}
		return a.reopenBlogModal(c, b, form)
	}

	action := "created"
	if id != 0 {
		action = "updated"
	}
	a.record(c, action, "blog", id, draft.Title)
	a.Stats.Invalidate()

	if isHTMX(c) {
		return a.renderBlogs(c, b, nil)
	}
	return a.redirect(c, fmt.Sprintf("/blogs?page=%d", b.CurrentPage))
}

// reopenBlogModal shows the list behind the modal again before rendering
// form on top of it.
func (a *App) reopenBlogModal(c echo.Context, b *content.Blogs, form views.BlogForm) error {
	if b.Blogs == nil {
		if err := b.FetchBlogs(c.Request().Context(), form.Page); errors.Is(err, api.ErrUnauthorized) {
			return err
		}
	}
	if form.ID != 0 {
		if post, ok := b.Find(form.ID); ok {
			form.Image = post.Image
		}
	}
	return a.renderBlogs(c, b, views.BlogModal(form, CsrfToken(c)))
}

func (a *App) handleBlogDelete(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	page := pageParam(c)
	release, ok := a.acquire(c)
	if !ok {
		return a.redirect(c, fmt.Sprintf("/blogs?page=%d", page))
	}
	defer release()

	b := a.blogs(c)
	b.CurrentPage = page
	res := b.DeleteBlog(c.Request().Context(), id)
	if res.Expired() {
		return res.Err
	}
	if res.Success {
		a.record(c, "deleted", "blog", id, "")
		a.Stats.Invalidate()
		page = b.CurrentPage
	}
	if isHTMX(c) {
		if !res.Success {
			if err := b.FetchBlogs(c.Request().Context(), page); errors.Is(err, api.ErrUnauthorized) {
				return err
			}
		}
		return a.renderBlogs(c, b, nil)
	}
	return a.redirect(c, fmt.Sprintf("/blogs?page=%d", page))
}
