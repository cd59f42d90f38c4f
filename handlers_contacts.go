package cmsconsole

import (
	"errors"
	"slices"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/eringen/cmsconsole/api"
	"github.com/eringen/cmsconsole/content"
	"github.com/eringen/cmsconsole/views"
)

// handleContacts renders the inbox, with the details of /contacts/:id open.
func (a *App) handleContacts(c echo.Context) error {
	dismissed := dismissedContacts(c)
	cs := content.NewContacts(a.API, dismissed, a.serviceOptions(c)...)
	err := cs.FetchContacts(c.Request().Context())
	if errors.Is(err, api.ErrUnauthorized) {
		return err
	}
	if err == nil && !slices.Equal(dismissed, cs.Dismissed()) {
		if err := setDismissedContacts(c, cs.Dismissed()); err != nil {
			return err
		}
	}
	if raw := c.Param("id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return echo.ErrNotFound
		}
		cs.Select(id)
	}
	v := views.ContactsView{Query: c.QueryParam("q"), Sort: c.QueryParam("sort")}
	return a.renderShell(c, "Contacts", "contacts", views.ContactsPage(cs, v, CsrfToken(c)))
}

// handleContactDelete hides a contact from this session's inbox. The CMS
// has no delete endpoint for inquiries, so nothing is sent.
func (a *App) handleContactDelete(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	cs := content.NewContacts(a.API, dismissedContacts(c), a.serviceOptions(c)...)
	cs.Delete(id)
	if err := setDismissedContacts(c, cs.Dismissed()); err != nil {
		return err
	}
	a.record(c, "dismissed", "contact", id, "")
	a.Stats.Invalidate()

	to := "/contacts"
	if q := c.QueryParams(); len(q) > 0 {
		to += "?" + q.Encode()
	}
	return a.redirect(c, to)
}
