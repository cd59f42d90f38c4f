package cmsconsole

import (
	"errors"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/eringen/cmsconsole/api"
	"github.com/eringen/cmsconsole/content"
	"github.com/eringen/cmsconsole/views"
)

func (a *App) loadCareers(c echo.Context) (*content.Careers, error) {
	cs := content.NewCareers(a.API, a.serviceOptions(c)...)
	if err := cs.FetchCareers(c.Request().Context()); errors.Is(err, api.ErrUnauthorized) {
		return nil, err
	}
	return cs, nil
}

func (a *App) renderCareers(c echo.Context, cs *content.Careers, overlay templ.Component) error {
	return a.renderShell(c, "Career", "career", views.CareersPage(cs, c.QueryParam("category"), CsrfToken(c), overlay))
}

func (a *App) handleCareers(c echo.Context) error {
	cs, err := a.loadCareers(c)
	if err != nil {
		return err
	}
	if isHTMX(c) {
		return Render(c, views.CareersList(cs, c.QueryParam("category"), CsrfToken(c)))
	}
	return a.renderCareers(c, cs, nil)
}

func (a *App) handleCareerNew(c echo.Context) error {
	cs, err := a.loadCareers(c)
	if err != nil {
		return err
	}
	return a.renderCareers(c, cs, views.CareerModal(views.CareerForm{}, CsrfToken(c)))
}

func (a *App) careerFor(c echo.Context) (*content.Careers, api.CareerListing, error) {
	id, err := idParam(c)
	if err != nil {
		return nil, api.CareerListing{}, err
	}
	cs, err := a.loadCareers(c)
	if err != nil {
		return nil, api.CareerListing{}, err
	}
	l, ok := cs.Find(id)
	if !ok {
		return nil, api.CareerListing{}, echo.ErrNotFound
	}
	return cs, l, nil
}

func (a *App) handleCareerDetail(c echo.Context) error {
	cs, l, err := a.careerFor(c)
	if err != nil {
		return err
	}
	return a.renderCareers(c, cs, views.CareerDetail(l))
}

func (a *App) handleCareerEdit(c echo.Context) error {
	cs, l, err := a.careerFor(c)
	if err != nil {
		return err
	}
	form := views.CareerForm{ID: l.ID, Draft: content.DraftFromCareer(l), Image: l.Image}
	return a.renderCareers(c, cs, views.CareerModal(form, CsrfToken(c)))
}

func (a *App) handleCareerCreate(c echo.Context) error {
	return a.saveCareer(c, 0)
}

func (a *App) handleCareerUpdate(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	return a.saveCareer(c, id)
}

// saveCareer creates (id 0) or updates a listing. Failures re-open the
// modal with the submitted draft.
func (a *App) saveCareer(c echo.Context, id int64) error {
	draft, imageErr, err := bindCareerDraft(c)
	if err != nil {
		return err
	}
	form := views.CareerForm{ID: id, Draft: draft}

	cs := content.NewCareers(a.API, a.serviceOptions(c)...)
	if imageErr != "" {
		form.Fields = content.ValidationErrors{{Field: "image", Message: imageErr}}
		return a.reopenCareerModal(c, cs, form)
	}

	release, ok := a.acquire(c)
	if !ok {
		return a.redirect(c, "/career")
	}
	defer release()

	var res content.Result
	if id == 0 {
		res = cs.CreateCareer(c.Request().Context(), draft)
	} else {
		res = cs.UpdateCareer(c.Request().Context(), id, draft)
	}
	if res.Expired() {
		return res.Err
	}
	if !res.Success {
		form.Error, form.Fields = res.Error, res.Fields
		if res.Fields != nil {
			form.Error = ""
		}
		return a.reopenCareerModal(c, cs, form)
	}

	action := "created"
	if id != 0 {
		action = "updated"
	}
	a.record(c, action, "career", id, draft.Title)
	a.Stats.Invalidate()

	if isHTMX(c) {
		return a.renderCareers(c, cs, nil)
	}
	return a.redirect(c, "/career")
}

func (a *App) reopenCareerModal(c echo.Context, cs *content.Careers, form views.CareerForm) error {
	if cs.Careers == nil {
		if err := cs.FetchCareers(c.Request().Context()); errors.Is(err, api.ErrUnauthorized) {
			return err
		}
	}
	if form.ID != 0 {
		if l, ok := cs.Find(form.ID); ok {
			form.Image = l.Image
		}
	}
	return a.renderCareers(c, cs, views.CareerModal(form, CsrfToken(c)))
}

func (a *App) handleCareerDelete(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	release, ok := a.acquire(c)
	if !ok {
		return a.redirect(c, "/career")
	}
	defer release()

	cs := content.NewCareers(a.API, a.serviceOptions(c)...)
	res := cs.DeleteCareer(c.Request().Context(), id)
	if res.Expired() {
		return res.Err
	}
	if res.Success {
		a.record(c, "deleted", "career", id, "")
		a.Stats.Invalidate()
	}
	if isHTMX(c) {
		if !res.Success {
			if err := cs.FetchCareers(c.Request().Context()); errors.Is(err, api.ErrUnauthorized) {
				return err
			}
		}
		return a.renderCareers(c, cs, nil)
	}
	return a.redirect(c, "/career")
}
