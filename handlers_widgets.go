package cmsconsole

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eringen/cmsconsole/richtext"
	"github.com/eringen/cmsconsole/views"
	"github.com/eringen/cmsconsole/widget"
)

// Widget fragments are stateless: console.js sends the current state
// (selected, open, search) with the event, the handler rebuilds the widget,
// applies the event and renders it again.

func handleMultiSelectWidget(c echo.Context) error {
	q := c.QueryParams()
	m, ok := views.FieldMultiSelect(c.Param("field"), q["selected"])
	if !ok {
		return echo.ErrNotFound
	}
	if q.Get("open") == "true" {
		m.Click()
	}
	m.SetSearch(q.Get("search"))

	value := q.Get("value")
	switch q.Get("event") {
	case "click":
		m.Click()
	case "toggle":
		m.Toggle(value)
	case "remove":
		m.Remove(value)
	case "search":
		m.SetSearch(value)
	case "pointer":
		m.PointerDown(q.Get("inside") == "true")
	case "close":
		m.Close()
	}
	if !m.IsOpen() {
		m.SetSearch("")
	}
	return Render(c, views.MultiSelect(m))
}

func handleSelectWidget(c echo.Context) error {
	q := c.QueryParams()
	s, ok := views.FieldSelect(c.Param("field"), q.Get("selected"))
	if !ok {
		return echo.ErrNotFound
	}
	if q.Get("open") == "true" {
		s.Dropdown.Click()
	}
	s.SetSearch(q.Get("search"))

	value := q.Get("value")
	switch q.Get("event") {
	case "click":
		s.Click()
	case "select":
		s.Select(value)
	case "clear":
		s.Clear()
	case "search":
		s.SetSearch(value)
	case "pointer":
		s.PointerDown(q.Get("inside") == "true")
	case "close":
		s.Close()
	}
	return Render(c, views.CustomSelect(s))
}

// handleImagePreview validates a picked file and returns its preview. The
// stored image (current) stays in the fragment when the file is rejected.
func handleImagePreview(c echo.Context) error {
	field := c.QueryParam("field")
	if field == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing field")
	}
	u := &widget.ImageUpload{Name: field, Current: richtext.SafeURL(c.FormValue("current"))}

	fh, err := c.FormFile(field)
	if err != nil {
		return Render(c, views.ImagePreview(u, imageError(widget.ErrNotImage)))
	}
	if fh.Size > widget.MaxImageSize {
		return Render(c, views.ImagePreview(u, imageError(widget.ErrImageTooLarge)))
	}
	f, err := fh.Open()
	if err != nil {
		return err
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, widget.MaxImageSize+1))
	if err != nil {
		return err
	}

	file := widget.File{Name: fh.Filename, ContentType: fh.Header.Get(echo.HeaderContentType), Data: data}
	if err := u.Select(file); err != nil {
		return Render(c, views.ImagePreview(u, imageError(err)))
	}
	return Render(c, views.ImagePreview(u, ""))
}

// handleEditorWidget resets an editor from outside, for example after a
// paste. The new value is sanitised first; when it only differs in markup
// noise from current, the editor is left alone and 204 is returned so the
// caret survives.
func handleEditorWidget(c echo.Context) error {
	name := c.FormValue("name")
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing name")
	}
	ed := widget.NewRichTextEditor(name, c.FormValue("current"))
	ed.Label = c.FormValue("label")
	if !ed.SetValue(richtext.Sanitize(c.FormValue("value"))) {
		return c.NoContent(http.StatusNoContent)
	}
	return Render(c, views.Editor(ed))
}
