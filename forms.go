package cmsconsole

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/eringen/cmsconsole/content"
	"github.com/eringen/cmsconsole/widget"
)

// imageError is the form message for a rejected upload.
func imageError(err error) string {
	switch {
	case errors.Is(err, widget.ErrImageTooLarge):
		return "Image must be smaller than 10MB"
	case errors.Is(err, widget.ErrImageDimensions):
		return "Image must be at most 40 megapixels"
	}
	return "Please select a valid image file"
}

// readImage returns the image uploaded as field, or nil when none was picked.
// Files that are not images, or are too large, fail with a widget error.
func readImage(c echo.Context, field string) (*content.ImageFile, error) {
	fh, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", field, err)
	}
	if fh.Size > widget.MaxImageSize {
		return nil, widget.ErrImageTooLarge
	}
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", field, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, widget.MaxImageSize+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", field, err)
	}
	file := widget.File{Name: fh.Filename, ContentType: fh.Header.Get(echo.HeaderContentType), Data: data}
	detected, err := widget.Check(file)
	if err != nil {
		return nil, err
	}
	return &content.ImageFile{Filename: fh.Filename, ContentType: detected, Data: data}, nil
}

func isImageRejection(err error) bool {
	return errors.Is(err, widget.ErrNotImage) ||
		errors.Is(err, widget.ErrImageTooLarge) ||
		errors.Is(err, widget.ErrImageDimensions)
}

// bindBlogDraft reads the blog modal. A rejected image is reported in
// imageErr rather than as an error.
func bindBlogDraft(c echo.Context) (d content.BlogDraft, imageErr string, err error) {
	if err := c.Bind(&d); err != nil {
		return d, "", echo.NewHTTPError(http.StatusBadRequest, "invalid blog form").SetInternal(err)
	}
	d.RemoveImage = c.FormValue("removeImage") == "true"
	img, err := readImage(c, "image")
	switch {
	case isImageRejection(err):
		return d, imageError(err), nil
	case err != nil:
		return d, "", echo.NewHTTPError(http.StatusBadRequest, "invalid image upload").SetInternal(err)
	}
	d.Image = img
	return d, "", nil
}

// bindCareerDraft reads the career modal. Categories arrive as ids and are
// stored by label.
func bindCareerDraft(c echo.Context) (d content.CareerDraft, imageErr string, err error) {
	if err := c.Bind(&d); err != nil {
		return d, "", echo.NewHTTPError(http.StatusBadRequest, "invalid career form").SetInternal(err)
	}
	labels := make([]string, 0, len(d.Categories))
	for _, id := range d.Categories {
		labels = append(labels, content.CategoryLabel(id))
	}
	d.Categories = labels
	d.RemoveImage = c.FormValue("removeImage") == "true"
	img, err := readImage(c, "image")
	switch {
	case isImageRejection(err):
		return d, imageError(err), nil
	case err != nil:
		return d, "", echo.NewHTTPError(http.StatusBadRequest, "invalid image upload").SetInternal(err)
	}
	d.Image = img
	return d, "", nil
}

// pageParam reads a 1-based page number from the query or form. Anything
// unparsable is page 1.
func pageParam(c echo.Context) int {
	v := c.QueryParam("page")
	if v == "" {
		v = c.FormValue("page")
	}
	page, err := strconv.Atoi(v)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func idParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, echo.ErrNotFound
	}
	return id, nil
}
