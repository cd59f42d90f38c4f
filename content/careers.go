package content

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/eringen/cmsconsole/api"
)

// Careers is the full career listing of one request. The API does not page
// careers.
type Careers struct {
	base

	Careers []api.CareerListing
	Loading bool
	Err     string
}

// NewCareers returns an empty, not yet fetched, career list.
func NewCareers(r Requester, opts ...Option) *Careers {
	return &Careers{base: newBase(r, opts), Loading: true}
}

// FetchCareers loads every listing. On failure the previous list is kept.
func (c *Careers) FetchCareers(ctx context.Context) error {
	c.Loading = true
	c.Err = ""
	defer func() { c.Loading = false }()

	var resp api.CareersResponse
	if err := c.api.Get(ctx, "/api/get-careers", &resp); err != nil {
		const msg = "Failed to fetch career opportunities. Please try again later."
		c.Err = msg
		c.logger.ErrorContext(ctx, "fetch careers", slog.String("error", err.Error()))
		c.notify.Error(msg)
		return err
	}
	c.Careers = resp.Careers
	if c.Careers == nil {
		c.Careers = []api.CareerListing{}
	}
	return nil
}

// Find returns the loaded listing with id.
func (c *Careers) Find(id int64) (api.CareerListing, bool) {
	for _, l := range c.Careers {
		if l.ID == id {
			return l, true
		}
	}
	return api.CareerListing{}, false
}

// CreateCareer validates d, uploads it and reloads the list.
func (c *Careers) CreateCareer(ctx context.Context, d CareerDraft) Result {
	return c.mutate(ctx, &c.Loading, "create career", func() Result {
		if errs := ValidateCareer(d); errs != nil {
			return invalid(errs)
		}
		if err := c.api.Post(ctx, "/api/add-career", CareerCreatePayload(d), nil); err != nil {
			return failed(err, "Failed to create career opportunity. Please try again.")
		}
		c.notify.Success("Career opportunity created successfully!")
		c.FetchCareers(ctx)
		return succeeded()
	})
}

// UpdateCareer validates d, replaces listing id and reloads the list.
func (c *Careers) UpdateCareer(ctx context.Context, id int64, d CareerDraft) Result {
	return c.mutate(ctx, &c.Loading, "update career", func() Result {
		if errs := ValidateCareer(d); errs != nil {
			return invalid(errs)
		}
		if err := c.api.Put(ctx, fmt.Sprintf("/api/update-career/%d", id), CareerUpdatePayload(d), nil); err != nil {
			return failed(err, "Failed to update career opportunity. Please try again.")
		}
		c.notify.Success("Career opportunity updated successfully!")
		c.FetchCareers(ctx)
		return succeeded()
	})
}

// DeleteCareer removes listing id and reloads the list.
func (c *Careers) DeleteCareer(ctx context.Context, id int64) Result {
	return c.mutate(ctx, &c.Loading, "delete career", func() Result {
		if err := c.api.Delete(ctx, fmt.Sprintf("/api/delete-career/%d", id), nil); err != nil {
			return failed(err, "Failed to delete career opportunity. Please try again.")
		}
		c.notify.Success("Career opportunity deleted successfully!")
		c.FetchCareers(ctx)
		return succeeded()
	})
}

// GetAllCategories returns every non-empty category used by the loaded
// listings, de-duplicated in first-seen order.
func (c *Careers) GetAllCategories() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, l := range c.Careers {
		for _, cat := range l.Categories {
			if cat == "" {
				continue
			}
			if _, dup := seen[cat]; dup {
				continue
			}
			seen[cat] = struct{}{}
			out = append(out, cat)
		}
	}
	return out
}

// FilterByCategory returns the listings tagged with category. An empty
// category returns the loaded slice itself.
func (c *Careers) FilterByCategory(category string) []api.CareerListing {
	if category == "" {
		return c.Careers
	}
	var out []api.CareerListing
	for _, l := range c.Careers {
		if slices.Contains(l.Categories, category) {
			out = append(out, l)
		}
	}
	return out
}
