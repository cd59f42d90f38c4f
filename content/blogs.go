// Package content holds the per-request resource services behind the
// console screens. A service owns the list state of one screen, validates
// drafts before any network call, talks to the CMS through a Requester and
// re-fetches after every successful mutation.
package content

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/eringen/cmsconsole/api"
)

// DefaultPageSize is the number of blogs requested per page.
const DefaultPageSize = 20

// Blogs is the paged blog list of one request.
type Blogs struct {
	base
	pageSize int

	Blogs       []api.BlogPost
	Loading     bool
	Err         string
	CurrentPage int
	TotalPages  int
	TotalItems  int
}

// NewBlogs returns an empty, not yet fetched, blog list.
func NewBlogs(r Requester, opts ...Option) *Blogs {
	return &Blogs{
		base:        newBase(r, opts),
		pageSize:    DefaultPageSize,
		Loading:     true,
		CurrentPage: 1,
		TotalPages:  1,
	}
}

// SetPageSize overrides DefaultPageSize. Values below 1 are ignored.
func (b *Blogs) SetPageSize(n int) {
	if n > 0 {
		b.pageSize = n
	}
}

// FetchBlogs loads one page. On failure the previous list is kept and Err
// is set. The returned error is only of interest for session expiry.
func (b *Blogs) FetchBlogs(ctx context.Context, page int) error {
	b.Loading = true
	b.Err = ""
	defer func() { b.Loading = false }()

	if page < 1 {
		page = 1
	}
	var resp api.BlogsResponse
	err := b.api.Get(ctx, fmt.Sprintf("/api/get-blogs?page=%d&limit=%d", page, b.pageSize), &resp)
	if err != nil {
		const msg = "Failed to fetch blogs. Please try again later."
		b.Err = msg
		b.logger.ErrorContext(ctx, "fetch blogs", slog.Int("page", page), slog.String("error", err.Error()))
		b.notify.Error(msg)
		return err
	}

	b.Blogs = resp.Blogs
	if b.Blogs == nil {
		b.Blogs = []api.BlogPost{}
	}
	b.TotalItems = max(resp.Pagination.TotalItems, 0)
	b.TotalPages = max(resp.Pagination.TotalPages, 1)
	current := resp.Pagination.CurrentPage
	if current == 0 {
		current = page
	}
	b.CurrentPage = min(max(current, 1), b.TotalPages)
	return nil
}

// Find returns the loaded post with id.
func (b *Blogs) Find(id int64) (api.BlogPost, bool) {
	for _, p := range b.Blogs {
		if p.ID == id {
			return p, true
		}
	}
	return api.BlogPost{}, false
}

// HasPrev reports whether a previous page exists.
func (b *Blogs) HasPrev() bool { return b.CurrentPage > 1 }

// HasNext reports whether a next page exists.
func (b *Blogs) HasNext() bool { return b.CurrentPage < b.TotalPages }

// CreateBlog validates d, uploads it and reloads the first page.
func (b *Blogs) CreateBlog(ctx context.Context, d BlogDraft) Result {
	return b.mutate(ctx, &b.Loading, "create blog", func() Result {
		if errs := ValidateBlog(d); errs != nil {
			return invalid(errs)
		}
		if err := b.api.Post(ctx, "/api/add-blog", BlogCreatePayload(d), nil); err != nil {
			return failed(err, "Failed to create blog. Please try again.")
		}
		b.notify.Success("Blog created successfully!")
		b.FetchBlogs(ctx, 1)
		return succeeded()
	})
}

// UpdateBlog validates d, replaces post id and reloads the current page.
func (b *Blogs) UpdateBlog(ctx context.Context, id int64, d BlogDraft) Result {
	return b.mutate(ctx, &b.Loading, "update blog", func() Result {
		if errs := ValidateBlog(d); errs != nil {
			return invalid(errs)
		}
		if err := b.api.Put(ctx, fmt.Sprintf("/api/update-blog/%d", id), BlogUpdatePayload(d), nil); err != nil {
			return failed(err, "Failed to update blog. Please try again.")
		}
		b.notify.Success("Blog updated successfully!")
		b.FetchBlogs(ctx, b.CurrentPage)
		return succeeded()
	})
}

// DeleteBlog removes post id and reloads the current page.
func (b *Blogs) DeleteBlog(ctx context.Context, id int64) Result {
	return b.mutate(ctx, &b.Loading, "delete blog", func() Result {
		if err := b.api.Delete(ctx, fmt.Sprintf("/api/delete-blog/%d", id), nil); err != nil {
			return failed(err, "Failed to delete blog. Please try again.")
		}
		b.notify.Success("Blog deleted successfully!")
		b.FetchBlogs(ctx, b.CurrentPage)
		return succeeded()
	})
}
