package views

import (
	"fmt"
	"strconv"

	"github.com/a-h/templ"

	"github.com/eringen/cmsconsole/api"
	"github.com/eringen/cmsconsole/content"
	"github.com/eringen/cmsconsole/richtext"
	"github.com/eringen/cmsconsole/widget"
)

// BlogsPage renders the blog list, with overlay drawn on top when set.
func BlogsPage(b *content.Blogs, csrf string, overlay templ.Component) templ.Component {
	return component(func(p *writer) {
		p.raw(`<section class="blogs">`)
		p.raw(`<div class="mb-6 flex items-center justify-between"><h2 class="text-3xl font-bold">Blogs</h2>`)
		p.raw(`<a href="/blogs/new" class="btn btn-primary">Create New Blog</a></div>`)
		p.render(BlogsList(b, csrf))
		p.raw(`</section>`)
		p.render(overlay)
	})
}

// BlogsList is the swappable list and pagination.
func BlogsList(b *content.Blogs, csrf string) templ.Component {
	return component(func(p *writer) {
		p.raw(`<div id="blogs-list">`)
		switch {
		case b.Loading:
			p.raw(`<div class="loading">Loading blogs...</div>`)
		case b.Err != "" && len(b.Blogs) == 0:
			p.render(ErrorPanel(b.Err, pageURL("/blogs", b.CurrentPage)))
		case len(b.Blogs) == 0:
			emptyState(p, "No blogs found", "Create your first post to get started.")
		default:
			if b.Err != "" {
				formError(p, b.Err)
			}
			p.raw(`<div class="grid grid-cols-1 gap-4 md:grid-cols-2 lg:grid-cols-3">`)
			for _, post := range b.Blogs {
				blogCard(p, post, b.CurrentPage, csrf)
			}
			p.raw(`</div>`)
			pagination(p, b)
		}
		p.raw(`</div>`)
	})
}

func blogCard(p *writer, post api.BlogPost, page int, csrf string) {
	p.raw(`<article class="card">`)
	if src := richtext.SafeURL(post.Image); src != "" {
		p.f(`<img src="%s" alt="%s" class="mb-3 h-40 w-full rounded object-cover" loading="lazy"/>`, src, post.Title)
	}
	p.f(`<h3 class="mb-1 text-lg font-semibold"><a href="/blogs/%d?page=%d">%s</a></h3>`, post.ID, page, post.Title)
	p.f(`<p class="mb-2 text-xs text-slate-500">%s · %s read</p>`,
		content.FormatTime(post.CreatedAt), plural(post.ReadTime, "min", "mins"))
	p.f(`<p class="mb-3 text-sm text-slate-600">%s</p>`, richtext.Excerpt(post.Content, 140))
	expertiseTags(p, post.ExpertiseIDs)
	p.f(`<div class="mt-3 flex gap-2"><a href="/blogs/%d/edit?page=%d" class="btn btn-outline">Edit</a>`, post.ID, page)
	deleteButton(p, fmt.Sprintf("/blogs/%d?page=%d", post.ID, page), csrf, "Are you sure you want to delete this blog?")
	p.raw(`</div></article>`)
}

func expertiseTags(p *writer, ids []int) {
	if len(ids) == 0 {
		return
	}
	p.raw(`<div class="flex flex-wrap gap-1">`)
	for _, id := range ids {
		if name := content.ExpertiseName(id); name != "" {
			p.f(`<span class="tag">%s</span>`, name)
		}
	}
	p.raw(`</div>`)
}

func pagination(p *writer, b *content.Blogs) {
	if b.TotalPages <= 1 {
		return
	}
	p.raw(`<nav class="pagination mt-6 flex items-center justify-center gap-2" aria-label="Pagination">`)
	if b.HasPrev() {
		p.f(`<a href="%s" class="btn btn-outline">Previous</a>`, pageURL("/blogs", b.CurrentPage-1))
	}
	for i := 1; i <= b.TotalPages; i++ {
		if i == b.CurrentPage {
			p.f(`<span class="page current" aria-current="page">%d</span>`, i)
			continue
		}
		p.f(`<a href="%s" class="page">%d</a>`, pageURL("/blogs", i), i)
	}
	if b.HasNext() {
		p.f(`<a href="%s" class="btn btn-outline">Next</a>`, pageURL("/blogs", b.CurrentPage+1))
	}
	p.f(`<span class="text-sm text-slate-500">%s</span>`, plural(b.TotalItems, "post", "posts"))
	p.raw(`</nav>`)
}

// BlogDetail is the read-only blog modal.
func BlogDetail(post api.BlogPost, page int) templ.Component {
	closeURL := pageURL("/blogs", page)
	return component(func(p *writer) {
		modal(p, "Blog Post", closeURL, func() {
			if src := richtext.SafeURL(post.Image); src != "" {
				p.f(`<img src="%s" alt="%s" class="mb-4 max-h-72 w-full rounded object-cover"/>`, src, post.Title)
			}
			p.f(`<h3 class="mb-2 text-2xl font-bold">%s</h3>`, post.Title)
			p.f(`<p class="mb-4 text-sm text-slate-500">%s · %s read</p>`,
				content.FormatDateTime(post.CreatedAt), plural(post.ReadTime, "min", "mins"))
			expertiseTags(p, post.ExpertiseIDs)
			p.render(richtext.HTML(post.Content))
			p.f(`<div class="mt-6 flex justify-end"><a href="/blogs/%d/edit?page=%d" class="btn btn-primary">Edit Blog</a></div>`, post.ID, page)
		})
	})
}

// ExpertiseOptions lists the expertise taxonomy as select options.
func ExpertiseOptions() []widget.Option {
	out := make([]widget.Option, 0, len(content.Expertises))
	for _, e := range content.Expertises {
		out = append(out, widget.Option{Value: strconv.Itoa(e.ID), Label: e.Name})
	}
	return out
}

// FieldMultiSelect builds the multi-select of a form field by name.
func FieldMultiSelect(name string, selected []string) (*widget.MultiSelect, bool) {
	var m *widget.MultiSelect
	switch name {
	case "expertiseIDs":
		m = widget.NewMultiSelect(name, ExpertiseOptions(), selected)
		m.Label = "Expertise"
		m.Placeholder = "Select expertise..."
	case "categories":
		m = widget.NewMultiSelect(name, ChoiceOptions(content.Categories), selected)
		m.Label = "Job Categories"
		m.Placeholder = "Select categories..."
	default:
		return nil, false
	}
	return m, true
}

// BlogModal is the add/edit blog form.
func BlogModal(form BlogForm, csrf string) templ.Component {
	return component(func(p *writer) {
		closeURL := pageURL("/blogs", max(form.Page, 1))
		title, action := "Create New Blog", "/blogs"
		if form.ID != 0 {
			title, action = "Edit Blog", fmt.Sprintf("/blogs/%d", form.ID)
		}
		modal(p, title, closeURL, func() {
			formError(p, form.Error)
			p.f(`<form method="post" action="%s" enctype="multipart/form-data" data-busy-form novalidate>`, action)
			csrfInput(p, csrf)
			p.f(`<input type="hidden" name="page" value="%d"/>`, max(form.Page, 1))

			p.f(`<label class="label" for="title">Title <span class="required">*</span></label><input id="title" class="input" type="text" name="title" value="%s"/>`, form.Draft.Title)
			fieldError(p, form.Fields, "title")

			p.f(`<label class="label" for="readTime">Read time (minutes) <span class="required">*</span></label><input id="readTime" class="input" type="number" min="1" name="readTime" value="%s"/>`, itoa(form.Draft.ReadTime))
			fieldError(p, form.Fields, "readTime")

			selected := make([]string, 0, len(form.Draft.ExpertiseIDs))
			for _, id := range form.Draft.ExpertiseIDs {
				selected = append(selected, strconv.Itoa(id))
			}
			ms, _ := FieldMultiSelect("expertiseIDs", selected)
			p.render(MultiSelect(ms))

			p.render(ImageUpload(&widget.ImageUpload{Name: "image", Label: "Cover image", Current: form.Image}))
			fieldError(p, form.Fields, "image")

			ed := widget.NewRichTextEditor("content", form.Draft.Content)
			ed.Label = "Content"
			p.render(Editor(ed))
			fieldError(p, form.Fields, "content")

			p.f(`<div class="mt-6 flex justify-end gap-2"><a href="%s" class="btn btn-outline">Cancel</a>`, closeURL)
			p.f(`<button type="submit" class="btn btn-primary">%s</button></div></form>`, submitLabel(form.ID))
		})
	})
}

func submitLabel(id int64) string {
	if id == 0 {
		return "Create"
	}
	return "Save changes"
}
